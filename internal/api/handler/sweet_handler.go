package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// SweetHandler handles HTTP requests for catalog and inventory operations.
type SweetHandler struct {
	service ports.SweetService
}

func NewSweetHandler(service ports.SweetService) *SweetHandler {
	return &SweetHandler{service: service}
}

// Create handles POST /sweets (admin only).
//
// @Summary      Add a sweet to the catalog
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet fields"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sweet, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.SweetsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// List handles GET /sweets.
//
// @Summary      List the whole catalog
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   sweetResponse
// @Failure      401  {object}  errorResponse
// @Router       /sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetListResponse(sweets))
}

// Search handles GET /sweets/search.
//
// @Summary      Search the catalog
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        name      query     string  false  "Case-insensitive name substring"
// @Param        category  query     string  false  "Exact category"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Success      200       {array}   sweetResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	filter, err := toSearchFilter(
		c.QueryParam("name"),
		c.QueryParam("category"),
		c.QueryParam("minPrice"),
		c.QueryParam("maxPrice"),
	)
	if err != nil {
		return err
	}

	sweets, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetListResponse(sweets))
}

// Update handles PUT /sweets/:id (admin only).
//
// @Summary      Update catalog fields of a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to merge"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Delete handles DELETE /sweets/:id (admin only). Deletion is final.
//
// @Summary      Remove a sweet from the catalog
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Sweet deleted successfully"})
}

// Purchase handles POST /sweets/:id/purchase for any authenticated caller.
//
// @Summary      Purchase a single unit
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  sweetResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	sweet, err := h.service.Purchase(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			metrics.OutOfStockTotal.Inc()
		}
		return err
	}

	metrics.PurchasesTotal.WithLabelValues(sweet.Category).Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Restock handles POST /sweets/:id/restock (admin only).
//
// @Summary      Restock a sweet
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Sweet id"
// @Param        body  body      restockRequest  true  "Restock amount"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req restockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sweet, err := h.service.Restock(c.Request().Context(), c.Param("id"), req.Amount, actor)
	if err != nil {
		return err
	}

	metrics.RestocksTotal.WithLabelValues(sweet.Category).Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}
