package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes stock movements to a fixed set of workers using
// consistent hashing on the sweet id, guaranteeing per-sweet write ordering
// in the audit trail.
type Dispatcher struct {
	workers []chan domain.StockMovement
	repo    ports.MovementRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.MovementRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.StockMovement, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.StockMovement, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues a movement for the worker responsible for its sweet id.
// When the worker channel is full the movement is dropped with a warning:
// the audit trail must never block or fail an inventory operation.
func (d *Dispatcher) Record(m domain.StockMovement) {
	idx := d.shardIndex(m.SweetID)
	select {
	case d.workers[idx] <- m:
		metrics.MovementQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.MovementsDroppedTotal.Inc()
		d.log.Warn().Str("sweet_id", m.SweetID).Msg("movement queue full, audit record dropped")
	}
}

// shardIndex maps a sweet id deterministically to a worker index.
func (d *Dispatcher) shardIndex(sweetID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sweetID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.StockMovement) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			metrics.MovementQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, &m); err != nil {
				d.log.Error().Err(err).
					Str("sweet_id", m.SweetID).
					Int("worker_id", id).
					Msg("movement persistence failed")
			}
		}
	}
}
