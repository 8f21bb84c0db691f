// Package queue holds the in-process ingestion queue and its single worker.
package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/graceful"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const logMessage = "[DISPATCHER]"

// Queue is what the HTTP layer sees of the dispatcher.
type Queue interface {
	Enqueue(ctx context.Context, event models.RawReservationEvent) error
	Len() int
}

// Processor handles one dequeued event.
type Processor interface {
	Process(ctx context.Context, event models.RawReservationEvent) models.Outcome
}

// Dispatcher is an unbounded FIFO consumed by exactly one worker goroutine. Events are
// processed in the order they were enqueued, one at a time.
type Dispatcher struct {
	ctx       context.Context
	processor Processor
	nr        *newrelic.Application
	metrics   *metrics.ReconciliationPrometheusMetrics

	mu     sync.Mutex
	items  []models.RawReservationEvent
	closed bool
	wake   chan struct{}

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

var (
	_ Queue                        = (*Dispatcher)(nil)
	_ graceful.ProcessStartStopper = (*Dispatcher)(nil)
)

// New builds a stopped dispatcher. nr and m may be nil.
func New(ctx context.Context, processor Processor, nr *newrelic.Application, m metrics.Metrics) *Dispatcher {
	d := &Dispatcher{
		ctx:       context.WithoutCancel(ctx),
		processor: processor,
		nr:        nr,
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	if m != nil {
		d.metrics = m.GetReconciliationPrometheus()
	}
	return d
}

// Enqueue never blocks. It fails only after Stop.
func (d *Dispatcher) Enqueue(ctx context.Context, event models.RawReservationEvent) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return common.ErrQueueClosed
	}
	d.items = append(d.items, event)
	depth := len(d.items)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}

	d.setDepth(depth)
	xlog.Debug(ctx, logMessage,
		xlog.String("message", "event queued"),
		xlog.String("event_id", event.EventID),
		xlog.String("action", event.Action),
		xlog.Int("queue_size", depth))

	return nil
}

func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// next blocks until an event is available or the dispatcher is stopped.
func (d *Dispatcher) next() (models.RawReservationEvent, bool) {
	for {
		d.mu.Lock()
		if d.closed {
			d.mu.Unlock()
			return models.RawReservationEvent{}, false
		}
		if len(d.items) > 0 {
			event := d.items[0]
			d.items[0] = models.RawReservationEvent{}
			d.items = d.items[1:]
			depth := len(d.items)
			d.mu.Unlock()

			d.setDepth(depth)
			return event, true
		}
		d.mu.Unlock()

		select {
		case <-d.wake:
		case <-d.stop:
		}
	}
}

// Start runs the worker loop until Stop. Only the first call runs it; later calls return
// immediately.
func (d *Dispatcher) Start() graceful.ProcessStarter {
	return func() error {
		if !d.started.CompareAndSwap(false, true) {
			xlog.Warn(d.ctx, logMessage, xlog.String("message", "worker already running"))
			return nil
		}
		defer close(d.done)

		xlog.Info(d.ctx, logMessage, xlog.String("status", "worker started"))
		for {
			event, ok := d.next()
			if !ok {
				xlog.Info(d.ctx, logMessage, xlog.String("status", "worker stopped"))
				return nil
			}
			d.handle(event)
		}
	}
}

func (d *Dispatcher) handle(event models.RawReservationEvent) {
	ctx := xlog.SetCorrelationID(d.ctx, event.EventID)
	ctx, end := monitoring.StartTransaction(ctx, d.nr, "queue.ReservationEvent")
	defer end()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			xlog.Error(ctx, logMessage,
				xlog.String("message", "recovered from panic while processing event"),
				xlog.String("event_id", event.EventID),
				xlog.String("action", event.Action),
				xlog.Any("panic", r),
				xlog.Duration("latency", time.Since(start)))
		}
	}()

	d.processor.Process(ctx, event)
}

// Stop closes the queue, drops whatever is still waiting and waits for the in-flight event.
func (d *Dispatcher) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		d.stopOnce.Do(func() {
			d.mu.Lock()
			d.closed = true
			dropped := len(d.items)
			d.items = nil
			d.mu.Unlock()

			close(d.stop)
			d.setDepth(0)

			if dropped > 0 {
				xlog.Warn(ctx, logMessage, xlog.String("message", "queued events dropped on shutdown"), xlog.Int("dropped", dropped))
				if d.metrics != nil {
					d.metrics.AddDropped(dropped)
				}
			}
		})

		if !d.started.Load() {
			return nil
		}

		select {
		case <-d.done:
			xlog.Info(ctx, "[SHUTDOWN] dispatcher stopped successfully")
			return nil
		case <-ctx.Done():
			return fmt.Errorf("dispatcher still processing: %w", ctx.Err())
		}
	}
}

func (d *Dispatcher) setDepth(n int) {
	if d.metrics != nil {
		d.metrics.SetQueueDepth(n)
	}
}
