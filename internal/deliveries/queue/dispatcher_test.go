package queue

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type processFunc func(ctx context.Context, event models.RawReservationEvent) models.Outcome

func (f processFunc) Process(ctx context.Context, event models.RawReservationEvent) models.Outcome {
	return f(ctx, event)
}

type recorder struct {
	mu  sync.Mutex
	ids []string
}

func (r *recorder) add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func event(id string) models.RawReservationEvent {
	return models.RawReservationEvent{EventID: id, Action: models.ActionReservationModified}
}

func runWorker(t *testing.T, d *Dispatcher) <-chan error {
	t.Helper()
	errCh := make(chan error, 1)
	go func() { errCh <- d.Start()() }()
	return errCh
}

func gaugeValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		m := f.GetMetric()[0]
		if m.GetGauge() != nil {
			return m.GetGauge().GetValue()
		}
		return m.GetCounter().GetValue()
	}
	return 0
}

func TestDispatcher_fifo(t *testing.T) {
	rec := &recorder{}
	d := New(context.Background(), processFunc(func(ctx context.Context, e models.RawReservationEvent) models.Outcome {
		assert.Equal(t, e.EventID, xlog.GetCorrelationID(ctx))
		rec.add(e.EventID)
		return models.Outcome{}
	}), nil, nil)

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, d.Enqueue(ctx, event(fmt.Sprintf("e%d", i))))
	}
	assert.Equal(t, 3, d.Len())

	errCh := runWorker(t, d)
	require.NoError(t, d.Enqueue(ctx, event("e4")))

	require.Eventually(t, func() bool { return len(rec.get()) == 4 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, rec.get())
	assert.Equal(t, 0, d.Len())

	require.NoError(t, d.Stop()(ctx))
	require.NoError(t, <-errCh)

	assert.ErrorIs(t, d.Enqueue(ctx, event("late")), common.ErrQueueClosed)
}

func TestDispatcher_Start_once(t *testing.T) {
	rec := &recorder{}
	d := New(context.Background(), processFunc(func(_ context.Context, e models.RawReservationEvent) models.Outcome {
		rec.add(e.EventID)
		return models.Outcome{}
	}), nil, nil)

	errCh := runWorker(t, d)
	require.NoError(t, d.Enqueue(context.Background(), event("e1")))
	require.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 5*time.Millisecond)

	// the second worker returns right away instead of competing for events
	require.NoError(t, d.Start()())

	require.NoError(t, d.Stop()(context.Background()))
	require.NoError(t, <-errCh)
}

func TestDispatcher_Stop(t *testing.T) {
	t.Run("waits for in-flight and drops the rest", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		release := make(chan struct{})
		inFlight := make(chan struct{})
		rec := &recorder{}

		d := New(context.Background(), processFunc(func(_ context.Context, e models.RawReservationEvent) models.Outcome {
			rec.add(e.EventID)
			close(inFlight)
			<-release
			return models.Outcome{}
		}), nil, metrics.NewWithRegisterer(reg))

		ctx := context.Background()
		for i := 1; i <= 3; i++ {
			require.NoError(t, d.Enqueue(ctx, event(fmt.Sprintf("e%d", i))))
		}
		errCh := runWorker(t, d)
		<-inFlight

		stopped := make(chan error, 1)
		go func() { stopped <- d.Stop()(ctx) }()

		// pending events are cleared in the same critical section that closes the queue
		require.Eventually(t, func() bool { return d.Len() == 0 }, time.Second, 5*time.Millisecond)
		assert.ErrorIs(t, d.Enqueue(ctx, event("late")), common.ErrQueueClosed)
		assert.Equal(t, 0, d.Len())

		close(release)
		require.NoError(t, <-stopped)
		require.NoError(t, <-errCh)

		assert.Equal(t, []string{"e1"}, rec.get())
		assert.Equal(t, float64(2), gaugeValue(t, reg, "reservation_ledger_queue_dropped_total"))
		assert.Equal(t, float64(0), gaugeValue(t, reg, "reservation_ledger_queue_depth"))
	})

	t.Run("times out while processing", func(t *testing.T) {
		release := make(chan struct{})
		inFlight := make(chan struct{})
		d := New(context.Background(), processFunc(func(_ context.Context, _ models.RawReservationEvent) models.Outcome {
			close(inFlight)
			<-release
			return models.Outcome{}
		}), nil, nil)

		errCh := runWorker(t, d)
		require.NoError(t, d.Enqueue(context.Background(), event("e1")))
		<-inFlight

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, d.Stop()(ctx), context.DeadlineExceeded)

		close(release)
		require.NoError(t, <-errCh)
		require.NoError(t, d.Stop()(context.Background()))
	})

	t.Run("before start", func(t *testing.T) {
		d := New(context.Background(), processFunc(func(_ context.Context, _ models.RawReservationEvent) models.Outcome {
			t.Fatal("must not process")
			return models.Outcome{}
		}), nil, nil)

		require.NoError(t, d.Enqueue(context.Background(), event("e1")))
		require.NoError(t, d.Stop()(context.Background()))
		require.NoError(t, d.Start()())
	})
}

func TestDispatcher_recoversFromPanic(t *testing.T) {
	rec := &recorder{}
	d := New(context.Background(), processFunc(func(_ context.Context, e models.RawReservationEvent) models.Outcome {
		if e.EventID == "boom" {
			panic("unexpected payload")
		}
		rec.add(e.EventID)
		return models.Outcome{}
	}), nil, nil)

	errCh := runWorker(t, d)
	ctx := context.Background()
	require.NoError(t, d.Enqueue(ctx, event("boom")))
	require.NoError(t, d.Enqueue(ctx, event("e2")))

	require.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"e2"}, rec.get())

	require.NoError(t, d.Stop()(ctx))
	require.NoError(t, <-errCh)
}
