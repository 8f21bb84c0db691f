package monitoring

import (
	"errors"
	"time"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"

	"github.com/newrelic/go-agent/v3/newrelic"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerGateway:    "[GATEWAY]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err        error
	expected   []error
	xlogFields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

// WithFinishExpectedErrors marks errors that are a normal answer, like a reservation the
// platform no longer has. They are logged at info and not reported to New Relic.
func WithFinishExpectedErrors(errs ...error) FinishOption {
	return func(o *finishOptions) {
		o.expected = append(o.expected, errs...)
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.xlogFields = fields
	}
}

func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fOpts.xlogFields = append(fOpts.xlogFields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)))

	switch {
	case fOpts.err != nil && fOpts.isExpected():
		fOpts.xlogFields = append(
			fOpts.xlogFields,
			xlog.String("status", "expected"),
			xlog.Err(fOpts.err))

		xlog.Info(m.ctx, messagePrefix[m.layer], fOpts.xlogFields...)
	case fOpts.err != nil:
		fOpts.xlogFields = append(
			fOpts.xlogFields,
			xlog.String("status", "error"),
			xlog.Err(fOpts.err))

		xlog.Warn(m.ctx, messagePrefix[m.layer], fOpts.xlogFields...)
		newrelic.FromContext(m.ctx).NoticeError(fOpts.err)
	case m.layer == LayerDelivery || m.layer == LayerService:
		// repositories and gateways already log through their own wrappers
		fOpts.xlogFields = append(
			fOpts.xlogFields,
			xlog.String("status", "success"))

		xlog.Info(m.ctx, messagePrefix[m.layer], fOpts.xlogFields...)
	}

	if m.segment != nil {
		m.segment.End()
	}
}

func (o *finishOptions) isExpected() bool {
	for _, e := range o.expected {
		if errors.Is(o.err, e) {
			return true
		}
	}
	return false
}
