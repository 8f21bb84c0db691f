package graceful

import (
	"context"
	"testing"
	"time"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	m.Run()
}

func TestStopProcess(t *testing.T) {
	var order []string
	stopper := func(name string, err error) ProcessStopper {
		return func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			order = append(order, name)
			return err
		}
	}

	ps := []ProcessStopper{
		stopper("db", nil),
		nil,
		stopper("dispatcher", assert.AnError),
		stopper("http", nil),
	}
	StopProcess(time.Second, ps...)

	assert.Equal(t, []string{"http", "dispatcher", "db"}, order)
	assert.Nil(t, ps[1], "caller slice is left untouched")
}
