package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"

	"golang.org/x/exp/slices"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p != nil {
			go func(_p func() error) {
				if err := _p(); err != nil {
					xlog.Error(context.Background(), "[GRACEFUL] process stopped with error", xlog.Err(err))
				}
			}(p)
		}
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 and then runs StopProcess.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(sig)

	s := <-sig
	xlog.Info(context.Background(), "[GRACEFUL] shutting down", xlog.String("signal", s.String()))
	StopProcess(duration, ps...)
}

// StopProcess runs the stoppers in reverse registration order, each with its own timeout.
// Register them in start order: the first one started is the last one stopped.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	ps = slices.Clone(ps)
	slices.Reverse(ps)

	for _, p := range ps {
		func() {
			if p == nil {
				return
			}
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			if err := p(ctx); err != nil {
				xlog.Warn(ctx, "[GRACEFUL] failed to stop process", xlog.Err(err))
			}
		}()
	}
}
