package main

import (
	"context"
	"sync"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/cmd/setup"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/graceful"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/http"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/queue"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	dispatcher := queue.New(ctx, s.Service.EventProcessor, s.NewRelic, s.Metrics)

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic,
		s.Metrics,
		dispatcher,
		s.Service.Audit,
		s.Service.EventProcessor,
		s.Service.Reservation,
		s.Service.Ledger,
	)

	// stopped in reverse: http, dispatcher, pending audit writes, then infrastructure
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, s.Service.Audit.Wait)

	starters = append(starters, dispatcher.Start())
	stoppers = append(stoppers, dispatcher.Stop())

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	xlog.Info(ctx, "http server stopped!")
}
