package job

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	v1reconcile "bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/job/v1/reconcile"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"

	"github.com/google/uuid"
)

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag models.JobFlag) error

type Job struct {
	Routes JobRoutes
}

func New(jobService services.JobService) *Job {
	jobRoutes := JobRoutes{
		"v1": v1reconcile.Routes(jobService),
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, flag models.JobFlag) (err error) {
	fn, ok := j.Routes[flag.Version][flag.JobName]
	if !ok {
		err = fmt.Errorf("%w: %s %s", common.ErrUnknownJob, flag.Version, flag.JobName)
		xlog.LogJob(ctx, flag.JobName, flag.Version, flag.Date, err)
		return err
	}

	ctx = xlog.SetCorrelationID(ctx, uuid.NewString())
	defer func() {
		xlog.LogJob(ctx, flag.JobName, flag.Version, flag.Date, err)
	}()

	var runningDate time.Time
	if flag.Date != "" {
		runningDate, err = common.ParseDate(flag.Date)
		if err != nil {
			return err
		}
	}

	return fn(ctx, runningDate, flag)
}

// List returns every registered job as "<version> <name>", sorted.
func (j *Job) List() []string {
	var names []string
	for version, routes := range j.Routes {
		for name := range routes {
			names = append(names, version+" "+name)
		}
	}
	sort.Strings(names)
	return names
}
