package repositories

import (
	"context"
	"fmt"

	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"
)

type AuditLogRepository interface {
	CreateRequest(ctx context.Context, in *models.RequestLog) (created *models.RequestLog, err error)
	CreateProcessingLog(ctx context.Context, in *models.ProcessingLog) (created *models.ProcessingLog, err error)
	ListRequests(ctx context.Context, opts models.RequestFilterOptions) (result []models.RequestLog, err error)
}

type auditLogRepository sqlRepo

var _ AuditLogRepository = (*auditLogRepository)(nil)

func (r *auditLogRepository) CreateRequest(ctx context.Context, in *models.RequestLog) (created *models.RequestLog, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := r.r.extractTxWrite(ctx)

	entity := *in
	err = db.QueryRowContext(ctx, queryRequestCreate, in.Dt, in.Action, in.Payload).Scan(
		&entity.ID,
		&entity.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	return &entity, nil
}

func (r *auditLogRepository) CreateProcessingLog(ctx context.Context, in *models.ProcessingLog) (created *models.ProcessingLog, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := r.r.extractTxWrite(ctx)

	entity := *in
	err = db.QueryRowContext(ctx, queryProcessingLogCreate, in.Dt, in.Action, in.Payload, in.InternalPayload).Scan(
		&entity.ID,
		&entity.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert processing log: %w", err)
	}

	return &entity, nil
}

func (r *auditLogRepository) ListRequests(ctx context.Context, opts models.RequestFilterOptions) (result []models.RequestLog, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := r.r.extractTxRead(ctx)

	query, args, err := buildListRequestsQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result = []models.RequestLog{}
	for rows.Next() {
		var rl models.RequestLog
		err = rows.Scan(
			&rl.ID,
			&rl.Dt,
			&rl.Action,
			&rl.Payload,
			&rl.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, rl)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
