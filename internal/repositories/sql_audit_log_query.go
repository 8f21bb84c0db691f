package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"bitbucket.org/adsa/go-reservation-ledger/internal/models"
)

var (
	queryRequestCreate = `
		INSERT INTO requests(
			"dt", "action", "payload", "created_at"
		)
		VALUES(
			$1, $2, $3, NOW()
		)
		RETURNING
			"id", "created_at";
	`

	queryProcessingLogCreate = `
		INSERT INTO logs(
			"dt", "action", "payload", "internal_payload", "created_at"
		)
		VALUES(
			$1, $2, $3, $4, NOW()
		)
		RETURNING
			"id", "created_at";
	`
)

func buildListRequestsQuery(opts models.RequestFilterOptions) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(
		`"id"`,
		`COALESCE("dt", '') as "dt"`,
		`COALESCE("action", '') as "action"`,
		`COALESCE("payload", '') as "payload"`,
		`"created_at"`,
	).From("requests")

	if opts.Action != "" {
		query = query.Where(sq.Eq{`"action"`: opts.Action})
	}

	if opts.From != nil {
		query = query.Where(sq.GtOrEq{`"created_at"`: *opts.From})
	}

	if opts.To != nil {
		query = query.Where(sq.Lt{`"created_at"`: *opts.To})
	}

	// request writes are detached from the webhook call, so insertion order is not arrival order.
	// "_dt" is an ISO-8601 timestamp set by the sender; id only breaks ties.
	query = query.OrderBy(`"dt" ASC NULLS LAST`, `"created_at" ASC`, `"id" ASC`)

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	return query.ToSql()
}
