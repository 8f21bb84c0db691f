package repositories

import (
	"context"
	"regexp"
	"testing"

	"bitbucket.org/adsa/go-reservation-ledger/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationRepository_Migrate(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		doMock  func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name:   "custom schema created first",
			schema: "ledger",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`CREATE SCHEMA IF NOT EXISTS "ledger";`)).WillReturnResult(sqlmock.NewResult(0, 0))
				for _, m := range migrations {
					mock.ExpectExec(regexp.QuoteMeta(m.query)).WillReturnResult(sqlmock.NewResult(0, 0))
				}
			},
		},
		{
			name: "all statements applied",
			doMock: func(mock sqlmock.Sqlmock) {
				for _, m := range migrations {
					mock.ExpectExec(regexp.QuoteMeta(m.query)).WillReturnResult(sqlmock.NewResult(0, 0))
				}
			},
		},
		{
			name: "stops at first failure",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(migrations[0].query)).WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.doMock(mock)

			cfg := config.Config{Postgres: config.Database{DbSchema: tt.schema}}
			err = NewSQLRepository(db, db, cfg).GetMigrationRepository().Migrate(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	assert.NoError(t, NewSQLRepository(db, db, config.Config{}).Ping(context.Background()))

	mock.ExpectPing().WillReturnError(assert.AnError)
	assert.ErrorIs(t, NewSQLRepository(db, nil, config.Config{}).Ping(context.Background()), assert.AnError)
}
