package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_getSegmentName(t *testing.T) {
	tests := []struct {
		name         string
		fullFuncName string
		want         string
	}{
		{
			name:         "pointer receiver",
			fullFuncName: "bitbucket.org/adsa/go-reservation-ledger/internal/services.(*reconciler).CreateTransactions",
			want:         "services.reconciler.CreateTransactions",
		},
		{
			name:         "value receiver",
			fullFuncName: "bitbucket.org/adsa/go-reservation-ledger/internal/common/nibo.client.FindSchedulesByReference",
			want:         "nibo.client.FindSchedulesByReference",
		},
		{
			name:         "closure inside method",
			fullFuncName: "bitbucket.org/adsa/go-reservation-ledger/internal/services.(*audit).RecordRequest.func1",
			want:         "services.audit.RecordRequest.func1",
		},
		{
			name:         "function",
			fullFuncName: "bitbucket.org/adsa/go-reservation-ledger/internal/repositories.NewSQLRepository",
			want:         "repositories.NewSQLRepository",
		},
		{
			name:         "stdlib",
			fullFuncName: "net/http.(*Server).Serve",
			want:         "http.Server.Serve",
		},
		{
			name:         "main",
			fullFuncName: "main.main",
			want:         "main.main",
		},
		{
			name:         "empty",
			fullFuncName: "",
			want:         "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getSegmentName(tt.fullFuncName))
		})
	}
}
