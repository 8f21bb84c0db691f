package log

import (
	"context"
)

const (
	correlationIDField = "correlation_id"

	// HeaderCorrelationID is read on ingress and forwarded on every outbound call.
	HeaderCorrelationID = "X-Correlation-Id"
)

type correlationIDKey struct{}

func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}
