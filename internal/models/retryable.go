package models

import (
	"net/http"
)

var retryableHTTPCodes = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// IsRetryableStatus is true for rate limiting and 5xx gateway errors. Any other 4xx is final.
func IsRetryableStatus(code int) bool {
	_, ok := retryableHTTPCodes[code]
	return ok
}
