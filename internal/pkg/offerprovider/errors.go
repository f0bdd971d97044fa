package offerprovider

import (
	"net/http"

	"github.com/ijalalfrz/destination-deals-service/internal/pkg/exception"
)

var ErrUnexpectedStatus = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider returned unexpected status",
}

var ErrMalformedResponse = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider returned malformed response",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}
