package extraction

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/walled99/Learn-Deutsch/internal/domain"
	"github.com/walled99/Learn-Deutsch/internal/provider"
	"github.com/walled99/Learn-Deutsch/pkg/bounded"
)

// Classify maps a failed transport attempt to a kind, a user-facing message
// and a retry decision. Only the status code of a non-2xx response matters;
// its body is never inspected. A nil err is not a failure and returns nil.
func Classify(err error) *domain.ExtractionError {
	if err == nil {
		return nil
	}

	var ee *domain.ExtractionError
	if errors.As(err, &ee) {
		return ee
	}

	var se *provider.StatusError
	if errors.As(err, &se) {
		return classifyStatus(se.StatusCode, err)
	}

	// A deadline that fires mid-decode wraps both; the deadline wins.
	if isTimeout(err) {
		return domain.NewExtractionError(domain.ErrorKindTimeout, domain.MsgTimeout, err)
	}

	if errors.Is(err, provider.ErrInvalidResponse) {
		return domain.NewExtractionError(domain.ErrorKindMalformedResponse, domain.MsgMalformedResponse, err)
	}

	return domain.NewExtractionError(domain.ErrorKindClient, domain.MsgTryAgain, err)
}

func classifyStatus(status int, err error) *domain.ExtractionError {
	switch status {
	case http.StatusTooManyRequests:
		return domain.NewExtractionError(domain.ErrorKindRateLimited, domain.MsgRateLimited, err)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return domain.NewExtractionError(domain.ErrorKindServerTransient, domain.MsgServerUnavailable, err)
	case http.StatusBadRequest:
		return domain.NewExtractionError(domain.ErrorKindClient, domain.MsgBadRequest, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewExtractionError(domain.ErrorKindClient, domain.MsgInvalidAPIKey, err)
	case http.StatusNotFound:
		return domain.NewExtractionError(domain.ErrorKindClient, domain.MsgEndpointNotFound, err)
	default:
		return domain.NewExtractionError(domain.ErrorKindClient, domain.MsgTryAgain, err)
	}
}

// isTimeout reports deadline or abort errors. Caller cancellation counts as
// an abort; the orchestrator stops on it regardless of retryability.
func isTimeout(err error) bool {
	if errors.Is(err, bounded.ErrDeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
