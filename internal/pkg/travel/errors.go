package travel

import (
	"errors"
	"net/http"

	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/exception"
)

// ErrInvalidRequest is the only error Estimate returns. Every rejection wraps it,
// so callers can test with errors.Is and still show the specific message.
var ErrInvalidRequest = errors.New("invalid trip request")

func invalidRequest(msg string) error {
	return exception.WithCause(http.StatusBadRequest, msg, ErrInvalidRequest)
}
