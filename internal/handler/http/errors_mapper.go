package http

import (
	"errors"
	"net/http"

	"github.com/melodia-app/melodia-server/internal/service"
	"github.com/melodia-app/melodia-server/internal/store"
)

// errorStatusMap translates typed service and store errors into HTTP status
// codes. Anything unmapped collapses to 500 with a generic message; the
// cause is logged but never leaked to the client.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrInvalidRole:             http.StatusInternalServerError,

	store.ErrNotFound:          http.StatusNotFound,
	store.ErrMultipleMatches:   http.StatusMethodNotAllowed,
	store.ErrAlreadyExists:     http.StatusConflict,
	store.ErrMissingReference:  http.StatusNotFound,
	store.ErrInvalidDateFormat: http.StatusBadRequest,
	store.ErrInvalidTextValue:  http.StatusBadRequest,
	store.ErrNothingToUpdate:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the status resolved from err with a client-safe
// message. For 5xx statuses the concrete cause stays in the logs only.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
