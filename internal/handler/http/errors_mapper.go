package http

import (
	"errors"
	"net/http"

	"github.com/somahealth/vault-companion/internal/service"
	"github.com/somahealth/vault-companion/internal/store"
	"github.com/somahealth/vault-companion/internal/utils"
	"github.com/somahealth/vault-companion/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	service.ErrUnknownKnowledgeSource: http.StatusBadRequest,
	service.ErrInvalidCredentials:     http.StatusUnauthorized,
	service.ErrTokenIsExpired:         http.StatusUnauthorized,
	service.ErrNotRecordOwner:         http.StatusForbidden,

	store.ErrRecordNotFound: http.StatusNotFound,
	store.ErrShareNotFound:  http.StatusNotFound,
}

func statusFromError(err error) int {
	var validationErrs *models.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the response body.
// Validation failures respond with the
// {"errors": [{"param", "msg"}]} shape; everything else responds with
// {"error": "..."}.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	var validationErrs *models.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.WriteJSON(w, validationErrs, status)
		return
	}

	if status == http.StatusInternalServerError {
		utils.WriteJSONError(w, "Server error", status)
		return
	}

	utils.WriteJSONError(w, err.Error(), status)
}
