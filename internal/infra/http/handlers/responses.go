package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/usecase"
)

func writeJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSONResponse(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError translates use-case errors into HTTP status codes.
// Domain errors are the caller's fault, technical errors are ours.
func writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound):
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "lead not found")
	case errors.Is(err, entity.ErrAgreementNotFound):
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "agreement not found")
	case errors.Is(err, entity.ErrOperatorNotFound):
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "user not found")
	default:
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			writeErrorResponse(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong")
	}
}
