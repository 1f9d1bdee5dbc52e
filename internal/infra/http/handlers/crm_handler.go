package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/infra/http/middleware"
	"github.com/construction-sites/crm/internal/usecase"
)

// CRMHandler serves the lead board: list, create, update, delete.
// All routes sit behind the auth middleware.
type CRMHandler struct {
	ListUC   *usecase.ListLeadsUseCase
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
}

func NewCRMHandler(list *usecase.ListLeadsUseCase, create *usecase.CreateLeadUseCase, update *usecase.UpdateLeadUseCase, del *usecase.DeleteLeadUseCase) *CRMHandler {
	return &CRMHandler{
		ListUC:   list,
		CreateUC: create,
		UpdateUC: update,
		DeleteUC: del,
	}
}

func (h *CRMHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	all := r.URL.Query().Get("all") == "true"
	userID := r.URL.Query().Get("user")
	if userID == "" {
		userID = claims.OperatorID
	}

	if all {
		if !middleware.CanAccessUser(claims, "") {
			writeErrorResponse(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
			return
		}
		output, err := h.ListUC.Execute(r.Context(), usecase.ListLeadsInput{All: true})
		if err != nil {
			log.Error().Err(err).Msg("failed to aggregate leads")
			writeUseCaseError(w, err)
			return
		}
		writeJSONResponse(w, http.StatusOK, output)
		return
	}

	if !middleware.CanAccessUser(claims, userID) {
		writeErrorResponse(w, http.StatusForbidden, "FORBIDDEN", "cannot read another user's leads")
		return
	}

	output, err := h.ListUC.Execute(r.Context(), usecase.ListLeadsInput{OwnerID: userID})
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("failed to list leads")
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, output)
}

func (h *CRMHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON")
		return
	}

	if input.OwnerID == "" {
		input.OwnerID = claims.OperatorID
	}
	if !middleware.CanAccessUser(claims, input.OwnerID) {
		writeErrorResponse(w, http.StatusForbidden, "FORBIDDEN", "cannot write to another user's leads")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, lead)
}

func (h *CRMHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON")
		return
	}

	if input.OwnerID == "" {
		input.OwnerID = claims.OperatorID
	}
	if !middleware.CanAccessUser(claims, input.OwnerID) {
		writeErrorResponse(w, http.StatusForbidden, "FORBIDDEN", "cannot write to another user's leads")
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, lead)
}

func (h *CRMHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	var input usecase.DeleteLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON")
		return
	}

	if input.OwnerID == "" {
		input.OwnerID = claims.OperatorID
	}
	if !middleware.CanAccessUser(claims, input.OwnerID) {
		writeErrorResponse(w, http.StatusForbidden, "FORBIDDEN", "cannot delete another user's leads")
		return
	}

	if err := h.DeleteUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}
