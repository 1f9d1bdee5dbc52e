package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/usecase"
)

type AgreementHandler struct {
	Repo     entity.AgreementRepositoryInterface
	UpsertUC *usecase.UpsertAgreementUseCase
	SendUC   *usecase.SendAgreementUseCase
	SignUC   *usecase.SignAgreementUseCase
}

func NewAgreementHandler(repo entity.AgreementRepositoryInterface, upsert *usecase.UpsertAgreementUseCase, send *usecase.SendAgreementUseCase, sign *usecase.SignAgreementUseCase) *AgreementHandler {
	return &AgreementHandler{
		Repo:     repo,
		UpsertUC: upsert,
		SendUC:   send,
		SignUC:   sign,
	}
}

// Get is public: the signing page fetches the agreement by slug before and
// after signing, so the server stays the sole source of truth.
func (h *AgreementHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_SLUG", "slug is required")
		return
	}

	agreement, err := h.Repo.FindBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, entity.ErrAgreementNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "agreement not found")
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("failed to load agreement")
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong")
		return
	}

	writeJSONResponse(w, http.StatusOK, agreement)
}

func (h *AgreementHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpsertAgreementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON")
		return
	}

	agreement, err := h.UpsertUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, agreement)
}

func (h *AgreementHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendAgreementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON")
		return
	}

	output, err := h.SendUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, output)
}

// Sign is public: clients sign from an emailed link, no login involved.
func (h *AgreementHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var input usecase.SignAgreementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON")
		return
	}
	input.IP = getClientIP(r)

	output, err := h.SignUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, output)
}

func getClientIP(r *http.Request) string {
	// X-Forwarded-For may hold a chain; the left-most entry is the client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
