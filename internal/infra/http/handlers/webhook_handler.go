package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/usecase"
)

// WebhookHandler turns ad-campaign form submissions into CRM leads. The
// landing pages post here without authentication, so every lead lands in
// the default owner's collection.
type WebhookHandler struct {
	CreateUC     *usecase.CreateLeadUseCase
	DefaultOwner string
}

func NewWebhookHandler(create *usecase.CreateLeadUseCase, defaultOwner string) *WebhookHandler {
	return &WebhookHandler{CreateUC: create, DefaultOwner: defaultOwner}
}

type WebhookLeadRequest struct {
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Trade        string `json:"trade"`
	Website      string `json:"website"`
	Source       string `json:"source"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WebhookLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON")
		return
	}

	contactName := req.ContactName
	if contactName == "" {
		contactName = req.Name
	}
	businessName := req.BusinessName
	if businessName == "" {
		businessName = contactName
	}

	lead, err := h.CreateUC.Execute(r.Context(), usecase.CreateLeadInput{
		OwnerID:      h.DefaultOwner,
		BusinessName: businessName,
		ContactName:  contactName,
		Phone:        req.Phone,
		Email:        req.Email,
		Trade:        req.Trade,
		Website:      req.Website,
		Source:       usecase.DetectSource(req.Source),
	})
	if err != nil {
		log.Error().Err(err).Str("source", req.Source).Msg("webhook lead rejected")
		writeUseCaseError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"ok": true,
		"id": lead.ID,
	})
}
