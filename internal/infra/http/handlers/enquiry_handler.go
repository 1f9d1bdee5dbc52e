package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/usecase"
)

// EnquiryHandler receives contact-form posts from the public sites. It
// answers with a redirect back to the page the visitor came from, so the
// forms work without any client-side script.
type EnquiryHandler struct {
	RelayUC *usecase.RelayEnquiryUseCase
}

func NewEnquiryHandler(relay *usecase.RelayEnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{RelayUC: relay}
}

func (h *EnquiryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, redirectTarget(r, "#error"), http.StatusSeeOther)
		return
	}

	input := usecase.RelayEnquiryInput{
		SiteID:    r.PostFormValue("_site_id"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Service:   r.PostFormValue("service"),
		Message:   r.PostFormValue("message"),
		Honeypot:  r.PostFormValue("_gotcha"),
	}

	if err := h.RelayUC.Execute(r.Context(), input); err != nil {
		log.Error().Err(err).Str("site_id", input.SiteID).Msg("enquiry relay failed")
		http.Redirect(w, r, redirectTarget(r, "#error"), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, redirectTarget(r, "#thank-you"), http.StatusSeeOther)
}

// redirectTarget sends the visitor back where they came from, with a hash
// the page uses to show its thank-you or error banner.
func redirectTarget(r *http.Request, hash string) string {
	ref := r.Referer()
	if ref == "" {
		return "/" + hash
	}
	if i := strings.Index(ref, "#"); i >= 0 {
		ref = ref[:i]
	}
	return ref + hash
}
