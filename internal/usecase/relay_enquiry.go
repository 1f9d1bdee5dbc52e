package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/monitoring"
)

type RelayEnquiryInput struct {
	SiteID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Service   string
	Message   string
	Honeypot  string // hidden _gotcha field; bots fill it in
}

var (
	ErrUnknownSite = &DomainError{Code: "UNKNOWN_SITE", Message: "unknown site id"}
	ErrEmailFailed = &DomainError{Code: "EMAIL_FAILED", Message: "failed to send enquiry email"}
)

// RelayEnquiryUseCase forwards contact-form submissions from client sites to
// the client's inbox. Multi-tenant via a static site directory.
type RelayEnquiryUseCase struct {
	Clients map[string]SiteClient
	Email   EmailService
	Log     EnquiryLogger
}

func NewRelayEnquiryUseCase(clients map[string]SiteClient, email EmailService, logger EnquiryLogger) *RelayEnquiryUseCase {
	return &RelayEnquiryUseCase{Clients: clients, Email: email, Log: logger}
}

// Execute relays one submission. A filled honeypot succeeds silently so bots
// learn nothing. The metrics append is best-effort and holds no personal data.
func (uc *RelayEnquiryUseCase) Execute(ctx context.Context, input RelayEnquiryInput) error {
	if input.Honeypot != "" {
		monitoring.RecordEnquiry(input.SiteID, "honeypot")
		return nil
	}

	client, ok := uc.Clients[input.SiteID]
	if !ok {
		log.Error().Str("site_id", input.SiteID).Msg("enquiry from unknown site")
		monitoring.RecordEnquiry(input.SiteID, "unknown_site")
		return ErrUnknownSite
	}

	service := input.Service
	if service == "" {
		service = "General Enquiry"
	}

	data := EnquiryEmailData{
		ClientName: client.Name,
		FullName:   strings.TrimSpace(input.FirstName + " " + input.LastName),
		Email:      input.Email,
		Phone:      input.Phone,
		Service:    service,
		Message:    input.Message,
	}
	if err := uc.Email.SendEnquiry(client.Email, input.Email, data); err != nil {
		log.Error().Err(err).Str("site_id", input.SiteID).Msg("enquiry email failed")
		monitoring.RecordEnquiry(input.SiteID, "email_failed")
		return ErrEmailFailed
	}

	entry := EnquiryLogEntry{
		SiteID:    input.SiteID,
		Service:   service,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.Log.Append(ctx, entry); err != nil {
		// Non-critical, never fail the submission over logging.
		log.Error().Err(err).Msg("enquiry metrics log failed")
	}

	monitoring.RecordEnquiry(input.SiteID, "relayed")
	return nil
}
