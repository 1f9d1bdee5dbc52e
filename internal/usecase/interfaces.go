package usecase

import "context"

// EmailService covers the synchronous sends: the enquiry relay and the
// agreement signing link. The signed-agreement notification goes through
// the queue instead, see infra/queue.
type EmailService interface {
	SendEnquiry(to, replyTo string, data EnquiryEmailData) error
	SendAgreementLink(to string, data AgreementEmailData) error
}

type EnquiryEmailData struct {
	ClientName string // the agency client whose site the enquiry came from
	FullName   string
	Email      string
	Phone      string
	Service    string
	Message    string
}

type AgreementEmailData struct {
	FirstName    string
	BusinessName string
	AgreementURL string
}

// EnquiryLogger appends anonymized enquiry metrics; no personal data.
type EnquiryLogger interface {
	Append(ctx context.Context, entry EnquiryLogEntry) error
}

type EnquiryLogEntry struct {
	SiteID    string `json:"site_id"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// SiteClient is one entry of the static client directory used by the
// enquiry relay to route submissions.
type SiteClient struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Domain string `json:"domain"`
}

// MockupDirectoryChecker reports whether a mockup variant directory exists.
type MockupDirectoryChecker interface {
	Exists(name string) bool
}
