package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"github.com/construction-sites/crm/internal/infra/queue"
	"github.com/construction-sites/crm/internal/usecase"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	// Where signed-agreement notifications land
	NotifyTo string
	BaseURL  string
}

func NewEmailSender(host string, port int, user, password, from, notifyTo, baseURL string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		NotifyTo: notifyTo,
		BaseURL:  baseURL,
	}
}

func (s *EmailSender) SendEnquiry(to, replyTo string, data usecase.EnquiryEmailData) error {
	body, err := renderTemplate("enquiry.html", enquiryTemplateData{
		ClientName: data.ClientName,
		FullName:   data.FullName,
		Email:      data.Email,
		Phone:      data.Phone,
		Service:    data.Service,
		Message:    data.Message,
	})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetHeader("Subject", "New Enquiry — "+data.Service)
	m.SetBody("text/html", body)

	return s.send(m)
}

func (s *EmailSender) SendAgreementLink(to string, data usecase.AgreementEmailData) error {
	body, err := renderTemplate("agreement_link.html", agreementLinkTemplateData{
		FirstName:    data.FirstName,
		BusinessName: data.BusinessName,
		AgreementURL: data.AgreementURL,
	})
	if err != nil {
		return err
	}

	subject := "Your Website Agreement — Ready to Sign"
	if data.BusinessName != "" {
		subject = data.BusinessName + " Website Agreement — Ready to Sign"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.send(m)
}

// SendSignedNotification tells the agency an agreement was just signed.
// Called by the queue worker, never from a request path.
func (s *EmailSender) SendSignedNotification(payload queue.NotificationPayload) error {
	body, err := renderTemplate("agreement_signed.html", signedTemplateData{
		ContactName:  payload.ClientName,
		BusinessName: payload.BusinessName,
		MonthlyFee:   payload.MonthlyFee,
		SignedDate:   payload.SignedAt.Format("2 January 2006 15:04"),
		SignedFromIP: payload.SignedFromIP,
		AgreementURL: s.BaseURL + "/agreement/" + payload.Slug,
	})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.NotifyTo)
	m.SetHeader("Subject", payload.BusinessName+" has signed their agreement")
	m.SetBody("text/html", body)

	return s.send(m)
}

func (s *EmailSender) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

func renderTemplate(name string, data any) (string, error) {
	t, err := template.ParseFiles(filepath.Join("templates", name))
	if err != nil {
		return "", fmt.Errorf("failed to parse email template %s: %w", name, err)
	}
	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}
	return body.String(), nil
}
