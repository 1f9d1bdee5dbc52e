package entity

import (
	"context"
	"errors"
	"time"
)

var ErrAgreementNotFound = errors.New("agreement not found")

// NotifyStatus reports where the signed-notification email got to.
type NotifyStatus string

const (
	NotifyPending NotifyStatus = "pending"
	NotifySent    NotifyStatus = "sent"
	NotifyFailed  NotifyStatus = "failed"
)

// Agreement is a standalone signable contract record keyed by slug.
// It is independent of the Lead store; a lead may reference it by slug.
type Agreement struct {
	Slug         string `json:"slug"`
	ClientName   string `json:"clientName"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Date         string `json:"date"` // YYYY-MM-DD, creation date
	MonthlyFee   int    `json:"monthlyFee"`

	Signed        bool       `json:"signed"`
	SignedAt      *time.Time `json:"signedAt,omitempty"`
	SignatureData string     `json:"signatureData,omitempty"` // PNG data URL
	SignedFromIP  string     `json:"signedFromIP,omitempty"`

	SentAt       *time.Time   `json:"agreementSentAt,omitempty"`
	NotifyStatus NotifyStatus `json:"notifyStatus,omitempty"`
}

func NewAgreement(slug, businessName string) (*Agreement, error) {
	if slug == "" {
		return nil, errors.New("slug is required")
	}
	if businessName == "" {
		return nil, errors.New("business name is required")
	}
	return &Agreement{
		Slug:         slug,
		BusinessName: businessName,
		Date:         time.Now().UTC().Format("2006-01-02"),
		MonthlyFee:   DefaultMonthlyFee,
	}, nil
}

type AgreementRepositoryInterface interface {
	// Upsert creates or refreshes the details of an agreement. The signature
	// fields are never touched here: once signed stays signed.
	Upsert(ctx context.Context, a *Agreement) error

	FindBySlug(ctx context.Context, slug string) (*Agreement, error)
	Update(ctx context.Context, a *Agreement) error
	SetSentAt(ctx context.Context, slug string, at time.Time) error
	SetNotifyStatus(ctx context.Context, slug string, status NotifyStatus) error
}
