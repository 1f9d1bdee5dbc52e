package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrVersionConflict = errors.New("lead was modified concurrently")
)

// Status is the closed set of states a lead can be in.
type Status string

const (
	StatusNew           Status = "new"
	StatusMockupsSent   Status = "mockups-sent"
	StatusAgreementSent Status = "agreement-sent"
	StatusSigned        Status = "signed"
	StatusLive          Status = "live"

	// Side-states outside the main pipeline
	StatusCold     Status = "cold"
	StatusChurned  Status = "churned"
	StatusCallback Status = "callback"
)

// PipelineStatuses are the five kanban columns, left to right.
var PipelineStatuses = []Status{
	StatusNew,
	StatusMockupsSent,
	StatusAgreementSent,
	StatusSigned,
	StatusLive,
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusMockupsSent, StatusAgreementSent, StatusSigned,
		StatusLive, StatusCold, StatusChurned, StatusCallback:
		return true
	}
	return false
}

// AgreementState tracks where a lead's agreement sits in its own mini lifecycle.
type AgreementState string

const (
	AgreementNotSent AgreementState = "not-sent"
	AgreementSent    AgreementState = "sent"
	AgreementSigned  AgreementState = "signed"
)

func (a AgreementState) Valid() bool {
	return a == AgreementNotSent || a == AgreementSent || a == AgreementSigned
}

// StatusChange is one entry in a lead's append-only status history.
type StatusChange struct {
	Status Status    `json:"status"`
	Date   time.Time `json:"date"`
}

type Lead struct {
	ID      string `json:"id"`
	OwnerID string `json:"-"`

	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Trade        string `json:"trade"`
	Website      string `json:"website"`
	Source       string `json:"source"` // Referral, Google, TikTok, Website, Cold Call, Meta

	Status     Status    `json:"status"`
	DateAdded  time.Time `json:"dateAdded"`
	Notes      string    `json:"notes"`
	MonthlyFee int       `json:"monthlyFee"`

	MockupLinks     []string       `json:"mockupLinks"`
	AgreementSlug   string         `json:"agreementSlug"`
	AgreementStatus AgreementState `json:"agreementStatus"`
	AgreementSentAt *time.Time     `json:"agreementSentAt,omitempty"`
	GocardlessLink  string         `json:"gocardlessLink"`

	// Populated only while Status == callback
	CallbackDate  string `json:"callbackDate,omitempty"` // YYYY-MM-DD
	CallbackNote  string `json:"callbackNote,omitempty"`
	CallbackCount int    `json:"callbackCount"`

	StatusHistory []StatusChange `json:"statusHistory"`

	// Derived on read, never persisted
	CallbackDue  bool `json:"callbackDue,omitempty"`
	CallbackSoon bool `json:"callbackSoon,omitempty"`

	// Optimistic concurrency token, bumped on every write
	Version int `json:"-"`
}

const DefaultMonthlyFee = 100

// NewLead creates a lead in the "new" column with a singleton history.
// Any status or history supplied by callers is deliberately ignored.
func NewLead(ownerID, businessName string) (*Lead, error) {
	if ownerID == "" {
		return nil, errors.New("owner id is required")
	}
	if businessName == "" {
		return nil, errors.New("business name is required")
	}

	now := time.Now().UTC()
	return &Lead{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		BusinessName:    businessName,
		Status:          StatusNew,
		DateAdded:       now,
		MonthlyFee:      DefaultMonthlyFee,
		MockupLinks:     []string{"", "", ""},
		AgreementStatus: AgreementNotSent,
		StatusHistory:   []StatusChange{{Status: StatusNew, Date: now}},
		Version:         1,
	}, nil
}

// callbackSoonWindow is how far ahead a callback still counts as "soon".
const callbackSoonWindow = 3 * 24 * time.Hour

// RefreshCallbackFlags recomputes the derived due/soon flags against now.
func (l *Lead) RefreshCallbackFlags(now time.Time) {
	l.CallbackDue = false
	l.CallbackSoon = false

	if l.Status != StatusCallback || l.CallbackDate == "" {
		return
	}
	due, err := time.Parse("2006-01-02", l.CallbackDate)
	if err != nil {
		return
	}
	today := now.UTC().Truncate(24 * time.Hour)
	if !due.After(today) {
		l.CallbackDue = true
		return
	}
	if due.Sub(today) <= callbackSoonWindow {
		l.CallbackSoon = true
	}
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, ownerID, id string) (*Lead, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Lead, error)

	// Update is a conditional write on Version; returns ErrVersionConflict
	// when the stored row moved on under us.
	Update(ctx context.Context, lead *Lead) error

	// Delete never reports a missing row; removing nothing is success.
	Delete(ctx context.Context, ownerID, id string) error
}
