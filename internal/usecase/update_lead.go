package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/monitoring"
)

// UpdateLeadInput is a partial lead; nil pointers mean "leave alone".
// CallbackCount is absent on purpose: the counter is server-managed.
type UpdateLeadInput struct {
	OwnerID string `json:"user"`
	ID      string `json:"id"`

	BusinessName *string `json:"businessName"`
	ContactName  *string `json:"contactName"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Trade        *string `json:"trade"`
	Website      *string `json:"website"`
	Source       *string `json:"source"`

	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
	MonthlyFee *int    `json:"monthlyFee"`

	MockupLinks     *[]string `json:"mockupLinks"`
	AgreementSlug   *string   `json:"agreementSlug"`
	AgreementStatus *string   `json:"agreementStatus"`
	GocardlessLink  *string   `json:"gocardlessLink"`

	CallbackDate *string `json:"callbackDate"`
	CallbackNote *string `json:"callbackNote"`
}

type UpdateLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewUpdateLeadUseCase(repo entity.LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

// updateRetries bounds the optimistic-concurrency loop. Conflicts are rare:
// the board is effectively single-writer per salesperson.
const updateRetries = 3

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, input UpdateLeadInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	var lastErr error
	for attempt := 0; attempt < updateRetries; attempt++ {
		lead, err := uc.Repo.FindByID(ctx, input.OwnerID, input.ID)
		if err != nil {
			if errors.Is(err, entity.ErrLeadNotFound) {
				return nil, err
			}
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}

		transitioned, err := applyLeadUpdate(lead, input, time.Now().UTC())
		if err != nil {
			return nil, err
		}

		if err := uc.Repo.Update(ctx, lead); err != nil {
			if errors.Is(err, entity.ErrVersionConflict) {
				lastErr = err
				continue
			}
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}

		if transitioned {
			monitoring.RecordStatusTransition(string(lead.Status))
		}
		return lead, nil
	}

	return nil, &TechnicalError{Code: "WRITE_CONFLICT", Message: "lead update kept conflicting: " + lastErr.Error()}
}

// applyLeadUpdate merges the partial input onto the stored lead and runs the
// status machine. Reports whether the status actually changed.
//
// History rule: exactly one entry is appended when and only when the incoming
// status differs from the stored one. A callback reschedule keeps the status
// at "callback", so it bumps the counter without touching history.
func applyLeadUpdate(lead *entity.Lead, input UpdateLeadInput, now time.Time) (bool, error) {
	statusChanged := false

	if input.Status != nil {
		next := entity.Status(*input.Status)

		switch {
		case next != lead.Status:
			wasCallback := lead.Status == entity.StatusCallback

			if next == entity.StatusCallback {
				if input.CallbackDate == nil || *input.CallbackDate == "" {
					return false, &DomainError{Code: "CALLBACK_DATE_REQUIRED", Message: "moving a lead to callback requires a callback date"}
				}
				lead.CallbackDate = *input.CallbackDate
				lead.CallbackNote = ""
				if input.CallbackNote != nil {
					lead.CallbackNote = *input.CallbackNote
				}
				lead.CallbackCount = 0
			} else if wasCallback {
				// Leaving callback always clears the side fields.
				lead.CallbackDate = ""
				lead.CallbackNote = ""
				lead.CallbackCount = 0
			}

			lead.Status = next
			lead.StatusHistory = append(lead.StatusHistory, entity.StatusChange{Status: next, Date: now})
			statusChanged = true

		case next == entity.StatusCallback:
			// Same status, still callback: this is a reschedule ("push").
			applyCallbackPush(lead, input)
		}
	} else if lead.Status == entity.StatusCallback {
		// Pushes from the callback list come without a status field at all.
		applyCallbackPush(lead, input)
	}

	// Plain field merge, last write wins.
	if input.BusinessName != nil {
		lead.BusinessName = *input.BusinessName
	}
	if input.ContactName != nil {
		lead.ContactName = *input.ContactName
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Trade != nil {
		lead.Trade = *input.Trade
	}
	if input.Website != nil {
		lead.Website = *input.Website
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	if input.MonthlyFee != nil {
		lead.MonthlyFee = *input.MonthlyFee
	}
	if input.MockupLinks != nil {
		lead.MockupLinks = *input.MockupLinks
	}
	if input.AgreementSlug != nil {
		lead.AgreementSlug = *input.AgreementSlug
	}
	if input.AgreementStatus != nil {
		lead.AgreementStatus = entity.AgreementState(*input.AgreementStatus)
	}
	if input.GocardlessLink != nil {
		lead.GocardlessLink = *input.GocardlessLink
	}

	return statusChanged, nil
}

func applyCallbackPush(lead *entity.Lead, input UpdateLeadInput) {
	if input.CallbackDate != nil && *input.CallbackDate != "" && *input.CallbackDate != lead.CallbackDate {
		lead.CallbackDate = *input.CallbackDate
		lead.CallbackCount++
	}
	if input.CallbackNote != nil {
		lead.CallbackNote = *input.CallbackNote
	}
}
