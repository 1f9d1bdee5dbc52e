package usecase

import (
	"context"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/monitoring"
)

type CreateLeadInput struct {
	OwnerID      string `json:"user"`
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Trade        string `json:"trade"`
	Website      string `json:"website"`
	Source       string `json:"source"`
}

type CreateLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

// Execute creates a lead in the "new" column. Any id, status or history the
// caller might send is ignored; the factory controls those.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	lead, err := entity.NewLead(input.OwnerID, input.BusinessName)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	lead.ContactName = input.ContactName
	lead.Phone = input.Phone
	lead.Email = input.Email
	lead.Trade = input.Trade
	lead.Website = input.Website
	lead.Source = input.Source

	if err := uc.Repo.Insert(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist lead: " + err.Error()}
	}

	monitoring.RecordLeadCreated(lead.Source)
	return lead, nil
}
