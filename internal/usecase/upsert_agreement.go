package usecase

import (
	"context"
	"errors"

	"github.com/construction-sites/crm/internal/entity"
)

type UpsertAgreementInput struct {
	Slug         string `json:"slug"`
	ClientName   string `json:"clientName"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	MonthlyFee   int    `json:"monthlyFee"`
}

type UpsertAgreementUseCase struct {
	Repo entity.AgreementRepositoryInterface
}

func NewUpsertAgreementUseCase(repo entity.AgreementRepositoryInterface) *UpsertAgreementUseCase {
	return &UpsertAgreementUseCase{Repo: repo}
}

// Execute creates or refreshes an agreement by slug. Re-posting an existing
// slug updates the details but never unsigns a signed agreement.
func (uc *UpsertAgreementUseCase) Execute(ctx context.Context, input UpsertAgreementInput) (*entity.Agreement, error) {
	agreement, err := entity.NewAgreement(input.Slug, input.BusinessName)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	agreement.ClientName = input.ClientName
	agreement.Email = input.Email
	agreement.Phone = input.Phone
	if input.MonthlyFee > 0 {
		agreement.MonthlyFee = input.MonthlyFee
	}

	if err := uc.Repo.Upsert(ctx, agreement); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist agreement: " + err.Error()}
	}

	// Return the stored record so callers see the signed state of a
	// pre-existing agreement rather than the fresh defaults.
	stored, err := uc.Repo.FindBySlug(ctx, input.Slug)
	if err != nil {
		if errors.Is(err, entity.ErrAgreementNotFound) {
			return agreement, nil
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return stored, nil
}
