package usecase

import (
	"context"

	"github.com/construction-sites/crm/internal/entity"
)

type DeleteLeadInput struct {
	OwnerID string `json:"user"`
	ID      string `json:"id"`
}

type DeleteLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewDeleteLeadUseCase(repo entity.LeadRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo}
}

// Execute removes the lead if it exists. Deleting a missing id is success;
// the operation is idempotent by contract.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, input DeleteLeadInput) error {
	if input.OwnerID == "" || input.ID == "" {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "user and id are required"}
	}
	if err := uc.Repo.Delete(ctx, input.OwnerID, input.ID); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}
