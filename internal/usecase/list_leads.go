package usecase

import (
	"context"
	"time"

	"github.com/construction-sites/crm/internal/entity"
)

type ListLeadsInput struct {
	OwnerID string
	All     bool // admin only, cross-user aggregation
}

// UserLeads is one bucket of the admin aggregation.
type UserLeads struct {
	Label string         `json:"label"`
	Leads []*entity.Lead `json:"leads"`
}

type ListLeadsOutput struct {
	Leads []*entity.Lead        `json:"leads,omitempty"`
	Users map[string]*UserLeads `json:"users,omitempty"`
}

type ListLeadsUseCase struct {
	Repo      entity.LeadRepositoryInterface
	Operators entity.OperatorRepositoryInterface
}

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface, operators entity.OperatorRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo, Operators: operators}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	now := time.Now()

	if !input.All {
		leads, err := uc.Repo.ListByOwner(ctx, input.OwnerID)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		decorate(leads, now)
		return &ListLeadsOutput{Leads: leads}, nil
	}

	// Aggregation over every user-role operator. The admin owns no
	// collection, so it never appears as a bucket.
	operators, err := uc.Operators.ListUsers(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	users := make(map[string]*UserLeads, len(operators))
	for _, op := range operators {
		leads, err := uc.Repo.ListByOwner(ctx, op.ID)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		decorate(leads, now)
		users[op.ID] = &UserLeads{Label: op.Label, Leads: leads}
	}
	return &ListLeadsOutput{Users: users}, nil
}

func decorate(leads []*entity.Lead, now time.Time) {
	for _, l := range leads {
		l.RefreshCallbackFlags(now)
	}
}
