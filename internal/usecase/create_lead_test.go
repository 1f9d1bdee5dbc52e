package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/construction-sites/crm/internal/entity"
)

func TestCreateLead_Defaults(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewCreateLeadUseCase(repo)

	var inserted *entity.Lead
	repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*entity.Lead)
	}).Return(nil)

	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		OwnerID:      "patrick",
		BusinessName: "Kershaw Construction",
		ContactName:  "Dave Kershaw",
		Phone:        "07700 900123",
		Source:       "Google",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, entity.DefaultMonthlyFee, lead.MonthlyFee)
	assert.Equal(t, []string{"", "", ""}, lead.MockupLinks)
	assert.Len(t, lead.StatusHistory, 1)
	assert.Equal(t, entity.StatusNew, lead.StatusHistory[0].Status)
	assert.Equal(t, 1, lead.Version)
	assert.Same(t, lead, inserted)
}

func TestCreateLead_RequiresOwnerAndBusinessName(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewCreateLeadUseCase(repo)

	_, err := uc.Execute(context.Background(), CreateLeadInput{BusinessName: "No Owner Ltd"})
	assert.True(t, IsDomainError(err))

	_, err = uc.Execute(context.Background(), CreateLeadInput{OwnerID: "patrick"})
	assert.True(t, IsDomainError(err))

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestDeleteLead_MissingIDIsSuccess(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewDeleteLeadUseCase(repo)

	repo.On("Delete", mock.Anything, "patrick", "gone-already").Return(nil)

	err := uc.Execute(context.Background(), DeleteLeadInput{OwnerID: "patrick", ID: "gone-already"})
	assert.NoError(t, err)
}

func TestDeleteLead_RequiresUserAndID(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewDeleteLeadUseCase(repo)

	err := uc.Execute(context.Background(), DeleteLeadInput{OwnerID: "patrick"})
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
