package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/entity"
)

type SendAgreementInput struct {
	Slug         string `json:"slug"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	BusinessName string `json:"businessName"`
}

type SendAgreementOutput struct {
	Success bool      `json:"success"`
	SentAt  time.Time `json:"sentAt"`
}

type SendAgreementUseCase struct {
	Repo    entity.AgreementRepositoryInterface
	Email   EmailService
	BaseURL string
}

func NewSendAgreementUseCase(repo entity.AgreementRepositoryInterface, email EmailService, baseURL string) *SendAgreementUseCase {
	return &SendAgreementUseCase{Repo: repo, Email: email, BaseURL: baseURL}
}

// Execute emails the signing link. The send is synchronous and its failure
// is the caller's failure; the sent timestamp is only recorded after the
// email went out.
func (uc *SendAgreementUseCase) Execute(ctx context.Context, input SendAgreementInput) (*SendAgreementOutput, error) {
	if input.Slug == "" || input.Email == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "slug and email are required"}
	}

	data := AgreementEmailData{
		FirstName:    input.FirstName,
		BusinessName: input.BusinessName,
		AgreementURL: uc.BaseURL + "/agreement/" + input.Slug,
	}
	if err := uc.Email.SendAgreementLink(input.Email, data); err != nil {
		return nil, &DomainError{Code: "EMAIL_FAILED", Message: "failed to send agreement email: " + err.Error()}
	}

	sentAt := time.Now().UTC()
	if err := uc.Repo.SetSentAt(ctx, input.Slug, sentAt); err != nil && !errors.Is(err, entity.ErrAgreementNotFound) {
		// The email is already out; a missing record or write hiccup
		// doesn't take the operation down with it.
		log.Warn().Err(err).Str("slug", input.Slug).Msg("could not record agreementSentAt")
	}

	return &SendAgreementOutput{Success: true, SentAt: sentAt}, nil
}
