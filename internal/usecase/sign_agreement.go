package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/infra/queue"
	"github.com/construction-sites/crm/internal/monitoring"
)

type SignAgreementInput struct {
	Slug          string `json:"slug"`
	SignatureData string `json:"signatureData"`
	IP            string `json:"-"`
}

type SignAgreementOutput struct {
	Success  bool      `json:"success"`
	SignedAt time.Time `json:"signedAt"`
}

type SignAgreementUseCase struct {
	Repo     entity.AgreementRepositoryInterface
	Producer queue.ProducerInterface
}

func NewSignAgreementUseCase(repo entity.AgreementRepositoryInterface, producer queue.ProducerInterface) *SignAgreementUseCase {
	return &SignAgreementUseCase{Repo: repo, Producer: producer}
}

// Execute marks the agreement signed, stamps time and submitting IP, then
// queues the notification email. The durable write comes first; a broker
// hiccup never fails the signing.
//
// Re-signing an already-signed slug currently overwrites the signature
// fields, matching the UI-gated behavior; see DESIGN.md for the open
// question on rejecting it instead.
func (uc *SignAgreementUseCase) Execute(ctx context.Context, input SignAgreementInput) (*SignAgreementOutput, error) {
	if input.Slug == "" || input.SignatureData == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "slug and signatureData are required"}
	}

	agreement, err := uc.Repo.FindBySlug(ctx, input.Slug)
	if err != nil {
		if errors.Is(err, entity.ErrAgreementNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	signedAt := time.Now().UTC()
	agreement.Signed = true
	agreement.SignedAt = &signedAt
	agreement.SignatureData = input.SignatureData
	agreement.SignedFromIP = input.IP
	agreement.NotifyStatus = entity.NotifyPending

	if err := uc.Repo.Update(ctx, agreement); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist signature: " + err.Error()}
	}
	monitoring.RecordAgreementSigned()

	payload := queue.NotificationPayload{
		Kind:         queue.KindAgreementSigned,
		Slug:         agreement.Slug,
		BusinessName: agreement.BusinessName,
		ClientName:   agreement.ClientName,
		MonthlyFee:   agreement.MonthlyFee,
		SignedFromIP: agreement.SignedFromIP,
		SignedAt:     signedAt,
	}
	if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
		// Signed in the store but the notification never made the queue.
		log.Error().Err(err).Str("slug", agreement.Slug).Msg("signed but failed to queue notification")
		if markErr := uc.Repo.SetNotifyStatus(ctx, agreement.Slug, entity.NotifyFailed); markErr != nil {
			log.Error().Err(markErr).Str("slug", agreement.Slug).Msg("failed to mark notify status")
		}
	}

	return &SignAgreementOutput{Success: true, SignedAt: signedAt}, nil
}
