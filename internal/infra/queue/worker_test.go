package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/construction-sites/crm/internal/entity"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendSignedNotification(payload NotificationPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

type MockAgreementRepo struct {
	mock.Mock
}

func (m *MockAgreementRepo) Upsert(ctx context.Context, a *entity.Agreement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgreementRepo) FindBySlug(ctx context.Context, slug string) (*entity.Agreement, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Agreement), args.Error(1)
}

func (m *MockAgreementRepo) Update(ctx context.Context, a *entity.Agreement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgreementRepo) SetSentAt(ctx context.Context, slug string, at time.Time) error {
	args := m.Called(ctx, slug, at)
	return args.Error(0)
}

func (m *MockAgreementRepo) SetNotifyStatus(ctx context.Context, slug string, status entity.NotifyStatus) error {
	args := m.Called(ctx, slug, status)
	return args.Error(0)
}

func signedPayload() NotificationPayload {
	return NotificationPayload{
		Kind:         KindAgreementSigned,
		Slug:         "kershaw-construction",
		BusinessName: "Kershaw Construction",
		ClientName:   "Dave Kershaw",
		MonthlyFee:   100,
		SignedAt:     time.Now().UTC(),
	}
}

func TestWorkerProcess_SendsAndMarksSent(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockAgreementRepo)
	w := &Worker{Mailer: mailer, Agreements: repo}

	payload := signedPayload()
	mailer.On("SendSignedNotification", payload).Return(nil)
	repo.On("SetNotifyStatus", mock.Anything, "kershaw-construction", entity.NotifySent).Return(nil)

	err := w.Process(context.Background(), payload)

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestWorkerProcess_MailerFailurePropagates(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockAgreementRepo)
	w := &Worker{Mailer: mailer, Agreements: repo}

	payload := signedPayload()
	mailer.On("SendSignedNotification", payload).Return(errors.New("smtp down"))

	err := w.Process(context.Background(), payload)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "SetNotifyStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkerProcess_UnknownKindDropped(t *testing.T) {
	mailer := new(MockMailer)
	repo := new(MockAgreementRepo)
	w := &Worker{Mailer: mailer, Agreements: repo}

	err := w.Process(context.Background(), NotificationPayload{Kind: "something-else"})

	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "SendSignedNotification", mock.Anything)
}
