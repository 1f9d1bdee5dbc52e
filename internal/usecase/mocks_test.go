package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/infra/queue"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Lead, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Lead, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockAgreementRepository struct {
	mock.Mock
}

func (m *MockAgreementRepository) Upsert(ctx context.Context, a *entity.Agreement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgreementRepository) FindBySlug(ctx context.Context, slug string) (*entity.Agreement, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Agreement), args.Error(1)
}

func (m *MockAgreementRepository) Update(ctx context.Context, a *entity.Agreement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgreementRepository) SetSentAt(ctx context.Context, slug string, at time.Time) error {
	args := m.Called(ctx, slug, at)
	return args.Error(0)
}

func (m *MockAgreementRepository) SetNotifyStatus(ctx context.Context, slug string, status entity.NotifyStatus) error {
	args := m.Called(ctx, slug, status)
	return args.Error(0)
}

type MockOperatorRepository struct {
	mock.Mock
}

func (m *MockOperatorRepository) FindByID(ctx context.Context, id string) (*entity.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Operator), args.Error(1)
}

func (m *MockOperatorRepository) ListUsers(ctx context.Context) ([]*entity.Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Operator), args.Error(1)
}

func (m *MockOperatorRepository) Create(ctx context.Context, op *entity.Operator) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEnquiry(to, replyTo string, data EnquiryEmailData) error {
	args := m.Called(to, replyTo, data)
	return args.Error(0)
}

func (m *MockEmailService) SendAgreementLink(to string, data AgreementEmailData) error {
	args := m.Called(to, data)
	return args.Error(0)
}

type MockEnquiryLogger struct {
	mock.Mock
}

func (m *MockEnquiryLogger) Append(ctx context.Context, entry EnquiryLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockMockupChecker struct {
	mock.Mock
}

func (m *MockMockupChecker) Exists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}
