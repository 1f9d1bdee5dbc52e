package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func relayFixture() (*MockEmailService, *MockEnquiryLogger, *RelayEnquiryUseCase) {
	email := new(MockEmailService)
	logger := new(MockEnquiryLogger)
	clients := map[string]SiteClient{
		"demo-builders": {Name: "Demo Builders", Email: "enquiries@demobuilders.example.co.uk"},
	}
	return email, logger, NewRelayEnquiryUseCase(clients, email, logger)
}

func TestRelayEnquiry_HappyPath(t *testing.T) {
	email, logger, uc := relayFixture()

	email.On("SendEnquiry", "enquiries@demobuilders.example.co.uk", "dave@example.com", mock.MatchedBy(func(data EnquiryEmailData) bool {
		return data.FullName == "Dave Kershaw" && data.Service == "Extensions" && data.ClientName == "Demo Builders"
	})).Return(nil)
	logger.On("Append", mock.Anything, mock.MatchedBy(func(entry EnquiryLogEntry) bool {
		return entry.SiteID == "demo-builders" && entry.Service == "Extensions"
	})).Return(nil)

	err := uc.Execute(context.Background(), RelayEnquiryInput{
		SiteID:    "demo-builders",
		FirstName: "Dave",
		LastName:  "Kershaw",
		Email:     "dave@example.com",
		Phone:     "07700 900123",
		Service:   "Extensions",
		Message:   "Looking for a quote",
	})

	assert.NoError(t, err)
	email.AssertExpectations(t)
	logger.AssertExpectations(t)
}

func TestRelayEnquiry_HoneypotSucceedsSilently(t *testing.T) {
	email, logger, uc := relayFixture()

	err := uc.Execute(context.Background(), RelayEnquiryInput{
		SiteID:   "demo-builders",
		Email:    "bot@example.com",
		Honeypot: "I am a bot",
	})

	assert.NoError(t, err)
	email.AssertNotCalled(t, "SendEnquiry", mock.Anything, mock.Anything, mock.Anything)
	logger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestRelayEnquiry_UnknownSite(t *testing.T) {
	email, _, uc := relayFixture()

	err := uc.Execute(context.Background(), RelayEnquiryInput{
		SiteID: "not-a-client",
		Email:  "dave@example.com",
	})

	assert.ErrorIs(t, err, ErrUnknownSite)
	email.AssertNotCalled(t, "SendEnquiry", mock.Anything, mock.Anything, mock.Anything)
}

func TestRelayEnquiry_EmailFailureIsTheCallersFailure(t *testing.T) {
	email, logger, uc := relayFixture()

	email.On("SendEnquiry", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	err := uc.Execute(context.Background(), RelayEnquiryInput{
		SiteID: "demo-builders",
		Email:  "dave@example.com",
	})

	assert.ErrorIs(t, err, ErrEmailFailed)
	logger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestRelayEnquiry_LogFailureDoesNotFailSubmission(t *testing.T) {
	email, logger, uc := relayFixture()

	email.On("SendEnquiry", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	logger.On("Append", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	err := uc.Execute(context.Background(), RelayEnquiryInput{
		SiteID: "demo-builders",
		Email:  "dave@example.com",
	})

	assert.NoError(t, err)
}

func TestRelayEnquiry_DefaultService(t *testing.T) {
	email, logger, uc := relayFixture()

	email.On("SendEnquiry", mock.Anything, mock.Anything, mock.MatchedBy(func(data EnquiryEmailData) bool {
		return data.Service == "General Enquiry"
	})).Return(nil)
	logger.On("Append", mock.Anything, mock.Anything).Return(nil)

	err := uc.Execute(context.Background(), RelayEnquiryInput{
		SiteID: "demo-builders",
		Email:  "dave@example.com",
	})

	assert.NoError(t, err)
	email.AssertExpectations(t)
}
