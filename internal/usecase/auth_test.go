package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/construction-sites/crm/internal/entity"
)

func authFixture(t *testing.T) (*MockOperatorRepository, *AuthService, *entity.Operator) {
	t.Helper()

	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)

	op := &entity.Operator{
		ID:           "patrick",
		Label:        "Patrick",
		Role:         entity.RoleAdmin,
		PasswordHash: hash,
	}

	repo := new(MockOperatorRepository)
	return repo, NewAuthService(repo, "test-secret", time.Hour, "crm-test"), op
}

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("hunter3", hash))
}

func TestLogin_IssuesValidToken(t *testing.T) {
	repo, svc, op := authFixture(t)
	repo.On("FindByID", mock.Anything, "patrick").Return(op, nil)

	token, loggedIn, err := svc.Login(context.Background(), "patrick", "correct horse battery staple")

	assert.NoError(t, err)
	assert.Equal(t, "patrick", loggedIn.ID)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "patrick", claims.OperatorID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo, svc, op := authFixture(t)
	repo.On("FindByID", mock.Anything, "patrick").Return(op, nil)

	_, _, err := svc.Login(context.Background(), "patrick", "wrong")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	repo, svc, _ := authFixture(t)
	repo.On("FindByID", mock.Anything, "nobody").Return(nil, entity.ErrOperatorNotFound)

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestValidateToken_RejectsForeignSecret(t *testing.T) {
	repo, svc, op := authFixture(t)
	repo.On("FindByID", mock.Anything, "patrick").Return(op, nil)

	other := NewAuthService(repo, "different-secret", time.Hour, "crm-test")
	token, err := other.GenerateToken(op)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	repo, _, op := authFixture(t)

	expired := NewAuthService(repo, "test-secret", -time.Minute, "crm-test")
	token, err := expired.GenerateToken(op)
	assert.NoError(t, err)

	fresh := NewAuthService(repo, "test-secret", time.Hour, "crm-test")
	_, err = fresh.ValidateToken(token)
	assert.Error(t, err)
}
