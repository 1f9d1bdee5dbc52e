package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/construction-sites/crm/internal/entity"
)

// Claims carried in the session token.
type Claims struct {
	OperatorID string      `json:"operator_id"`
	Role       entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService verifies operator credentials and issues session tokens.
// Passwords are stored as bcrypt hashes; there is no plaintext table.
type AuthService struct {
	Operators entity.OperatorRepositoryInterface
	Secret    []byte
	TokenTTL  time.Duration
	Issuer    string
}

func NewAuthService(operators entity.OperatorRepositoryInterface, secret string, ttl time.Duration, issuer string) *AuthService {
	return &AuthService{
		Operators: operators,
		Secret:    []byte(secret),
		TokenTTL:  ttl,
		Issuer:    issuer,
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login checks the credential and returns a signed token plus the operator.
// Unknown id and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, id, password string) (string, *entity.Operator, error) {
	op, err := s.Operators.FindByID(ctx, id)
	if err != nil {
		return "", nil, entity.ErrInvalidCredentials
	}
	if !CheckPassword(password, op.PasswordHash) {
		return "", nil, entity.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(op)
	if err != nil {
		return "", nil, err
	}
	return token, op, nil
}

func (s *AuthService) GenerateToken(op *entity.Operator) (string, error) {
	now := time.Now()
	claims := &Claims{
		OperatorID: op.ID,
		Role:       op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
