package entity

import (
	"context"
	"errors"
)

var (
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Role string

const (
	RoleUser  Role = "user"  // scoped to their own lead collection
	RoleAdmin Role = "admin" // cross-collection read, no collection of their own
)

// Operator is a named salesperson (or the admin) who can sign in to the CRM.
type Operator struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}

type OperatorRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*Operator, error)

	// ListUsers returns every user-role operator, i.e. everyone who owns
	// a lead collection. The admin is excluded.
	ListUsers(ctx context.Context) ([]*Operator, error)

	Create(ctx context.Context, op *Operator) error
}
