package database

import (
	"context"
	"database/sql"

	"github.com/construction-sites/crm/internal/entity"
)

type OperatorRepository struct {
	DB *sql.DB
}

func NewOperatorRepository(db *sql.DB) *OperatorRepository {
	return &OperatorRepository{DB: db}
}

func (r *OperatorRepository) FindByID(ctx context.Context, id string) (*entity.Operator, error) {
	var op entity.Operator
	var role string
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, label, role, password_hash FROM operators WHERE id = $1`, id,
	).Scan(&op.ID, &op.Label, &role, &op.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, entity.ErrOperatorNotFound
	}
	if err != nil {
		return nil, err
	}
	op.Role = entity.Role(role)
	return &op, nil
}

func (r *OperatorRepository) ListUsers(ctx context.Context) ([]*entity.Operator, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, label, role, password_hash FROM operators WHERE role = 'user' ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []*entity.Operator
	for rows.Next() {
		var op entity.Operator
		var role string
		if err := rows.Scan(&op.ID, &op.Label, &role, &op.PasswordHash); err != nil {
			return nil, err
		}
		op.Role = entity.Role(role)
		ops = append(ops, &op)
	}
	return ops, rows.Err()
}

func (r *OperatorRepository) Create(ctx context.Context, op *entity.Operator) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO operators (id, label, role, password_hash) VALUES ($1, $2, $3, $4)`,
		op.ID, op.Label, string(op.Role), op.PasswordHash,
	)
	return err
}
