package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/construction-sites/crm/internal/entity"
)

type AgreementRepository struct {
	DB *sql.DB
}

func NewAgreementRepository(db *sql.DB) *AgreementRepository {
	return &AgreementRepository{DB: db}
}

// Upsert creates or refreshes an agreement's details. The signature columns
// are untouched on conflict: once signed is true it stays true.
func (r *AgreementRepository) Upsert(ctx context.Context, a *entity.Agreement) error {
	query := `
		INSERT INTO agreements (slug, client_name, business_name, email, phone, date, monthly_fee, signed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		ON CONFLICT (slug)
		DO UPDATE SET
			client_name = EXCLUDED.client_name,
			business_name = EXCLUDED.business_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			monthly_fee = EXCLUDED.monthly_fee
	`
	_, err := r.DB.ExecContext(ctx, query,
		a.Slug, a.ClientName, a.BusinessName, a.Email, a.Phone, a.Date, a.MonthlyFee,
	)
	return err
}

func (r *AgreementRepository) FindBySlug(ctx context.Context, slug string) (*entity.Agreement, error) {
	query := `
		SELECT slug, client_name, business_name, email, phone, date,
		       monthly_fee, signed, signed_at, signature_data, signed_from_ip,
		       sent_at, notify_status
		FROM agreements WHERE slug = $1
	`
	var (
		a            entity.Agreement
		notifyStatus sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&a.Slug, &a.ClientName, &a.BusinessName, &a.Email, &a.Phone, &a.Date,
		&a.MonthlyFee, &a.Signed, &a.SignedAt, &a.SignatureData, &a.SignedFromIP,
		&a.SentAt, &notifyStatus,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrAgreementNotFound
	}
	if err != nil {
		return nil, err
	}
	a.NotifyStatus = entity.NotifyStatus(notifyStatus.String)
	return &a, nil
}

func (r *AgreementRepository) Update(ctx context.Context, a *entity.Agreement) error {
	query := `
		UPDATE agreements SET
			client_name = $1, business_name = $2, email = $3, phone = $4,
			monthly_fee = $5, signed = $6, signed_at = $7, signature_data = $8,
			signed_from_ip = $9, sent_at = $10, notify_status = $11
		WHERE slug = $12
	`
	res, err := r.DB.ExecContext(ctx, query,
		a.ClientName, a.BusinessName, a.Email, a.Phone, a.MonthlyFee,
		a.Signed, a.SignedAt, a.SignatureData, a.SignedFromIP,
		a.SentAt, nullIfEmpty(string(a.NotifyStatus)), a.Slug,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrAgreementNotFound
	}
	return nil
}

func (r *AgreementRepository) SetSentAt(ctx context.Context, slug string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE agreements SET sent_at = $1 WHERE slug = $2`, at, slug)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrAgreementNotFound
	}
	return nil
}

func (r *AgreementRepository) SetNotifyStatus(ctx context.Context, slug string, status entity.NotifyStatus) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE agreements SET notify_status = $1 WHERE slug = $2`, string(status), slug)
	return err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
