package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/construction-sites/crm/internal/entity"
)

// LeadRepository stores one row per lead, keyed by (owner_id, id), with an
// integer version column for conditional writes. This replaces the old
// whole-collection blob model; concurrent updates to different leads of the
// same owner no longer clobber each other.
type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, owner_id, business_name, contact_name, phone, email, trade, website,
	source, status, date_added, notes, monthly_fee, mockup_links,
	agreement_slug, agreement_status, agreement_sent_at, gocardless_link,
	callback_date, callback_note, callback_count, status_history, version
`

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	links, history, err := marshalLeadJSON(lead)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`
	_, err = r.DB.ExecContext(ctx, query,
		lead.ID, lead.OwnerID, lead.BusinessName, lead.ContactName, lead.Phone,
		lead.Email, lead.Trade, lead.Website, lead.Source, string(lead.Status),
		lead.DateAdded, lead.Notes, lead.MonthlyFee, links,
		lead.AgreementSlug, string(lead.AgreementStatus), lead.AgreementSentAt,
		lead.GocardlessLink, lead.CallbackDate, lead.CallbackNote,
		lead.CallbackCount, history, lead.Version,
	)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE owner_id = $1 AND id = $2`
	row := r.DB.QueryRowContext(ctx, query, ownerID, id)

	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE owner_id = $1 ORDER BY date_added`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// Update writes the row only if nobody else bumped the version since we read
// it. The caller re-reads and retries on conflict.
func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	links, history, err := marshalLeadJSON(lead)
	if err != nil {
		return err
	}

	query := `
		UPDATE leads SET
			business_name = $1, contact_name = $2, phone = $3, email = $4,
			trade = $5, website = $6, source = $7, status = $8, notes = $9,
			monthly_fee = $10, mockup_links = $11, agreement_slug = $12,
			agreement_status = $13, agreement_sent_at = $14,
			gocardless_link = $15, callback_date = $16, callback_note = $17,
			callback_count = $18, status_history = $19, version = version + 1
		WHERE owner_id = $20 AND id = $21 AND version = $22
	`
	res, err := r.DB.ExecContext(ctx, query,
		lead.BusinessName, lead.ContactName, lead.Phone, lead.Email,
		lead.Trade, lead.Website, lead.Source, string(lead.Status), lead.Notes,
		lead.MonthlyFee, links, lead.AgreementSlug,
		string(lead.AgreementStatus), lead.AgreementSentAt,
		lead.GocardlessLink, lead.CallbackDate, lead.CallbackNote,
		lead.CallbackCount, history,
		lead.OwnerID, lead.ID, lead.Version,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrVersionConflict
	}
	lead.Version++
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, ownerID, id string) error {
	// Deliberately no existence check: deleting a missing row is success.
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE owner_id = $1 AND id = $2`, ownerID, id)
	return err
}

// CountCallbacksDue is used by the monitoring worker, not the API.
func (r *LeadRepository) CountCallbacksDue(ctx context.Context, today string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE status = 'callback' AND callback_date <> '' AND callback_date <= $1`,
		today,
	).Scan(&n)
	return n, err
}

func marshalLeadJSON(lead *entity.Lead) ([]byte, []byte, error) {
	links, err := json.Marshal(lead.MockupLinks)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal mockup links: %w", err)
	}
	history, err := json.Marshal(lead.StatusHistory)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal status history: %w", err)
	}
	return links, history, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead    entity.Lead
		status  string
		agState string
		links   []byte
		history []byte
	)

	err := row.Scan(
		&lead.ID, &lead.OwnerID, &lead.BusinessName, &lead.ContactName,
		&lead.Phone, &lead.Email, &lead.Trade, &lead.Website, &lead.Source,
		&status, &lead.DateAdded, &lead.Notes, &lead.MonthlyFee, &links,
		&lead.AgreementSlug, &agState, &lead.AgreementSentAt,
		&lead.GocardlessLink, &lead.CallbackDate, &lead.CallbackNote,
		&lead.CallbackCount, &history, &lead.Version,
	)
	if err != nil {
		return nil, err
	}

	lead.Status = entity.Status(status)
	lead.AgreementStatus = entity.AgreementState(agState)
	if err := json.Unmarshal(links, &lead.MockupLinks); err != nil {
		return nil, fmt.Errorf("corrupt mockup_links for lead %s: %w", lead.ID, err)
	}
	if err := json.Unmarshal(history, &lead.StatusHistory); err != nil {
		return nil, fmt.Errorf("corrupt status_history for lead %s: %w", lead.ID, err)
	}
	return &lead, nil
}
