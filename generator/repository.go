package generator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"

	"github.com/alovak/sepaqr/generator/models"
)

var (
	ErrNotFound = fmt.Errorf("not found")
	ErrConflict = fmt.Errorf("conflict")
)

// Repository stores generated payloads. With a nil db it keeps everything
// in memory behind a mutex (tests, demos); otherwise it reads and writes
// the generator.payloads table (see schema.sql).
type Repository struct {
	mu       sync.RWMutex
	payloads []*models.Payload

	db *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		payloads: make([]*models.Payload, 0),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePayload(ctx context.Context, p *models.Payload) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		for _, existing := range r.payloads {
			if existing.ID == p.ID {
				return fmt.Errorf("payload id exists: %w", ErrConflict)
			}
		}
		r.payloads = append(r.payloads, p)
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO generator.payloads(payload_id, version, character_set, identification,
                                       bic, beneficiary, iban, amount, purpose,
                                       remittance_reference, remittance_text, information,
                                       payload_text, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
    `, p.ID, p.Version, p.CharacterSet, p.Identification,
		p.BIC, p.Beneficiary, p.IBAN, p.Amount, p.Purpose,
		p.RemittanceReference, p.RemittanceText, p.Information,
		p.Text, p.CreatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *Repository) GetPayload(ctx context.Context, payloadID string) (*models.Payload, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		for _, p := range r.payloads {
			if p.ID == payloadID {
				return p, nil
			}
		}
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
        SELECT payload_id, version, character_set, identification,
               bic, beneficiary, iban, amount, purpose,
               remittance_reference, remittance_text, information,
               payload_text, created_at
          FROM generator.payloads WHERE payload_id=$1
    `, payloadID)
	p, err := scanPayload(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListPayloads returns all stored payloads, newest first.
func (r *Repository) ListPayloads(ctx context.Context) ([]*models.Payload, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		out := make([]*models.Payload, 0, len(r.payloads))
		for i := len(r.payloads) - 1; i >= 0; i-- {
			out = append(out, r.payloads[i])
		}
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT payload_id, version, character_set, identification,
               bic, beneficiary, iban, amount, purpose,
               remittance_reference, remittance_text, information,
               payload_text, created_at
          FROM generator.payloads ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Payload
	for rows.Next() {
		p, err := scanPayload(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Ping returns DB readiness; a memory repository is always ready.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayload(row rowScanner) (*models.Payload, error) {
	var p models.Payload
	err := row.Scan(&p.ID, &p.Version, &p.CharacterSet, &p.Identification,
		&p.BIC, &p.Beneficiary, &p.IBAN, &p.Amount, &p.Purpose,
		&p.RemittanceReference, &p.RemittanceText, &p.Information,
		&p.Text, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}
