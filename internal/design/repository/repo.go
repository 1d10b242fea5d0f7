// Package repository persists designs in Postgres. The questionnaire,
// architecture and preferences travel as JSONB snapshots; Replace swaps all
// three in one transaction so readers never observe a partial regeneration.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archfind/arch-backend/internal/design/domain"
)

const publicIDPrefix = "archfind"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Create inserts a new design for the user, generating a public id. Retries on
// a public id collision (unique violation 23505).
func (r *Repo) Create(ctx context.Context, userID string, d *domain.Design) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id required")
	}
	if d == nil || strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("design name required")
	}

	qJSON, aJSON, pJSON, err := marshalSnapshots(d)
	if err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		publicID, err := domain.NewPublicID(publicIDPrefix)
		if err != nil {
			return err
		}

		const q = `
insert into designs (public_id, user_id, name, questionnaire, architecture, preferences)
values ($1, $2, $3, $4, $5, $6)
returning public_id, created_at, updated_at;
`
		err = r.db.QueryRow(ctx, q, publicID, userID, d.Name, qJSON, aJSON, pJSON).
			Scan(&d.PublicID, &d.CreatedAt, &d.UpdatedAt)
		if err == nil {
			return nil
		}

		// unique violation on public_id → retry
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return err
	}

	return fmt.Errorf("failed to generate unique design id")
}

// Get loads the full design. Missing or soft-deleted rows surface as
// domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID, publicID string) (*domain.Design, error) {
	const q = `
select public_id, name, questionnaire, architecture, preferences, created_at, updated_at
from designs
where user_id = $1 and public_id = $2 and deleted_at is null;
`
	var (
		d                   domain.Design
		qJSON, aJSON, pJSON []byte
	)
	err := r.db.QueryRow(ctx, q, userID, publicID).
		Scan(&d.PublicID, &d.Name, &qJSON, &aJSON, &pJSON, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := unmarshalSnapshots(&d, qJSON, aJSON, pJSON); err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns summaries of the user's non-deleted designs, newest first.
func (r *Repo) List(ctx context.Context, userID string) ([]domain.DesignSummary, error) {
	const q = `
select public_id, name, coalesce(architecture->'cost'->>'range', ''), created_at, updated_at
from designs
where user_id = $1 and deleted_at is null
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.DesignSummary, 0, 16)
	for rows.Next() {
		var s domain.DesignSummary
		if err := rows.Scan(&s.PublicID, &s.Name, &s.CostRange, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Replace swaps the stored snapshots atomically. The row is locked for the
// duration of the transaction, so a concurrent reader sees either the old
// design or the new one, never a mix.
func (r *Repo) Replace(ctx context.Context, userID string, d *domain.Design) error {
	qJSON, aJSON, pJSON, err := marshalSnapshots(d)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existing string
	err = tx.QueryRow(ctx, `
select public_id
from designs
where user_id = $1 and public_id = $2 and deleted_at is null
for update;
`, userID, d.PublicID).Scan(&existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var updatedAt time.Time
	err = tx.QueryRow(ctx, `
update designs
set name = $3, questionnaire = $4, architecture = $5, preferences = $6, updated_at = now()
where user_id = $1 and public_id = $2
returning updated_at;
`, userID, d.PublicID, d.Name, qJSON, aJSON, pJSON).Scan(&updatedAt)
	if err != nil {
		return err
	}
	d.UpdatedAt = updatedAt

	return tx.Commit(ctx)
}

// SoftDelete marks the design deleted; reports whether a row was affected.
func (r *Repo) SoftDelete(ctx context.Context, userID, publicID string) (bool, error) {
	const q = `
update designs
set deleted_at = now(), updated_at = now()
where user_id = $1 and public_id = $2 and deleted_at is null;
`
	ct, err := r.db.Exec(ctx, q, userID, publicID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func marshalSnapshots(d *domain.Design) (qJSON, aJSON, pJSON []byte, err error) {
	if qJSON, err = json.Marshal(d.Questionnaire); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal questionnaire: %w", err)
	}
	if aJSON, err = json.Marshal(d.Architecture); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal architecture: %w", err)
	}
	prefs := d.Preferences
	if prefs == nil {
		prefs = domain.UserPreferences{}
	}
	if pJSON, err = json.Marshal(prefs); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal preferences: %w", err)
	}
	return qJSON, aJSON, pJSON, nil
}

func unmarshalSnapshots(d *domain.Design, qJSON, aJSON, pJSON []byte) error {
	if err := json.Unmarshal(qJSON, &d.Questionnaire); err != nil {
		return fmt.Errorf("unmarshal questionnaire: %w", err)
	}
	if err := json.Unmarshal(aJSON, &d.Architecture); err != nil {
		return fmt.Errorf("unmarshal architecture: %w", err)
	}
	if err := json.Unmarshal(pJSON, &d.Preferences); err != nil {
		return fmt.Errorf("unmarshal preferences: %w", err)
	}
	return nil
}
