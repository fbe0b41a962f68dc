package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ifa360/ifa360-server/internal/domain/entity"
	"github.com/ifa360/ifa360-server/internal/domain/repository"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	payload, err := json.Marshal(l.Payload)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (id, kind, name, email, mobile, message, payload, source_page)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, l.ID, l.Kind, l.Name, l.Email, l.Mobile, l.Message, payload, l.SourcePage)

	return row.Scan(&l.CreatedAt)
}

func (r *LeadRepository) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	l := &entity.Lead{}
	var payload []byte

	row := r.pool.QueryRow(ctx, `
		SELECT id, kind, name, email, mobile, message, payload, source_page, created_at
		FROM leads
		WHERE id = $1
	`, id)

	if err := row.Scan(&l.ID, &l.Kind, &l.Name, &l.Email, &l.Mobile, &l.Message,
		&payload, &l.SourcePage, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &l.Payload); err != nil {
			return nil, err
		}
	}

	return l, nil
}

func (r *LeadRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, kind, name, email, mobile, message, payload, source_page, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Lead
	for rows.Next() {
		l := &entity.Lead{}
		var payload []byte
		if err := rows.Scan(&l.ID, &l.Kind, &l.Name, &l.Email, &l.Mobile, &l.Message,
			&payload, &l.SourcePage, &l.CreatedAt); err != nil {
			return nil, err
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &l.Payload); err != nil {
				return nil, err
			}
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

var _ repository.LeadRepository = (*LeadRepository)(nil)
