package repository

import (
	"context"

	"github.com/ifa360/ifa360-server/internal/domain/entity"
)

// LeadRepository defines the interface for lead persistence.
type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Lead, error)
}
