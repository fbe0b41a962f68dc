package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ifa360/ifa360-server/internal/domain/entity"
	repo "github.com/ifa360/ifa360-server/internal/domain/repository"
	"github.com/ifa360/ifa360-server/pkg/helpers"
	"github.com/ifa360/ifa360-server/pkg/mailer"
)

var ErrUnknownLeadKind = errors.New("unknown lead kind")

// LeadService persists captured leads and enqueues notification jobs
// for the advisory team.
type LeadService struct {
	Repo   repo.LeadRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewLeadService(repo repo.LeadRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *LeadService {
	return &LeadService{Repo: repo, Pub: pub, Logger: logger}
}

func validKind(kind string) bool {
	switch kind {
	case entity.LeadContact, entity.LeadRegister, entity.LeadQuoteRequest, entity.LeadPortfolioInterest:
		return true
	}
	return false
}

// Capture stores the lead and publishes a notification job. The lead is
// accepted once stored; a publish failure is logged and the job is
// dropped rather than failing the request.
func (s *LeadService) Capture(ctx context.Context, l *entity.Lead) error {
	if !validKind(l.Kind) {
		return ErrUnknownLeadKind
	}
	l.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, l); err != nil {
		return err
	}

	if s.Pub != nil {
		job := mailer.LeadJob{
			LeadID:     l.ID,
			Kind:       l.Kind,
			Name:       l.Name,
			Email:      l.Email,
			Mobile:     l.Mobile,
			Message:    l.Message,
			Payload:    l.Payload,
			SourcePage: l.SourcePage,
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil {
			s.Logger.WithFields(logrus.Fields{"lead_id": l.ID, "error": err.Error()}).
				Error("lead notification enqueue failed")
		}
	}
	return nil
}

// Recent returns the latest captured leads, newest first.
func (s *LeadService) Recent(ctx context.Context, limit int) ([]*entity.Lead, error) {
	return s.Repo.ListRecent(ctx, limit)
}
