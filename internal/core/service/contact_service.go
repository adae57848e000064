package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhiraj-pandit/portfolio-api/internal/api/metrics"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

// ContactService persists contact submissions and sends notification emails
// as a best-effort side effect: once the message is stored, the submission
// has succeeded no matter what the mail transport does.
type ContactService struct {
	repo   ports.ContactRepository
	mailer ports.Mailer
	log    zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, mailer ports.Mailer, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, mailer: mailer, log: log}
}

func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactMessage, error) {
	created, err := s.repo.Create(ctx, &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.ContactMessagesTotal.Inc()

	if err := s.mailer.SendContactNotification(ctx, created); err != nil {
		metrics.ContactEmailFailuresTotal.WithLabelValues("notification").Inc()
		s.log.Error().Err(err).Str("contact_id", created.ID).Msg("contact notification email failed")
	}
	if err := s.mailer.SendContactAutoReply(ctx, created); err != nil {
		metrics.ContactEmailFailuresTotal.WithLabelValues("auto_reply").Inc()
		s.log.Error().Err(err).Str("contact_id", created.ID).Msg("contact auto-reply email failed")
	}

	return created, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.MarkRead(ctx, id)
}
