package ports

import (
	"context"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

type ContactService interface {
	// Submit persists the message and then sends the notification emails
	// best-effort: a mail failure is logged, never surfaced to the caller.
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error)
}
