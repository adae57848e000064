package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type stubContactRepo struct {
	messages []*domain.ContactMessage
	nextID   int
}

func (r *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.nextID++
	copy := *m
	copy.ID = fmt.Sprintf("msg-%d", r.nextID)
	r.messages = append(r.messages, &copy)
	out := copy
	return &out, nil
}

func (r *stubContactRepo) List(context.Context) ([]domain.ContactMessage, error) {
	out := make([]domain.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubContactRepo) MarkRead(_ context.Context, id string) (*domain.ContactMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			m.Read = true
			out := *m
			return &out, nil
		}
	}
	return nil, domain.ErrContactNotFound
}

func (r *stubContactRepo) Count(context.Context) (int64, error) {
	return int64(len(r.messages)), nil
}

func (r *stubContactRepo) CountUnread(context.Context) (int64, error) {
	var n int64
	for _, m := range r.messages {
		if !m.Read {
			n++
		}
	}
	return n, nil
}

type stubMailer struct {
	notifyErr error
	replyErr  error

	notified []string
	replied  []string
}

func (m *stubMailer) SendContactNotification(_ context.Context, msg *domain.ContactMessage) error {
	if m.notifyErr != nil {
		return m.notifyErr
	}
	m.notified = append(m.notified, msg.ID)
	return nil
}

func (m *stubMailer) SendContactAutoReply(_ context.Context, msg *domain.ContactMessage) error {
	if m.replyErr != nil {
		return m.replyErr
	}
	m.replied = append(m.replied, msg.ID)
	return nil
}

func TestContactService_Submit_SendsBothEmails(t *testing.T) {
	repo := &stubContactRepo{}
	mailer := &stubMailer{}
	svc := NewContactService(repo, mailer, zerolog.Nop())

	msg, err := svc.Submit(context.Background(), ports.ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if msg.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if len(mailer.notified) != 1 || mailer.notified[0] != msg.ID {
		t.Fatalf("notification not sent: %v", mailer.notified)
	}
	if len(mailer.replied) != 1 || mailer.replied[0] != msg.ID {
		t.Fatalf("auto-reply not sent: %v", mailer.replied)
	}
}

// Mail transport failures must never surface to the visitor: the message is
// stored first and the submission succeeds regardless.
func TestContactService_Submit_MailFailureIsBestEffort(t *testing.T) {
	repo := &stubContactRepo{}
	mailer := &stubMailer{
		notifyErr: errors.New("smtp down"),
		replyErr:  errors.New("smtp down"),
	}
	svc := NewContactService(repo, mailer, zerolog.Nop())

	msg, err := svc.Submit(context.Background(), ports.ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("Submit returned error despite mail being best-effort: %v", err)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("message not persisted")
	}
	if repo.messages[0].ID != msg.ID {
		t.Fatalf("persisted id mismatch")
	}
}

func TestContactService_MarkRead(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, &stubMailer{}, zerolog.Nop())

	msg, err := svc.Submit(context.Background(), ports.ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hi",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	updated, err := svc.MarkRead(context.Background(), msg.ID)
	if err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if !updated.Read {
		t.Fatalf("message not marked read")
	}

	if _, err := svc.MarkRead(context.Background(), "missing"); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
