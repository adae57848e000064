package ports

import (
	"context"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

// Mailer sends the transactional emails triggered by a contact submission.
type Mailer interface {
	// SendContactNotification mails the submission to the site owner.
	SendContactNotification(ctx context.Context, m *domain.ContactMessage) error
	// SendContactAutoReply acknowledges the submitter.
	SendContactAutoReply(ctx context.Context, m *domain.ContactMessage) error
}
