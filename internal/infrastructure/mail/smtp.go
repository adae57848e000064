// Package mail sends the contact-form transactional emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"html"

	gomail "gopkg.in/gomail.v2"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

// Config captures the SMTP settings for the contact mailer.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// To is the site owner's address that receives notifications.
	To string
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	cfg    Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg:    cfg,
	}
}

// SendContactNotification mails the submission to the site owner.
func (m *SMTPMailer) SendContactNotification(_ context.Context, msg *domain.ContactMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.cfg.Username)
	mail.SetHeader("To", m.cfg.To)
	mail.SetHeader("Subject", fmt.Sprintf("New Contact Form Submission from %s", msg.Name))
	mail.SetBody("text/html", notificationBody(msg))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

// SendContactAutoReply acknowledges the submitter.
func (m *SMTPMailer) SendContactAutoReply(_ context.Context, msg *domain.ContactMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.cfg.Username)
	mail.SetHeader("To", msg.Email)
	mail.SetHeader("Subject", "Thank you for getting in touch")
	mail.SetBody("text/html", autoReplyBody(msg))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send contact auto-reply: %w", err)
	}
	return nil
}

func notificationBody(msg *domain.ContactMessage) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Date:</strong> %s</p>
  <h3>Message:</h3>
  <p>%s</p>
  <p style="color: #666;">This message was sent from your portfolio contact form.</p>
</div>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		msg.CreatedAt.Format("Jan 2, 2006 15:04 MST"),
		html.EscapeString(msg.Message),
	)
}

func autoReplyBody(msg *domain.ContactMessage) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Thank You for Your Message!</h2>
  <p>Hi %s,</p>
  <p>Thank you for reaching out through my portfolio website. I've received your
  message and will get back to you as soon as possible.</p>
  <p>Best regards,<br>Dhiraj Pandit</p>
  <p style="color: #666; font-size: 14px;">This is an automated response. Please do not reply to this email.</p>
</div>`,
		html.EscapeString(msg.Name),
	)
}
