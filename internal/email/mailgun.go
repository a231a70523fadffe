package email

import (
	"context"

	"github.com/mailgun/mailgun-go/v4"
)

// Message is a single transactional email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers one message and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// MailgunSender sends through the Mailgun messages API.
type MailgunSender struct {
	mg *mailgun.MailgunImpl
}

// NewMailgunSender creates a sender for the given Mailgun domain.
func NewMailgunSender(domain, apiKey string) *MailgunSender {
	return &MailgunSender{mg: mailgun.NewMailgun(domain, apiKey)}
}

// Send delivers the message. Errors are returned as-is; retry policy is the
// caller's concern.
func (s *MailgunSender) Send(ctx context.Context, msg Message) (string, error) {
	m := s.mg.NewMessage(msg.From, msg.Subject, msg.Body, msg.To)
	_, id, err := s.mg.Send(ctx, m)
	return id, err
}
