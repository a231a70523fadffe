package rpc

import (
	"context"

	"go.uber.org/zap"

	"viewify/internal/email"
)

// Mailgun sandbox domains only deliver to their authorized recipient, so
// the welcome message is pinned to it for now.
// TODO: substitute input.To and input.FirstName into the message once a
// verified sending domain replaces the sandbox.
const (
	welcomeFrom    = "Mailgun Sandbox <postmaster@sandboxaf84ce9dd9304fb8b65a27070bdb9d39.mailgun.org>"
	welcomeTo      = "Manav Kamdar <mjkamdar04@gmail.com>"
	welcomeSubject = "Hello Manav Kamdar"
	welcomeBody    = "Congratulations Manav Kamdar, you just sent an email with Mailgun! You are truly awesome!"
)

// SendWelcomeInput is validated but not substituted into the message; see
// the sandbox note above.
type SendWelcomeInput struct {
	To        string `json:"to" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,min=1,max=50"`
}

// SendWelcomeResult is what callers see either way: provider failures are
// logged and swallowed, so "queued" cannot be read as "delivered".
type SendWelcomeResult struct {
	Queued bool `json:"queued"`
}

// EmailRouter exposes the transactional email procedure.
func EmailRouter(sender email.Sender, log *zap.Logger) *Router {
	return NewRouter("email",
		NewMutation("sendWelcome", func(ctx context.Context, _ Ctx, input SendWelcomeInput) (SendWelcomeResult, error) {
			id, err := sender.Send(ctx, email.Message{
				From:    welcomeFrom,
				To:      welcomeTo,
				Subject: welcomeSubject,
				Body:    welcomeBody,
			})
			if err != nil {
				log.Error("welcome email send failed",
					zap.String("to", welcomeTo),
					zap.Error(err))
				return SendWelcomeResult{Queued: true}, nil
			}
			log.Info("welcome email sent", zap.String("message_id", id))
			return SendWelcomeResult{Queued: true}, nil
		}),
	)
}
