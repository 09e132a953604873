package usecase

import (
	"context"

	"github.com/nxtgenhub/lead-relay/internal/entity"
	"github.com/nxtgenhub/lead-relay/internal/infra/queue"
)

// MailTransport opens an authenticated SMTP session. A successful Open
// doubles as connection verification.
type MailTransport interface {
	Open(ctx context.Context) (MailSession, error)
}

type MailSession interface {
	Send(msg entity.Message) error
	Close() error
}

type EventPublisher interface {
	PublishRelayed(ctx context.Context, event queue.RelayEvent) error
}

type RelayEmailOutput struct {
	RelayID               string
	ConfirmationRequested bool
	ConfirmationSent      bool
}

type RelayEmailUseCase struct {
	Transport MailTransport
	Events    EventPublisher
	Sender    string
	Recipient string
}
