package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nxtgenhub/lead-relay/internal/entity"
	"github.com/nxtgenhub/lead-relay/internal/infra/queue"
	"github.com/nxtgenhub/lead-relay/internal/logger"
)

func NewRelayEmailUseCase(
	transport MailTransport,
	events EventPublisher,
	sender string,
	recipient string,
) *RelayEmailUseCase {
	if recipient == "" {
		recipient = sender
	}
	return &RelayEmailUseCase{
		Transport: transport,
		Events:    events,
		Sender:    sender,
		Recipient: recipient,
	}
}

// Execute relays one request: validate, open the SMTP session, send the
// primary notification, then the optional confirmation on the same session.
// Only the primary send can fail the call.
func (uc *RelayEmailUseCase) Execute(ctx context.Context, input entity.DispatchRequest) (*RelayEmailOutput, error) {
	if err := ValidateDispatchRequest(input); err != nil {
		logger.Log.Debug("rejected dispatch request", "fields", FormatValidationErrors(err))
		return nil, ErrMissingFields
	}

	out := &RelayEmailOutput{RelayID: uuid.NewString()}
	log := logger.Log.With("relay_id", out.RelayID)

	session, err := uc.Transport.Open(ctx)
	if err != nil {
		log.Error("smtp connection failed", "error", err)
		return nil, &TechnicalError{Code: CodeSMTPConnection, Message: err.Error(), Err: err}
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn("smtp session close failed", "error", err)
		}
	}()
	log.Debug("smtp connection verified")

	replyTo := input.ReplyTo
	if replyTo == "" {
		replyTo = uc.Sender
	}

	primary := entity.Message{
		From:    uc.Sender,
		To:      uc.Recipient,
		ReplyTo: replyTo,
		Subject: input.Subject,
		HTML:    input.HTML,
		Text:    input.Text,
	}
	if err := session.Send(primary); err != nil {
		log.Error("primary email failed", "error", err)
		return nil, &TechnicalError{Code: CodeSMTPSend, Message: err.Error(), Err: err}
	}
	log.Info("primary email sent", "subject", input.Subject)

	if input.SendConfirmation && input.ConfirmationEmail != nil {
		out.ConfirmationRequested = true
		if err := uc.sendConfirmation(session, *input.ConfirmationEmail); err != nil {
			log.Warn("confirmation email failed", "error", err)
		} else {
			out.ConfirmationSent = true
			log.Info("confirmation email sent")
		}
	}

	uc.publish(ctx, out, input, replyTo)
	return out, nil
}

func (uc *RelayEmailUseCase) sendConfirmation(session MailSession, c entity.ConfirmationEmail) error {
	if err := ValidateConfirmation(c); err != nil {
		return err
	}
	return session.Send(entity.Message{
		From:    uc.Sender,
		To:      c.To,
		ReplyTo: uc.Sender,
		Subject: c.Subject,
		HTML:    c.HTML,
		Text:    c.Text,
	})
}

// publish is best effort; the mail is already out.
func (uc *RelayEmailUseCase) publish(ctx context.Context, out *RelayEmailOutput, input entity.DispatchRequest, replyTo string) {
	if uc.Events == nil {
		return
	}

	event := queue.RelayEvent{
		RelayID:          out.RelayID,
		Subject:          input.Subject,
		ReplyTo:          replyTo,
		ConfirmationSent: out.ConfirmationSent,
		RelayedAt:        time.Now().UTC(),
	}
	if err := uc.Events.PublishRelayed(ctx, event); err != nil {
		logger.Log.Warn("relay event not published", "relay_id", out.RelayID, "error", err)
	}
}
