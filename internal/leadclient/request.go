package leadclient

import (
	"fmt"
	"strings"

	"github.com/nxtgenhub/lead-relay/internal/entity"
)

// Confirms reports whether kind sends an acknowledgment to the submitter.
// The short contact form only notifies the business inbox.
func (k Kind) Confirms() bool {
	return k == KindExpert || k == KindOnboarding
}

// BuildRequest renders the notification for the business inbox and, when
// the submitter's address is valid, the confirmation sent back to them.
// The request carries no destination; the relay decides where it goes.
func BuildRequest(kind Kind, f Fields, brand Brand) (entity.DispatchRequest, error) {
	if !kind.Valid() {
		return entity.DispatchRequest{}, fmt.Errorf("unknown form type %q", kind)
	}
	brand = brand.WithDefaults()
	f = trimFields(f)
	view := mailView{Kind: kind, Fields: f, Brand: brand}

	body, err := render("notification", view)
	if err != nil {
		return entity.DispatchRequest{}, err
	}

	req := entity.DispatchRequest{
		Subject: notificationSubject(kind, f.Name),
		HTML:    body.HTML,
		Text:    body.Text,
		ReplyTo: f.Email,
	}

	if !kind.Confirms() || !IsValidEmail(f.Email) {
		return req, nil
	}

	confirm, err := render("confirmation", view)
	if err != nil {
		return entity.DispatchRequest{}, err
	}
	req.SendConfirmation = true
	req.ConfirmationEmail = &entity.ConfirmationEmail{
		To:      f.Email,
		Subject: confirmationSubject(kind, brand),
		HTML:    confirm.HTML,
		Text:    confirm.Text,
	}
	return req, nil
}

// trimFields drops surrounding blanks from the one-line fields. Free text is
// kept as typed apart from outer whitespace.
func trimFields(f Fields) Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Company = strings.TrimSpace(f.Company)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Role = strings.TrimSpace(f.Role)
	f.Timeline = strings.TrimSpace(f.Timeline)
	f.Message = strings.TrimSpace(f.Message)
	f.Challenges = strings.TrimSpace(f.Challenges)
	return f
}
