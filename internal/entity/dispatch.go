package entity

// DispatchRequest is the body accepted by the relay. To is kept for wire
// compatibility with older clients; the relay never sends to it.
type DispatchRequest struct {
	To                string             `json:"to,omitempty"`
	Subject           string             `json:"subject" validate:"required"`
	HTML              string             `json:"html,omitempty" validate:"required_without=Text"`
	Text              string             `json:"text,omitempty" validate:"required_without=HTML"`
	ReplyTo           string             `json:"replyTo,omitempty"`
	SendConfirmation  bool               `json:"sendConfirmation"`
	ConfirmationEmail *ConfirmationEmail `json:"confirmationEmail,omitempty" validate:"-"`
}

// ConfirmationEmail is the acknowledgment sent back to the submitter.
type ConfirmationEmail struct {
	To      string `json:"to" validate:"required,loose_email"`
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html,omitempty" validate:"required_without=Text"`
	Text    string `json:"text,omitempty" validate:"required_without=HTML"`
}

// DispatchResult is the relay response. Error is set only when Success is
// false.
type DispatchResult struct {
	Success          bool   `json:"success"`
	Error            string `json:"error,omitempty"`
	ConfirmationSent bool   `json:"confirmationSent"`
}

// Message is a single outgoing mail as handed to the SMTP session.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}
