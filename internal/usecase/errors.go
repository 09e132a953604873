package usecase

import "errors"

const (
	CodeMissingFields  = "MISSING_FIELDS"
	CodeSMTPConnection = "SMTP_CONNECTION"
	CodeSMTPSend       = "SMTP_SEND"
)

// DomainError is a problem with the request itself. The caller can fix it.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure. Message carries the
// underlying cause and is surfaced to the client as-is.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

var ErrMissingFields = &DomainError{
	Code:    CodeMissingFields,
	Message: "Missing required fields",
}
