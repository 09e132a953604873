package entity

import "regexp"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail is the loose local@domain.tld check. The forms use it to
// decide whether to ask for a confirmation and the relay uses it to decide
// whether to send one, so both sides must agree.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
