package leadclient

import (
	"strings"
	"unicode/utf8"

	"github.com/nxtgenhub/lead-relay/internal/entity"
)

// IsValidEmail is the loose local@domain.tld check shared by validation and
// the decision to request a confirmation mail.
func IsValidEmail(email string) bool {
	return entity.IsValidEmail(email)
}

const minContactMessage = 10

// Validate checks every required field for kind. An empty result means the
// submission may be sent.
func Validate(kind Kind, f Fields) Errors {
	errs := Errors{}

	switch kind {
	case KindExpert:
		validateIdentity(errs, f, "Full Name is required", "Email Address is required")
		if blank(f.Company) {
			errs["company"] = "Company or Team Name is required"
		}
		if blank(f.Message) {
			errs["message"] = "Please describe your challenges"
		}
	case KindOnboarding:
		validateIdentity(errs, f, "Full Name is required", "Email Address is required")
		validateChallenges(errs, f)
	case KindContact:
		validateIdentity(errs, f, "Name is required", "Email is required")
		if blank(f.Message) {
			errs["message"] = "Message is required"
		} else if utf8.RuneCountInString(strings.TrimSpace(f.Message)) < minContactMessage {
			errs["message"] = "Message must be at least 10 characters long"
		}
	default:
		errs[SubmitKey] = "Unknown form type: " + string(kind)
	}

	return errs
}

// OnboardingSteps is the length of the onboarding wizard.
const OnboardingSteps = 3

// ValidateStep checks only the fields of one onboarding wizard step. Step 2
// (company, role, timeline) has nothing required.
func ValidateStep(step int, f Fields) Errors {
	errs := Errors{}
	switch step {
	case 1:
		validateIdentity(errs, f, "Full Name is required", "Email Address is required")
	case 3:
		validateChallenges(errs, f)
	}
	return errs
}

func validateIdentity(errs Errors, f Fields, nameMsg, emailMsg string) {
	if blank(f.Name) {
		errs["name"] = nameMsg
	}
	if blank(f.Email) {
		errs["email"] = emailMsg
	} else if !IsValidEmail(f.Email) {
		errs["email"] = "Please enter a valid email address"
	}
}

func validateChallenges(errs Errors, f Fields) {
	if blank(f.Challenges) {
		errs["challenges"] = "Please describe your IT goals or select a service"
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
