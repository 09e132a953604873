package leadclient

// Kind selects the form variant. It drives validation, subjects and the
// templates used to render both mails.
type Kind string

const (
	KindExpert     Kind = "expert"
	KindOnboarding Kind = "onboarding"
	KindContact    Kind = "contact"
)

func (k Kind) Valid() bool {
	switch k {
	case KindExpert, KindOnboarding, KindContact:
		return true
	}
	return false
}

// Fields is one lead submission as entered in a form. It lives only for the
// duration of a submit and is never stored.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Role    string `json:"role,omitempty"`
	// Timeline is the onboarding wizard's step 2 choice.
	Timeline string `json:"timeline,omitempty"`
	// Message is the free text of the expert and contact forms.
	Message string `json:"message,omitempty"`
	// Challenges is the onboarding wizard's free text.
	Challenges string `json:"challenges,omitempty"`
}

// Errors maps a field name to its message. The "submit" key carries the
// outcome of a failed submit rather than a field problem.
type Errors map[string]string

const SubmitKey = "submit"

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields reports whether any field-level error is present, ignoring SubmitKey.
func (e Errors) Fields() bool {
	for k := range e {
		if k != SubmitKey {
			return true
		}
	}
	return false
}
