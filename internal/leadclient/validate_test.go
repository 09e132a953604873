package leadclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@acme.com", true},
		{"j.doe+ci@sub.acme.co.uk", true},
		{"not-an-email", false},
		{"jane@acme", false},
		{"jane @acme.com", false},
		{"@acme.com", false},
		{"jane@@acme.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		fields Fields
		want   Errors
	}{
		{
			name:   "expert valid",
			kind:   KindExpert,
			fields: Fields{Name: "Jane Doe", Email: "jane@acme.com", Company: "Acme", Message: "Need help scaling CI"},
			want:   Errors{},
		},
		{
			name:   "expert invalid email",
			kind:   KindExpert,
			fields: Fields{Name: "Jane", Email: "not-an-email", Message: "hi"},
			want: Errors{
				"email":   "Please enter a valid email address",
				"company": "Company or Team Name is required",
			},
		},
		{
			name:   "expert all blank",
			kind:   KindExpert,
			fields: Fields{Name: "  ", Message: "\n"},
			want: Errors{
				"name":    "Full Name is required",
				"email":   "Email Address is required",
				"company": "Company or Team Name is required",
				"message": "Please describe your challenges",
			},
		},
		{
			name:   "onboarding needs only identity and challenges",
			kind:   KindOnboarding,
			fields: Fields{Name: "Jane", Email: "jane@acme.com", Challenges: "Move to Kubernetes"},
			want:   Errors{},
		},
		{
			name:   "onboarding missing challenges",
			kind:   KindOnboarding,
			fields: Fields{Name: "Jane", Email: "jane@acme.com"},
			want:   Errors{"challenges": "Please describe your IT goals or select a service"},
		},
		{
			name:   "contact short message",
			kind:   KindContact,
			fields: Fields{Name: "Jane", Email: "jane@acme.com", Message: "  hi there "},
			want:   Errors{"message": "Message must be at least 10 characters long"},
		},
		{
			name:   "contact missing everything",
			kind:   KindContact,
			fields: Fields{},
			want: Errors{
				"name":    "Name is required",
				"email":   "Email is required",
				"message": "Message is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.kind, tt.fields))
		})
	}
}

func TestValidateUnknownKind(t *testing.T) {
	errs := Validate(Kind("newsletter"), Fields{})
	assert.True(t, errs.Has(SubmitKey))
	assert.False(t, errs.Fields())
}

func TestValidateStep(t *testing.T) {
	empty := Fields{}

	step1 := ValidateStep(1, empty)
	assert.Equal(t, "Full Name is required", step1["name"])
	assert.Equal(t, "Email Address is required", step1["email"])
	assert.False(t, step1.Has("challenges"))

	assert.Empty(t, ValidateStep(2, empty), "company, role and timeline are optional")

	step3 := ValidateStep(3, empty)
	assert.Equal(t, Errors{"challenges": "Please describe your IT goals or select a service"}, step3)
}
