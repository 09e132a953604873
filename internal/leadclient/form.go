package leadclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nxtgenhub/lead-relay/internal/entity"
	"github.com/nxtgenhub/lead-relay/internal/logger"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Transition is how the page leaves a finished form.
type Transition int

const (
	// Back follows the redirect delay after a successful submit.
	Back Transition = iota
	// Instant skips the remaining delay.
	Instant
)

func (t Transition) String() string {
	switch t {
	case Back:
		return "back"
	case Instant:
		return "instant"
	}
	return fmt.Sprintf("Transition(%d)", int(t))
}

// DefaultRedirectDelay is how long the success screen stays before the
// dedicated lead forms navigate back.
const DefaultRedirectDelay = 4 * time.Second

type Submitter interface {
	Submit(ctx context.Context, req entity.DispatchRequest) Outcome
}

// Form drives one lead form: idle -> submitting -> success | error.
// A failed submit keeps Fields untouched and is only retried by another
// explicit Submit.
type Form struct {
	Kind   Kind
	Brand  Brand
	Fields Fields
	Errors Errors
	// Step is the onboarding wizard position, 1 through OnboardingSteps.
	Step int
	// Status is the success text shown after a submit went through.
	Status string
	// ConfirmationSent mirrors the relay's answer for the last good submit.
	ConfirmationSent bool

	RedirectDelay time.Duration
	// OnNavigate is called from a timer goroutine once the redirect
	// delay after a successful submit has elapsed.
	OnNavigate func(Transition)

	mu        sync.Mutex
	state     State
	submitter Submitter
	schedule  func(time.Duration, func()) (stop func() bool)
	stop      func() bool
}

func NewForm(kind Kind, s Submitter, brand Brand) *Form {
	return &Form{
		Kind:          kind,
		Brand:         brand.WithDefaults(),
		Errors:        Errors{},
		Step:          1,
		RedirectDelay: DefaultRedirectDelay,
		submitter:     s,
		schedule:      afterFunc,
	}
}

func afterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Set updates one field by its JSON name and clears that field's error.
func (f *Form) Set(field, value string) error {
	switch field {
	case "name":
		f.Fields.Name = value
	case "email":
		f.Fields.Email = value
	case "company":
		f.Fields.Company = value
	case "phone":
		f.Fields.Phone = value
	case "role":
		f.Fields.Role = value
	case "timeline":
		f.Fields.Timeline = value
	case "message":
		f.Fields.Message = value
	case "challenges":
		f.Fields.Challenges = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	delete(f.Errors, field)
	return nil
}

// Next moves the onboarding wizard forward when the current step is valid.
func (f *Form) Next() bool {
	if f.Kind != KindOnboarding || f.Step >= OnboardingSteps {
		return false
	}
	f.Errors = ValidateStep(f.Step, f.Fields)
	if len(f.Errors) > 0 {
		return false
	}
	f.Step++
	return true
}

func (f *Form) Prev() bool {
	if f.Kind != KindOnboarding || f.Step <= 1 {
		return false
	}
	f.Step--
	return true
}

// Submit validates, builds and sends the lead. It returns true only when the
// relay accepted it. Invalid input sets Errors and sends nothing.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return false
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	if errs := Validate(f.Kind, f.Fields); len(errs) > 0 {
		f.Errors = errs
		f.setState(StateIdle)
		return false
	}
	f.Errors = Errors{}

	req, err := BuildRequest(f.Kind, f.Fields, f.Brand)
	if err != nil {
		logger.Log.Error("failed to build lead request", "kind", f.Kind, "error", err)
		f.fail(Outcome{Err: err.Error()})
		return false
	}

	out := f.submitter.Submit(ctx, req)
	if !out.OK {
		f.fail(out)
		return false
	}

	f.ConfirmationSent = out.ConfirmationSent
	f.succeed()
	return true
}

// Dismiss closes the submit error banner and returns to idle.
func (f *Form) Dismiss() {
	delete(f.Errors, SubmitKey)
	f.setState(StateIdle)
}

// Cancel stops a pending redirect.
func (f *Form) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stop != nil {
		f.stop()
		f.stop = nil
	}
}

// Leave navigates away from the success screen without waiting for the
// redirect. It does nothing unless a redirect is pending.
func (f *Form) Leave() bool {
	f.mu.Lock()
	if f.stop == nil || !f.stop() {
		f.stop = nil
		f.mu.Unlock()
		return false
	}
	f.stop = nil
	navigate := f.OnNavigate
	f.mu.Unlock()

	navigate(Instant)
	return true
}

func (f *Form) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

func (f *Form) fail(out Outcome) {
	f.ConfirmationSent = false
	if f.Errors == nil {
		f.Errors = Errors{}
	}
	f.Errors[SubmitKey] = f.failureMessage(out)
	f.setState(StateError)
}

func (f *Form) failureMessage(out Outcome) string {
	switch f.Kind {
	case KindExpert:
		return "Unable to send your message at this time. Please try again in a few moments, or contact us directly at " + f.Brand.ContactEmail
	case KindOnboarding:
		return "Unable to submit your form at this time. Please try again in a few moments, or contact us directly at " + f.Brand.ContactEmail
	}
	msg := out.Err
	if msg == "" {
		msg = msgSendFailed
	}
	return msg + " You can also contact us directly at " + f.Brand.ContactEmail
}

func (f *Form) succeed() {
	switch f.Kind {
	case KindExpert:
		f.Status = "Thank you! Someone from our DevOps team will be in touch with you shortly."
	case KindOnboarding:
		f.Status = fmt.Sprintf("Welcome to %s! Thank you for getting started with us. We'll be in touch within 24 hours to discuss your IT needs and next steps.", f.Brand.Name)
	default:
		// The short contact form stays on the page and starts over.
		f.Status = "Thank you! Your message has been sent successfully. We'll get back to you soon."
		f.Fields = Fields{}
		f.setState(StateSuccess)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateSuccess
	if f.OnNavigate == nil {
		return
	}
	schedule := f.schedule
	if schedule == nil {
		schedule = afterFunc
	}
	navigate := f.OnNavigate
	f.stop = schedule(f.RedirectDelay, func() { navigate(Back) })
}
