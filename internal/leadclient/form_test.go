package leadclient

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nxtgenhub/lead-relay/internal/entity"
)

// MockSubmitter
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, req entity.DispatchRequest) Outcome {
	return m.Called(ctx, req).Get(0).(Outcome)
}

type fakeTimer struct {
	delay   time.Duration
	fire    func()
	stopped bool
}

func newTestForm(kind Kind, s Submitter) (*Form, *fakeTimer, *[]Transition) {
	form := NewForm(kind, s, DefaultBrand)
	timer := &fakeTimer{}
	form.schedule = func(d time.Duration, fn func()) func() bool {
		timer.delay = d
		timer.fire = fn
		return func() bool {
			timer.stopped = true
			return true
		}
	}
	var navs []Transition
	form.OnNavigate = func(t Transition) { navs = append(navs, t) }
	return form, timer, &navs
}

// TestFormExpertSuccess - thank-you screen then back after 4s
func TestFormExpertSuccess(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.MatchedBy(func(r entity.DispatchRequest) bool {
		return r.SendConfirmation && r.ConfirmationEmail.To == "jane@acme.com"
	})).Return(Outcome{OK: true, ConfirmationSent: true})

	form, timer, navs := newTestForm(KindExpert, sub)
	form.Fields = janeExpert()

	assert.True(t, form.Submit(context.Background()))
	assert.Equal(t, StateSuccess, form.State())
	assert.Contains(t, form.Status, "Thank you!")
	assert.Equal(t, 4*time.Second, timer.delay)
	assert.Empty(t, *navs, "navigation waits for the delay")

	timer.fire()
	assert.Equal(t, []Transition{Back}, *navs)
	sub.AssertNumberOfCalls(t, "Submit", 1)
}

// TestFormInvalidEmailNeverSubmits - validation blocks the network
func TestFormInvalidEmailNeverSubmits(t *testing.T) {
	sub := new(MockSubmitter)
	form, timer, _ := newTestForm(KindExpert, sub)
	form.Fields = Fields{Name: "Jane", Email: "not-an-email", Message: "hi"}

	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, StateIdle, form.State())
	assert.Equal(t, "Please enter a valid email address", form.Errors["email"])
	assert.Nil(t, timer.fire)
	sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

// TestFormFailureKeepsFields - SMTP outage scenario
func TestFormFailureKeepsFields(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.Anything).
		Return(Outcome{Err: "connect ECONNREFUSED 10.0.0.1:587"}).Once()

	form, timer, navs := newTestForm(KindExpert, sub)
	form.Fields = janeExpert()

	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, StateError, form.State())
	assert.Equal(t, janeExpert(), form.Fields)
	assert.Equal(t,
		"Unable to send your message at this time. Please try again in a few moments, or contact us directly at nxtgenhub15@gmail.com",
		form.Errors[SubmitKey])
	assert.Nil(t, timer.fire)
	assert.Empty(t, *navs)
	sub.AssertNumberOfCalls(t, "Submit", 1)

	// retry only on an explicit call
	sub.On("Submit", mock.Anything, mock.Anything).Return(Outcome{OK: true}).Once()
	assert.True(t, form.Submit(context.Background()))
	assert.False(t, form.Errors.Has(SubmitKey))
	sub.AssertNumberOfCalls(t, "Submit", 2)
}

func TestFormOnboardingWizard(t *testing.T) {
	sub := new(MockSubmitter)
	form, _, _ := newTestForm(KindOnboarding, sub)

	assert.False(t, form.Next(), "step 1 needs name and email")
	assert.True(t, form.Errors.Has("name"))

	assert.NoError(t, form.Set("name", "Raj"))
	assert.False(t, form.Errors.Has("name"), "typing clears the field error")
	assert.NoError(t, form.Set("email", "raj@example.org"))
	assert.True(t, form.Next())
	assert.Equal(t, 2, form.Step)

	assert.True(t, form.Next(), "step 2 is optional")
	assert.Equal(t, 3, form.Step)
	assert.False(t, form.Next(), "no step after the last")

	assert.True(t, form.Prev())
	assert.Equal(t, 2, form.Step)

	assert.Error(t, form.Set("budget", "1k"))
}

func TestFormOnboardingFailureMessage(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.Anything).Return(Outcome{Err: "Network error. Please check your connection and try again.", Network: true})

	form, _, _ := newTestForm(KindOnboarding, sub)
	form.Fields = Fields{Name: "Raj", Email: "raj@example.org", Challenges: "Cloud migration"}

	assert.False(t, form.Submit(context.Background()))
	assert.Contains(t, form.Errors[SubmitKey], "Unable to submit your form at this time.")

	form.Dismiss()
	assert.Equal(t, StateIdle, form.State())
	assert.False(t, form.Errors.Has(SubmitKey))
	assert.Equal(t, "Raj", form.Fields.Name)
}

func TestFormContact(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.MatchedBy(func(r entity.DispatchRequest) bool {
		return !r.SendConfirmation
	})).Return(Outcome{Err: "Missing required fields"}).Once()
	sub.On("Submit", mock.Anything, mock.Anything).Return(Outcome{OK: true}).Once()

	form, timer, _ := newTestForm(KindContact, sub)
	form.Fields = Fields{Name: "Jane", Email: "jane@acme.com", Message: "Please call me back"}

	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, "Missing required fields You can also contact us directly at nxtgenhub15@gmail.com", form.Errors[SubmitKey])

	assert.True(t, form.Submit(context.Background()))
	assert.Equal(t, StateSuccess, form.State())
	assert.Equal(t, Fields{}, form.Fields, "contact form starts over")
	assert.Nil(t, timer.fire, "contact form does not navigate away")
}

func TestFormCancelRedirect(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.Anything).Return(Outcome{OK: true})

	form, timer, _ := newTestForm(KindExpert, sub)
	form.Fields = janeExpert()
	form.Submit(context.Background())

	form.Cancel()
	assert.True(t, timer.stopped)
}

func TestStateAndTransitionStrings(t *testing.T) {
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "back", Back.String())
	assert.Equal(t, "instant", Instant.String())
	assert.Equal(t, "Transition(9)", Transition(9).String())
}

func TestFormLeaveSkipsDelay(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.Anything).Return(Outcome{OK: true})

	form, timer, navs := newTestForm(KindOnboarding, sub)
	assert.False(t, form.Leave(), "nothing pending yet")

	form.Fields = Fields{Name: "Raj", Email: "raj@example.org", Challenges: "Cloud migration"}
	assert.True(t, form.Submit(context.Background()))

	assert.True(t, form.Leave())
	assert.True(t, timer.stopped)
	assert.Equal(t, []Transition{Instant}, *navs)
	assert.False(t, form.Leave(), "only once")
}

// blockingSubmitter holds the first submit until release is closed.
type blockingSubmitter struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSubmitter) Submit(ctx context.Context, req entity.DispatchRequest) Outcome {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	close(b.entered)
	<-b.release
	return Outcome{OK: true}
}

// TestFormConcurrentSubmit - a second submit while one is in flight is refused
func TestFormConcurrentSubmit(t *testing.T) {
	sub := &blockingSubmitter{entered: make(chan struct{}), release: make(chan struct{})}
	form := NewForm(KindExpert, sub, DefaultBrand)
	form.Fields = janeExpert()

	done := make(chan bool)
	go func() { done <- form.Submit(context.Background()) }()

	<-sub.entered
	assert.Equal(t, StateSubmitting, form.State())
	assert.False(t, form.Submit(context.Background()))

	close(sub.release)
	assert.True(t, <-done)
	assert.Equal(t, 1, sub.calls)
}

// TestFormInvalidInputReturnsToIdle - the guard does not stick after a
// rejected submit
func TestFormInvalidInputReturnsToIdle(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.Anything).Return(Outcome{OK: true})

	form, _, _ := newTestForm(KindExpert, sub)
	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, StateIdle, form.State())

	form.Fields = janeExpert()
	assert.True(t, form.Submit(context.Background()))
}

// TestFormZeroValueFailure - a Form literal records the failure instead of
// panicking
func TestFormZeroValueFailure(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.Anything).Return(Outcome{Err: msgSendFailed})

	form := &Form{Kind: KindContact, Brand: DefaultBrand, submitter: sub}
	form.Fields = Fields{Name: "Jane", Email: "jane@acme.com", Message: "Please call me back"}

	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, StateError, form.State())
	assert.Equal(t, msgSendFailed+" You can also contact us directly at nxtgenhub15@gmail.com", form.Errors[SubmitKey])
}
