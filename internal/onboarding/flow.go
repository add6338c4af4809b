package onboarding

import (
	"fmt"
	"time"
)

// State is a position in the onboarding flow.
type State int

const (
	Step0 State = iota
	Step1
	Step2
	BiometricPrompt
	Authenticating
	Complete
)

// String returns a short name for logs.
func (s State) String() string {
	switch s {
	case Step0, Step1, Step2:
		return fmt.Sprintf("step%d", int(s))
	case BiometricPrompt:
		return "biometric-prompt"
	case Authenticating:
		return "authenticating"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// IsSlide reports whether s shows one of the carousel slides.
func (s State) IsSlide() bool {
	return s >= Step0 && s <= Step2
}

// Method is a simulated biometric method. Every method succeeds.
type Method string

const (
	MethodFingerprint Method = "fingerprint"
	MethodFace        Method = "face"
)

// Methods lists the methods offered at the prompt, in display order.
var Methods = []Method{MethodFingerprint, MethodFace}

// Label is the display name of the method.
func (m Method) Label() string {
	switch m {
	case MethodFingerprint:
		return "Fingerprint"
	case MethodFace:
		return "Face ID"
	default:
		return string(m)
	}
}

// DefaultDelay is the artificial wait between choosing a method and completion.
const DefaultDelay = 2 * time.Second

// CompletionRecorder persists the completion flag. prefs.Store implements it.
type CompletionRecorder interface {
	MarkOnboardingComplete() error
}

// Flow is the onboarding state machine.
type Flow struct {
	state    State
	method   Method
	delay    time.Duration
	recorder CompletionRecorder
}

// Option configures a Flow.
type Option func(*Flow)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(f *Flow) {
		f.delay = d
	}
}

// NewFlow returns a flow positioned at Step0. recorder may be nil, in which
// case completion is not persisted.
func NewFlow(recorder CompletionRecorder, opts ...Option) *Flow {
	f := &Flow{
		state:    Step0,
		delay:    DefaultDelay,
		recorder: recorder,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// Method returns the method chosen at the prompt, if any.
func (f *Flow) Method() Method {
	return f.method
}

// Delay is the artificial authentication delay.
func (f *Flow) Delay() time.Duration {
	return f.delay
}

// Slide returns the slide for the current state.
func (f *Flow) Slide() (Slide, bool) {
	if !f.state.IsSlide() {
		return Slide{}, false
	}
	return Slides[f.state], true
}

// IsLastSlide reports whether Next will leave the carousel.
func (f *Flow) IsLastSlide() bool {
	return f.state == Step2
}

// Next advances one state. It reports whether the state changed; it does
// nothing outside the carousel.
func (f *Flow) Next() bool {
	if !f.state.IsSlide() {
		return false
	}
	f.state++
	return true
}

// Back moves to the previous slide. It reports whether the state changed;
// only Step1 and Step2 can go back.
func (f *Flow) Back() bool {
	if f.state != Step1 && f.state != Step2 {
		return false
	}
	f.state--
	return true
}

// Authenticate starts the simulated biometric check and returns how long the
// caller should wait before calling Confirm. There is no credential check.
func (f *Flow) Authenticate(m Method) (time.Duration, error) {
	if f.state != BiometricPrompt {
		return 0, ErrNotAtPrompt
	}
	f.method = m
	f.state = Authenticating
	return f.delay, nil
}

// Confirm finishes authentication, moves to Complete and records completion.
// The flow stays Complete even when recording fails; the error is returned
// so the caller can log it.
func (f *Flow) Confirm() error {
	if f.state != Authenticating {
		return ErrNotAuthenticating
	}
	f.state = Complete
	if f.recorder == nil {
		return nil
	}
	if err := f.recorder.MarkOnboardingComplete(); err != nil {
		return fmt.Errorf("failed to record onboarding completion: %w", err)
	}
	return nil
}

// Done reports whether the flow reached Complete.
func (f *Flow) Done() bool {
	return f.state == Complete
}
