package onboarding

import "errors"

var (
	// ErrNotAtPrompt is returned by Authenticate outside the biometric prompt.
	ErrNotAtPrompt = errors.New("onboarding: authentication is only available at the biometric prompt")

	// ErrNotAuthenticating is returned by Confirm before Authenticate was called.
	ErrNotAuthenticating = errors.New("onboarding: no authentication in progress")
)
