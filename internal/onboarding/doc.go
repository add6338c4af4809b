// Package onboarding implements the one-time introductory flow.
//
// The flow is a small state machine:
//
//	Step0 → Step1 → Step2 → BiometricPrompt → Authenticating → Complete
//
// Next moves forward one state from any slide. Back moves backward only
// between slides. Authenticate simulates a biometric check that always
// succeeds; the caller waits Delay() and then calls Confirm, which reaches
// Complete and records the completion flag. Once recorded, the dashboard
// never enters the flow again.
//
// Flow holds no goroutines or timers. The dashboard drives the delay with a
// tick command, which keeps the state machine deterministic under test.
package onboarding
