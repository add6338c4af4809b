package execution

import "errors"

var (
	// ErrEmptyTarget is returned when Submit is called with a blank target.
	// No request is issued.
	ErrEmptyTarget = errors.New("target is empty")

	// ErrBusy is returned when Submit is called while a request is in flight.
	ErrBusy = errors.New("an execution is already running")

	// ErrNoTool is returned when no tool is selected, or when the tool does
	// not belong to the module.
	ErrNoTool = errors.New("no tool selected")
)
