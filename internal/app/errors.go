package app

import "errors"

// Errors returned by the application lifecycle.
var (
	// ErrQuit signals a clean, user-requested exit of the run loop.
	ErrQuit = errors.New("quit requested")

	// ErrNoScreen indicates Run was called without a screen.
	ErrNoScreen = errors.New("application has no screen")
)
