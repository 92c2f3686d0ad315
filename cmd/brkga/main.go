package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Every configuration is valid
	ExitInvalid = 1 // A configuration loaded but breaks an invariant
	ExitError   = 2 // Load, parse or runtime error
)

// ValidationFailedError indicates that every file was read, but at least
// one configuration failed validation.
type ValidationFailedError struct {
	Message string
}

func (e *ValidationFailedError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var invalidErr *ValidationFailedError
		if errors.As(err, &invalidErr) {
			os.Exit(ExitInvalid)
		}

		os.Exit(ExitError)
	}
}
