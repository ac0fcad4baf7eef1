package vuidcheck

import (
	"errors"
	"fmt"
	"strings"
)

type CommandError struct {
	message string
	cause   error
}

func (e *CommandError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, e.message)
	if e.cause != nil {
		fmt.Fprint(&msg, ": ", e.cause)
	}
	return msg.String()
}

func (e *CommandError) Unwrap() error {
	return e.cause
}

func newCommandError(message string, cause error) *CommandError {
	return &CommandError{message: message, cause: cause}
}

// ErrInconsistent is returned by Run if the report contains at least one failure. The report has been printed already.
var ErrInconsistent = errors.New("database, specification, source and tests are inconsistent")

var ErrNotLoaded = errors.New("artifacts need to be loaded first")
