package command

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// NotFoundError reports a typed name that matches no registered command.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command %q not found", e.Name)
}

// ExecutionError wraps a failure raised by a command handler.
type ExecutionError struct {
	Name  string
	Cause error
	Stack string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Name, e.Cause)
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// StackTrace renders the first stack recorded by github.com/pkg/errors in the chain, if any.
func StackTrace(err error) string {
	var st stackTracer
	if !errors.As(err, &st) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%+v", st.StackTrace()))
}
