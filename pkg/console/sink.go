package console

import (
	"io"
	"runtime/debug"
	"strings"

	"devconsole/pkg/console/command"
	"devconsole/pkg/console/logbuf"
)

// Receive is the host log sink. It may be called from any goroutine; the
// entry shows up no later than the next frame. While the console is
// force-disabled the line is dropped and nil is returned.
func (c *Console) Receive(message, stackTrace string, severity logbuf.Severity) *logbuf.Entry {
	if c.forceDisabled.Load() {
		return nil
	}
	e := c.buffer.Append(severity, message, stackTrace)
	if severity.IsFailure() && c.cfg.OpenConsoleOnError() {
		c.openRequested.Store(true)
	}
	return e
}

// Log appends an info line. The returned entry may be recolored once with SetColor.
func (c *Console) Log(message string) *logbuf.Entry {
	return c.receive(logbuf.SeverityInfo, message, "")
}

// Warning appends a warning line
func (c *Console) Warning(message string) *logbuf.Entry {
	return c.receive(logbuf.SeverityWarning, message, "")
}

// Error appends an error line with the caller's stack.
func (c *Console) Error(message string) *logbuf.Entry {
	return c.receive(logbuf.SeverityError, message, strings.TrimSpace(string(debug.Stack())))
}

// Exception appends err as an exception line. The stack recorded by
// github.com/pkg/errors is used when err carries one. A nil err is not logged.
func (c *Console) Exception(err error) *logbuf.Entry {
	if err == nil {
		return logbuf.NewEntry(logbuf.SeverityException, "<nil>", "")
	}
	trace := command.StackTrace(err)
	if trace == "" {
		trace = strings.TrimSpace(string(debug.Stack()))
	}
	return c.receive(logbuf.SeverityException, err.Error(), trace)
}

// receive is Receive that never returns nil, so wrapper results can be chained.
func (c *Console) receive(severity logbuf.Severity, message, trace string) *logbuf.Entry {
	if e := c.Receive(message, trace, severity); e != nil {
		return e
	}
	return logbuf.NewEntry(severity, message, trace)
}

// Writer returns an io.Writer that appends each written line as an info
// entry, for use with log.SetOutput.
func (c *Console) Writer() io.Writer {
	return sinkWriter{c}
}

type sinkWriter struct {
	c *Console
}

func (w sinkWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\r\n"), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			w.c.Receive(line, "", logbuf.SeverityInfo)
		}
	}
	return len(p), nil
}
