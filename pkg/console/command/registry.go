// Package command discovers console commands and dispatches typed lines to them.
package command

import (
	"fmt"
	"image/color"
	"log"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"devconsole/pkg/console/logbuf"
)

// Sink receives the feedback lines produced by dispatch.
// *logbuf.Buffer satisfies it.
type Sink interface {
	Append(severity logbuf.Severity, message, stackTrace string) *logbuf.Entry
}

// Outcome classifies a dispatch
type Outcome int

const (
	OutcomeEmpty Outcome = iota
	OutcomeOK
	OutcomeFailed
	OutcomeNotFound
)

// Result describes what Dispatch did with a line.
type Result struct {
	Outcome Outcome
	Name    string
	Err     error
}

// snapshot is one immutable discovery result
type snapshot struct {
	ordered []*Descriptor
	byName  map[string]*Descriptor
}

// Registry holds the current command snapshot.
type Registry struct {
	sink         Sink
	successColor color.RGBA
	failureColor color.RGBA

	current atomic.Pointer[snapshot]
}

// NewRegistry creates an empty registry reporting to sink.
func NewRegistry(sink Sink, success, failure color.RGBA) *Registry {
	r := &Registry{sink: sink, successColor: success, failureColor: failure}
	r.current.Store(&snapshot{byName: map[string]*Descriptor{}})
	return r
}

// Refresh rebuilds the snapshot from modules, replacing the previous one wholesale.
// The first symbol to claim a name wins; later duplicates are skipped.
func (r *Registry) Refresh(modules ...Module) {
	start := time.Now()

	next := &snapshot{byName: make(map[string]*Descriptor)}
	seen := mapset.New[string]()
	for _, m := range modules {
		for _, s := range m {
			if !discoverable(s) {
				continue
			}
			name := strings.TrimSpace(s.Name[len(Prefix):])
			if name == "" {
				continue
			}
			if seen.Has(name) {
				log.Printf("console: duplicate command %q ignored", name)
				continue
			}
			seen.Put(name)

			d := &Descriptor{
				Name:        name,
				Description: s.Tag.Description,
				Hidden:      s.Tag.Hidden,
				Params:      append([]string(nil), s.Params...),
				Handler:     s.Handler,
			}
			next.ordered = append(next.ordered, d)
			next.byName[name] = d
		}
	}
	r.current.Store(next)

	r.sink.Append(logbuf.SeverityInfo, gotext.Get("Refreshed Commands in %s", time.Since(start).Round(time.Microsecond)), "")
}

// Lookup resolves a stripped name
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.current.Load().byName[strings.TrimSpace(name)]
	return d, ok
}

// Len returns the number of registered commands, hidden ones included.
func (r *Registry) Len() int {
	return len(r.current.Load().ordered)
}

// List returns the visible commands in discovery order.
func (r *Registry) List() []Descriptor {
	snap := r.current.Load()
	out := make([]Descriptor, 0, len(snap.ordered))
	for _, d := range snap.ordered {
		if d.Hidden {
			continue
		}
		out = append(out, *d)
	}
	return out
}

// ListRaw returns the visible commands as plain "Name(params)" lines.
func (r *Registry) ListRaw() []string {
	visible := r.List()
	out := make([]string, 0, len(visible))
	for _, d := range visible {
		out = append(out, FormatRaw(d))
	}
	return out
}

// FormatMarkup renders a descriptor with bold name, parameters and a colored description.
func FormatMarkup(d Descriptor) string {
	var b strings.Builder
	b.WriteString("<b>" + d.Name + "</b>")
	if len(d.Params) > 0 {
		b.WriteString(" (" + strings.Join(d.Params, ", ") + ")")
	}
	if d.Description != "" {
		b.WriteString("<size=11><color=#7788aa> " + gotext.Get(d.Description) + "</color></size>")
	}
	return b.String()
}

// FormatRaw renders a descriptor without markup or description
func FormatRaw(d Descriptor) string {
	return d.Name + "(" + strings.Join(d.Params, ", ") + ")"
}

// Dispatch tokenizes line on whitespace and runs the command named by the first token.
// It reports feedback to the sink and never lets a handler failure escape.
func (r *Registry) Dispatch(line string) Result {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{Outcome: OutcomeEmpty}
	}

	name := fields[0]
	d, ok := r.Lookup(name)
	if !ok {
		r.sink.Append(logbuf.SeverityInfo, gotext.Get("~ The command \"%s\" could not be found.", name), "").
			SetColor(r.failureColor)
		return Result{Outcome: OutcomeNotFound, Name: name, Err: &NotFoundError{Name: name}}
	}

	r.sink.Append(logbuf.SeverityInfo, "~ "+d.Name, "").SetColor(r.successColor)

	if err := invoke(d, fields[1:]); err != nil {
		r.sink.Append(logbuf.SeverityError, err.Cause.Error(), err.Stack).SetColor(r.failureColor)
		return Result{Outcome: OutcomeFailed, Name: d.Name, Err: err}
	}
	return Result{Outcome: OutcomeOK, Name: d.Name}
}

// invoke calls the handler, converting a returned error or a panic into an ExecutionError.
func invoke(d *Descriptor, args []string) (execErr *ExecutionError) {
	defer func() {
		if rec := recover(); rec != nil {
			execErr = &ExecutionError{
				Name:  d.Name,
				Cause: fmt.Errorf("panic: %v", rec),
				Stack: strings.TrimSpace(string(debug.Stack())),
			}
		}
	}()

	if err := d.Handler(args); err != nil {
		return &ExecutionError{Name: d.Name, Cause: err, Stack: StackTrace(err)}
	}
	return nil
}
