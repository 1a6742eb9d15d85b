package output

import (
	"io"
	"os"
	"sync"
)

// EventKind identifies the kind of a progress event.
type EventKind string

const (
	// EventStatus announces that a step is starting.
	EventStatus EventKind = "status"

	// EventSubstepSuccess reports completion of one substep within a step.
	EventSubstepSuccess EventKind = "substep-success"

	// EventStepSuccess reports completion of a whole step.
	EventStepSuccess EventKind = "step-success"
)

// Event is a single progress event emitted during a long-running operation.
type Event struct {
	Kind    EventKind
	Message string
}

// Reporter receives progress events in the order they are generated.
// Implementations decide how (or whether) each event is rendered.
type Reporter interface {
	Status(msg string)
	SubstepSuccess(msg string)
	StepSuccess(msg string)
}

// ConsoleReporter renders progress events to a writer using the CLI styles.
// Substep events are only rendered when Verbose is set; status and step
// events are always rendered.
type ConsoleReporter struct {
	Writer  io.Writer
	Verbose bool
}

// NewConsoleReporter creates a reporter writing styled events to stdout.
func NewConsoleReporter(verbose bool) *ConsoleReporter {
	return &ConsoleReporter{Writer: os.Stdout, Verbose: verbose}
}

// Status renders a status event.
func (r *ConsoleReporter) Status(msg string) {
	io.WriteString(r.Writer, FormatStatus(msg)+"\n")
}

// SubstepSuccess renders a substep success event when verbose.
func (r *ConsoleReporter) SubstepSuccess(msg string) {
	if !r.Verbose {
		return
	}
	io.WriteString(r.Writer, FormatSubstepSuccess(msg)+"\n")
}

// StepSuccess renders a step completion event.
func (r *ConsoleReporter) StepSuccess(msg string) {
	io.WriteString(r.Writer, FormatStepSuccess(msg)+"\n")
}

// Recorder collects events in order. It is used by tests and by callers that
// need to replay progress after the fact.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Status records a status event.
func (r *Recorder) Status(msg string) {
	r.record(Event{Kind: EventStatus, Message: msg})
}

// SubstepSuccess records a substep success event.
func (r *Recorder) SubstepSuccess(msg string) {
	r.record(Event{Kind: EventSubstepSuccess, Message: msg})
}

// StepSuccess records a step completion event.
func (r *Recorder) StepSuccess(msg string) {
	r.record(Event{Kind: EventStepSuccess, Message: msg})
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}
