package draft

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a wizard step is not allowed in the
// draft's current state.
var ErrInvalidTransition = errors.New("invalid draft transition")

// State is a step of a creation wizard.
type State int

const (
	Started State = iota
	ResourceAdded
	Validated
	Submitted
)

func (s State) String() string {
	switch s {
	case Started:
		return "started"
	case ResourceAdded:
		return "resource_added"
	case Validated:
		return "validated"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Lifecycle tracks the state of a draft: Started -> ResourceAdded* -> Validated -> Submitted.
// Draft types embed it and call its methods before mutating their fields.
type Lifecycle struct {
	state State
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return l.state
}

// Editable reports whether fields may still change.
func (l *Lifecycle) Editable() bool {
	return l.state == Started || l.state == ResourceAdded
}

// Edit checks that the draft is still being composed.
func (l *Lifecycle) Edit() error {
	if !l.Editable() {
		return fmt.Errorf("%w: edit in %s", ErrInvalidTransition, l.state)
	}
	return nil
}

// AddResource moves the draft to ResourceAdded.
func (l *Lifecycle) AddResource() error {
	if !l.Editable() {
		return fmt.Errorf("%w: add resource in %s", ErrInvalidTransition, l.state)
	}
	l.state = ResourceAdded
	return nil
}

// Validate moves the draft to Validated. Validating twice is allowed so a
// failed submission can be retried.
func (l *Lifecycle) Validate() error {
	if l.state == Submitted {
		return fmt.Errorf("%w: validate in %s", ErrInvalidTransition, l.state)
	}
	l.state = Validated
	return nil
}

// MarkSubmitted moves a validated draft to Submitted.
func (l *Lifecycle) MarkSubmitted() error {
	if l.state != Validated {
		return fmt.Errorf("%w: submit in %s", ErrInvalidTransition, l.state)
	}
	l.state = Submitted
	return nil
}

// Reopen moves a submitted draft back to Validated after a failed submission.
func (l *Lifecycle) Reopen() error {
	if l.state != Submitted {
		return fmt.Errorf("%w: reopen in %s", ErrInvalidTransition, l.state)
	}
	l.state = Validated
	return nil
}
