package draft

import (
	"errors"
	"testing"
)

func TestLifecycle_HappyPath(t *testing.T) {
	var l Lifecycle

	if l.State() != Started {
		t.Fatalf("expected state %s, got %s", Started, l.State())
	}
	if err := l.AddResource(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.AddResource(); err != nil {
		t.Fatalf("unexpected error on second resource: %v", err)
	}
	if l.State() != ResourceAdded {
		t.Errorf("expected state %s, got %s", ResourceAdded, l.State())
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.MarkSubmitted(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.State() != Submitted {
		t.Errorf("expected state %s, got %s", Submitted, l.State())
	}
}

func TestLifecycle_RejectsInvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Lifecycle)
		step  func(*Lifecycle) error
	}{
		{
			name:  "submit before validate",
			setup: func(*Lifecycle) {},
			step:  (*Lifecycle).MarkSubmitted,
		},
		{
			name:  "add resource after validate",
			setup: func(l *Lifecycle) { _ = l.Validate() },
			step:  (*Lifecycle).AddResource,
		},
		{
			name:  "edit after validate",
			setup: func(l *Lifecycle) { _ = l.Validate() },
			step:  (*Lifecycle).Edit,
		},
		{
			name: "validate after submit",
			setup: func(l *Lifecycle) {
				_ = l.Validate()
				_ = l.MarkSubmitted()
			},
			step: (*Lifecycle).Validate,
		},
		{
			name: "submit twice",
			setup: func(l *Lifecycle) {
				_ = l.Validate()
				_ = l.MarkSubmitted()
			},
			step: (*Lifecycle).MarkSubmitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Lifecycle
			tt.setup(&l)
			if err := tt.step(&l); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("expected error %v, got %v", ErrInvalidTransition, err)
			}
		})
	}
}

func TestLifecycle_ValidateIsRetryable(t *testing.T) {
	var l Lifecycle
	if err := l.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("expected second validate to succeed, got %v", err)
	}
}

func TestLifecycle_Reopen(t *testing.T) {
	var l Lifecycle

	if err := l.Reopen(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected error %v, got %v", ErrInvalidTransition, err)
	}

	if err := l.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.MarkSubmitted(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Reopen(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.State() != Validated {
		t.Errorf("expected state %s, got %s", Validated, l.State())
	}
	if err := l.MarkSubmitted(); err != nil {
		t.Errorf("expected reopened draft to be submittable, got %v", err)
	}
}
