// ABOUTME: Explicit state value for the session/view state machine
// ABOUTME: Phase, view, and status types plus the composite State struct

package controller

import "clipper-app-api/core/domain"

// Phase is the lifecycle phase of one activation.
type Phase int

const (
	// PhaseDisconnected means no valid session is known
	PhaseDisconnected Phase = iota

	// PhaseConnecting means a probe or connect attempt is in flight
	PhaseConnecting

	// PhaseConnected means the session is valid and spaces are loaded
	PhaseConnected

	// PhaseAwaitingRetry means a recoverable failure left a pending action
	PhaseAwaitingRetry

	// PhaseCreatingSpace means the create-space flow is active
	PhaseCreatingSpace
)

// String implements fmt.Stringer
func (p Phase) String() string {
	switch p {
	case PhaseDisconnected:
		return "disconnected"
	case PhaseConnecting:
		return "connecting"
	case PhaseConnected:
		return "connected"
	case PhaseAwaitingRetry:
		return "awaiting-retry"
	case PhaseCreatingSpace:
		return "creating-space"
	}
	return "unknown"
}

// View is the single visible view. Exactly one is active at a time.
type View int

const (
	ViewSettings View = iota
	ViewClipper
	ViewCreateSpace
)

// String implements fmt.Stringer
func (v View) String() string {
	switch v {
	case ViewSettings:
		return "settings"
	case ViewClipper:
		return "clipper"
	case ViewCreateSpace:
		return "create-space"
	}
	return "unknown"
}

// StatusKind classifies a status message for presentation.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// Status is a user-facing status message. Nil means no message is shown.
type Status struct {
	Kind    StatusKind
	Message string
}

// State is the whole observable state of the machine. It is replaced
// wholesale on every transition; callers receive copies and must not mutate
// the shared slices.
type State struct {
	Phase           Phase
	View            View
	Session         domain.Session
	Spaces          []domain.Space
	SelectedSpaceID string
	Snapshot        *domain.ContentSnapshot
	Status          *Status
}
