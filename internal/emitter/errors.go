package emitter

import "errors"

// Contract violations. The engine panics with these values; they are never
// returned.
var (
	// ErrUnitSpent is raised when a unit is used after Render or after it
	// was folded into a parent with AddNested.
	ErrUnitSpent = errors.New("emitter: unit already rendered")
	// ErrUnbalancedBlock is raised when a block is closed that was never opened.
	ErrUnbalancedBlock = errors.New("emitter: close without matching open block")
	// ErrSelfNesting is raised when a unit is nested into itself.
	ErrSelfNesting = errors.New("emitter: unit cannot be nested into itself")
)
