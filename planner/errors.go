package planner

import "fmt"

// InvariantError describes a recoverable planner invariant violation
// (spec.md §7): a corrective operation is aborted, affected bookkeeping is
// dropped, and planning continues. These never escape Plan as Go errors —
// they are logged and recorded in Plan.Warnings.
type InvariantError struct {
	Operation string
	Position  int
	Cause     string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("planner: invariant violation during %s at position %d: %s", e.Operation, e.Position, e.Cause)
}
