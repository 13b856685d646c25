package models

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports an operation against an unknown bill id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bill not found: %s", e.ID)
}

// InvalidTransitionError reports an operation that is not legal from the
// bill's current status. The bill is left unchanged.
type InvalidTransitionError struct {
	ID        string
	Status    Status
	Operation string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s bill %s: status is %s", e.Operation, e.ID, e.Status)
}

// ValidationError reports malformed or out-of-policy input to a single
// operation, such as a blank rejection reason or a schedule date past the
// due date.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// FieldErrors maps field names to messages from bill creation. All invalid
// fields are reported at once so a form can highlight every one of them.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return "invalid bill: " + strings.Join(parts, "; ")
}
