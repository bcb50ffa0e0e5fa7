package richtext

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrIncompatibleEdits is returned by Compose when the first edit's
// targetLength does not equal the second edit's baseLength. This is the
// single recoverable error kind the algebra defines; callers may catch it.
var ErrIncompatibleEdits = errors.New("richtext: incompatible edits: first.targetLength != second.baseLength")

// ErrInvalidOperation is returned by NewEdit when given a malformed
// operation sequence (a zero-length op, a negative InsertCode, and so on).
var ErrInvalidOperation = errors.New("richtext: invalid operation")

// InvariantViolation is a programming-error panic raised when the algebra
// reaches a state its own design proves unreachable (for example, a
// Delete-on-left paired with an Insert-on-right inside Compose's lock-step
// loop). It is never meant to be recovered from in production. The Tag is
// a short random id taken from a fresh uuid for every panic, so two panics
// raised at the same site carry different tags; Message names the violated
// invariant.
type InvariantViolation struct {
	Tag     string
	Message string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("richtext: internal invariant violated [%s]: %s", e.Tag, e.Message)
}

// panicInvariant raises an InvariantViolation carrying a fresh trace tag.
func panicInvariant(msg string) {
	panic(&InvariantViolation{Tag: uuid.NewString()[:8], Message: msg})
}
