package ledger

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("invalid transactions")

// ErrInternal signals a broken internal invariant. Details are logged, not returned.
var ErrInternal = errors.New("a generic error occurred")

const (
	ReasonDuplicateID    = "transaction id is not unique"
	ReasonMissingAmount  = "amount is missing"
	ReasonNegativeAmount = "has a negative amount"
	ReasonScale          = "has an unsupported scale (>4)"
)

// ValidationError rejects the whole batch before any account is touched.
type ValidationError struct {
	Tx     uint32
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tx %d: %s", e.Tx, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
