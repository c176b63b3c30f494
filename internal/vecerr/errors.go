// Package vecerr defines the typed errors returned across the splitvec
// module, following the wrapped-error shape of standardbeagle/lci's
// internal/errors package (IndexingError/ConfigError wrapping an
// Underlying cause behind Unwrap) rather than bare fmt.Errorf strings.
package vecerr

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying each family, so callers can test with
// errors.Is(err, vecerr.ErrOutOfBounds) without caring about the
// concrete type's fields.
var (
	ErrOutOfBounds       = errors.New("vecerr: out of bounds")
	ErrGrowthExhausted   = errors.New("vecerr: growth exhausted")
	ErrContractViolation = errors.New("vecerr: contract violation")
)

// OutOfBoundsError is returned by checked accessors when a flat index is
// not less than the container's current length.
type OutOfBoundsError struct {
	Index int
	Len   int
}

func NewOutOfBounds(index, length int) *OutOfBoundsError {
	return &OutOfBoundsError{Index: index, Len: length}
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Len)
}

// Unwrap exposes ErrOutOfBounds so errors.Is matches any
// *OutOfBoundsError regardless of its field values.
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// GrowthExhaustedError is returned when a growth policy cannot represent
// a requested maximum capacity, e.g. a Recursive policy whose cumulative
// capacity would overflow, or when the concurrent wrapper is asked to
// grow past its reserved maximum capacity.
type GrowthExhaustedError struct {
	Requested int
	Policy    string
	Reason    string
}

func NewGrowthExhausted(policy string, requested int, reason string) *GrowthExhaustedError {
	return &GrowthExhaustedError{Requested: requested, Policy: policy, Reason: reason}
}

func (e *GrowthExhaustedError) Error() string {
	return fmt.Sprintf("%s growth policy cannot reach capacity %d: %s", e.Policy, e.Requested, e.Reason)
}

// Unwrap exposes ErrGrowthExhausted so errors.Is matches any
// *GrowthExhaustedError regardless of its field values.
func (e *GrowthExhaustedError) Unwrap() error { return ErrGrowthExhausted }

// ContractViolationError reports a call that the receiver's growth
// policy does not support, e.g. AppendSlice or AppendSplitVec on a
// non-Recursive container, or FromSplitVec on a container whose policy
// lacks constant-time index resolution. It is returned as an error.
type ContractViolationError struct {
	Op     string
	Detail string
}

func NewContractViolation(op, detail string) *ContractViolationError {
	return &ContractViolationError{Op: op, Detail: detail}
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Detail)
}

// Unwrap exposes ErrContractViolation so errors.Is matches any
// *ContractViolationError regardless of its field values.
func (e *ContractViolationError) Unwrap() error { return ErrContractViolation }
