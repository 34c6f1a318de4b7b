package operators

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDomain          = errors.New("argument outside operator domain")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrArity           = errors.New("operator arity mismatch")
)

// DomainError reports the operator and argument that fell outside its domain.
type DomainError struct {
	Op    string  // Operator name (e.g., "log")
	Value float64 // Offending argument
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Value, ErrDomain)
}

// Unwrap makes errors.Is(err, ErrDomain) hold for every DomainError.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}
