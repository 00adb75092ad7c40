package distribution

import (
	"errors"
	"fmt"

	"github.com/mason-leap-lab/distributions/loader"
)

var (
	// ErrDataFormat A loaded line is not a valid number.
	ErrDataFormat          = loader.ErrDataFormat
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrEmptySample         = errors.New("empty sample")
	ErrDomain              = errors.New("out of domain")
	ErrIncompatibleOperand = errors.New("incompatible operand")
)

// ParameterError A parameter of the distribution is out of its valid range.
type ParameterError struct {
	Name  string
	Value interface{}
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s = %v", ErrInvalidParameter, e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// SampleError A sample value can not be interpreted as a trial outcome.
type SampleError struct {
	Index int
	Value float64
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("%v: sample[%d] = %v is not 0 or 1", ErrInvalidParameter, e.Index, e.Value)
}

func (e *SampleError) Unwrap() error {
	return ErrInvalidParameter
}

// DomainError The argument of the mass function is out of the support.
type DomainError struct {
	K int
	N int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: k = %d, want 0 <= k <= %d", ErrDomain, e.K, e.N)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// OperandError Distributions that can not be combined.
type OperandError struct {
	P      float64
	OtherP float64
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%v: p values are not equal (%v != %v)", ErrIncompatibleOperand, e.P, e.OtherP)
}

func (e *OperandError) Unwrap() error {
	return ErrIncompatibleOperand
}
