package safemath

import (
	"errors"
	"math"

	"github.com/holiman/uint256"
)

var (
	// ErrOverflow is returned when a result does not fit the target width.
	ErrOverflow = errors.New("safemath: result exceeds representable range")
	// ErrUnderflow is returned when a subtraction would go below zero.
	ErrUnderflow = errors.New("safemath: subtraction underflow")
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("safemath: division by zero")
)

// Add returns a+b, reporting wraparound instead of wrapping silently.
func Add(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sub returns a-b, reporting underflow instead of wrapping.
func Sub(a, b uint64) (uint64, error) {
	if a < b {
		return 0, ErrUnderflow
	}
	return a - b, nil
}

// Mul returns a*b, reporting overflow instead of wrapping.
func Mul(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	result := a * b
	if result/a != b {
		return 0, ErrOverflow
	}
	return result, nil
}

// Wide lifts a native value into the 256-bit intermediate width.
func Wide(a uint64) *uint256.Int {
	return uint256.NewInt(a)
}

// MulWide returns a*b at the intermediate width. Products of 64-bit operands
// cannot exceed 256 bits, but the overflow signal is still surfaced so callers
// never depend on that reasoning.
func MulWide(a *uint256.Int, b uint64) (*uint256.Int, error) {
	result, overflow := new(uint256.Int).MulOverflow(a, uint256.NewInt(b))
	if overflow {
		return nil, ErrOverflow
	}
	return result, nil
}

// AddWide returns a+b at the intermediate width, checked.
func AddWide(a, b *uint256.Int) (*uint256.Int, error) {
	result, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, ErrOverflow
	}
	return result, nil
}

// DivWide returns a/b at the intermediate width. Integer division, truncating
// toward zero.
func DivWide(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}
	return new(uint256.Int).Div(a, b), nil
}

// Narrow converts a wide value back to the native width. It fails rather than
// truncate when the value does not fit.
func Narrow(a *uint256.Int) (uint64, error) {
	if !a.IsUint64() {
		return 0, ErrOverflow
	}
	return a.Uint64(), nil
}
