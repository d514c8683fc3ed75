package calculator

import (
	"errors"
	"fmt"

	"github.com/Neocryptoquant/solana-security-template/protocols/constantproduct/calculator/safemath"
)

// basisPointDivisor is a constant representing 100% in basis points (10000).
const basisPointDivisor = 10000

var (
	// ErrInvalidAmount is returned when the input amount is zero.
	ErrInvalidAmount = errors.New("calculator: amount in must be greater than zero")
	// ErrInvalidFee is returned when the fee rate is not below 10000 basis points.
	ErrInvalidFee = errors.New("calculator: fee must be below 10000 basis points")
	// ErrMathOverflow is returned when a checked arithmetic step exceeds its representable range.
	ErrMathOverflow = errors.New("calculator: arithmetic overflow")
	// ErrMathUnderflow is returned when a checked subtraction would go below zero.
	ErrMathUnderflow = errors.New("calculator: arithmetic underflow")
	// ErrSlippageExceeded is returned when the computed output is below the caller's minimum.
	ErrSlippageExceeded = errors.New("calculator: output below minimum")
	// ErrInsufficientReserves is returned when the pool cannot pay the computed output.
	ErrInsufficientReserves = errors.New("calculator: insufficient reserves")
)

// Result holds the outcome of a successful swap computation. Reserves are
// named from the trade's perspective: NewReserveIn is the side the input
// amount was added to.
type Result struct {
	AmountOut     uint64
	NewReserveIn  uint64
	NewReserveOut uint64
}

// Swap prices amountIn against the given reserves under the constant-product
// formula and derives the post-trade reserves. All intermediate products and
// sums are computed at 256-bit width and narrowed back with explicit range
// checks; no step wraps silently.
//
// The fee is applied to the input side before the product, by scaling rather
// than by truncating the input early:
//
//	out = (amountIn * (10000 - feeBps) * reserveOut) /
//	      (reserveIn * 10000 + amountIn * (10000 - feeBps))
//
// The division truncates toward zero, so rounding always favors the pool.
// With feeBps == 0 this reduces to amountIn*reserveOut/(reserveIn+amountIn).
//
// Every failure is terminal for the call and leaves the caller's reserves
// untouched; the function never panics on expected conditions.
func Swap(amountIn, minOut, reserveIn, reserveOut uint64, feeBps uint16) (Result, error) {
	if amountIn == 0 {
		return Result{}, ErrInvalidAmount
	}
	if feeBps >= basisPointDivisor {
		return Result{}, ErrInvalidFee
	}
	// A drained side means the pool is uninitialized or empty; it cannot price
	// a trade. Callers should never get here, but we validate rather than assume.
	if reserveIn == 0 || reserveOut == 0 {
		return Result{}, fmt.Errorf("%w: a reserve is zero", ErrInsufficientReserves)
	}

	amountInWithFee, err := safemath.MulWide(safemath.Wide(amountIn), basisPointDivisor-uint64(feeBps))
	if err != nil {
		return Result{}, fmt.Errorf("%w: fee scaling", ErrMathOverflow)
	}

	numerator, err := safemath.MulWide(amountInWithFee, reserveOut)
	if err != nil {
		return Result{}, fmt.Errorf("%w: numerator", ErrMathOverflow)
	}

	scaledReserveIn, err := safemath.MulWide(safemath.Wide(reserveIn), basisPointDivisor)
	if err != nil {
		return Result{}, fmt.Errorf("%w: denominator", ErrMathOverflow)
	}
	denominator, err := safemath.AddWide(scaledReserveIn, amountInWithFee)
	if err != nil {
		return Result{}, fmt.Errorf("%w: denominator", ErrMathOverflow)
	}
	// Division guard. Unreachable while amountIn > 0, but checked anyway.
	if denominator.IsZero() {
		return Result{}, fmt.Errorf("%w: zero denominator", ErrMathOverflow)
	}

	amountOutWide, err := safemath.DivWide(numerator, denominator)
	if err != nil {
		return Result{}, fmt.Errorf("%w: division", ErrMathOverflow)
	}
	amountOut, err := safemath.Narrow(amountOutWide)
	if err != nil {
		return Result{}, fmt.Errorf("%w: output does not fit 64 bits", ErrMathOverflow)
	}

	// Equal to the minimum is acceptable; below it is not.
	if amountOut < minOut {
		return Result{}, fmt.Errorf("%w: got %d, want at least %d", ErrSlippageExceeded, amountOut, minOut)
	}
	// The pool may never pay out more than it holds.
	if amountOut > reserveOut {
		return Result{}, fmt.Errorf("%w: output %d exceeds reserve %d", ErrInsufficientReserves, amountOut, reserveOut)
	}

	newReserveIn, err := safemath.Add(reserveIn, amountIn)
	if err != nil {
		return Result{}, fmt.Errorf("%w: input reserve update", ErrMathOverflow)
	}
	newReserveOut, err := safemath.Sub(reserveOut, amountOut)
	if err != nil {
		return Result{}, fmt.Errorf("%w: output reserve update", ErrMathUnderflow)
	}

	return Result{
		AmountOut:     amountOut,
		NewReserveIn:  newReserveIn,
		NewReserveOut: newReserveOut,
	}, nil
}
