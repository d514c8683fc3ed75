package constantproduct

import (
	"errors"

	"github.com/Neocryptoquant/solana-security-template/protocols/constantproduct/calculator"
)

// ErrUnknownDirection is returned when a swap direction is not one of the
// declared constants.
var ErrUnknownDirection = errors.New("constantproduct: unknown swap direction")

// Direction selects which reserve the input amount is deposited into.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	DirectionXForY
	DirectionYForX
)

func (d Direction) String() string {
	switch d {
	case DirectionXForY:
		return "x_for_y"
	case DirectionYForX:
		return "y_for_x"
	default:
		return "unknown"
	}
}

// SwapResult holds the outcome of a successful swap in pool orientation.
type SwapResult struct {
	AmountOut   uint64 `json:"amountOut"`
	NewReserveX uint64 `json:"newReserveX"`
	NewReserveY uint64 `json:"newReserveY"`
}

// Swap prices amountIn against the pool in the given direction. The receiver
// is a value: a failed swap cannot touch any stored reserves, and callers
// commit a success explicitly via Apply.
func (p Pool) Swap(dir Direction, amountIn, minOut uint64) (SwapResult, error) {
	switch dir {
	case DirectionXForY:
		result, err := calculator.Swap(amountIn, minOut, p.ReserveX, p.ReserveY, p.FeeBps)
		if err != nil {
			return SwapResult{}, err
		}
		return SwapResult{
			AmountOut:   result.AmountOut,
			NewReserveX: result.NewReserveIn,
			NewReserveY: result.NewReserveOut,
		}, nil
	case DirectionYForX:
		result, err := calculator.Swap(amountIn, minOut, p.ReserveY, p.ReserveX, p.FeeBps)
		if err != nil {
			return SwapResult{}, err
		}
		return SwapResult{
			AmountOut:   result.AmountOut,
			NewReserveX: result.NewReserveOut,
			NewReserveY: result.NewReserveIn,
		}, nil
	default:
		return SwapResult{}, ErrUnknownDirection
	}
}

// SwapXForY deposits X and withdraws Y.
func (p Pool) SwapXForY(amountIn, minOut uint64) (SwapResult, error) {
	return p.Swap(DirectionXForY, amountIn, minOut)
}

// SwapYForX deposits Y and withdraws X.
func (p Pool) SwapYForX(amountIn, minOut uint64) (SwapResult, error) {
	return p.Swap(DirectionYForX, amountIn, minOut)
}
