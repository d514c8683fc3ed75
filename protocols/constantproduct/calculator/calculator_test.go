package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwap(t *testing.T) {
	testCases := []struct {
		name        string
		amountIn    uint64
		minOut      uint64
		reserveIn   uint64
		reserveOut  uint64
		feeBps      uint16
		expected    Result
		expectedErr error
	}{
		{
			name:       "Standard Swap No Fee",
			amountIn:   1000,
			minOut:     900,
			reserveIn:  1_000_000_000,
			reserveOut: 1_000_000_000,
			feeBps:     0,
			expected: Result{
				AmountOut:     999,
				NewReserveIn:  1_000_001_000,
				NewReserveOut: 999_999_001,
			},
		},
		{
			name:       "Standard Swap With 30bps Fee",
			amountIn:   1000,
			minOut:     900,
			reserveIn:  1_000_000_000,
			reserveOut: 1_000_000_000,
			feeBps:     30,
			expected: Result{
				AmountOut:     996,
				NewReserveIn:  1_000_001_000,
				NewReserveOut: 999_999_004,
			},
		},
		{
			name:       "Large Operands Use Wide Intermediates",
			amountIn:   math.MaxUint64 / 4,
			minOut:     0,
			reserveIn:  math.MaxUint64 / 2,
			reserveOut: 1000,
			feeBps:     0,
			expected: Result{
				AmountOut:     333,
				NewReserveIn:  math.MaxUint64/2 + math.MaxUint64/4,
				NewReserveOut: 667,
			},
		},
		{
			name:       "Input Dwarfs Reserves",
			amountIn:   1_000_000_000,
			minOut:     0,
			reserveIn:  100,
			reserveOut: 100,
			feeBps:     0,
			expected: Result{
				AmountOut:     99,
				NewReserveIn:  1_000_000_100,
				NewReserveOut: 1,
			},
		},
		{
			name:       "Truncates Toward Zero",
			amountIn:   1,
			minOut:     0,
			reserveIn:  3,
			reserveOut: 10,
			feeBps:     0,
			expected: Result{
				AmountOut:     2, // exact quotient is 2.5; output is never rounded up
				NewReserveIn:  4,
				NewReserveOut: 8,
			},
		},
		{
			name:       "Output Equal To Minimum Is Accepted",
			amountIn:   1000,
			minOut:     999,
			reserveIn:  1_000_000_000,
			reserveOut: 1_000_000_000,
			feeBps:     0,
			expected: Result{
				AmountOut:     999,
				NewReserveIn:  1_000_001_000,
				NewReserveOut: 999_999_001,
			},
		},
		{
			name:        "Output Below Minimum",
			amountIn:    1000,
			minOut:      1000,
			reserveIn:   1_000_000_000,
			reserveOut:  1_000_000_000,
			feeBps:      0,
			expectedErr: ErrSlippageExceeded,
		},
		{
			name:        "Zero Amount In",
			amountIn:    0,
			minOut:      0,
			reserveIn:   1_000_000_000,
			reserveOut:  1_000_000_000,
			feeBps:      30,
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "Zero Input Reserve",
			amountIn:    1000,
			minOut:      0,
			reserveIn:   0,
			reserveOut:  1_000_000_000,
			feeBps:      0,
			expectedErr: ErrInsufficientReserves,
		},
		{
			name:        "Zero Output Reserve",
			amountIn:    1000,
			minOut:      0,
			reserveIn:   1_000_000_000,
			reserveOut:  0,
			feeBps:      0,
			expectedErr: ErrInsufficientReserves,
		},
		{
			name:        "Fee At 100 Percent",
			amountIn:    1000,
			minOut:      0,
			reserveIn:   1_000_000_000,
			reserveOut:  1_000_000_000,
			feeBps:      10000,
			expectedErr: ErrInvalidFee,
		},
		{
			name:        "Input Reserve Update Overflows",
			amountIn:    math.MaxUint64,
			minOut:      0,
			reserveIn:   math.MaxUint64,
			reserveOut:  1000,
			feeBps:      0,
			expectedErr: ErrMathOverflow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Swap(tc.amountIn, tc.minOut, tc.reserveIn, tc.reserveOut, tc.feeBps)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

// TestSwap_FeeNeverIncreasesOutput pins the fee placement: deducting the fee
// from the input side can only reduce the output for identical reserves.
func TestSwap_FeeNeverIncreasesOutput(t *testing.T) {
	noFee, err := Swap(1000, 0, 1_000_000_000, 1_000_000_000, 0)
	require.NoError(t, err)

	for _, feeBps := range []uint16{1, 30, 100, 500, 9999} {
		withFee, err := Swap(1000, 0, 1_000_000_000, 1_000_000_000, feeBps)
		require.NoError(t, err)
		assert.LessOrEqual(t, withFee.AmountOut, noFee.AmountOut, "feeBps=%d", feeBps)
	}
}

// TestSwap_FailureReturnsZeroResult verifies a failed swap produces no result
// at all, so callers cannot accidentally commit partial reserve updates.
func TestSwap_FailureReturnsZeroResult(t *testing.T) {
	result, err := Swap(1000, math.MaxUint64, 1_000_000_000, 1_000_000_000, 0)
	require.ErrorIs(t, err, ErrSlippageExceeded)
	assert.Equal(t, Result{}, result)
}
