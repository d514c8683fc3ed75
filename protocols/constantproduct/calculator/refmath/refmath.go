// Package refmath is a maximum-precision reference implementation of the
// constant-product formula, used to cross-check the production calculator in
// tests. It must never be imported by a production package: it trades speed
// for exactness and performs no range validation of its own.
package refmath

import "math/big"

var basisPointDivisor = big.NewInt(10000)

// AmountOut computes the exact constant-product output at unbounded precision,
// truncated toward zero, with the fee applied to the input side by formula
// scaling:
//
//	out = (amountIn * (10000 - feeBps) * reserveOut) /
//	      (reserveIn * 10000 + amountIn * (10000 - feeBps))
//
// The result may exceed the uint64 range; callers compare against what the
// production path narrowed or rejected.
func AmountOut(amountIn, reserveIn, reserveOut uint64, feeBps uint16) *big.Int {
	amountInWithFee := new(big.Int).Mul(
		new(big.Int).SetUint64(amountIn),
		new(big.Int).Sub(basisPointDivisor, big.NewInt(int64(feeBps))),
	)
	numerator := new(big.Int).Mul(amountInWithFee, new(big.Int).SetUint64(reserveOut))
	denominator := new(big.Int).Add(
		new(big.Int).Mul(new(big.Int).SetUint64(reserveIn), basisPointDivisor),
		amountInWithFee,
	)
	if denominator.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Quo(numerator, denominator)
}

// K returns the constant product reserveX * reserveY at unbounded precision.
func K(reserveX, reserveY uint64) *big.Int {
	return new(big.Int).Mul(
		new(big.Int).SetUint64(reserveX),
		new(big.Int).SetUint64(reserveY),
	)
}
