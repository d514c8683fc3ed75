package constantproduct

import "errors"

var (
	// ErrEmptyReserve is returned when a pool would start with an empty side.
	ErrEmptyReserve = errors.New("constantproduct: initial reserves must be greater than zero")
	// ErrInvalidFee is returned when the fee rate is not below 10000 basis points.
	ErrInvalidFee = errors.New("constantproduct: fee must be below 10000 basis points")
)

// Pool holds the two reserve balances and the fee rate fixed at creation.
// Both reserves move together on a successful swap; there is no per-side
// setter, and a pool with a zero reserve rejects trades.
type Pool struct {
	ReserveX uint64 `json:"reserveX"`
	ReserveY uint64 `json:"reserveY"`
	FeeBps   uint16 `json:"feeBps"`
}

// NewPool validates and creates a pool. A pool cannot start with an empty
// side, and the fee must be strictly below 100%.
func NewPool(initialX, initialY uint64, feeBps uint16) (Pool, error) {
	if initialX == 0 || initialY == 0 {
		return Pool{}, ErrEmptyReserve
	}
	if feeBps >= 10000 {
		return Pool{}, ErrInvalidFee
	}
	return Pool{
		ReserveX: initialX,
		ReserveY: initialY,
		FeeBps:   feeBps,
	}, nil
}

// Apply unconditionally overwrites both reserves. It is the only mutation
// path; callers must have validated the values via the calculator first.
func (p *Pool) Apply(newX, newY uint64) {
	p.ReserveX = newX
	p.ReserveY = newY
}
