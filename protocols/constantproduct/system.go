package constantproduct

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrStalePool is returned when a caller's observed pool version no longer
// matches the current state. The request is rejected, never reordered; the
// caller decides whether to resubmit against fresh reserves.
var ErrStalePool = errors.New("constantproduct: observed reserves are stale")

// Logger defines a standard interface for structured, leveled logging.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SystemConfig holds the dependencies for a System.
type SystemConfig struct {
	Registry prometheus.Registerer // Required for metrics.
	Logger   Logger                // Required for logging.
}

// validate checks if the configuration is valid, ensuring required dependencies are present.
func (c *SystemConfig) validate() error {
	if c.Registry == nil {
		return errors.New("config: Registry cannot be nil")
	}
	if c.Logger == nil {
		return errors.New("config: Logger cannot be nil")
	}
	return nil
}

// System provides the concurrency-safe layer over the pool registry. Writes
// serialize on a sync.RWMutex; reads go through an atomic.Pointer to the last
// committed view, so quoting never contends with swapping. Each swap observes
// a consistent reserve snapshot and commits both post-swap reserves
// atomically, or changes nothing at all.
type System struct {
	mu         sync.RWMutex
	registry   *Registry
	cachedView atomic.Pointer[RegistryView]

	metrics *Metrics
	logger  Logger
}

// NewSystem creates an empty, concurrency-safe pool system.
func NewSystem(cfg *SystemConfig) (*System, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &System{
		registry: NewRegistry(),
		metrics:  NewMetrics(cfg.Registry),
		logger:   cfg.Logger,
	}
	s.cachedView.Store(s.registry.view())
	return s, nil
}

// NewSystemFromView restores a system from a snapshot view.
func NewSystemFromView(cfg *SystemConfig, view *RegistryView) (*System, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &System{
		registry: NewRegistryFromView(view),
		metrics:  NewMetrics(cfg.Registry),
		logger:   cfg.Logger,
	}
	s.cachedView.Store(s.registry.view())
	return s, nil
}

// updateCachedView generates a fresh view and atomically publishes it.
// Must be called with s.mu held for writing.
func (s *System) updateCachedView() {
	s.cachedView.Store(s.registry.view())
}

// View returns the latest committed snapshot without locking.
func (s *System) View() *RegistryView {
	return s.cachedView.Load()
}

// CreatePool validates and registers a new pool under the given ID.
func (s *System) CreatePool(id uint64, initialX, initialY uint64, feeBps uint16) error {
	pool, err := NewPool(initialX, initialY, feeBps)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.add(id, pool); err != nil {
		return err
	}
	s.updateCachedView()
	s.metrics.poolsCreated.Inc()
	s.logger.Info("pool created", "pool", id, "reserveX", initialX, "reserveY", initialY, "feeBps", feeBps)
	return nil
}

// Quote prices amountIn against the latest committed snapshot without taking
// the write lock. It returns the quoted output together with the pool version
// it was computed against, suitable for a later SwapIfCurrent.
func (s *System) Quote(id uint64, dir Direction, amountIn uint64) (amountOut uint64, version uint64, err error) {
	poolView, ok := s.View().Get(id)
	if !ok {
		return 0, 0, ErrPoolNotFound
	}
	pool := Pool{ReserveX: poolView.ReserveX, ReserveY: poolView.ReserveY, FeeBps: poolView.FeeBps}
	result, err := pool.Swap(dir, amountIn, 0)
	if err != nil {
		return 0, 0, err
	}
	return result.AmountOut, poolView.Version, nil
}

// Swap executes a swap against the pool's current reserves and commits the
// result. On any failure nothing is committed and the pool is unchanged.
func (s *System) Swap(id uint64, dir Direction, amountIn, minOut uint64) (SwapResult, error) {
	return s.swap(id, nil, dir, amountIn, minOut)
}

// SwapIfCurrent executes a swap only if the pool's version still equals the
// caller's observation, rejecting stale requests with ErrStalePool.
func (s *System) SwapIfCurrent(id, observedVersion uint64, dir Direction, amountIn, minOut uint64) (SwapResult, error) {
	return s.swap(id, &observedVersion, dir, amountIn, minOut)
}

func (s *System) swap(id uint64, observedVersion *uint64, dir Direction, amountIn, minOut uint64) (result SwapResult, err error) {
	timer := prometheus.NewTimer(s.metrics.swapDuration)
	defer func() {
		timer.ObserveDuration()
		s.metrics.swapsTotal.WithLabelValues(outcomeLabel(err)).Inc()
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	pool, version, err := s.registry.get(id)
	if err != nil {
		return SwapResult{}, err
	}
	if observedVersion != nil && *observedVersion != version {
		return SwapResult{}, ErrStalePool
	}

	result, err = pool.Swap(dir, amountIn, minOut)
	if err != nil {
		s.logger.Debug("swap rejected", "pool", id, "direction", dir.String(), "amountIn", amountIn, "error", err)
		return SwapResult{}, err
	}

	if err := s.registry.apply(id, result.NewReserveX, result.NewReserveY); err != nil {
		// get succeeded under the same lock, so the pool cannot have vanished.
		return SwapResult{}, err
	}
	s.updateCachedView()
	s.logger.Debug("swap committed",
		"pool", id, "direction", dir.String(),
		"amountIn", amountIn, "amountOut", result.AmountOut,
		"reserveX", result.NewReserveX, "reserveY", result.NewReserveY)
	return result, nil
}
