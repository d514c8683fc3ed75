package constantproduct

import "errors"

var (
	// ErrPoolExists is returned when creating a pool under an ID already in use.
	ErrPoolExists = errors.New("constantproduct: pool already exists")
	// ErrPoolNotFound is returned when an operation names an unknown pool.
	ErrPoolNotFound = errors.New("constantproduct: pool not found")
)

// PoolView is an immutable snapshot of a single pool. Version increases by
// one on every committed swap, so a caller can detect that the reserves it
// quoted against have moved.
type PoolView struct {
	ID       uint64 `json:"id"`
	ReserveX uint64 `json:"reserveX"`
	ReserveY uint64 `json:"reserveY"`
	FeeBps   uint16 `json:"feeBps"`
	Version  uint64 `json:"version"`
}

// RegistryView provides a complete snapshot of the registry's pools.
type RegistryView struct {
	Pools []PoolView `json:"pools"`

	index map[uint64]int
}

// Get returns the snapshot of the pool with the given ID.
func (v *RegistryView) Get(id uint64) (PoolView, bool) {
	if v.index != nil {
		i, ok := v.index[id]
		if !ok {
			return PoolView{}, false
		}
		return v.Pools[i], true
	}
	// Deserialized views carry no index; fall back to a scan.
	for _, pool := range v.Pools {
		if pool.ID == id {
			return pool, true
		}
	}
	return PoolView{}, false
}

// Registry is a simple, non-thread-safe container for pool state. Core data
// lives in parallel slices for cache-friendly access with an ID index on the
// side; concurrency is layered on top by System.
type Registry struct {
	poolToIndex map[uint64]int

	ids      []uint64
	pools    []Pool
	versions []uint64
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{
		poolToIndex: make(map[uint64]int),
		ids:         make([]uint64, 0),
		pools:       make([]Pool, 0),
		versions:    make([]uint64, 0),
	}
}

// NewRegistryFromView reconstructs a registry from a snapshot. The view data
// is copied so the new registry has full ownership of its memory.
func NewRegistryFromView(view *RegistryView) *Registry {
	r := &Registry{
		poolToIndex: make(map[uint64]int, len(view.Pools)),
		ids:         make([]uint64, len(view.Pools)),
		pools:       make([]Pool, len(view.Pools)),
		versions:    make([]uint64, len(view.Pools)),
	}
	for i, pool := range view.Pools {
		r.poolToIndex[pool.ID] = i
		r.ids[i] = pool.ID
		r.pools[i] = Pool{ReserveX: pool.ReserveX, ReserveY: pool.ReserveY, FeeBps: pool.FeeBps}
		r.versions[i] = pool.Version
	}
	return r
}

// add registers a pool under the given ID.
func (r *Registry) add(id uint64, pool Pool) error {
	if _, exists := r.poolToIndex[id]; exists {
		return ErrPoolExists
	}
	r.poolToIndex[id] = len(r.ids)
	r.ids = append(r.ids, id)
	r.pools = append(r.pools, pool)
	r.versions = append(r.versions, 0)
	return nil
}

// get returns the pool and its current version.
func (r *Registry) get(id uint64) (Pool, uint64, error) {
	i, exists := r.poolToIndex[id]
	if !exists {
		return Pool{}, 0, ErrPoolNotFound
	}
	return r.pools[i], r.versions[i], nil
}

// apply commits new reserves for a pool and bumps its version. Both reserves
// are overwritten together; there is no partial update.
func (r *Registry) apply(id uint64, newX, newY uint64) error {
	i, exists := r.poolToIndex[id]
	if !exists {
		return ErrPoolNotFound
	}
	r.pools[i].Apply(newX, newY)
	r.versions[i]++
	return nil
}

// view generates a fresh snapshot of all pools.
func (r *Registry) view() *RegistryView {
	pools := make([]PoolView, len(r.ids))
	index := make(map[uint64]int, len(r.ids))
	for i, id := range r.ids {
		pools[i] = PoolView{
			ID:       id,
			ReserveX: r.pools[i].ReserveX,
			ReserveY: r.pools[i].ReserveY,
			FeeBps:   r.pools[i].FeeBps,
			Version:  r.versions[i],
		}
		index[id] = i
	}
	return &RegistryView{Pools: pools, index: index}
}
