package asteroids

import (
	"errors"
	"fmt"
)

// PoolCapacity is the number of object records available to one game.
const PoolCapacity = 100

// Fatal pool conditions. They indicate a broken ownership invariant and are
// raised as panics wrapping these errors.
var (
	ErrPoolExhausted = errors.New("asteroids: object pool exhausted")
	ErrPoolOverflow  = errors.New("asteroids: object pool overflow")
	ErrStaleHandle   = errors.New("asteroids: stale object handle")
)

// Handle addresses an object in a Pool. The generation guards against use
// after release. The zero Handle is invalid.
type Handle struct {
	index int32 // slot + 1, so the zero value is invalid
	gen   uint32
}

// NoHandle is the invalid handle.
var NoHandle = Handle{}

// Valid reports whether h was returned by Acquire. It does not check that h
// is still owned.
func (h Handle) Valid() bool {
	return h.index > 0
}

// Slot returns the pool slot the handle refers to, or -1.
func (h Handle) Slot() int {
	return int(h.index) - 1
}

func (h Handle) String() string {
	if !h.Valid() {
		return "handle(none)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.Slot(), h.gen)
}

// Pool is a fixed-capacity arena of Object records with a free-list stack.
// Every slot is either on the free stack or owned by exactly one entity.
type Pool struct {
	objects [PoolCapacity]Object
	gens    [PoolCapacity]uint32
	owned   [PoolCapacity]bool
	free    [PoolCapacity]int32
	top     int // number of entries on the free stack
}

// NewPool returns a pool with every slot free.
func NewPool() *Pool {
	p := &Pool{}
	p.Reset()
	return p
}

// Reset returns every slot to the free stack and invalidates all handles.
func (p *Pool) Reset() {
	for i := range p.objects {
		p.objects[i] = Object{}
		p.owned[i] = false
		p.gens[i]++
	}
	// Push in reverse so slot 0 is acquired first.
	p.top = 0
	for i := PoolCapacity - 1; i >= 0; i-- {
		p.free[p.top] = int32(i)
		p.top++
	}
}

// Acquire pops a free slot. It panics with ErrPoolExhausted when none is left.
// The returned object keeps stale data from its previous owner; callers must
// reinitialize it with Object.Init.
func (p *Pool) Acquire() Handle {
	if p.top == 0 {
		panic(fmt.Errorf("%w: all %d objects in use", ErrPoolExhausted, PoolCapacity))
	}
	p.top--
	slot := p.free[p.top]
	p.owned[slot] = true
	return Handle{index: slot + 1, gen: p.gens[slot]}
}

// Release returns the slot behind h to the free stack and invalidates h.
// Releasing a free or stale handle panics with ErrStaleHandle, and releasing
// onto a full stack panics with ErrPoolOverflow.
func (p *Pool) Release(h Handle) {
	slot := p.checked(h)
	if p.top == PoolCapacity {
		panic(fmt.Errorf("%w: releasing %v", ErrPoolOverflow, h))
	}
	p.owned[slot] = false
	p.gens[slot]++
	p.objects[slot].Active = false
	p.free[p.top] = int32(slot)
	p.top++
}

// Get returns the object behind h. It panics with ErrStaleHandle if h is not
// currently owned.
func (p *Pool) Get(h Handle) *Object {
	return &p.objects[p.checked(h)]
}

// Owns reports whether h refers to a currently owned slot.
func (p *Pool) Owns(h Handle) bool {
	slot := h.Slot()
	return h.Valid() && slot < PoolCapacity && p.owned[slot] && p.gens[slot] == h.gen
}

// Free returns the number of slots on the free stack.
func (p *Pool) Free() int {
	return p.top
}

// Each calls fn for every owned, active object in slot order.
func (p *Pool) Each(fn func(*Object)) {
	for i := range p.objects {
		if p.owned[i] && p.objects[i].Active {
			fn(&p.objects[i])
		}
	}
}

func (p *Pool) checked(h Handle) int {
	if !p.Owns(h) {
		panic(fmt.Errorf("%w: %v", ErrStaleHandle, h))
	}
	return h.Slot()
}
