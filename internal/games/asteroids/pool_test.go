package asteroids

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, expected %v", r, target)
		}
	}()
	fn()
}

func TestPoolAcquireOrder(t *testing.T) {
	p := NewPool()
	if p.Free() != PoolCapacity {
		t.Fatalf("Free() = %d, expected %d", p.Free(), PoolCapacity)
	}

	h := p.Acquire()
	if h.Slot() != 0 {
		t.Errorf("first Acquire() slot = %d, expected 0", h.Slot())
	}
	if !p.Owns(h) {
		t.Error("Owns() = false for a fresh handle")
	}
	if p.Free() != PoolCapacity-1 {
		t.Errorf("Free() = %d, expected %d", p.Free(), PoolCapacity-1)
	}
}

func TestPoolReleaseReuse(t *testing.T) {
	p := NewPool()
	a := p.Acquire()
	p.Release(a)

	if p.Owns(a) {
		t.Error("Owns() = true after Release")
	}

	b := p.Acquire()
	if b.Slot() != a.Slot() {
		t.Errorf("Acquire() after Release slot = %d, expected %d", b.Slot(), a.Slot())
	}
	if b == a {
		t.Error("reused slot kept the same generation")
	}
}

func TestPoolExhausted(t *testing.T) {
	p := NewPool()
	for i := 0; i < PoolCapacity; i++ {
		p.Acquire()
	}
	expectPanic(t, ErrPoolExhausted, func() { p.Acquire() })
}

func TestPoolStaleHandle(t *testing.T) {
	p := NewPool()
	h := p.Acquire()
	p.Release(h)

	expectPanic(t, ErrStaleHandle, func() { p.Get(h) })
	expectPanic(t, ErrStaleHandle, func() { p.Release(h) })
	expectPanic(t, ErrStaleHandle, func() { p.Get(NoHandle) })
}

func TestPoolResetInvalidates(t *testing.T) {
	p := NewPool()
	h := p.Acquire()
	p.Get(h).Active = true
	p.Reset()

	if p.Owns(h) {
		t.Error("Owns() = true after Reset")
	}
	if p.Free() != PoolCapacity {
		t.Errorf("Free() = %d after Reset, expected %d", p.Free(), PoolCapacity)
	}

	count := 0
	p.Each(func(*Object) { count++ })
	if count != 0 {
		t.Errorf("Each() visited %d objects after Reset, expected 0", count)
	}
}

func TestPoolEachSkipsInactive(t *testing.T) {
	p := NewPool()
	a := p.Acquire()
	b := p.Acquire()
	p.Get(a).Init(bulletShape)
	p.Get(b).Init(bulletShape)
	p.Get(b).Active = true

	count := 0
	p.Each(func(*Object) { count++ })
	if count != 1 {
		t.Errorf("Each() visited %d objects, expected 1", count)
	}
}
