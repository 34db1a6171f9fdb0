package nes

import "github.com/golang/glog"

// Registry is an arena holding the components that call into each other:
// the CPU, the PPU and the mapper. The console holds strong handles, anything
// that needs to call back into a component (the CPU bus) holds weak ones.
//
// A slot is identified by its index and a generation. Destroying a slot bumps
// the generation, so weak handles to the old value stop resolving even if the
// slot is reused.
type Registry struct {
	slots []slot
}

type slot struct {
	name       string
	value      interface{}
	generation uint32
	owners     int
	borrowed   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Owned is a strong, reference counted handle to a registered component.
type Owned[T any] struct {
	r          *Registry
	index      int
	generation uint32
	released   bool
}

// Ref is a weak handle to a registered component, viewed as T.
// The zero Ref never resolves.
type Ref[T any] struct {
	r          *Registry
	index      int
	generation uint32
}

// Register stores v in the registry and returns the first owner of it.
func Register[T any](r *Registry, name string, v T) *Owned[T] {
	index := -1
	for i := range r.slots {
		if r.slots[i].owners == 0 {
			index = i
			break
		}
	}
	if index < 0 {
		r.slots = append(r.slots, slot{})
		index = len(r.slots) - 1
	}
	s := &r.slots[index]
	s.name = name
	s.value = v
	s.owners = 1
	s.borrowed = false
	glog.V(2).Infof("Registered %s: slot=%d, generation=%d", name, index, s.generation)
	return &Owned[T]{r: r, index: index, generation: s.generation}
}

// lookup returns the live slot, or nil when the generation no longer matches.
func (r *Registry) lookup(index int, generation uint32) *slot {
	if r == nil || index < 0 || index >= len(r.slots) {
		return nil
	}
	s := &r.slots[index]
	if s.generation != generation || s.owners == 0 {
		return nil
	}
	return s
}

// borrow resolves a slot for exclusive use.
func (r *Registry) borrow(index int, generation uint32, address uint16) (*slot, func()) {
	s := r.lookup(index, generation)
	if s == nil {
		raise(DanglingReference, address, "component in slot %d was destroyed", index)
	}
	if s.borrowed {
		raise(BorrowConflict, address, "%s is already held", s.name)
	}
	s.borrowed = true
	return s, func() {
		// the slot may have moved if the arena grew.
		if s := r.lookup(index, generation); s != nil {
			s.borrowed = false
		}
	}
}

// Borrow resolves the component for exclusive use by its owner. The returned
// func must be called once the caller is done with it.
func (o *Owned[T]) Borrow() (T, func()) {
	if o.released {
		raise(DanglingReference, 0, "borrow through a released handle")
	}
	s, done := o.r.borrow(o.index, o.generation, 0)
	return s.value.(T), done
}

// Clone adds an owner.
func (o *Owned[T]) Clone() *Owned[T] {
	s := o.r.lookup(o.index, o.generation)
	if o.released || s == nil {
		raise(DanglingReference, 0, "clone of a released handle")
	}
	s.owners++
	return &Owned[T]{r: o.r, index: o.index, generation: o.generation}
}

// Release drops this owner. The component is destroyed when the last owner is
// released.
func (o *Owned[T]) Release() {
	s := o.r.lookup(o.index, o.generation)
	if o.released || s == nil {
		raise(DanglingReference, 0, "double release of slot %d", o.index)
	}
	o.released = true
	s.owners--
	if s.owners > 0 {
		return
	}
	glog.V(2).Infof("Destroyed %s: slot=%d, generation=%d", s.name, o.index, s.generation)
	s.value = nil
	s.borrowed = false
	s.generation++
}

// Downgrade creates a weak handle to the component held by o, viewed as U.
// The component must implement U, this is checked on every Borrow.
func Downgrade[U, T any](o *Owned[T]) Ref[U] {
	return Ref[U]{r: o.r, index: o.index, generation: o.generation}
}

// Alive reports whether the handle still resolves.
func (w Ref[T]) Alive() bool {
	return w.r.lookup(w.index, w.generation) != nil
}

// Borrow resolves the handle for exclusive use. address is only used to
// describe the fault when resolution fails.
func (w Ref[T]) Borrow(address uint16) (T, func()) {
	if w.r == nil {
		raise(DanglingReference, address, "unbound reference")
	}
	s, done := w.r.borrow(w.index, w.generation, address)
	v, ok := s.value.(T)
	if !ok {
		done()
		raise(DanglingReference, address, "%s does not provide the requested interface", s.name)
	}
	return v, done
}
