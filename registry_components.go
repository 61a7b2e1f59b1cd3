package stabby

import (
	"reflect"

	"github.com/rotisserie/eris"

	"github.com/edwinsyarief/stabby/internal/assert"
)

// AddComponent stores value as the T component of e and returns a pointer to
// the stored value. The pool for T is created on first use and grown to cover
// e. Adding a component the entity already has overwrites it. System
// membership is updated at the next Update.
//
// The returned pointer is invalidated when a later AddComponent grows the
// pool. Adding to an entity that does not exist returns nil.
func AddComponent[T any](r *Registry, e Entity, value T) *T {
	if !r.exists(e) {
		r.logger.Warn().Uint32("entity_id", e.ID).Msg("component added to unknown entity ignored")
		return nil
	}

	id := ComponentTypeID[T]()
	p := poolOf[T](r, id, true)
	if int(e.ID) >= p.Size() {
		p.Resize(int(e.ID) + 1)
	}
	p.Set(e.ID, value)

	sig := &r.signatures[e.ID]
	if !sig.Test(id) {
		sig.Set(id)
		r.markChanged(e)
	}

	if ev := r.logger.Debug(); ev.Enabled() {
		ev.Uint32("entity_id", e.ID).
			Uint8("component_id", uint8(id)).
			Str("component", ComponentTypeName(id)).
			Msg("component added")
	}
	return p.Get(e.ID)
}

// RemoveComponent clears the T bit of e and writes the zero value into its
// slot. Removing a component the entity does not have does nothing.
func RemoveComponent[T any](r *Registry, e Entity) {
	id, ok := lookupComponentTypeID(reflect.TypeFor[T]())
	if !ok || !r.exists(e) {
		return
	}
	sig := &r.signatures[e.ID]
	if !sig.Test(id) {
		return
	}
	sig.Unset(id)
	r.pools[id].Reset(e.ID)
	r.markChanged(e)

	if ev := r.logger.Debug(); ev.Enabled() {
		ev.Uint32("entity_id", e.ID).
			Uint8("component_id", uint8(id)).
			Str("component", ComponentTypeName(id)).
			Msg("component removed")
	}
}

// HasComponent reports whether e currently has a T component.
func HasComponent[T any](r *Registry, e Entity) bool {
	id, ok := lookupComponentTypeID(reflect.TypeFor[T]())
	if !ok || int(e.ID) >= len(r.signatures) {
		return false
	}
	return r.signatures[e.ID].Test(id)
}

// GetComponent returns a pointer to the T component of e. Calling it for an
// entity without T is a programming error and panics; guard with HasComponent
// or use LookupComponent when absence is expected.
func GetComponent[T any](r *Registry, e Entity) *T {
	assert.That(HasComponent[T](r, e), "%s has no component %s", e, reflect.TypeFor[T]())
	return poolOf[T](r, ComponentTypeID[T](), false).Get(e.ID)
}

// LookupComponent returns a pointer to the T component of e, or an error
// wrapping ErrEntityNotFound or ErrComponentNotFound.
func LookupComponent[T any](r *Registry, e Entity) (*T, error) {
	if !r.exists(e) {
		return nil, eris.Wrapf(ErrEntityNotFound, "%s", e)
	}
	if !HasComponent[T](r, e) {
		return nil, eris.Wrapf(ErrComponentNotFound, "component %s on %s", reflect.TypeFor[T](), e)
	}
	return poolOf[T](r, ComponentTypeID[T](), false).Get(e.ID), nil
}

// ComponentPool returns the pool backing component type T, or nil if no entity
// of r has received a T yet. Slots must only be read for entities whose
// signature has the T bit set.
func ComponentPool[T any](r *Registry) *Pool[T] {
	id, ok := lookupComponentTypeID(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	return poolOf[T](r, id, false)
}

// poolOf returns the pool for component id, creating it when create is set.
// This is the only place the erased pool is converted back to its type.
func poolOf[T any](r *Registry, id ComponentID, create bool) *Pool[T] {
	if int(id) >= len(r.pools) {
		if !create {
			return nil
		}
		r.pools = append(r.pools, make([]anyPool, int(id)+1-len(r.pools))...)
	}
	if r.pools[id] == nil {
		if !create {
			return nil
		}
		r.pools[id] = NewPool[T](r.poolCapacity)
	}
	p, ok := r.pools[id].(*Pool[T])
	assert.That(ok, "pool %d does not hold %s", id, reflect.TypeFor[T]())
	return p
}
