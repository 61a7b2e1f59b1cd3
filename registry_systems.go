package stabby

import (
	"reflect"

	"github.com/rotisserie/eris"

	"github.com/edwinsyarief/stabby/internal/assert"
)

// AddSystem registers sys under its concrete type and returns it. A system of
// the same type that is already registered is replaced in place, keeping its
// position in the processing order. Live entities are matched against sys at
// the next Update.
func AddSystem[S System](r *Registry, sys S) S {
	t := reflect.TypeOf(sys)
	assert.That(t != nil, "cannot add a nil system")

	if i, ok := r.systemIndex[t]; ok {
		r.dropNewSystem(r.systems[i])
		r.systems[i] = sys
	} else {
		r.systemIndex[t] = len(r.systems)
		r.systems = append(r.systems, sys)
	}
	r.newSystems = append(r.newSystems, sys)

	r.logger.Debug().
		Str("system", t.String()).
		Int("required_components", sys.base().signature.Count()).
		Msg("system added")
	return sys
}

// RemoveSystem unregisters the system of type S. Removing a system that is not
// registered does nothing.
func RemoveSystem[S System](r *Registry) {
	t := reflect.TypeFor[S]()
	i, ok := r.systemIndex[t]
	if !ok {
		return
	}
	r.dropNewSystem(r.systems[i])
	r.systems[i].base().reset()
	r.systems = append(r.systems[:i], r.systems[i+1:]...)
	delete(r.systemIndex, t)
	for j := i; j < len(r.systems); j++ {
		r.systemIndex[reflect.TypeOf(r.systems[j])] = j
	}
	r.logger.Debug().Str("system", t.String()).Msg("system removed")
}

// HasSystem reports whether a system of type S is registered.
func HasSystem[S System](r *Registry) bool {
	_, ok := r.systemIndex[reflect.TypeFor[S]()]
	return ok
}

// GetSystem returns the registered system of type S. Asking for a type that
// was never registered is a programming error and panics; guard with
// HasSystem or use LookupSystem.
func GetSystem[S System](r *Registry) S {
	sys, err := LookupSystem[S](r)
	assert.That(err == nil, "system %s is not registered", reflect.TypeFor[S]())
	return sys
}

// LookupSystem returns the registered system of type S or an error wrapping
// ErrSystemNotFound.
func LookupSystem[S System](r *Registry) (S, error) {
	t := reflect.TypeFor[S]()
	i, ok := r.systemIndex[t]
	if !ok {
		var zero S
		return zero, eris.Wrapf(ErrSystemNotFound, "system %s", t)
	}
	return r.systems[i].(S), nil
}

// SystemCount returns the number of registered systems.
func (r *Registry) SystemCount() int {
	return len(r.systems)
}

// dropNewSystem forgets a pending back-fill for sys.
func (r *Registry) dropNewSystem(sys System) {
	for i, s := range r.newSystems {
		if s == sys {
			r.newSystems = append(r.newSystems[:i], r.newSystems[i+1:]...)
			return
		}
	}
}
