package stabby

import (
	"reflect"

	"github.com/edwinsyarief/stabby/internal/assert"
)

// Resources holds at most one value per type, for state that belongs to the
// frame rather than to an entity: the asset store, the elapsed frame time, the
// screen size. Slots freed by RemoveResource are reused.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// SetResource stores value as the T resource, replacing any previous one.
func SetResource[T any](r *Resources, value *T) {
	assert.That(value != nil, "cannot store nil resource %s", reflect.TypeFor[T]())
	t := reflect.TypeFor[T]()
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if id, ok := r.types[t]; ok {
		r.items[id] = value
		return
	}
	var id int
	if n := len(r.freeIDs); n > 0 {
		id = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.items[id] = value
	} else {
		id = len(r.items)
		r.items = append(r.items, value)
	}
	r.types[t] = id
}

// GetResource returns the T resource and whether it exists.
func GetResource[T any](r *Resources) (*T, bool) {
	id, ok := r.types[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.items[id].(*T), true
}

// HasResource reports whether a T resource exists.
func HasResource[T any](r *Resources) bool {
	_, ok := r.types[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource drops the T resource if there is one.
func RemoveResource[T any](r *Resources) {
	t := reflect.TypeFor[T]()
	id, ok := r.types[t]
	if !ok {
		return
	}
	delete(r.types, t)
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.types)
}

// Clear drops every resource.
func (r *Resources) Clear() {
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}
