package stabby

import (
	"reflect"
	"sync"

	"github.com/edwinsyarief/stabby/internal/assert"
)

// ComponentID is the dense identifier assigned to a component type.
type ComponentID uint8

// MaxComponents is the number of distinct component types a process may use.
// It is also the width of a Signature.
const MaxComponents = 128

// typeRegistry assigns component identifiers on first use. Identifiers are
// never freed or reordered.
type typeRegistry struct {
	mu    sync.RWMutex
	ids   map[reflect.Type]ComponentID
	types []reflect.Type
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{ids: make(map[reflect.Type]ComponentID, 16)}
}

// componentTypes is shared by every Registry in the process, so all of them
// agree on identifiers.
var componentTypes = newTypeRegistry()

// ComponentTypeID returns the identifier of component type T, allocating the
// next free one the first time T is seen. It panics once more than
// MaxComponents distinct types have been requested.
func ComponentTypeID[T any]() ComponentID {
	return componentTypes.id(reflect.TypeFor[T]())
}

// ComponentTypeName returns the Go type name registered under id, or an empty
// string if id has not been assigned.
func ComponentTypeName(id ComponentID) string {
	return componentTypes.name(id)
}

// RegisteredComponentCount returns how many component types have been assigned
// an identifier so far.
func RegisteredComponentCount() int {
	return componentTypes.count()
}

func (tr *typeRegistry) id(t reflect.Type) ComponentID {
	tr.mu.RLock()
	id, ok := tr.ids[t]
	tr.mu.RUnlock()
	if ok {
		return id
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()
	// Another caller may have registered t between the two locks.
	if id, ok := tr.ids[t]; ok {
		return id
	}
	next := len(tr.types)
	assert.That(next < MaxComponents,
		"cannot register component %s: maximum number of component types (%d) reached", t, MaxComponents)

	id = ComponentID(next)
	tr.ids[t] = id
	tr.types = append(tr.types, t)
	return id
}

// lookup returns the identifier of t without assigning one.
func (tr *typeRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	id, ok := tr.ids[t]
	return id, ok
}

func (tr *typeRegistry) name(id ComponentID) string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	if int(id) >= len(tr.types) {
		return ""
	}
	return tr.types[id].String()
}

func (tr *typeRegistry) count() int {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return len(tr.types)
}

func lookupComponentTypeID(t reflect.Type) (ComponentID, bool) {
	return componentTypes.lookup(t)
}
