// Package stabby provides a small, data-oriented Entity-Component-System core.
//
// A Registry hands out entity handles, stores typed component values in dense
// per-type pools indexed by entity id, and routes entities to systems whose
// required signature they satisfy. Structural changes (entity creation and
// destruction, component attach and detach) become visible to systems only at
// the next call to Registry.Update.
package stabby

import "strconv"

// Entity is an opaque handle to a game object. It carries no data; the ID is a
// key into the component pools and the signature table of the Registry that
// created it.
type Entity struct {
	// ID is assigned sequentially by Registry.CreateEntity and never reused.
	ID uint32
}

// Less reports whether e sorts before other.
func (e Entity) Less(other Entity) bool {
	return e.ID < other.ID
}

// String returns the handle in "entity(<id>)" form.
func (e Entity) String() string {
	return "entity(" + strconv.FormatUint(uint64(e.ID), 10) + ")"
}
