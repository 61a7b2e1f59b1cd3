package stabby

import "github.com/rotisserie/eris"

var (
	// ErrEntityNotFound is returned when an entity is neither live nor pending.
	ErrEntityNotFound = eris.New("entity does not exist")

	// ErrComponentNotFound is returned when an entity does not have the
	// requested component type.
	ErrComponentNotFound = eris.New("component does not exist")

	// ErrSystemNotFound is returned when no system of the requested type is
	// registered.
	ErrSystemNotFound = eris.New("system does not exist")
)
