package stabby

// Components.

type Position struct{ X, Y float64 }

type Velocity struct{ X, Y float64 }

type Health struct{ Value int }

type Tag struct{}

type Owner struct{ Name *string }

// Systems.

type movementSystem struct {
	BaseSystem
}

func newMovementSystem() *movementSystem {
	s := &movementSystem{}
	RequireComponent[Position](&s.BaseSystem)
	RequireComponent[Velocity](&s.BaseSystem)
	return s
}

type healthSystem struct {
	BaseSystem
}

func newHealthSystem() *healthSystem {
	s := &healthSystem{}
	RequireComponent[Health](&s.BaseSystem)
	return s
}

// everythingSystem requires no component and therefore matches every entity.
type everythingSystem struct {
	BaseSystem
}
