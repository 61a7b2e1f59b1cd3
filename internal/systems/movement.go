// Package systems holds the game systems. Each embeds stabby.BaseSystem and is
// driven explicitly by the game loop after the registry has synchronized.
package systems

import (
	"github.com/edwinsyarief/stabby"
	"github.com/edwinsyarief/stabby/internal/components"
)

// MovementSystem integrates positions from velocities.
type MovementSystem struct {
	stabby.BaseSystem
}

// NewMovementSystem requires Transform and RigidBody.
func NewMovementSystem() *MovementSystem {
	s := &MovementSystem{}
	stabby.RequireComponent[components.Transform](&s.BaseSystem)
	stabby.RequireComponent[components.RigidBody](&s.BaseSystem)
	return s
}

// Update advances every entity by dt seconds.
func (s *MovementSystem) Update(r *stabby.Registry, dt float64) {
	transforms := stabby.ComponentPool[components.Transform](r)
	bodies := stabby.ComponentPool[components.RigidBody](r)
	if transforms == nil || bodies == nil {
		return
	}
	for _, e := range s.GetEntities() {
		t := transforms.Get(e.ID)
		rb := bodies.Get(e.ID)
		t.X += rb.VX * dt
		t.Y += rb.VY * dt
	}
}
