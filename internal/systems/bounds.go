package systems

import (
	"github.com/edwinsyarief/stabby"
	"github.com/edwinsyarief/stabby/internal/components"
)

// BoundsSystem destroys bounded entities that left the map.
type BoundsSystem struct {
	stabby.BaseSystem
}

// NewBoundsSystem requires Transform and Bounded.
func NewBoundsSystem() *BoundsSystem {
	s := &BoundsSystem{}
	stabby.RequireComponent[components.Transform](&s.BaseSystem)
	stabby.RequireComponent[components.Bounded](&s.BaseSystem)
	return s
}

// Update queues every entity outside [0,width)x[0,height) for removal and
// returns how many were queued. They disappear at the next registry Update.
func (s *BoundsSystem) Update(r *stabby.Registry, width, height int) int {
	killed := 0
	for _, e := range s.GetEntities() {
		t := stabby.GetComponent[components.Transform](r, e)
		if t.X < 0 || t.Y < 0 || t.X >= float64(width) || t.Y >= float64(height) {
			r.KillEntity(e)
			killed++
		}
	}
	return killed
}
