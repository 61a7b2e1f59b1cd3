package systems

import (
	"github.com/gdamore/tcell/v2"

	"github.com/edwinsyarief/stabby"
	"github.com/edwinsyarief/stabby/internal/components"
)

// KeyEvent is published on the registry event bus for every key press the
// game receives.
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
}

// ControlSystem steers player entities from key events.
type ControlSystem struct {
	stabby.BaseSystem

	speed  float64
	vx, vy float64
	dirty  bool
}

// NewControlSystem creates a control system moving players at speed cells per
// second and subscribes it to key events on r.
func NewControlSystem(r *stabby.Registry, speed float64) *ControlSystem {
	s := &ControlSystem{speed: speed}
	stabby.RequireComponent[components.RigidBody](&s.BaseSystem)
	stabby.RequireComponent[components.Player](&s.BaseSystem)
	stabby.Subscribe(r.Events(), s.onKey)
	return s
}

func (s *ControlSystem) onKey(ev KeyEvent) {
	vx, vy := s.vx, s.vy
	switch {
	case ev.Key == tcell.KeyUp || ev.Rune == 'k' || ev.Rune == 'w':
		vx, vy = 0, -s.speed
	case ev.Key == tcell.KeyDown || ev.Rune == 'j' || ev.Rune == 's':
		vx, vy = 0, s.speed
	case ev.Key == tcell.KeyLeft || ev.Rune == 'h' || ev.Rune == 'a':
		vx, vy = -s.speed, 0
	case ev.Key == tcell.KeyRight || ev.Rune == 'l' || ev.Rune == 'd':
		vx, vy = s.speed, 0
	case ev.Rune == ' ':
		vx, vy = 0, 0
	default:
		return
	}
	s.vx, s.vy, s.dirty = vx, vy, true
}

// Velocity returns the velocity applied to players.
func (s *ControlSystem) Velocity() (vx, vy float64) {
	return s.vx, s.vy
}

// Update applies the last requested direction to every player.
func (s *ControlSystem) Update(r *stabby.Registry) {
	if !s.dirty {
		return
	}
	for _, e := range s.GetEntities() {
		rb := stabby.GetComponent[components.RigidBody](r, e)
		rb.VX, rb.VY = s.vx, s.vy
	}
	s.dirty = false
}
