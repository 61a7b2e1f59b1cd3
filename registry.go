package stabby

import (
	"math"
	"reflect"

	"github.com/kelindar/bitmap"
	"github.com/rs/zerolog"

	"github.com/edwinsyarief/stabby/internal/assert"
)

// Registry owns entities, component pools, signatures and systems. It is the
// only writer of that state. Creating and killing entities, and changing which
// components a live entity has, are recorded immediately but reach the systems
// only at the next Update, so system entity lists never change while a frame
// iterates them.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	logger       zerolog.Logger
	poolCapacity int

	nextID     uint32      // ids handed out so far; ids are never reused
	pools      []anyPool   // component id -> pool, nil until the type is first added
	signatures []Signature // entity id -> component signature

	systems     []System             // registration order
	systemIndex map[reflect.Type]int // concrete system type -> index in systems
	newSystems  []System             // systems to back-fill at the next Update

	live        bitmap.Bitmap // entities visible to systems
	pendingAdd  bitmap.Bitmap // created since the last Update
	pendingKill bitmap.Bitmap // killed since the last Update
	changed     bitmap.Bitmap // live entities whose signature changed since the last Update

	frame     uint64
	resources *Resources
	events    *EventBus
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:       zerolog.Nop(),
		poolCapacity: defaultPoolCapacity,
		pools:        make([]anyPool, 0, 16),
		signatures:   make([]Signature, 0, defaultPoolCapacity),
		systems:      make([]System, 0, 8),
		systemIndex:  make(map[reflect.Type]int),
		resources:    &Resources{},
		events:       &EventBus{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateEntity allocates a new entity. The handle can receive components right
// away, but systems see it only after the next Update.
func (r *Registry) CreateEntity() Entity {
	assert.That(r.nextID < math.MaxUint32, "entity id space exhausted")

	e := Entity{ID: r.nextID}
	r.nextID++
	r.signatures = append(r.signatures, Signature{})
	r.pendingAdd.Set(e.ID)

	r.logger.Debug().Uint32("entity_id", e.ID).Msg("entity created")
	return e
}

// KillEntity queues e for destruction at the next Update. Killing an entity
// that does not exist, or killing it twice, does nothing more.
func (r *Registry) KillEntity(e Entity) {
	if !r.exists(e) {
		return
	}
	r.pendingKill.Set(e.ID)
	r.logger.Debug().Uint32("entity_id", e.ID).Msg("entity queued for removal")
}

// IsAlive reports whether e has been synchronized and not yet destroyed.
func (r *Registry) IsAlive(e Entity) bool {
	return r.live.Contains(e.ID)
}

// IsPending reports whether e was created since the last Update.
func (r *Registry) IsPending(e Entity) bool {
	return r.pendingAdd.Contains(e.ID)
}

// EntityCount returns the number of live entities.
func (r *Registry) EntityCount() int {
	return r.live.Count()
}

// Signature returns the component signature of e. Entities that do not exist
// have an empty signature.
func (r *Registry) Signature(e Entity) Signature {
	if !r.exists(e) {
		return Signature{}
	}
	return r.signatures[e.ID]
}

// Frame returns how many times Update has run.
func (r *Registry) Frame() uint64 {
	return r.frame
}

// Resources returns the registry's singleton store.
func (r *Registry) Resources() *Resources {
	return r.resources
}

// Events returns the registry's event bus.
func (r *Registry) Events() *EventBus {
	return r.events
}

// Update is the synchronization point and must run once per frame, after the
// frame's structural changes were issued and before systems are driven. In
// order it
//   - makes entities created since the last Update live and adds them to the
//     systems they satisfy,
//   - re-matches live entities whose signature changed, evicting them from
//     systems they no longer satisfy,
//   - back-fills systems registered since the last Update,
//   - destroys entities queued with KillEntity.
//
// Entities are handled in ascending id order. An entity created and killed
// within the same frame never becomes visible.
func (r *Registry) Update() {
	// Detach the pending sets so that event handlers running during the
	// synchronization queue their changes for the next frame.
	adds, kills, changed := r.pendingAdd, r.pendingKill, r.changed
	r.pendingAdd, r.pendingKill, r.changed = nil, nil, nil
	backfill := r.newSystems
	r.newSystems = nil

	added, killed := 0, 0
	adds.Range(func(id uint32) {
		if kills.Contains(id) {
			return
		}
		r.live.Set(id)
		r.AddEntityToSystems(Entity{ID: id})
		added++
	})

	changed.Range(func(id uint32) {
		if kills.Contains(id) || !r.live.Contains(id) {
			return
		}
		r.rematch(Entity{ID: id})
	})

	for _, sys := range backfill {
		// A re-registered instance may still hold entities from before its
		// removal.
		b := sys.base()
		b.reset()
		r.live.Range(func(id uint32) {
			if r.signatures[id].Contains(b.signature) {
				b.AddEntity(Entity{ID: id})
			}
		})
	}

	kills.Range(func(id uint32) {
		// Killed again by an EntityKilled handler after its destruction.
		if !r.live.Contains(id) && !adds.Contains(id) {
			return
		}
		r.destroy(Entity{ID: id})
		killed++
	})
	r.frame++

	if added > 0 || killed > 0 {
		r.logger.Debug().
			Uint64("frame", r.frame).
			Int("added", added).
			Int("killed", killed).
			Int("live", r.live.Count()).
			Msg("registry synchronized")
	}
}

// AddEntityToSystems adds e to every system whose required signature is
// contained in the signature of e and that does not already hold e. It never
// removes e from a system.
func (r *Registry) AddEntityToSystems(e Entity) {
	if int(e.ID) >= len(r.signatures) {
		return
	}
	sig := r.signatures[e.ID]
	for _, sys := range r.systems {
		b := sys.base()
		if sig.Contains(b.signature) {
			b.AddEntity(e)
		}
	}
}

// RemoveEntityFromSystems removes e from every system.
func (r *Registry) RemoveEntityFromSystems(e Entity) {
	for _, sys := range r.systems {
		sys.base().RemoveEntity(e)
	}
}

// rematch brings the membership of e in line with its current signature.
func (r *Registry) rematch(e Entity) {
	sig := r.signatures[e.ID]
	for _, sys := range r.systems {
		b := sys.base()
		if sig.Contains(b.signature) {
			b.AddEntity(e)
		} else {
			b.RemoveEntity(e)
		}
	}
}

// destroy resets every component slot of e, clears its signature, removes it
// from all systems and announces it on the event bus.
func (r *Registry) destroy(e Entity) {
	sig := &r.signatures[e.ID]
	had := *sig
	for _, id := range sig.IDs() {
		r.pools[id].Reset(e.ID)
	}
	sig.Reset()
	r.RemoveEntityFromSystems(e)
	r.live.Remove(e.ID)
	Publish(r.events, EntityKilled{Entity: e, Signature: had})

	r.logger.Debug().Uint32("entity_id", e.ID).Msg("entity destroyed")
}

// exists reports whether e is live or waiting for its first Update.
func (r *Registry) exists(e Entity) bool {
	return r.live.Contains(e.ID) || r.pendingAdd.Contains(e.ID)
}

// markChanged records that the signature of a live entity changed.
func (r *Registry) markChanged(e Entity) {
	if r.live.Contains(e.ID) {
		r.changed.Set(e.ID)
	}
}
