package stabby

// System is implemented by every type that embeds BaseSystem. The Registry
// keeps one System per concrete type and fills its entity list at each
// synchronization point.
type System interface {
	base() *BaseSystem
}

// BaseSystem holds the required component signature of a system and the
// entities currently matching it. It owns no component data. Embed it in a
// concrete system:
//
//	type MovementSystem struct {
//		stabby.BaseSystem
//	}
//
//	func NewMovementSystem() *MovementSystem {
//		s := &MovementSystem{}
//		stabby.RequireComponent[Transform](&s.BaseSystem)
//		stabby.RequireComponent[RigidBody](&s.BaseSystem)
//		return s
//	}
type BaseSystem struct {
	signature Signature
	entities  []Entity
	index     map[Entity]int // entity -> position in entities
}

func (s *BaseSystem) base() *BaseSystem {
	return s
}

// RequireComponent adds component type T to the signature of s. Calls for
// different types may come in any order.
func RequireComponent[T any](s *BaseSystem) {
	s.signature.Set(ComponentTypeID[T]())
}

// GetComponentSignature returns the required signature.
func (s *BaseSystem) GetComponentSignature() Signature {
	return s.signature
}

// AddEntity appends e to the matched entities unless it is already there.
func (s *BaseSystem) AddEntity(e Entity) {
	if s.index == nil {
		s.index = make(map[Entity]int)
	}
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
}

// RemoveEntity removes e from the matched entities. Removing an entity that is
// not matched does nothing. The relative order of the remaining entities is
// kept.
func (s *BaseSystem) RemoveEntity(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)
	copy(s.entities[i:], s.entities[i+1:])
	s.entities = s.entities[:len(s.entities)-1]
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
}

// reset forgets every matched entity.
func (s *BaseSystem) reset() {
	s.entities = s.entities[:0]
	clear(s.index)
}

// HasEntity reports whether e is matched.
func (s *BaseSystem) HasEntity(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// GetEntities returns a copy of the matched entities, safe to iterate while
// the caller mutates components or queues entities for removal.
func (s *BaseSystem) GetEntities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// EntityCount returns the number of matched entities.
func (s *BaseSystem) EntityCount() int {
	return len(s.entities)
}
