package stabby

// defaultPoolCapacity is the slot count a pool starts with.
const defaultPoolCapacity = 64

// anyPool is the type-erased view of a Pool the Registry keeps per component
// id. The concrete Pool[T] is recovered only inside the generic component
// functions, where T is known.
type anyPool interface {
	Size() int
	Resize(n int)
	Reset(index uint32)
	Clear()
}

var _ anyPool = &Pool[struct{}]{}

// Pool stores the values of one component type in a dense slice indexed
// directly by entity id. Slots of entities that do not have the component hold
// the zero value and must not be read without checking the entity signature.
type Pool[T any] struct {
	data []T
}

// NewPool creates a pool with size zero-valued slots.
func NewPool[T any](size int) *Pool[T] {
	if size < 0 {
		size = 0
	}
	return &Pool[T]{data: make([]T, size)}
}

// IsEmpty reports whether the pool has no slots.
func (p *Pool[T]) IsEmpty() bool {
	return len(p.data) == 0
}

// Size returns the slot count, not the number of entities holding a value.
func (p *Pool[T]) Size() int {
	return len(p.data)
}

// Resize grows the pool to at least n slots. Capacity at least doubles on
// growth so a run of sequential entity ids resizes O(log n) times. Resize never
// shrinks the pool.
func (p *Pool[T]) Resize(n int) {
	p.data = growSlice(p.data, n)
}

// Set writes value into slot index. The pool must already hold index.
func (p *Pool[T]) Set(index uint32, value T) {
	p.data[index] = value
}

// Get returns a pointer to slot index. The pointer stays valid until the next
// Resize that reallocates the backing slice.
func (p *Pool[T]) Get(index uint32) *T {
	return &p.data[index]
}

// Reset writes the zero value into slot index, if the pool holds it.
func (p *Pool[T]) Reset(index uint32) {
	if int(index) >= len(p.data) {
		return
	}
	var zero T
	p.data[index] = zero
}

// Clear drops every slot.
func (p *Pool[T]) Clear() {
	clear(p.data)
	p.data = nil
}
