package stabby

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentTypeID_Idempotent(t *testing.T) {
	t.Parallel()

	first := ComponentTypeID[Position]()
	for range 10 {
		assert.Equal(t, first, ComponentTypeID[Position]())
	}
	assert.Equal(t, "stabby.Position", ComponentTypeName(first))
}

func TestComponentTypeID_DistinctTypes(t *testing.T) {
	t.Parallel()

	ids := map[ComponentID]string{
		ComponentTypeID[Position](): "Position",
		ComponentTypeID[Velocity](): "Velocity",
		ComponentTypeID[Health]():   "Health",
		ComponentTypeID[Tag]():      "Tag",
		ComponentTypeID[*Health]():  "*Health",
	}
	assert.Len(t, ids, 5)
	assert.GreaterOrEqual(t, RegisteredComponentCount(), 5)
}

func TestComponentTypeName_Unassigned(t *testing.T) {
	t.Parallel()

	tr := newTypeRegistry()
	assert.Empty(t, tr.name(0))
}

func TestTypeRegistry_DenseAndMonotonic(t *testing.T) {
	t.Parallel()

	tr := newTypeRegistry()
	types := []reflect.Type{
		reflect.TypeFor[Position](),
		reflect.TypeFor[Velocity](),
		reflect.TypeFor[Health](),
	}
	for i, typ := range types {
		assert.Equal(t, ComponentID(i), tr.id(typ))
	}
	// Asking again never reorders.
	for i := len(types) - 1; i >= 0; i-- {
		assert.Equal(t, ComponentID(i), tr.id(types[i]))
	}

	_, ok := tr.lookup(reflect.TypeFor[Tag]())
	assert.False(t, ok, "lookup must not assign an identifier")
	assert.Equal(t, 3, tr.count())
}

func TestTypeRegistry_CapacityExhausted(t *testing.T) {
	t.Parallel()

	tr := newTypeRegistry()
	for i := range MaxComponents {
		typ := reflect.ArrayOf(i+1, reflect.TypeFor[byte]())
		require.Equal(t, ComponentID(i), tr.id(typ))
	}

	assert.PanicsWithValue(t,
		"cannot register component [129]uint8: maximum number of component types (128) reached",
		func() { tr.id(reflect.ArrayOf(MaxComponents+1, reflect.TypeFor[byte]())) })

	// Known types keep resolving after the limit is hit.
	assert.Equal(t, ComponentID(0), tr.id(reflect.ArrayOf(1, reflect.TypeFor[byte]())))
}
