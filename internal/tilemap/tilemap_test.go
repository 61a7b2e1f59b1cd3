package tilemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/stabby"
	"github.com/edwinsyarief/stabby/internal/components"
)

const testMap = `{
	"name": "test",
	"rows": [
		"#####",
		"#..T#",
		"#####"
	],
	"legend": {"#": "wall", "T": "tree", ".": ""},
	"spawns": [
		{"asset": "tank", "x": 1, "y": 1, "vx": 2, "player": true},
		{"asset": "bullet", "x": 2, "y": 1, "vy": -3, "z": 5, "bounded": true}
	]
}`

func TestParse(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(testMap))
	require.NoError(t, err)

	w, h := m.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, "test", m.Name)
	require.Len(t, m.Spawns, 2)
	assert.True(t, m.Spawns[0].Player)
	require.NotNil(t, m.Spawns[1].Z)
	assert.Equal(t, 5, *m.Spawns[1].Z)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"rows": [`},
		{name: "no rows", data: `{"rows": []}`},
		{name: "wide legend key", data: `{"rows": ["#"], "legend": {"##": "wall"}}`},
		{name: "spawn without asset", data: `{"rows": ["..."], "spawns": [{"x": 1}]}`},
		{name: "spawn outside", data: `{"rows": ["..."], "spawns": [{"asset": "tank", "x": 3}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

const testTOMLMap = `
name = "cave"
rows = [
  "~~~",
  "~.~",
]

[legend]
"~" = "water"

[[spawns]]
asset = "tank"
x = 1.0
y = 1.0
vx = 0.5
player = true
`

func TestParseTOML(t *testing.T) {
	t.Parallel()

	m, err := ParseTOML([]byte(testTOMLMap))
	require.NoError(t, err)

	assert.Equal(t, "cave", m.Name)
	assert.Equal(t, map[string]string{"~": "water"}, m.Legend)
	require.Len(t, m.Spawns, 1)
	assert.Equal(t, "tank", m.Spawns[0].Asset)
	assert.InDelta(t, 0.5, m.Spawns[0].VX, 1e-9)
	assert.True(t, m.Spawns[0].Player)

	r := stabby.NewRegistry()
	tiles, spawned := Build(r, m)
	assert.Equal(t, 5, tiles)
	assert.Len(t, spawned, 1)

	_, err = ParseTOML([]byte("rows = ["))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(path, []byte(testMap), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Rows, 3)

	tomlPath := filepath.Join(t.TempDir(), "cave.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(testTOMLMap), 0o600))
	m, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "cave", m.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(testMap))
	require.NoError(t, err)

	r := stabby.NewRegistry()
	tiles, spawned := Build(r, m)

	// 12 walls and 1 tree; "." maps to an empty asset.
	assert.Equal(t, 13, tiles)
	require.Len(t, spawned, 2)
	assert.Zero(t, r.EntityCount())

	r.Update()
	assert.Equal(t, 15, r.EntityCount())

	tank := spawned[0]
	assert.True(t, stabby.HasComponent[components.Player](r, tank))
	assert.False(t, stabby.HasComponent[components.Bounded](r, tank))
	assert.Equal(t, components.Sprite{AssetID: "tank", Z: TileZ + 1}, *stabby.GetComponent[components.Sprite](r, tank))
	assert.Equal(t, components.RigidBody{VX: 2}, *stabby.GetComponent[components.RigidBody](r, tank))

	bullet := spawned[1]
	assert.True(t, stabby.HasComponent[components.Bounded](r, bullet))
	assert.Equal(t, 5, stabby.GetComponent[components.Sprite](r, bullet).Z)

	// Row 0 holds ids 0-4, then the first wall of row 1 and the tree.
	tree := stabby.Entity{ID: 6}
	assert.Equal(t, components.Transform{X: 3, Y: 1}, *stabby.GetComponent[components.Transform](r, tree))
	assert.Equal(t, "tree", stabby.GetComponent[components.Sprite](r, tree).AssetID)
}
