// Package tilemap loads tile maps and turns them into entities. Maps are JSON,
// or TOML when the file name ends in ".toml".
package tilemap

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/naoina/toml"
	"github.com/rotisserie/eris"

	"github.com/edwinsyarief/stabby"
	"github.com/edwinsyarief/stabby/internal/components"
)

// TileZ is the draw layer of map tiles. Spawns default to the layer above.
const TileZ = 0

// Map is a rectangular grid of tiles plus the moving entities placed on it.
// Each rune of Rows is looked up in Legend; runes without an entry are empty
// cells.
type Map struct {
	Name   string            `json:"name" toml:"name"`
	Rows   []string          `json:"rows" toml:"rows"`
	Legend map[string]string `json:"legend" toml:"legend"`
	Spawns []Spawn           `json:"spawns" toml:"spawns"`
}

// Spawn describes one entity with a velocity.
type Spawn struct {
	Asset   string  `json:"asset" toml:"asset"`
	X       float64 `json:"x" toml:"x"`
	Y       float64 `json:"y" toml:"y"`
	VX      float64 `json:"vx" toml:"vx"`
	VY      float64 `json:"vy" toml:"vy"`
	Z       *int    `json:"z,omitempty" toml:"z"`
	Player  bool    `json:"player" toml:"player"`
	Bounded bool    `json:"bounded" toml:"bounded"`
}

// Load reads and validates the map at path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read map %s", path)
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	m, err := parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "map %s", path)
	}
	return m, nil
}

// Parse decodes and validates a JSON map.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, eris.Wrap(err, "failed to decode map")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseTOML decodes and validates a TOML map. Coordinates and velocities must
// be written as floats.
func ParseTOML(data []byte) (*Map, error) {
	var m Map
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, eris.Wrap(err, "failed to decode map")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Map) validate() error {
	if len(m.Rows) == 0 {
		return eris.New("map has no rows")
	}
	for key := range m.Legend {
		if utf8.RuneCountInString(key) != 1 {
			return eris.Errorf("legend key %q must be a single character", key)
		}
	}
	width, height := m.Size()
	for i, s := range m.Spawns {
		if s.Asset == "" {
			return eris.Errorf("spawn %d has no asset", i)
		}
		if s.X < 0 || s.Y < 0 || s.X >= float64(width) || s.Y >= float64(height) {
			return eris.Errorf("spawn %d at (%g, %g) is outside the %dx%d map", i, s.X, s.Y, width, height)
		}
	}
	return nil
}

// Size returns the width of the widest row and the number of rows.
func (m *Map) Size() (width, height int) {
	for _, row := range m.Rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	return width, len(m.Rows)
}

// Build creates the entities of m in r: one Transform+Sprite entity per
// non-empty tile, then one entity per spawn with a RigidBody and its optional
// Player and Bounded tags. The entities become visible to systems at the next
// registry Update.
func Build(r *stabby.Registry, m *Map) (tiles int, spawned []stabby.Entity) {
	for y, row := range m.Rows {
		x := 0
		for _, ch := range row {
			if asset, ok := m.Legend[string(ch)]; ok && asset != "" {
				e := r.CreateEntity()
				stabby.AddComponent(r, e, components.Transform{X: float64(x), Y: float64(y)})
				stabby.AddComponent(r, e, components.Sprite{AssetID: asset, Z: TileZ})
				tiles++
			}
			x++
		}
	}

	spawned = make([]stabby.Entity, 0, len(m.Spawns))
	for _, s := range m.Spawns {
		z := TileZ + 1
		if s.Z != nil {
			z = *s.Z
		}
		e := r.CreateEntity()
		stabby.AddComponent(r, e, components.Transform{X: s.X, Y: s.Y})
		stabby.AddComponent(r, e, components.RigidBody{VX: s.VX, VY: s.VY})
		stabby.AddComponent(r, e, components.Sprite{AssetID: s.Asset, Z: z})
		if s.Player {
			stabby.AddComponent(r, e, components.Player{})
		}
		if s.Bounded {
			stabby.AddComponent(r, e, components.Bounded{})
		}
		spawned = append(spawned, e)
	}
	return tiles, spawned
}
