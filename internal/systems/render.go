package systems

import (
	"cmp"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/edwinsyarief/stabby"
	"github.com/edwinsyarief/stabby/internal/assets"
	"github.com/edwinsyarief/stabby/internal/components"
)

// MissingGlyph is drawn for sprites whose asset is not in the store.
const MissingGlyph = '?'

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// RenderSystem draws sprites at their transforms.
type RenderSystem struct {
	stabby.BaseSystem

	order []drawItem
}

type drawItem struct {
	entity stabby.Entity
	z      int
}

// NewRenderSystem requires Transform and Sprite.
func NewRenderSystem() *RenderSystem {
	s := &RenderSystem{}
	stabby.RequireComponent[components.Transform](&s.BaseSystem)
	stabby.RequireComponent[components.Sprite](&s.BaseSystem)
	return s
}

// Update draws every entity in ascending Z order, ties broken by entity id, so
// later draws cover earlier ones. Cells outside the canvas are skipped. It
// returns the number of cells drawn.
func (s *RenderSystem) Update(r *stabby.Registry, canvas Canvas, store *assets.Store) int {
	s.order = s.order[:0]
	for _, e := range s.GetEntities() {
		sp := stabby.GetComponent[components.Sprite](r, e)
		s.order = append(s.order, drawItem{entity: e, z: sp.Z})
	}
	slices.SortFunc(s.order, func(a, b drawItem) int {
		if c := cmp.Compare(a.z, b.z); c != 0 {
			return c
		}
		return cmp.Compare(a.entity.ID, b.entity.ID)
	})

	width, height := canvas.Size()
	drawn := 0
	for _, item := range s.order {
		t := stabby.GetComponent[components.Transform](r, item.entity)
		x, y := int(math.Floor(t.X)), int(math.Floor(t.Y))
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}

		glyph, style := rune(MissingGlyph), tcell.StyleDefault
		if sprite, ok := store.Sprite(stabby.GetComponent[components.Sprite](r, item.entity).AssetID); ok {
			glyph, style = sprite.Glyph, sprite.Style
		}
		canvas.SetContent(x, y, glyph, nil, style)
		drawn++
	}
	return drawn
}
