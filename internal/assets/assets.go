// Package assets keeps the sprites the renderer draws, keyed by asset id.
package assets

import (
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Sprite is a single terminal cell: a glyph and the style it is drawn with.
type Sprite struct {
	Glyph rune
	Fg    string
	Bg    string
	Style tcell.Style
}

// NewSprite resolves fg and bg color names ("red", "#ff8800", ...) into a
// sprite. Empty names keep the terminal default.
func NewSprite(glyph rune, fg, bg string) (Sprite, error) {
	style := tcell.StyleDefault
	if fg != "" {
		c, err := parseColor(fg)
		if err != nil {
			return Sprite{}, err
		}
		style = style.Foreground(c)
	}
	if bg != "" {
		c, err := parseColor(bg)
		if err != nil {
			return Sprite{}, err
		}
		style = style.Background(c)
	}
	return Sprite{Glyph: glyph, Fg: fg, Bg: bg, Style: style}, nil
}

func parseColor(name string) (tcell.Color, error) {
	if name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, eris.Errorf("unknown color %q", name)
	}
	return c, nil
}

// manifestEntry is one sprite as written in the manifest file.
type manifestEntry struct {
	ID    string `json:"id"`
	Glyph string `json:"glyph"`
	Fg    string `json:"fg"`
	Bg    string `json:"bg"`
}

type manifest struct {
	Sprites []manifestEntry `json:"sprites"`
}

// Store maps asset ids to sprites.
type Store struct {
	sprites map[string]Sprite
	logger  zerolog.Logger
}

// NewStore creates an empty store. Skipped manifest entries are reported on
// logger.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		sprites: make(map[string]Sprite),
		logger:  logger,
	}
}

// AddSprite registers s under id, replacing any previous sprite.
func (s *Store) AddSprite(id string, sp Sprite) {
	s.sprites[id] = sp
}

// Sprite returns the sprite registered under id.
func (s *Store) Sprite(id string) (Sprite, bool) {
	sp, ok := s.sprites[id]
	return sp, ok
}

// Len returns the number of registered sprites.
func (s *Store) Len() int {
	return len(s.sprites)
}

// Clear forgets every sprite.
func (s *Store) Clear() {
	clear(s.sprites)
}

// Load reads the manifest at path and registers its sprites. It returns the
// number of sprites added.
func (s *Store) Load(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, eris.Wrapf(err, "failed to read asset manifest %s", path)
	}
	n, err := s.Decode(data)
	if err != nil {
		return n, eris.Wrapf(err, "asset manifest %s", path)
	}
	return n, nil
}

// Decode registers the sprites of a JSON manifest. Entries without an id, with
// anything but a single glyph, or with unknown colors are logged and skipped.
func (s *Store) Decode(data []byte) (int, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return 0, eris.Wrap(err, "failed to decode asset manifest")
	}

	added := 0
	for i, entry := range m.Sprites {
		if entry.ID == "" {
			s.logger.Warn().Int("index", i).Msg("sprite without id skipped")
			continue
		}
		if utf8.RuneCountInString(entry.Glyph) != 1 {
			s.logger.Warn().Str("asset_id", entry.ID).Str("glyph", entry.Glyph).Msg("sprite glyph must be a single character")
			continue
		}
		glyph, _ := utf8.DecodeRuneInString(entry.Glyph)
		sp, err := NewSprite(glyph, entry.Fg, entry.Bg)
		if err != nil {
			s.logger.Warn().Err(err).Str("asset_id", entry.ID).Msg("sprite skipped")
			continue
		}
		s.AddSprite(entry.ID, sp)
		added++
	}

	s.logger.Info().Int("sprites", added).Int("skipped", len(m.Sprites)-added).Msg("assets loaded")
	return added, nil
}
