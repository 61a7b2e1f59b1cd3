// Package game runs the terminal demo: a tile map of sprites, a keyboard
// steered player and a few moving entities, all driven through the registry.
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/edwinsyarief/stabby"
	"github.com/edwinsyarief/stabby/internal/assets"
	"github.com/edwinsyarief/stabby/internal/audio"
	"github.com/edwinsyarief/stabby/internal/config"
	"github.com/edwinsyarief/stabby/internal/systems"
	"github.com/edwinsyarief/stabby/internal/tilemap"
)

// PlayerSpeed is the player velocity in cells per second.
const PlayerSpeed = 8.0

// Game owns the screen, the registry and everything the systems need.
type Game struct {
	cfg    config.Config
	logger zerolog.Logger
	screen tcell.Screen

	registry *stabby.Registry
	store    *assets.Store
	cue      *audio.Cue

	movement *systems.MovementSystem
	bounds   *systems.BoundsSystem
	render   *systems.RenderSystem
	control  *systems.ControlSystem

	events  chan tcell.Event
	quit    chan struct{}
	running bool

	lastFrame time.Time
	now       func() time.Time
	sleep     func(time.Duration)
}

// New creates a game drawing on screen. The screen is initialized by
// Initialize.
func New(cfg config.Config, logger zerolog.Logger, screen tcell.Screen) *Game {
	return &Game{
		cfg:    cfg,
		logger: logger,
		screen: screen,
		registry: stabby.NewRegistry(
			stabby.WithLogger(logger.With().Str("component", "registry").Logger()),
			stabby.WithPoolCapacity(cfg.PoolCapacity),
		),
		store:  assets.NewStore(logger),
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Registry returns the game's registry.
func (g *Game) Registry() *stabby.Registry {
	return g.registry
}

// Running reports whether the loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// Initialize opens the screen, starts reading terminal events and opens the
// speaker if audio is enabled.
func (g *Game) Initialize() error {
	if err := g.screen.Init(); err != nil {
		return eris.Wrap(err, "failed to initialize screen")
	}
	g.screen.HideCursor()

	go g.pollEvents()

	g.cue = audio.New(g.cfg.Audio, g.logger)
	g.cue.Attach(g.registry)

	g.running = true
	return nil
}

func (g *Game) pollEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case g.events <- ev:
		case <-g.quit:
			return
		}
	}
}

// Setup loads the assets and the map, registers the systems and builds the
// world. Entities become visible at the first Update.
func (g *Game) Setup() error {
	if _, err := g.store.Load(g.cfg.AssetsPath); err != nil {
		return err
	}
	m, err := tilemap.Load(g.cfg.MapPath)
	if err != nil {
		return err
	}
	stabby.SetResource(g.registry.Resources(), m)
	stabby.SetResource(g.registry.Resources(), g.store)

	g.control = stabby.AddSystem(g.registry, systems.NewControlSystem(g.registry, PlayerSpeed))
	g.movement = stabby.AddSystem(g.registry, systems.NewMovementSystem())
	g.bounds = stabby.AddSystem(g.registry, systems.NewBoundsSystem())
	g.render = stabby.AddSystem(g.registry, systems.NewRenderSystem())

	tiles, spawned := tilemap.Build(g.registry, m)
	width, height := m.Size()
	g.logger.Info().
		Str("map", m.Name).
		Int("width", width).
		Int("height", height).
		Int("tiles", tiles).
		Int("spawns", len(spawned)).
		Msg("world built")

	g.lastFrame = g.now()
	return nil
}

// ProcessInput handles every terminal event received since the last call
// without blocking.
func (g *Game) ProcessInput() {
	for {
		select {
		case ev := <-g.events:
			g.handleEvent(ev)
		default:
			return
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) handleKey(key tcell.Key, ch rune) {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		g.running = false
		return
	}
	stabby.Publish(g.registry.Events(), systems.KeyEvent{Key: key, Rune: ch})
}

// Update waits until a full frame has elapsed since the previous one, then
// advances the world by the measured delta.
func (g *Game) Update() {
	frame := g.cfg.FrameDuration()
	if wait := frame - g.now().Sub(g.lastFrame); wait > 0 && wait <= frame {
		g.sleep(wait)
	}

	now := g.now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now

	g.step(dt)
}

// step synchronizes the registry exactly once and then drives the simulation
// systems.
func (g *Game) step(dt float64) {
	g.registry.Update()

	g.control.Update(g.registry)
	g.movement.Update(g.registry, dt)

	if m, ok := stabby.GetResource[tilemap.Map](g.registry.Resources()); ok {
		width, height := m.Size()
		if n := g.bounds.Update(g.registry, width, height); n > 0 {
			g.logger.Debug().Int("count", n).Uint64("frame", g.registry.Frame()).Msg("entities left the map")
		}
	}
}

// Render draws the current frame.
func (g *Game) Render() {
	g.screen.Clear()
	store, ok := stabby.GetResource[assets.Store](g.registry.Resources())
	if !ok {
		store = g.store
	}
	g.render.Update(g.registry, g.screen, store)
	g.screen.Show()
}

// Run sets the world up and pumps frames until the player quits or ctx is
// cancelled.
func (g *Game) Run(ctx context.Context) error {
	if err := g.Setup(); err != nil {
		return err
	}

	g.logger.Info().Int("fps", g.cfg.FPS).Msg("game starting")
	for g.running {
		if err := ctx.Err(); err != nil {
			g.logger.Info().Msg("game interrupted")
			break
		}
		g.ProcessInput()
		if !g.running {
			break
		}
		g.Update()
		g.Render()
	}
	g.logger.Info().Uint64("frames", g.registry.Frame()).Msg("game ended")
	return nil
}

// Destroy stops event polling and releases the speaker and the screen.
func (g *Game) Destroy() {
	close(g.quit)
	if g.cue != nil {
		g.cue.Close()
	}
	g.screen.Fini()
}
