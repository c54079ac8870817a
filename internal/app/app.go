//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"fallingsand/internal/core"
	"fallingsand/internal/render"
	"fallingsand/internal/sim"
	"fallingsand/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// brushKeys maps the number row onto placeable particle types.
var brushKeys = [...]struct {
	key ebiten.Key
	p   sim.Particle
}{
	{ebiten.Key1, sim.Sand},
	{ebiten.Key2, sim.Water},
	{ebiten.Key3, sim.Lava},
	{ebiten.Key4, sim.Stone},
	{ebiten.Key5, sim.Steam},
	{ebiten.Key6, sim.Ice},
	{ebiten.Key7, sim.Acid},
	{ebiten.Key8, sim.Oil},
	{ebiten.Key9, sim.Fire},
	{ebiten.Key0, sim.Smoke},
}

// Game adapts the falling-sand world to the ebiten.Game interface. It owns
// the clock and brush state and is the only caller of Step and Paint, so
// the two never overlap.
type Game struct {
	world   *sim.World
	clock   *core.Clock
	painter *render.GridPainter
	cfg     *Config
	census  *telemetry.Writer

	brush     sim.Particle
	brushSize int

	lastSampled int64
}

// New constructs a Game around the provided world.
func New(world *sim.World, census *telemetry.Writer, cfg *Config) *Game {
	size := world.Size()
	return &Game{
		world:     world,
		clock:     core.NewClock(),
		painter:   render.NewGridPainter(size.W, size.H, core.NewRNG(time.Now().UnixNano())),
		cfg:       cfg,
		census:    census,
		brush:     sim.Sand,
		brushSize: 1,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.Paused = !g.clock.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Clear()
	}

	for _, bk := range brushKeys {
		if inpututil.IsKeyJustPressed(bk.key) {
			g.brush = bk.p
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.brushSize = stepBrushSize(g.brushSize, wy)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.clock.SetScale(g.clock.Scale + 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.clock.SetScale(g.clock.Scale - 0.25)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if err := g.world.SaveFile(g.cfg.Save); err != nil {
			log.Printf("save %s: %v", g.cfg.Save, err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := g.world.LoadFile(g.cfg.Save); err != nil {
			log.Printf("load %s: %v", g.cfg.Save, err)
		}
	}

	mx, my := ebiten.CursorPosition()
	gx, gy := mx/g.cfg.Scale, my/g.cfg.Scale
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.world.Paint(gx, gy, g.brush, g.brushSize/2)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.world.Paint(gx, gy, sim.Empty, g.brushSize/2)
	}

	g.world.Step(g.clock)

	if g.census != nil && g.cfg.Sample > 0 && g.clock.Ticks != g.lastSampled && g.clock.Ticks%int64(g.cfg.Sample) == 0 {
		g.lastSampled = g.clock.Ticks
		if err := g.census.Write(telemetry.Take(g.world, g.clock.Ticks)); err != nil {
			log.Printf("telemetry: %v", err)
		}
	}
	return nil
}

// Draw renders the grid and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.cfg.Scale)

	state := "running"
	if g.clock.Paused {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  brush %dpx  speed %.2fx  %s  tick %d",
		g.brush.Name(), g.brushSize, g.clock.Scale, state, g.clock.Ticks))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.cfg.Scale, s.H * g.cfg.Scale
}
