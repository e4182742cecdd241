package zenith

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameConfig configures the window and frame loop opened by Run.
type GameConfig struct {
	Title  string
	Width  int
	Height int

	// BackgroundColor fills the screen before cameras draw when
	// ClearBeforeRender is set.
	BackgroundColor   Color
	ClearBeforeRender bool

	// TPS is the number of update steps per second.
	TPS int

	ShowFPS bool
	Debug   bool
}

// DefaultGameConfig returns a 640x480 window titled "Zenith" cleared to
// black, stepping at ebiten's default tick rate.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Title:             "Zenith",
		Width:             640,
		Height:            480,
		BackgroundColor:   Color{0, 0, 0, 1},
		ClearBeforeRender: true,
		TPS:               ebiten.DefaultTPS,
	}
}

// withDefaults fills zero fields from DefaultGameConfig.
func (cfg GameConfig) withDefaults() GameConfig {
	def := DefaultGameConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.TPS <= 0 {
		cfg.TPS = def.TPS
	}
	return cfg
}

// StepFunc is a game-loop hook. now and delta are in milliseconds.
type StepFunc func(now, delta uint32)

// RenderFunc is a render hook.
type RenderFunc func(screen *ebiten.Image)

// Game adapts a Scene to ebiten.Game. Each tick runs the hooks and the scene
// in a fixed order: PreStep, Step, scene update, PostStep; each draw runs
// camera pre-render, PreRender, scene render, PostRender.
type Game struct {
	scene *Scene
	cfg   GameConfig

	now  uint32
	frac float64
	fps  *FPSWidget

	PreStep    StepFunc
	Step       StepFunc
	PostStep   StepFunc
	PreRender  RenderFunc
	PostRender RenderFunc
}

// NewGame creates a Game driving scene with cfg. Zero config fields take
// their DefaultGameConfig values.
func NewGame(scene *Scene, cfg GameConfig) *Game {
	g := &Game{scene: scene, cfg: cfg.withDefaults()}
	if g.cfg.ShowFPS {
		g.fps = NewFPSWidget()
	}
	return g
}

// Scene returns the driven scene.
func (g *Game) Scene() *Scene { return g.scene }

// Now returns the game clock in milliseconds.
func (g *Game) Now() uint32 { return g.now }

// tick returns the milliseconds covered by one update at the configured TPS,
// carrying the fractional remainder so the clock does not drift.
func (g *Game) tick() uint32 {
	ms := 1000/float64(g.cfg.TPS) + g.frac
	delta := uint32(ms)
	g.frac = ms - float64(delta)
	return delta
}

// Advance runs one step of delta milliseconds.
func (g *Game) Advance(delta uint32) error {
	g.now += delta
	if g.PreStep != nil {
		g.PreStep(g.now, delta)
	}
	if g.Step != nil {
		g.Step(g.now, delta)
	}
	if err := g.scene.Update(g.now, delta); err != nil {
		return err
	}
	if g.PostStep != nil {
		g.PostStep(g.now, delta)
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.Advance(g.tick())
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearBeforeRender {
		screen.Fill(g.cfg.BackgroundColor.toRGBA())
	}
	g.scene.PreRender()
	if g.PreRender != nil {
		g.PreRender(screen)
	}
	g.scene.Render(screen)
	if g.PostRender != nil {
		g.PostRender(screen)
	}
	if g.fps != nil {
		g.fps.Draw(screen, ebiten.GeoM{})
	}
}

// Layout implements ebiten.Game. The logical screen is always the configured
// game size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs scene until the window closes or an update
// returns an error.
func Run(scene *Scene, cfg GameConfig) error {
	return RunGame(NewGame(scene, cfg))
}

// RunGame opens a window for g, so the step and render hooks can be set
// before the loop starts.
func RunGame(g *Game) error {
	cfg, scene := g.cfg, g.scene
	scene.Cameras().Resize(float64(cfg.Width), float64(cfg.Height))
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}
