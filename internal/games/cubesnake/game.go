package cubesnake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cubesnake/internal/config"
	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/cube"
	"github.com/vovakirdan/cubesnake/internal/registry"
)

// Mode represents the registered game variant.
type Mode string

const (
	ModeBonus   Mode = "cubesnake"
	ModeClassic Mode = "cubesnake_classic"
)

// Package-level settings applied on the next Reset (like the CLI flag pattern).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	controlsOverride config.ControlScheme
)

// SetConfigPath sets the config file path used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetControls overrides the control scheme from the config. Empty keeps it.
func SetControls(c config.ControlScheme) {
	controlsOverride = c
}

// Game adapts a Model to the platform's fixed-tick game interface.
type Game struct {
	mode     Mode
	settings *config.CubeSnakeConfig // Fixed settings; nil loads from disk on Reset
	active   config.CubeSnakeConfig

	model   *Model
	rng     *rand.Rand // Seeds restarts
	dt      float64
	tick    uint64
	paused  bool
	loadErr error

	screenW int
	screenH int
	layout  netLayout
}

// NewGame creates a Cube Snake game with bonus objects.
func NewGame() *Game {
	return &Game{mode: ModeBonus}
}

// NewClassic creates a Cube Snake game without bonus objects.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// NewGameWithSettings creates a game that ignores config files and presets.
func NewGameWithSettings(mode Mode, s config.CubeSnakeConfig) *Game {
	return &Game{mode: mode, settings: &s}
}

func init() {
	registry.Register(string(ModeBonus), "Snake on a cube, with timed bonus objects", func() registry.Game {
		return NewGame()
	})
	registry.Register(string(ModeClassic), "Snake on a cube, food only", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Cube Snake (Classic)"
	}
	return "Cube Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.active, g.loadErr = g.loadSettings()

	model, err := New(g.modelConfig(), rand.New(rand.NewSource(g.rng.Int63())))
	if err != nil {
		g.loadErr = err
		fallback := config.DefaultCubeSnakeConfig()
		fallback.Controls = g.active.Controls
		g.active = fallback
		model, err = New(g.modelConfig(), rand.New(rand.NewSource(g.rng.Int63())))
		if err != nil {
			panic(fmt.Sprintf("cubesnake: default config rejected: %v", err))
		}
	}
	g.model = model
	g.layout = newNetLayout(model.Grid().Size(), g.screenW, g.screenH)
}

// modelConfig converts the active settings for this game's mode.
func (g *Game) modelConfig() Config {
	mc := FromSettings(g.active)
	if g.mode == ModeClassic {
		mc.HasBonus = false
	}
	return mc
}

func (g *Game) loadSettings() (config.CubeSnakeConfig, error) {
	if g.settings != nil {
		return *g.settings, nil
	}
	s, err := config.LoadCubeSnake(configPath)
	config.ApplyCubeSnakePreset(&s, difficultyPreset)
	if controlsOverride != "" {
		s.Controls = controlsOverride
	}
	return s, err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.model.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1/g.dt + 0.5),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.model.GameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.model.GameOver() || g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := actionDirection(in.Last); ok {
		g.model.ChangeDirection(g.cameraUp(), dir)
	}

	before := g.model.Steps()
	g.model.Update(g.dt)

	return core.StepResult{State: g.State(), Moved: g.model.Steps() != before}
}

// cameraUp returns what the player currently sees as up on the head's face.
func (g *Game) cameraUp() cube.Direction3D {
	if g.active.Controls == config.ControlsRelative {
		return g.model.Travel()
	}
	// The net draws every face with e2 pointing up the screen.
	return cube.Direction(g.model.HeadPosition().Side, cube.E2)
}

func actionDirection(a core.Action) (cube.Direction2D, bool) {
	switch a {
	case core.ActionUp:
		return cube.DirUp, true
	case core.ActionDown:
		return cube.DirDown, true
	case core.ActionLeft:
		return cube.DirLeft, true
	case core.ActionRight:
		return cube.DirRight, true
	}
	return 0, false
}

// Resize adapts the net layout to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.model != nil {
		g.layout = newNetLayout(g.model.Grid().Size(), w, h)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.model.Score(),
		GameOver: g.model.GameOver(),
		Paused:   g.paused,
	}
}

// Model returns the running simulation. It is replaced on restart.
func (g *Game) Model() *Model {
	return g.model
}

// Tick returns the number of platform ticks since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Settings returns the configuration the current round was started with.
func (g *Game) Settings() config.CubeSnakeConfig {
	return g.active
}

// LoadError returns the problem hit while loading settings, if any. The game
// falls back to defaults in that case.
func (g *Game) LoadError() error {
	return g.loadErr
}
