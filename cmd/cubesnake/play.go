package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubesnake/internal/config"
	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/games/cubesnake"
	"github.com/vovakirdan/cubesnake/internal/platform/spectate"
	"github.com/vovakirdan/cubesnake/internal/platform/tui"
	"github.com/vovakirdan/cubesnake/internal/registry"
)

var (
	flagConfig   string
	flagPreset   string
	flagControls string
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Cube Snake",
	Long: `Start playing. Without a mode a menu lets you pick one, and you return
to it after each game.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Back to menu (when paused or after game over)
  Ctrl+S       - Save a screenshot to ~/.cubesnake/screenshots
  Q/Ctrl+C     - Quit

Control schemes:
  screen    - Arrows move in the direction they point on the unfolded net
  relative  - Left/Right turn relative to the snake, Up keeps going

Difficulty presets:
  easy   - Bigger cube, slower snake
  normal - Config values unchanged
  hard   - Smaller cube, faster snake, shorter bonuses

Spectating:
  --spectate :8080 streams every tick as JSON to websocket clients
  connected to ws://host:8080/frames. Logs go to ~/.cubesnake/cubesnake.log.

Examples:
  cubesnake play
  cubesnake play cubesnake --preset easy
  cubesnake play cubesnake_classic --controls relative
  cubesnake play --config ./my-cube.yaml --seed 42
  cubesnake play --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address")
}

// addGameFlags registers the flags that shape game settings.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagControls, "controls", "", "Control scheme: screen, relative")
}

// effectiveConfig loads the settings a new game would use, reporting bad
// flags and unreadable config files up front.
func effectiveConfig() (config.CubeSnakeConfig, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.CubeSnakeConfig{}, err
	}
	cfg, err := config.LoadCubeSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyCubeSnakePreset(&cfg, preset)
	if flagControls != "" {
		if cfg.Controls, err = config.ParseControlScheme(flagControls); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// applyGameFlags hands the game flags to the modes created from the registry.
func applyGameFlags() {
	cubesnake.SetConfigPath(flagConfig)
	preset, _ := config.ParsePreset(flagPreset)
	cubesnake.SetDifficultyPreset(preset)
	var controls config.ControlScheme
	if flagControls != "" {
		controls, _ = config.ParseControlScheme(flagControls)
	}
	cubesnake.SetControls(controls)
}

func runPlay(cmd *cobra.Command, args []string) error {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown mode %q, run 'cubesnake list' to see available modes", gameID)
		}
	}

	if _, err := effectiveConfig(); err != nil {
		return err
	}
	applyGameFlags()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var observer tui.Observer
	if flagSpectate != "" {
		logger, closeLog := openLog()
		defer closeLog()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		hub := spectate.NewHub(logger)
		srv := spectate.NewServer(flagSpectate, hub, logger)
		go func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
		observer = hub.Observe
	}

	if gameID != "" {
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		_, err = tui.Run(game, cfg, observer)
		return err
	}

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		back, err := tui.Run(game, cfg, observer)
		if err != nil || !back {
			return err
		}
		// A fixed seed replays the same game; otherwise pick a fresh one
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
	}
}

// openLog returns a logger writing to ~/.cubesnake/cubesnake.log, since the
// terminal belongs to the game while it runs.
func openLog() (*log.Logger, func()) {
	opts := log.Options{ReportTimestamp: true, Prefix: "cubesnake"}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	dir := filepath.Join(home, ".cubesnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "cubesnake.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	//nolint:errcheck // Best-effort close on exit
	return log.NewWithOptions(f, opts), func() { f.Close() }
}
