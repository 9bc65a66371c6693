package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/grid"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/ui"
	"github.com/five82/roster/internal/users"
)

// Options configure the roster application. Zero values defer to the config
// file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	Fixture    string
	PageSize   int
	Plain      bool      // print the page instead of starting the TUI
	Stdout     io.Writer // plain output; nil uses os.Stdout
	View       ViewFlags
}

// Run boots roster until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Fixture != "" {
		fixture, err := config.ExpandPath(opts.Fixture)
		if err != nil {
			return fmt.Errorf("resolve fixture: %w", err)
		}
		cfg.Fixture = fixture
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}

	logger, err := logging.New(logging.ConfigFromEnv(logging.Config{Dir: cfg.LogDir, Level: cfg.LogLevel}))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	actions, err := opts.View.Actions(grid.Columns())
	if err != nil {
		return err
	}

	records, err := users.Load(cfg.Fixture)
	if err != nil {
		logger.Error("load fixture", zap.String("path", cfg.Fixture), zap.Error(err))
		return fmt.Errorf("load fixture: %w", err)
	}
	items := users.Map(records)

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	plain := opts.Plain || !isTerminal(stdout)

	logger.Info("roster starting",
		zap.String("fixture", fixtureName(cfg.Fixture)),
		zap.Int("users", len(items)),
		zap.Int("page_size", cfg.PageSize),
		zap.Bool("plain", plain),
	)

	if plain {
		state := grid.NewState(cfg.PageSize)
		for _, a := range actions {
			state = grid.Reduce(state, a)
		}
		return Print(stdout, items, grid.Columns(), state)
	}

	store := prefs.NewStore(opts.PrefsPath)
	err = ui.Run(ctx, ui.Options{
		Items:    items,
		PageSize: cfg.PageSize,
		Actions:  actions,
		Prefs:    &store,
		Logger:   logger,
		LogPath:  cfg.LogPath(),
	})
	if err != nil {
		logger.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("roster stopped")
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func fixtureName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
