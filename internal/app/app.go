package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/five82/navigator/internal/config"
	"github.com/five82/navigator/internal/input"
	"github.com/five82/navigator/internal/logging"
	"github.com/five82/navigator/internal/nav"
	"github.com/five82/navigator/internal/prefs"
	"github.com/five82/navigator/internal/search"
	"github.com/five82/navigator/internal/ui"
)

// runUI is replaced in tests.
var runUI = ui.Run

// Options configure a navigator session. Empty fields fall back to the
// config file, then to built-in defaults.
type Options struct {
	Input      input.Source
	Format     string
	Separator  string
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/navigator/prefs.toml
	LogPath    string
	Theme      string
	Lame       bool
	PrintPath  bool
	Stdout     io.Writer
}

// Run loads the outline, runs the browser until the user commits or quits,
// and prints the committed selection to Stdout.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Lame {
		cfg.Lame = true
	}

	sink, closeLog, err := openLog(opts.LogPath, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	format, err := input.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	sep := opts.Separator
	if sep == "" {
		sep = cfg.Separator
	}

	f, err := input.Load(opts.Input, format, sep)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	logging.Printf(sink, "loaded %d entries in %d lists (%s)", f.Entries(), f.Len(), format)

	engine := search.New(search.Options{
		IgnoreCase: cfg.IgnoreCase,
		Logger:     sink,
	})

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	res, err := runUI(ctx, ui.Options{
		Controller: nav.New(f, engine),
		Config:     cfg,
		ThemeName:  themeName(opts.Theme, cfg.Theme, prefsPath),
		PrefsPath:  prefsPath,
		PrintPath:  opts.PrintPath,
		Logger:     sink,
	})
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	if !res.Committed {
		return nil
	}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, res.Value(opts.PrintPath))
	return err
}

// themeName picks the flag, then the config file, then the saved preference.
func themeName(flagTheme, configTheme, prefsPath string) string {
	if t := strings.TrimSpace(flagTheme); t != "" {
		return t
	}
	if configTheme != "" {
		return configTheme
	}
	return prefs.Load(prefsPath).Theme
}

func openLog(flagPath, configPath string) (logging.Sink, func(), error) {
	path := flagPath
	if strings.TrimSpace(path) == "" {
		path = configPath
	}
	if strings.TrimSpace(path) == "" {
		return logging.Nop{}, func() {}, nil
	}

	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("log path: %w", err)
	}
	logger, closer, err := logging.OpenFile(resolved)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}
