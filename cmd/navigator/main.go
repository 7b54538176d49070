package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/five82/navigator/internal/app"
	"github.com/five82/navigator/internal/input"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp(app.Run).RunContext(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "navigator: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(context.Context, app.Options) error

func newApp(runner runFunc) *cli.App {
	return &cli.App{
		Name:                   "navigator",
		Usage:                  "Browse indented text interactively and print the selection",
		ArgsUsage:              "[INPUT]",
		UseShortOptionHandling: true,
		HideHelpCommand:        true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "stdin",
				Aliases: []string{"s"},
				Usage:   "Read the outline from stdin",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read the outline from `PATH`",
			},
			&cli.StringFlag{
				Name:    "separator",
				Aliases: []string{"S"},
				Usage:   "Indentation `TOKEN` (default: tab, or separator from the config file)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Input `FORMAT`: text, json or yaml",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file path (default: ~/.config/navigator/config.toml)",
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "Preferences file path (default: ~/.config/navigator/prefs.toml)",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "Append diagnostics to `PATH`",
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Color theme: Nightfox, Kanagawa or Slate",
			},
			&cli.BoolFlag{
				Name:  "lame",
				Usage: "Plain titles and prefixes for terminals without emoji",
			},
			&cli.BoolFlag{
				Name:  "print-path",
				Usage: "Print the full path of the selection instead of its name",
			},
		},
		Action: func(c *cli.Context) error {
			opts, err := optionsFromContext(c)
			if err != nil {
				return err
			}
			return runner(c.Context, opts)
		},
	}
}

func optionsFromContext(c *cli.Context) (app.Options, error) {
	if c.NArg() > 1 {
		return app.Options{}, fmt.Errorf("expected at most one INPUT argument, got %d", c.NArg())
	}

	src := input.Source{
		Text:  c.Args().First(),
		Path:  c.String("file"),
		Stdin: c.Bool("stdin"),
	}
	sources := 0
	for _, set := range []bool{src.Text != "", src.Path != "", src.Stdin} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return app.Options{}, errors.New("INPUT, --file and --stdin are mutually exclusive")
	}

	return app.Options{
		Input:      src,
		Format:     c.String("format"),
		Separator:  unescapeSeparator(c.String("separator")),
		ConfigPath: c.String("config"),
		PrefsPath:  c.String("prefs"),
		LogPath:    c.String("log"),
		Theme:      c.String("theme"),
		Lame:       c.Bool("lame"),
		PrintPath:  c.Bool("print-path"),
	}, nil
}

// unescapeSeparator turns a literal \t typed on the command line into a tab.
func unescapeSeparator(sep string) string {
	if sep == `\t` {
		return "\t"
	}
	return sep
}
