// Package cli provides the Cobra commands for sadie.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/sadie/internal/app"
	"github.com/dshills/sadie/internal/config"
	"github.com/dshills/sadie/internal/renderer/backend"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// BackendFunc creates the terminal backend the editor runs on.
type BackendFunc func() (backend.Backend, error)

// TerminalBackend opens the real terminal.
func TerminalBackend() (backend.Backend, error) {
	return backend.NewTerminal()
}

type rootFlags struct {
	configPath string
	width      int
	height     int
	seed       string
	script     string
	randomSeed uint64
	charset    string
	glyphs     string
	palette    string
	logLevel   string
	logFile    string
}

// flagPaths maps flag names to the config keys they override.
var flagPaths = map[string]string{
	"width":       "canvas.width",
	"height":      "canvas.height",
	"seed":        "canvas.seed",
	"script":      "canvas.script",
	"random-seed": "canvas.random_seed",
	"charset":     "charset.preset",
	"glyphs":      "charset.glyphs",
	"palette":     "palette.preset",
	"log-level":   "log.level",
	"log-file":    "log.file",
}

// NewRootCommand builds the sadie command tree.
func NewRootCommand(info BuildInfo, newBackend BackendFunc) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "sadie",
		Short: "A textmode pixel-art editor",
		Long: `Sadie draws pictures out of characters and colours.

The editor shows the drawing canvas next to a charset picker and a colour
picker. Click a cell to move a canvas cursor; q, Esc or Ctrl-C quits.

Configuration is read from the file given by --config (default
$XDG_CONFIG_HOME/sadie/config.toml), then SADIE_* environment variables,
then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return runEditor(cmd.Context(), opts, newBackend)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&flags.configPath, "config", "c", "", "configuration file (TOML or YAML)")
	f.IntVar(&flags.width, "width", 0, "drawing canvas width in cells")
	f.IntVar(&flags.height, "height", 0, "drawing canvas height in cells")
	f.StringVar(&flags.seed, "seed", "", "initial canvas contents: blank, cascade, random or script")
	f.StringVar(&flags.script, "script", "", "Lua script defining cell(index, x, y, count)")
	f.Uint64Var(&flags.randomSeed, "random-seed", 0, "seed for --seed=random")
	f.StringVar(&flags.charset, "charset", "", "glyph preset")
	f.StringVar(&flags.glyphs, "glyphs", "", "custom glyphs, overriding --charset")
	f.StringVar(&flags.palette, "palette", "", "palette preset")
	f.StringVar(&flags.logLevel, "log-level", "", "log level")
	f.StringVar(&flags.logFile, "log-file", "", "write logs to this file")

	root.AddCommand(
		newVersionCommand(info),
		newCharsetsCommand(),
		newConfigCommand(&flags),
	)
	return root
}

// options turns the changed flags into application options.
func (f *rootFlags) options(cmd *cobra.Command) (app.Options, error) {
	opts := app.Options{ConfigPath: f.configPath}
	if f.configPath != "" {
		opts.RequireConfig = true
	} else {
		opts.ConfigPath = config.DefaultPath()
	}

	overrides := map[string]any{}
	for name, path := range flagPaths {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		switch name {
		case "width":
			overrides[path] = f.width
		case "height":
			overrides[path] = f.height
		case "random-seed":
			overrides[path] = f.randomSeed
		default:
			overrides[path] = flag.Value.String()
		}
	}
	if f.script != "" && !cmd.Flags().Changed("seed") {
		overrides["canvas.seed"] = config.SeedScript
	}
	if len(overrides) > 0 {
		opts.Overrides = overrides
	}
	return opts, nil
}

func (f *rootFlags) load(cmd *cobra.Command) (*config.Config, error) {
	opts, err := f.options(cmd)
	if err != nil {
		return nil, err
	}
	var loadOpts []config.Option
	if opts.RequireConfig {
		loadOpts = append(loadOpts, config.RequireFile())
	}
	if opts.Overrides != nil {
		loadOpts = append(loadOpts, config.WithOverrides(opts.Overrides))
	}
	return config.Load(opts.ConfigPath, loadOpts...)
}

func runEditor(ctx context.Context, opts app.Options, newBackend BackendFunc) error {
	application, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer application.Close()

	b, err := newBackend()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(b); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		application.Shutdown()
	}()

	return application.Run()
}

// Execute runs the command tree and returns the process exit code.
func Execute(info BuildInfo, args []string, stderr io.Writer) int {
	root := NewRootCommand(info, TerminalBackend)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
