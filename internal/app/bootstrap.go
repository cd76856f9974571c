package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/sadie/internal/canvas"
	"github.com/dshills/sadie/internal/canvas/charset"
	"github.com/dshills/sadie/internal/config"
	"github.com/dshills/sadie/internal/gallery"
	"github.com/dshills/sadie/internal/renderer"
	"github.com/dshills/sadie/internal/renderer/core"
	"github.com/dshills/sadie/internal/script"
)

// PickerColumns is the width, in entries, of the charset and colour
// pickers. Longer sets wrap onto further rows.
const PickerColumns = 16

// bootstrapper initializes components in dependency order.
type bootstrapper struct {
	app  *Application
	opts Options
}

func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{app: app, opts: opts}
}

func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"config", b.initConfig},
		{"logger", b.initLogger},
		{"charsets", b.initCharsets},
		{"gallery", b.initGallery},
		{"canvases", b.initCanvases},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			b.cleanup()
			var ie *InitError
			if errors.As(err, &ie) {
				return err
			}
			return &InitError{Component: step.name, Err: err}
		}
	}
	return nil
}

func (b *bootstrapper) initConfig() error {
	cfg := b.opts.Config
	if cfg == nil {
		var opts []config.Option
		if len(b.opts.Overrides) > 0 {
			opts = append(opts, config.WithOverrides(b.opts.Overrides))
		}
		if b.opts.RequireConfig {
			opts = append(opts, config.RequireFile())
		}
		var err error
		if cfg, err = config.Load(b.opts.ConfigPath, opts...); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.app.config = cfg
	return nil
}

func (b *bootstrapper) initLogger() error {
	if b.opts.Logger != nil {
		b.app.log = *b.opts.Logger
		return nil
	}
	log, closer, err := NewLogger(b.app.config.Log)
	if err != nil {
		return err
	}
	b.app.log = log
	b.app.logCloser = closer
	return nil
}

func (b *bootstrapper) initCharsets() error {
	glyphs, err := b.app.config.Charset.GlyphSet()
	if err != nil {
		return err
	}
	palette, err := b.app.config.Palette.Palette()
	if err != nil {
		return err
	}
	b.app.glyphs, b.app.palette = glyphs, palette

	b.app.log.Debug().
		Str("charset", glyphs.Name()).
		Uint16("glyphs", glyphs.Len()).
		Str("palette", palette.Name()).
		Uint16("colors", palette.Len()).
		Msg("charsets ready")
	return nil
}

func (b *bootstrapper) initGallery() error {
	b.app.allocator = renderer.NewAllocator(b.app.config.Surface.MaxCells)
	b.app.gallery = gallery.New(b.app.allocator, b.app.log)
	return nil
}

// initCanvases registers the drawing canvas and both pickers. A canvas
// whose surface cannot be allocated is logged and skipped.
func (b *bootstrapper) initCanvases() error {
	app := b.app

	drawing, err := b.buildDrawing(context.Background())
	switch {
	case errors.Is(err, renderer.ErrSurfaceTooLarge):
		b.register(nil, err)
	case err != nil:
		return err
	default:
		app.drawing = b.register(app.gallery.AddColoredFont(drawing))
	}

	glyphs := app.glyphs
	cols, rows := pickerSize(int(glyphs.Len()))
	chars := canvas.NewBuilder[rune, gallery.NoAttr](glyphs).
		Size(cols, rows).
		CharCascade().
		Build()
	app.chars = b.register(app.gallery.AddFontOnly(chars))

	cols, rows = pickerSize(int(app.palette.Len()))
	cb := canvas.NewBuilder[core.Color, gallery.NoAttr](app.palette).
		Size(cols, rows).
		CursorPosition(0, 0)
	if cols > 1 {
		// Second cursor marks the background colour.
		cb.CursorPosition(1, 0)
	}
	app.colors = b.register(app.gallery.AddColorSquares(cb.CharCascade().Build()))

	if app.gallery.Len() == 0 {
		return errors.New("no canvas could be registered")
	}
	return nil
}

func (b *bootstrapper) register(f *gallery.Frame, err error) *gallery.Frame {
	if err != nil {
		b.app.log.Warn().Err(err).Msg("skipping canvas")
		b.app.skipped++
		return nil
	}
	return f
}

// buildDrawing builds the user canvas seeded as configured. A canvas too
// large for its surface is refused before any cell is allocated.
func (b *bootstrapper) buildDrawing(ctx context.Context) (*canvas.Canvas[rune, gallery.CellColors], error) {
	cfg := b.app.config.Canvas
	gw, gh := charset.GlyphSize(b.app.glyphs)
	if err := b.app.allocator.Fits(cfg.Width*gw, cfg.Height*gh); err != nil {
		return nil, err
	}
	builder := canvas.NewBuilder[rune, gallery.CellColors](b.app.glyphs).
		Size(uint16(cfg.Width), uint16(cfg.Height))

	switch cfg.Seed {
	case config.SeedCascade:
		builder.CharCascade()
	case config.SeedRandom:
		seed := cfg.RandomSeed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		b.app.log.Debug().Uint64("seed", seed).Msg("random canvas")
		builder.RandomCells(canvas.NewRandomSource(seed))
	case config.SeedScript:
		cells, err := b.scriptCells(ctx, cfg)
		if err != nil {
			return nil, &InitError{Component: "script", Err: err}
		}
		builder.DefaultCells(cells)
	}

	return builder.Build(), nil
}

func (b *bootstrapper) scriptCells(ctx context.Context, cfg config.CanvasConfig) (canvas.CellFunc[rune, gallery.CellColors], error) {
	gen, err := script.Open(ctx, cfg.Script, script.WithLogger(b.app.log))
	if err != nil {
		return nil, err
	}
	defer gen.Close()

	size := canvas.Size{Width: uint16(cfg.Width), Height: uint16(cfg.Height)}
	results, err := gen.Generate(ctx, size, int(b.app.glyphs.Len()))
	if err != nil {
		return nil, err
	}
	return script.Cells[rune, gallery.CellColors](results, b.colorsFor), nil
}

// colorsFor resolves script palette indices. Missing or unknown indices
// keep the default colours.
func (b *bootstrapper) colorsFor(r script.Result) gallery.CellColors {
	colors := gallery.CellColors{}.Default()
	p := b.app.palette
	if r.FG != script.NoColor && r.FG < int(p.Len()) {
		colors.FG = p.Char(charset.CharID(r.FG))
	}
	if r.BG != script.NoColor && r.BG < int(p.Len()) {
		colors.BG = p.Char(charset.CharID(r.BG))
	}
	return colors
}

func (b *bootstrapper) cleanup() {
	if b.app.logCloser != nil {
		if err := b.app.logCloser.Close(); err != nil {
			b.app.log.Error().Err(err).Msg("closing log")
		}
		b.app.logCloser = nil
	}
	b.app.log = zerolog.Nop()
}

// pickerSize lays n entries out PickerColumns wide.
func pickerSize(n int) (cols, rows uint16) {
	c := min(n, PickerColumns)
	if c == 0 {
		return 0, 0
	}
	return uint16(c), uint16((n + c - 1) / c)
}

func (app *Application) statusText() string {
	return fmt.Sprintf("sadie  charset:%s  palette:%s  q:quit",
		app.glyphs.Name(), app.palette.Name())
}
