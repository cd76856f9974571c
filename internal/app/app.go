// Package app wires configuration, canvases, the gallery and the terminal
// renderer into the sadie editor and runs its event loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/dshills/sadie/internal/canvas/charset"
	"github.com/dshills/sadie/internal/config"
	"github.com/dshills/sadie/internal/gallery"
	"github.com/dshills/sadie/internal/renderer"
	"github.com/dshills/sadie/internal/renderer/backend"
	"github.com/dshills/sadie/internal/renderer/statusline"
)

// Application owns the editor's canvases and drives the event loop.
type Application struct {
	mu sync.Mutex

	// Core infrastructure
	config    *config.Config
	log       zerolog.Logger
	logCloser io.Closer

	// Charsets
	glyphs  charset.Glyphs
	palette charset.Palette

	// Canvases
	allocator *renderer.Allocator
	gallery   *gallery.Gallery
	drawing   *gallery.Frame
	chars     *gallery.Frame
	colors    *gallery.Frame
	skipped   int

	// Presentation
	backend  backend.Backend
	renderer *renderer.Renderer

	running atomic.Bool
	opts    Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty skips the file layer.
	ConfigPath string

	// RequireConfig makes a missing ConfigPath an error.
	RequireConfig bool

	// Overrides are applied above every other config layer, keyed by
	// dot-separated path.
	Overrides map[string]any

	// Config, when set, is used as-is instead of loading.
	Config *config.Config

	// Logger, when set, replaces the logger built from config.
	Logger *zerolog.Logger
}

// New creates an application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}

	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run initializes the backend and processes events until a quit key, an
// interrupt or Shutdown.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()
	b.EnableMouse()

	app.renderer = renderer.New(b, app.gallery, renderer.DefaultOptions(), app.log)
	app.renderer.SetStatus(app.statusText())
	if app.skipped > 0 {
		app.renderer.SetMessage(
			fmt.Sprintf("%d canvas(es) exceed the surface budget; see log", app.skipped),
			statusline.MessageWarning)
	}

	app.log.Info().Int("canvases", app.gallery.Len()).Msg("running")
	return app.eventLoop()
}

// Shutdown asks a running event loop to stop.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
}

// Close releases resources held after Run returns.
func (app *Application) Close() error {
	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	return err
}

// IsRunning reports whether the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Gallery returns the canvas registry.
func (app *Application) Gallery() *gallery.Gallery {
	return app.gallery
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// DrawingFrame returns the user drawing canvas frame, or nil if it could
// not be registered. CharsetFrame and PaletteFrame do the same for the
// pickers.
func (app *Application) DrawingFrame() *gallery.Frame { return app.drawing }

func (app *Application) CharsetFrame() *gallery.Frame { return app.chars }

func (app *Application) PaletteFrame() *gallery.Frame { return app.colors }

// isQuit reports whether err ends the loop without failure.
func isQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
