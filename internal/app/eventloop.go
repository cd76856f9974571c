package app

import (
	"fmt"

	"github.com/dshills/sadie/internal/gallery"
	"github.com/dshills/sadie/internal/renderer/backend"
)

// eventLoop draws, then blocks for the next event, until quit.
func (app *Application) eventLoop() error {
	for {
		app.renderer.Render()

		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			if isQuit(err) {
				app.log.Info().Msg("quit")
				return nil
			}
			return err
		}
	}
}

// handleBackendEvent routes a backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		return app.handleMouseEvent(ev)
	case backend.EventInterrupt:
		return ErrQuit
	default:
		return nil
	}
}

// handleResize re-lays out the gallery and forces a full redraw.
func (app *Application) handleResize(ev backend.Event) error {
	app.renderer.Resize(ev.Width, ev.Height)
	return nil
}

func (app *Application) handleKeyEvent(ev backend.Event) error {
	if isQuitKey(ev) {
		return ErrQuit
	}
	return nil
}

// isQuitKey matches q, Esc and Ctrl-C.
func isQuitKey(ev backend.Event) bool {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return true
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) {
			return ev.Rune == 'c'
		}
		return ev.Rune == 'q'
	}
	return false
}

// handleMouseEvent moves the clicked canvas's cursor onto the clicked
// cell: the first cursor for the left button, the second (when present)
// for the right.
func (app *Application) handleMouseEvent(ev backend.Event) error {
	cursor := 0
	switch ev.MouseButton {
	case backend.MouseLeft:
	case backend.MouseRight:
		cursor = 1
	default:
		return nil
	}

	id, pos, ok := app.gallery.CellAt(ev.MouseX, ev.MouseY)
	if !ok {
		return nil
	}
	v, _ := app.gallery.Canvas(id)
	if cursor >= cursorCount(v) {
		return nil
	}

	v.SetCursorPosition(cursor, pos)
	app.log.Debug().
		Uint32("canvas", uint32(id)).
		Int("cursor", cursor).
		Stringer("pos", pos).
		Msg("cursor moved")

	app.renderer.ClearMessage()
	app.renderer.SetStatusRight(fmt.Sprintf("canvas %d (%s) cursor %d at %s", id, v.Kind(), cursor, pos))
	app.renderer.MarkDirty()
	return nil
}

func cursorCount(v gallery.Variant) int {
	n := 0
	for range v.Cursors() {
		n++
	}
	return n
}
