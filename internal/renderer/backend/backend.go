// Package backend provides the display abstraction the editor paints into.
//
// A Backend is a Target with an event source. Surface is an off-screen
// Target used to compose a frame before blitting it onto a Backend.
package backend

import "github.com/dshills/sadie/internal/renderer/core"

// Target is anything cells can be painted onto.
type Target interface {
	// Size returns the target dimensions in cells.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the target are silently ignored.
	SetCell(x, y int, cell core.Cell)
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the editor reacts to. Everything else arrives
// as KeyNone.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyCtrlC
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend defines the interface for terminal/display backends.
type Backend interface {
	Target

	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the display.
	GetCell(x, y int) core.Cell

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// PollEvent waits for and returns the next event.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	*Surface

	events chan Event
	shows  int
	mouse  bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		Surface: NewSurface(width, height),
		events:  make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error { return nil }
func (b *NullBackend) Shutdown()   {}
func (b *NullBackend) Show()       { b.shows++ }

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) EnableMouse()  { b.mouse = true }
func (b *NullBackend) DisableMouse() { b.mouse = false }

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	return b.shows
}

// MouseEnabled reports whether mouse reporting is on.
func (b *NullBackend) MouseEnabled() bool {
	return b.mouse
}

// Resize simulates a terminal resize and queues the matching event.
func (b *NullBackend) Resize(width, height int) {
	b.Surface.Resize(width, height)
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
