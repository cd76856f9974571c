package renderer

import (
	"github.com/rs/zerolog"

	"github.com/dshills/sadie/internal/gallery"
	"github.com/dshills/sadie/internal/renderer/backend"
	"github.com/dshills/sadie/internal/renderer/core"
	"github.com/dshills/sadie/internal/renderer/statusline"
)

// Options configures the renderer.
type Options struct {
	// Layout
	FrameGap int // Cells between neighbouring frames

	// Status line
	ShowStatus  bool       // Reserve the bottom row for a status line
	StatusStyle core.Style // Style of the status line
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		FrameGap:    2,
		ShowStatus:  true,
		StatusStyle: core.NewStyle(core.ColorBlack, core.ColorGray),
	}
}

// Renderer repaints a gallery onto a backend.
type Renderer struct {
	opts    Options
	backend backend.Backend
	gallery *gallery.Gallery
	log     zerolog.Logger

	width  int
	height int
	status *statusline.StatusLine

	frameCount  uint64
	needsRedraw bool
	fullRedraw  bool
}

// New creates a renderer and lays out the gallery for the backend's size.
func New(b backend.Backend, g *gallery.Gallery, opts Options, log zerolog.Logger) *Renderer {
	width, height := b.Size()

	r := &Renderer{
		opts:        opts,
		backend:     b,
		gallery:     g,
		log:         log.With().Str("component", "renderer").Logger(),
		width:       width,
		height:      height,
		status:      statusline.New(opts.StatusStyle),
		needsRedraw: true,
		fullRedraw:  true,
	}
	r.Relayout()
	return r
}

// Relayout re-arranges the gallery's frames for the current width.
func (r *Renderer) Relayout() {
	extent := Arrange(r.gallery, r.width, r.opts.FrameGap)
	if extent.Right > r.width || extent.Bottom > r.contentHeight() {
		r.log.Warn().
			Int("need_width", extent.Right).
			Int("need_height", extent.Bottom).
			Int("width", r.width).
			Int("height", r.contentHeight()).
			Msg("frames do not fit on screen")
	}
	r.MarkFullRedraw()
}

// Resize handles terminal resize events.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.log.Debug().Int("width", width).Int("height", height).Msg("resize")
	r.Relayout()
}

// SetStatus sets the status line's left-hand text.
func (r *Renderer) SetStatus(text string) {
	if text != r.status.Left() {
		r.status.SetLeft(text)
		r.needsRedraw = true
	}
}

// Status returns the status line's left-hand text.
func (r *Renderer) Status() string {
	return r.status.Left()
}

// SetStatusRight sets the status line's right-aligned text.
func (r *Renderer) SetStatusRight(text string) {
	if text != r.status.Right() {
		r.status.SetRight(text)
		r.needsRedraw = true
	}
}

// StatusRight returns the status line's right-aligned text.
func (r *Renderer) StatusRight() string {
	return r.status.Right()
}

// SetMessage shows msg in place of the status bar until ClearMessage.
func (r *Renderer) SetMessage(msg string, msgType statusline.MessageType) {
	r.status.SetMessage(msg, msgType)
	r.needsRedraw = true
}

// ClearMessage restores the status bar.
func (r *Renderer) ClearMessage() {
	if msg, _ := r.status.Message(); msg != "" {
		r.status.ClearMessage()
		r.needsRedraw = true
	}
}

// MarkDirty marks the renderer as needing a redraw.
func (r *Renderer) MarkDirty() {
	r.needsRedraw = true
}

// MarkFullRedraw clears the screen before the next redraw.
func (r *Renderer) MarkFullRedraw() {
	r.needsRedraw = true
	r.fullRedraw = true
}

// NeedsRedraw returns true if a redraw is pending.
func (r *Renderer) NeedsRedraw() bool {
	return r.needsRedraw
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Render redraws if needed. It returns true if a frame was drawn.
func (r *Renderer) Render() bool {
	if !r.needsRedraw {
		return false
	}
	r.RenderNow()
	return true
}

// RenderNow redraws unconditionally.
func (r *Renderer) RenderNow() {
	if r.fullRedraw {
		r.backend.Clear()
	}

	r.gallery.Draw(r.backend)
	if r.opts.ShowStatus {
		r.renderStatus()
	}
	r.backend.Show()

	r.frameCount++
	r.needsRedraw = false
	r.fullRedraw = false
}

func (r *Renderer) contentHeight() int {
	if r.opts.ShowStatus {
		return max(r.height-1, 0)
	}
	return r.height
}

func (r *Renderer) renderStatus() {
	if r.height == 0 {
		return
	}
	r.status.Resize(r.width)
	r.status.Render(r.backend, r.height-1)
}
