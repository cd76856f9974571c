// Package statusline renders the editor's bottom status row.
package statusline

import (
	"github.com/dshills/sadie/internal/renderer/backend"
	"github.com/dshills/sadie/internal/renderer/core"
)

// StatusLine renders a one-row bar: left text, right-aligned info, or a
// message that temporarily replaces both.
type StatusLine struct {
	// Display state
	left  string // Session summary
	right string // Cursor and canvas info

	// Message display
	message     string
	messageType MessageType

	barStyle core.Style
	width    int
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// New creates a status line drawn in barStyle.
func New(barStyle core.Style) *StatusLine {
	return &StatusLine{barStyle: barStyle}
}

// SetLeft updates the left-hand text.
func (s *StatusLine) SetLeft(text string) {
	s.left = text
}

// Left returns the left-hand text.
func (s *StatusLine) Left() string {
	return s.left
}

// SetRight updates the right-aligned text.
func (s *StatusLine) SetRight(text string) {
	s.right = text
}

// Right returns the right-aligned text.
func (s *StatusLine) Right() string {
	return s.right
}

// SetMessage displays a status message until cleared.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = max(width, 0)
}

// Render draws the status line at row.
func (s *StatusLine) Render(dst backend.Target, row int) {
	if s.message != "" {
		s.renderMessage(dst, row)
		return
	}
	s.renderBar(dst, row)
}

func (s *StatusLine) renderBar(dst backend.Target, row int) {
	s.clear(dst, row, s.barStyle)

	limit := s.width
	if s.right != "" {
		limit = s.width - len([]rune(s.right)) - 2
	}
	col := s.put(dst, 1, row, limit, s.left, s.barStyle)

	// Right side only when it doesn't collide with the left text.
	if s.right == "" {
		return
	}
	start := s.width - len([]rune(s.right)) - 1
	if start > col {
		s.put(dst, start, row, s.width, s.right, s.barStyle)
	}
}

func (s *StatusLine) renderMessage(dst backend.Target, row int) {
	style := s.barStyle
	switch s.messageType {
	case MessageError:
		style = core.DefaultStyle().WithForeground(core.ColorRed).Bold()
	case MessageWarning:
		style = core.DefaultStyle().WithForeground(core.ColorYellow)
	}

	s.clear(dst, row, style)
	s.put(dst, 1, row, s.width, s.message, style)
}

func (s *StatusLine) clear(dst backend.Target, row int, style core.Style) {
	blank := core.NewStyledCell(' ', style)
	for x := range s.width {
		dst.SetCell(x, row, blank)
	}
}

// put writes text from col, stopping before limit, and returns the next
// free column.
func (s *StatusLine) put(dst backend.Target, col, row, limit int, text string, style core.Style) int {
	for _, r := range text {
		if col >= limit {
			break
		}
		dst.SetCell(col, row, core.NewStyledCell(r, style))
		col++
	}
	return col
}
