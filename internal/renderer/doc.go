// Package renderer drives the display for the sadie editor.
//
// It supplies the gallery with off-screen surfaces, arranges frames on
// screen and repaints them onto a backend:
//
//	┌─────────────────────────────────────────┐
//	│      Renderer (redraw bookkeeping)      │
//	├─────────────────────────────────────────┤
//	│  Gallery frames │ Layout │ Status line  │
//	├─────────────────────────────────────────┤
//	│   Surfaces (Allocator, cell budget)     │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	g := gallery.New(renderer.NewAllocator(65536), log)
//	r := renderer.New(term, g, renderer.DefaultOptions(), log)
//	r.Render()
package renderer
