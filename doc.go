// Package textmode renders a fixed-size text-mode character grid into an
// RGBA8 framebuffer.
//
// # Overview
//
// A [Grid] holds [Columns] x [Lines] cells. Each [Cell] is a character plus a
// foreground and background [Colour] from a fixed 16-colour palette. Every
// frame, a [Renderer] walks the grid, looks up the composed pixel block for
// each cell in a [GlyphCache], and blits it into a caller-owned
// [Framebuffer].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textmode"
//	    "github.com/gogpu/textmode/text"
//	)
//
//	face, err := text.NewGoMono()
//	if err != nil { ... }
//
//	d, err := textmode.NewDisplay(face)
//	if err != nil { ... }
//
//	_ = d.Memory().Set(0, 0, 'A', textmode.White, textmode.Red)
//
//	fb := d.NewFramebuffer()
//	if err := d.Draw(fb); err != nil { ... }
//	_ = fb.SavePNG("frame.png")
//
// # Rasterization
//
// The core never opens fonts. Glyph bitmaps come from a [Rasterizer]
// supplied by the host; package text provides implementations backed by
// golang.org/x/image and go-text/typesetting.
//
// # Threading
//
// A render pass is synchronous. Hosts must not mutate the grid while
// [Renderer.Render] runs; mutate between frames instead.
//
// # Coordinate System
//
// Grid coordinates are (column, row) with (0, 0) at the top-left.
// Framebuffer coordinates are pixels with the same origin, X right, Y down.
package textmode
