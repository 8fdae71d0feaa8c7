// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpupresent shows a textmode framebuffer in a gogpu window.
//
// The data flow is:
//
//	textmode.Grid -> Renderer -> Framebuffer (CPU) -> GPU Texture -> Window
//
// A Presenter owns the texture: it is created lazily on the first
// PresentTo, re-uploaded only when the framebuffer was marked dirty, and
// destroyed by Close.
//
// # Usage
//
//	display, _ := textmode.NewDisplay(face)
//	p, _ := gpupresent.New(app.GPUContextProvider(), display.NewFramebuffer())
//	defer p.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if err := p.Draw(display); err != nil {
//	        log.Println(err)
//	    }
//	    _ = p.PresentTo(dc.AsTextureDrawer())
//	})
//
// Presenter is NOT safe for concurrent use. Drive it from the window's
// draw callback.
package gpupresent
