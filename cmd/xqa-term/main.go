// Command xqa-term runs the text-mode screen in the host terminal.
//
// Typed text is written into the grid; every change is rendered through
// the framebuffer pipeline and mirrored onto the terminal. Esc or Ctrl-C
// quits. With -snapshot the last frame is saved as PNG on exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/textmode"
	"github.com/gogpu/textmode/termview"
	"github.com/gogpu/textmode/text"
)

func main() {
	var (
		fonts    = flag.String("font", text.DefaultFaces, "comma-separated faces: gomono, basic or a TTF/OTF path")
		size     = flag.Float64("size", text.DefaultSize, "font size in points")
		snapshot = flag.String("snapshot", "", "save the last frame to this PNG file on exit")
		logPath  = flag.String("log", "", "write logs to this file (the terminal is in use)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if err := run(*fonts, *size, *snapshot, *logPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "xqa-term: %v\n", err)
		os.Exit(1)
	}
}

func run(fonts string, size float64, snapshot, logPath string, verbose bool) error {
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path from flag
		if err != nil {
			return err
		}
		defer f.Close()
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		textmode.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}
	logger := textmode.Logger()

	faces, err := text.Open(fonts, text.WithSize(size))
	if err != nil {
		return err
	}
	d, err := textmode.NewDisplay(faces)
	if err != nil {
		return err
	}
	if _, err := d.Memory().Print(0, 0, "XqA terminal. Type away; Esc quits.", textmode.Yellow, textmode.Blue); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	fb := d.NewFramebuffer()
	view := termview.New(screen, d.Memory())
	if err := view.SetCursor(0, 1); err != nil {
		return err
	}
	view.SetFilter(faces.HasGlyph)
	view.OnFrame(func(*textmode.Grid) error {
		return d.Draw(fb)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := view.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	st := d.Renderer().Cache().Stats()
	logger.Info("session ended", "blocks", st.Len, "hits", st.Hits, "misses", st.Misses)

	if snapshot != "" {
		if err := fb.SavePNG(snapshot); err != nil {
			return err
		}
		logger.Info("snapshot saved", "output", snapshot)
	}
	return nil
}
