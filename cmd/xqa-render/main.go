// Command xqa-render renders the text-mode screen to a PNG file.
//
// It fills the 90x25 grid with a banner, the colour palette and an optional
// message, renders one or more frames into a 1280x720 framebuffer and saves
// the last one.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/textmode"
	"github.com/gogpu/textmode/text"
)

func main() {
	var (
		output   = flag.String("output", "screen.png", "output file")
		fonts    = flag.String("font", text.DefaultFaces, "comma-separated faces: gomono, basic or a TTF/OTF path")
		size     = flag.Float64("size", text.DefaultSize, "font size in points")
		message  = flag.String("text", "READY.", "message printed below the palette")
		fg       = flag.String("fg", "white", "message foreground colour")
		bg       = flag.String("bg", "blue", "screen background colour")
		frames   = flag.Int("frames", 1, "number of frames to render")
		capacity = flag.Int("cache", textmode.DefaultGlyphCacheCapacity, "glyph cache capacity in blocks")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	textmode.SetLogger(logger)

	cfg := config{
		output:   *output,
		fonts:    *fonts,
		size:     *size,
		message:  *message,
		fg:       *fg,
		bg:       *bg,
		frames:   *frames,
		capacity: *capacity,
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("xqa-render failed", "err", err)
		os.Exit(1)
	}
}

type config struct {
	output   string
	fonts    string
	size     float64
	message  string
	fg, bg   string
	frames   int
	capacity int
}

func run(cfg config, logger *slog.Logger) error {
	fg, err := textmode.ParseColour(cfg.fg)
	if err != nil {
		return err
	}
	bg, err := textmode.ParseColour(cfg.bg)
	if err != nil {
		return err
	}
	if cfg.frames < 1 {
		return errors.New("frames must be at least 1")
	}

	faces, err := text.Open(cfg.fonts, text.WithSize(cfg.size))
	if err != nil {
		return err
	}
	d, err := textmode.NewDisplay(faces, textmode.WithCacheCapacity(cfg.capacity))
	if err != nil {
		return err
	}
	if err := compose(d.Memory(), cfg.message, fg, bg); err != nil {
		return err
	}

	fb := d.NewFramebuffer()
	for range cfg.frames {
		if err := d.Draw(fb); err != nil {
			return err
		}
	}
	if err := fb.SavePNG(cfg.output); err != nil {
		return err
	}

	st := d.Renderer().Cache().Stats()
	logger.Info("screen saved",
		"output", cfg.output,
		"width", fb.Width(),
		"height", fb.Height(),
		"frames", cfg.frames,
		"blocks", st.Len,
		"hits", st.Hits,
		"misses", st.Misses,
	)
	return nil
}

// compose fills g with the demo screen.
func compose(g *textmode.Grid, message string, fg, bg textmode.Colour) error {
	g.Fill(' ', fg, bg)

	title := " XqA terminal "
	col := (textmode.Columns - len(title)) / 2
	if _, err := g.Print(col, 0, title, textmode.Black, textmode.LightGrey); err != nil {
		return err
	}

	for i, c := range textmode.Colours() {
		row := 2 + i
		label := fmt.Sprintf("%2d %-10s", i, c)
		if _, err := g.Print(2, row, label, fg, bg); err != nil {
			return err
		}
		swatch := strings.Repeat(" ", 8)
		if _, err := g.Print(16, row, swatch, fg, c); err != nil {
			return err
		}
		if _, err := g.Print(26, row, "Sample text", c, bg); err != nil {
			return err
		}
	}

	row := 2 + len(textmode.Colours()) + 1
	for _, line := range strings.Split(message, "\n") {
		if row >= textmode.Lines {
			break
		}
		if _, err := g.Print(2, row, line, fg, bg); err != nil {
			return err
		}
		row++
	}
	return nil
}
