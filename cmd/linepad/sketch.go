package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/example/linepad/internal/config"
	"github.com/example/linepad/internal/display"
	"github.com/example/linepad/internal/raster"
	"github.com/example/linepad/internal/sketch"
	"github.com/example/linepad/internal/theme"
)

type sketchCmd struct {
	r      *root
	fs     *flag.FlagSet
	size   string
	fg     string
	bg     string
	status bool
	title  string
}

// configReloaded carries a freshly parsed config file from the watcher
// goroutine into the window's event loop.
type configReloaded struct {
	cfg *config.Config
}

func parseSketchCmd(args []string, r *root) (*sketchCmd, error) {
	fs := flag.NewFlagSet("sketch", flag.ExitOnError)
	c := &sketchCmd{r: r, fs: fs}
	fs.StringVar(&c.size, "size", "", "canvas size as WIDTHxHEIGHT, or 'fit' for the primary monitor")
	fs.StringVar(&c.fg, "fg", "", "stroke color, hex #RRGGBB or an SVG color name")
	fs.StringVar(&c.bg, "bg", "", "canvas color, hex #RRGGBB or an SVG color name")
	fs.BoolVar(&c.status, "status", r.config.Canvas.Status, "show the status bar")
	fs.StringVar(&c.title, "title", "", "window title override")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *sketchCmd) Program() string {
	return c.r.program + " sketch"
}

func (c *sketchCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *sketchCmd) Run() error {
	width, height := c.r.config.Canvas.Width, c.r.config.Canvas.Height
	switch {
	case strings.EqualFold(strings.TrimSpace(c.size), "fit"):
		pt, err := display.PrimaryMonitorSize()
		if err != nil {
			log.Printf("monitor probe: %v; using %dx%d", err, width, height)
		} else {
			width, height = pt.X, pt.Y
		}
	case c.size != "":
		w, h, err := parseSize(c.size)
		if err != nil {
			return err
		}
		width, height = w, h
	}

	opts := []sketch.Option{
		sketch.WithTheme(*c.r.activeTheme),
		sketch.WithStatus(c.status),
		sketch.WithNotifier(c.r.notifier),
	}
	if c.fg != "" {
		col, err := theme.ParseColor(c.fg)
		if err != nil {
			return fmt.Errorf("-fg: %w", err)
		}
		opts = append(opts, sketch.WithForeground(raster.FromColor(col)))
	}
	if c.bg != "" {
		col, err := theme.ParseColor(c.bg)
		if err != nil {
			return fmt.Errorf("-bg: %w", err)
		}
		opts = append(opts, sketch.WithBackground(raster.FromColor(col)))
	}

	sess := sketch.NewSession(raster.New(width, height), opts...)

	// Theme and notification changes written to the config file land
	// while the window is open; explicit flags and $LINEPAD_THEME still
	// win.
	sess.Register(sketch.HandlerFunc(func(e any, s *sketch.Session) {
		ev, ok := e.(configReloaded)
		if !ok {
			return
		}
		s.SetTheme(*c.r.resolveTheme(ev.cfg))
		c.r.applyNotifyReload(ev.cfg)
		s.Present()
	}))

	dispOpts := display.Options{Title: c.windowTitle(width, height)}
	loader := config.NewLoader(version, configPathOverride)
	if path := loader.GetConfigPath(); path != "" {
		dispOpts.Bind = func(send func(e any)) func() {
			w, err := config.Watch(path, func(cfg *config.Config) {
				send(configReloaded{cfg: cfg})
			})
			if err != nil {
				log.Printf("config watch: %v", err)
				return nil
			}
			return func() {
				if err := w.Close(); err != nil {
					log.Printf("config watch: close: %v", err)
				}
			}
		}
	}

	display.Run(sess, dispOpts)
	return nil
}

func (c *sketchCmd) windowTitle(width, height int) string {
	if c.title != "" {
		return c.title
	}
	return windowTitle(titleOptions{
		Size:  fmt.Sprintf("%dx%d", width, height),
		Theme: c.r.activeTheme.Name,
	})
}

// parseSize parses a WIDTHxHEIGHT canvas size.
func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return w, h, nil
}
