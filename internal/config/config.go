package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/linepad/internal/theme"
)

// Canvas holds the drawing surface settings.
type Canvas struct {
	Width  int
	Height int
	Status bool // status bar visible at startup
}

// Notify holds notification settings.
type Notify struct {
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme  string
	Canvas Canvas
	Notify Notify
	Themes map[string]*theme.Theme
}

// DefaultWidth and DefaultHeight size the canvas when no configuration
// or flag says otherwise.
const (
	DefaultWidth  = 600
	DefaultHeight = 800
)

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // empty falls back to env, then the default palette
		Canvas: Canvas{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Status: true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String returns the configuration in RC format. Parse reads it back.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	sb.WriteString("\n[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "status = %v\n", c.Canvas.Status)

	sb.WriteString("\n[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "\n[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", theme.FormatColor(t.Background))
		fmt.Fprintf(&sb, "Foreground: %s\n", theme.FormatColor(t.Foreground))
		fmt.Fprintf(&sb, "StatusBack: %s\n", theme.FormatColor(t.StatusBack))
		fmt.Fprintf(&sb, "StatusText: %s\n", theme.FormatColor(t.StatusText))
	}

	return sb.String()
}
