package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/example/linepad/internal/theme"
)

type themesCmd struct {
	r  *root
	fs *flag.FlagSet
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	cmd := &themesCmd{r: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	seen := make(map[string]bool)
	var names []string
	for _, name := range theme.BuiltinNames() {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range c.r.config.Themes {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	active := ""
	if c.r.activeTheme != nil {
		active = c.r.activeTheme.Name
	}
	fmt.Fprintln(os.Stdout, "available themes (* marks the active theme):")
	for _, name := range names {
		t, err := theme.Find(name, c.r.config.Themes)
		if err != nil {
			continue
		}
		marker := " "
		if name == active || t.Name == active {
			marker = "*"
		}
		source := ""
		if _, ok := c.r.config.Themes[name]; ok {
			source = " (config)"
		}
		bg, fg := t.Background, t.Foreground
		swatch := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m\x1b[48;2;%d;%d;%dm  \x1b[0m",
			bg.R, bg.G, bg.B, fg.R, fg.G, fg.B)
		fmt.Fprintf(os.Stdout, "%s %-14s bg %s  fg %s  %s%s\n",
			marker, name, theme.FormatColor(bg), theme.FormatColor(fg), swatch, source)
	}
	return nil
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *themesCmd) Program() string {
	return c.r.program + " themes"
}
