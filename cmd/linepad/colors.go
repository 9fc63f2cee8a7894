package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/linepad/internal/theme"
)

type colorsCmd struct {
	r  *root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{r: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	filter := strings.ToLower(strings.TrimSpace(strings.Join(c.fs.Args(), "")))
	fmt.Fprintln(os.Stdout, "recognized color names (hex #RRGGBB also accepted anywhere a color is):")
	matched := 0
	for _, name := range colornames.Names {
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		col := colornames.Map[name]
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.R, col.G, col.B)
		fmt.Fprintf(os.Stdout, "%-22s %s %s\n", name, theme.FormatColor(col), block)
		matched++
	}
	if matched == 0 {
		fmt.Fprintf(os.Stdout, "no color names match %q\n", filter)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Program() string {
	return c.r.program + " colors"
}
