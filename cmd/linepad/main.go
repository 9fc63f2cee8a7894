package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/example/linepad/internal/config"
	"github.com/example/linepad/internal/notify"
	"github.com/example/linepad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("linepad", flag.ExitOnError),
		program:  "linepad",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying the canvas")

	// Precedence: CLI > Env > Config > Default. The flag default stays
	// empty; fallback happens in resolveTheme.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (see 'linepad themes')")
	r.fs.Usage = usageFunc(r)
	return r
}

// applyNotifyReload follows a reloaded config file's notification
// toggle, unless -notify-copy was given explicitly on the command line.
func (r *root) applyNotifyReload(cfg *config.Config) {
	if r.notifier == nil {
		return
	}
	explicit := false
	r.fs.Visit(func(f *flag.Flag) {
		if f.Name == "notify-copy" {
			explicit = true
		}
	})
	if explicit {
		return
	}
	r.copyAlerts = cfg.Notify.Copy
	r.notifier.Enable(notify.EventCopy, cfg.Notify.Copy)
}

// resolveTheme picks the active theme for the given config, honoring the
// -theme flag, then $LINEPAD_THEME, then the config file.
func (r *root) resolveTheme(cfg *config.Config) *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("LINEPAD_THEME")
	}
	if name == "" {
		name = cfg.Theme
	}
	t, err := theme.Find(name, cfg.Themes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v. using default.\n", err)
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	r.activeTheme = r.resolveTheme(r.config)

	// A bare invocation opens the drawing window.
	cmdName := "sketch"
	subArgs := r.fs.Args()
	if len(subArgs) > 0 {
		cmdName = subArgs[0]
		subArgs = subArgs[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "sketch":
		cmd, err = parseSketchCmd(subArgs, r)
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
