package main

import (
	"fmt"
	"strings"
)

const programTitle = "Linepad"

type titleOptions struct {
	Size   string
	Theme  string
	Extras []string
}

func windowTitle(opts titleOptions) string {
	parts := []string{programTitle}

	size := strings.TrimSpace(opts.Size)
	if size != "" {
		parts = append(parts, size)
	}

	th := strings.TrimSpace(opts.Theme)
	if th != "" {
		parts = append(parts, th)
	}

	extras := make([]string, 0, len(opts.Extras)+3)

	if strings.TrimSpace(version) != "" {
		extras = append(extras, fmt.Sprintf("v%s", strings.TrimSpace(version)))
	}

	if strings.TrimSpace(commit) != "" {
		extras = append(extras, fmt.Sprintf("commit %s", strings.TrimSpace(commit)))
	}

	if strings.TrimSpace(date) != "" {
		extras = append(extras, strings.TrimSpace(date))
	}

	if len(opts.Extras) > 0 {
		extras = append(extras, opts.Extras...)
	}

	if len(extras) > 0 {
		parts = append(parts, extras...)
	}

	return strings.Join(parts, " - ")
}
