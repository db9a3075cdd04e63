// Package obslog wraps hashicorp/go-hclog into the leveled, structured
// logger every cmd/ driver uses for operational visibility
// (SPEC_FULL.md's AMBIENT STACK). The derivation engine itself
// never logs -- a prakriyā's own history is the record of what it did;
// this package is strictly for the operational code around it.
package obslog

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options configures New. A zero Options gives an info-level, human-
// readable logger writing to stderr.
type Options struct {
	Name   string
	Level  string // hclog level name; empty means "info"
	JSON   bool
	Output io.Writer // nil means os.Stderr
}

// New builds a named hclog.Logger from opts.
func New(opts Options) hclog.Logger {
	level := hclog.Info
	if opts.Level != "" {
		level = hclog.LevelFromString(opts.Level)
		if level == hclog.NoLevel {
			level = hclog.Info
		}
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
	})
}

// Default is the package-level logger cmd/ entry points use before any
// config file has been parsed.
var Default = New(Options{Name: "prakriya"})
