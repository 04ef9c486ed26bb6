// Package config defines the vsgen command line.
package config

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Alia5/vsgen/internal/cmd"
)

type Log struct {
	Level  string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"VSGEN_LOG_LEVEL"`
	Format string `help:"Log line format" enum:"text,json" default:"text" env:"VSGEN_LOG_FORMAT"`
	File   string `help:"Also write logs to this file; console logs then go to stderr" type:"path" env:"VSGEN_LOG_FILE"`
}

type CLI struct {
	ConfigFile string           `name:"config" help:"CLI configuration file (.json, .yaml or .toml)" type:"path" env:"VSGEN_CONFIG"`
	Version    kong.VersionFlag `help:"Print version and exit"`
	Log        Log              `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" help:"Generate VeriStand model glue (model.h, model.c) from a model configuration"`
	Inspect  cmd.Inspect       `cmd:"" help:"Print the computed channel layout of a model configuration"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// PrintsToStdout reports whether the selected command writes its result to
// stdout, in which case console logging must stay on stderr.
func (c *CLI) PrintsToStdout(command string) bool {
	switch {
	case strings.HasPrefix(command, "generate"):
		return c.Generate.Stdout
	case strings.HasPrefix(command, "inspect"):
		return true
	default:
		return false
	}
}
