package cmd

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	cgen "github.com/Alia5/vsgen/internal/codegen/generator/c"
	"github.com/Alia5/vsgen/internal/codegen/generator"
	"github.com/Alia5/vsgen/internal/modelconfig"
)

// stdout receives command output that is printed rather than written to
// files. Tests replace it.
var stdout io.Writer = os.Stdout

type Generate struct {
	Model       string `arg:"" name:"model" help:"Model configuration (.json, .yaml, .toml or .hcl), or '-' to read JSON from stdin"`
	OutDir      string `short:"O" name:"outdir" help:"Directory to output files to" default:"." placeholder:"DIR" env:"VSGEN_OUTDIR"`
	Output      string `short:"o" name:"output" help:"Name of the output model source file" default:"model.c" placeholder:"FILE" env:"VSGEN_OUTPUT"`
	IndentWidth int    `short:"w" name:"indentwidth" help:"Number of spaces used to indent" default:"2" placeholder:"N" env:"VSGEN_INDENT_WIDTH"`
	Tabs        bool   `short:"t" name:"tabs" help:"Use tabs instead of spaces to indent generated code" env:"VSGEN_TABS"`
	Force       bool   `short:"f" name:"force" help:"Overwrite output files if they exist"`
	Stdout      bool   `name:"stdout" help:"Print generated output to stdout instead of files on disk"`
	Header      bool   `name:"header" help:"Generate model.h" default:"true" negatable:""`
	Src         bool   `name:"src" help:"Generate the model source file" default:"true" negatable:""`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	if g.Model == modelconfig.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Warn("Reading model config from the terminal, end input with Ctrl-D")
	}

	opts := generator.Options{
		SourceFile: g.Output,
		Header:     g.Header,
		Source:     g.Src,
		Force:      g.Force,
		Style:      cgen.Style{IndentWidth: g.IndentWidth, Tabs: g.Tabs},
	}
	if g.Stdout {
		opts.Stdout = stdout
	}

	logger.Info("Starting model glue generation", "config", g.Model, "outdir", g.OutDir, "stdout", g.Stdout)
	return generator.New(g.OutDir, logger, opts).Generate(g.Model)
}
