package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alia5/vsgen/internal/codegen/channel"
	cgen "github.com/Alia5/vsgen/internal/codegen/generator/c"
	"github.com/Alia5/vsgen/internal/codegen/meta"
	"github.com/Alia5/vsgen/internal/modelconfig"
)

// DefaultSourceFile is the default name of the rendered model source.
const DefaultSourceFile = "model.c"

// ErrExists is returned when an output file exists, differs from what would
// be generated and Force is not set.
var ErrExists = errors.New("output file exists")

type Options struct {
	SourceFile string // defaults to DefaultSourceFile
	Header     bool
	Source     bool
	Force      bool
	Style      cgen.Style
	Stdout     io.Writer // when set, output is printed here instead of written
}

type Generator struct {
	outputDir string
	logger    *slog.Logger
	opts      Options
}

type Renderer func(md *meta.Metadata, style cgen.Style) ([]byte, error)

type output struct {
	path string
	data []byte
}

func New(outputDir string, logger *slog.Logger, opts Options) *Generator {
	if opts.SourceFile == "" {
		opts.SourceFile = DefaultSourceFile
	}
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
		opts:      opts,
	}
}

// Generate loads the model configuration at configPath ("-" for stdin) and
// generates its glue.
func (g *Generator) Generate(configPath string) error {
	g.logger.Debug("Loading model config", "path", configPath)
	m, err := modelconfig.Load(configPath)
	if err != nil {
		return err
	}
	return g.GenerateModel(m)
}

// GenerateModel compiles m and writes or prints the selected files. Nothing is
// written unless every file can be written.
func (g *Generator) GenerateModel(m *channel.Model) error {
	if !g.opts.Header && !g.opts.Source {
		g.logger.Warn("Both header and source generation are disabled, nothing to do")
		return nil
	}

	md, err := meta.New(m)
	if err != nil {
		return fmt.Errorf("compile model %q: %w", m.Name, err)
	}
	g.logger.Info("Compiled model",
		"model", m.Name,
		"inports", md.Family(channel.Inport).Len(),
		"outports", md.Family(channel.Outport).Len(),
		"parameters", md.Family(channel.Parameter).Len(),
		"signals", md.Family(channel.Signal).Len())
	g.logger.Debug("Model digest", "digest", md.Digest, "version", md.Version)

	outputs, err := g.render(md)
	if err != nil {
		return err
	}

	if g.opts.Stdout != nil {
		for _, o := range outputs {
			if _, err := g.opts.Stdout.Write(o.data); err != nil {
				return fmt.Errorf("write %s to stdout: %w", filepath.Base(o.path), err)
			}
		}
		return nil
	}

	pending, err := g.plan(outputs, md.Digest)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, o := range pending {
		if err := os.WriteFile(o.path, o.data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", o.path, err)
		}
		g.logger.Info("Generated file", "file", o.path)
	}
	return nil
}

func (g *Generator) render(md *meta.Metadata) ([]output, error) {
	var outputs []output
	add := func(name string, r Renderer) error {
		data, err := r(md, g.opts.Style)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		outputs = append(outputs, output{path: filepath.Join(g.outputDir, name), data: data})
		return nil
	}

	if g.opts.Header {
		if err := add(meta.HeaderFile, cgen.RenderHeader); err != nil {
			return nil, err
		}
	}
	if g.opts.Source {
		if err := add(g.opts.SourceFile, cgen.RenderSource); err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

// plan applies the overwrite policy and returns the outputs to write. A file
// generated from the same configuration is skipped; any other existing file
// is only replaced with Force.
func (g *Generator) plan(outputs []output, digest string) ([]output, error) {
	var pending []output
	for _, o := range outputs {
		existing, err := os.ReadFile(o.path)
		if errors.Is(err, os.ErrNotExist) {
			pending = append(pending, o)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("check output file: %w", err)
		}

		if bytes.Equal(existing, o.data) {
			g.logger.Info("Output is up to date", "file", o.path)
			continue
		}
		if g.opts.Force {
			g.logger.Debug("Overwriting existing file", "file", o.path)
			pending = append(pending, o)
			continue
		}
		if d, ok := cgen.ReadDigest(existing); ok && d == digest {
			// same configuration, rendered with another style or tool version
			g.logger.Info("Output is up to date", "file", o.path)
			continue
		}
		return nil, fmt.Errorf("%w: %s, not overwriting (use --force to override)", ErrExists, o.path)
	}
	return pending, nil
}
