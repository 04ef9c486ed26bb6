package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"

	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/vsgen/internal/codegen/channel"
	"github.com/Alia5/vsgen/internal/codegen/meta"
	"github.com/Alia5/vsgen/internal/modelconfig"
)

type Inspect struct {
	Model  string `arg:"" name:"model" help:"Model configuration (.json, .yaml, .toml or .hcl), or '-' to read JSON from stdin"`
	Format string `help:"Output format" enum:"table,json,yaml" default:"table" env:"VSGEN_INSPECT_FORMAT"`
}

type layoutReport struct {
	Model    string         `json:"model" yaml:"model"`
	BaseRate float64        `json:"baserate" yaml:"baserate"`
	Digest   string         `json:"digest" yaml:"digest"`
	Families []familyReport `json:"families" yaml:"families"`
}

type familyReport struct {
	Family   string          `json:"family" yaml:"family"`
	Struct   string          `json:"struct" yaml:"struct"`
	Size     int             `json:"size,omitempty" yaml:"size,omitempty"`
	Align    int             `json:"align,omitempty" yaml:"align,omitempty"`
	Channels []channelReport `json:"channels" yaml:"channels"`
}

type channelReport struct {
	HostPath    string `json:"hostPath" yaml:"hostPath"`
	Member      string `json:"member" yaml:"member"`
	Type        string `json:"type" yaml:"type"`
	Count       int    `json:"count" yaml:"count"`
	Shape       string `json:"shape" yaml:"shape"`
	Dims        [2]int `json:"dims" yaml:"dims,flow"`
	ByteSize    int    `json:"byteSize" yaml:"byteSize"`
	Offset      *int   `json:"offset,omitempty" yaml:"offset,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Run is called by Kong when the inspect command is executed.
func (c *Inspect) Run(logger *slog.Logger) error {
	m, err := modelconfig.Load(c.Model)
	if err != nil {
		return err
	}
	md, err := meta.New(m)
	if err != nil {
		return fmt.Errorf("compile model %q: %w", m.Name, err)
	}
	logger.Debug("Compiled model", "model", m.Name, "digest", md.Digest)

	report := buildReport(md)
	switch c.Format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(report)
	}
}

func buildReport(md *meta.Metadata) *layoutReport {
	r := &layoutReport{Model: md.Model.Name, BaseRate: md.Model.BaseRate, Digest: md.Digest}
	for _, f := range channel.Families {
		cf := md.Family(f)
		fr := familyReport{Family: f.String(), Struct: f.StructName(), Channels: []channelReport{}}
		if f.HasOffsets() {
			fr.Size, fr.Align = cf.Size, cf.Align
		}
		for i, c := range cf.Channels() {
			dim := cf.Tables.Dims[i]
			cr := channelReport{
				HostPath:    c.HostPath(),
				Member:      c.Member(),
				Type:        c.Type.String(),
				Count:       c.Count,
				Shape:       c.Shape.String(),
				Dims:        [2]int{dim.Major, dim.Minor},
				ByteSize:    c.ByteSize,
				Description: c.Description,
			}
			if c.HasOffset {
				off := c.Offset
				cr.Offset = &off
			}
			fr.Channels = append(fr.Channels, cr)
		}
		r.Families = append(r.Families, fr)
	}
	return r
}

func writeTable(r *layoutReport) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "MODEL %s\tbaserate %s\t%s\n\n", r.Model, strconv.FormatFloat(r.BaseRate, 'g', -1, 64), r.Digest)
	fmt.Fprintln(w, "FAMILY\tPATH\tTYPE\tCOUNT\tSHAPE\tBYTES\tOFFSET")
	for _, f := range r.Families {
		for _, c := range f.Channels {
			offset := "-"
			if c.Offset != nil {
				offset = strconv.Itoa(*c.Offset)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%s\n", f.Family, c.HostPath, c.Type, c.Count, c.Shape, c.ByteSize, offset)
		}
		if f.Size > 0 {
			fmt.Fprintf(w, "%s\tsizeof(%s)\t\t\t\t%d\t\n", f.Family, f.Struct, f.Size)
		}
	}
	return w.Flush()
}
