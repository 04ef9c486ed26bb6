package cgen

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/Alia5/vsgen/internal/codegen/channel"
	"github.com/Alia5/vsgen/internal/codegen/layout"
	"github.com/Alia5/vsgen/internal/codegen/meta"
)

// Style controls the indentation of rendered files. Templates indent with
// tabs; unless Tabs is set every tab is expanded to IndentWidth columns.
type Style struct {
	IndentWidth int
	Tabs        bool
}

// DefaultStyle indents with two spaces.
var DefaultStyle = Style{IndentWidth: 2}

// view is the template data shared by the header and source templates.
type view struct {
	*meta.Metadata
	Inports  *layout.CompiledFamily
	Outports *layout.CompiledFamily
	Params   *layout.CompiledFamily
	Signals  *layout.CompiledFamily
}

func newView(md *meta.Metadata) *view {
	return &view{
		Metadata: md,
		Inports:  md.Family(channel.Inport),
		Outports: md.Family(channel.Outport),
		Params:   md.Family(channel.Parameter),
		Signals:  md.Family(channel.Signal),
	}
}

// RenderHeader renders model.h: the backing structures, extern declarations
// and the prototypes of the user model functions.
func RenderHeader(md *meta.Metadata, style Style) ([]byte, error) {
	return render("model.h", headerTmpl, md, style)
}

// RenderSource renders the model source: host metadata tables, value
// accessors and the USER_* entry points.
func RenderSource(md *meta.Metadata, style Style) ([]byte, error) {
	return render("model.c", sourceTmpl, md, style)
}

func render(name, text string, md *meta.Metadata, style Style) ([]byte, error) {
	v := newView(md)
	tmpl, err := template.New(name).Funcs(tplFuncs(v)).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", name, err)
	}
	return style.apply(buf.String()), nil
}

func (s Style) apply(out string) []byte {
	out = strings.TrimSpace(out)
	if !s.Tabs {
		out = expandTabs(out, s.IndentWidth)
	}
	return []byte(out + "\n")
}

// expandTabs replaces tabs with spaces up to the next multiple of width
// columns. A width below one removes tabs.
func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			if width > 0 {
				n := width - col%width
				b.WriteString(strings.Repeat(" ", n))
				col += n
			}
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// DigestLine introduces the configuration digest in every banner.
const DigestLine = "Config digest: "

var digestRe = regexp.MustCompile(regexp.QuoteMeta(DigestLine) + `(\S+)`)

// ReadDigest extracts the configuration digest from the banner of a
// previously rendered file.
func ReadDigest(data []byte) (string, bool) {
	// the banner is at the top, no need to scan the whole file
	if len(data) > 1024 {
		data = data[:1024]
	}
	m := digestRe.FindSubmatch(data)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}
