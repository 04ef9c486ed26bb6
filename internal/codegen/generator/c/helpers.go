package cgen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/vsgen/internal/codegen/common"
	"github.com/Alia5/vsgen/internal/codegen/layout"
)

// placeholderMember keeps structures of empty families legal C.
const placeholderMember = "int32_t reserved_; /* no channels */"

func tplFuncs(v *view) template.FuncMap {
	return template.FuncMap{
		"banner":    func(what string) string { return banner(v, what) },
		"guard":     func() string { return common.IncludeGuard(v.Model.Name) },
		"cstr":      common.CString,
		"cfloat":    common.CFloat,
		"modelPath": func(hostPath string) string { return common.CString(v.Model.Name + "/" + hostPath) },
		"structDef": structDef,
		"dimRow":    dimRow,
		"ioRows":    ioRows,
		"add":       func(a, b int) int { return a + b },
		"indent":    indent,
	}
}

func banner(v *view, what string) string {
	lines := []string{
		"/*",
		fmt.Sprintf(" * Auto-generated VeriStand model %s for %s.", what, v.Model.Name),
		" *",
		fmt.Sprintf(" * Generated by vsgen %s", v.Version),
		" * " + DigestLine + v.Digest,
		" *",
		" * You almost certainly do NOT want to edit this file, as it may be overwritten",
		" * at any time!",
		" */",
	}
	return strings.Join(lines, "\n")
}

// structDef renders the backing structure of a family. Groups become nested
// structs named <Struct>_<group>.
func structDef(cf *layout.CompiledFamily) string {
	name := cf.Family.StructName()

	var b strings.Builder
	fmt.Fprintf(&b, "typedef struct %s {\n", name)
	if len(cf.Tree) == 0 {
		b.WriteString("\t" + placeholderMember + "\n")
	}
	for i := range cf.Tree {
		n := &cf.Tree[i]
		if !n.IsGroup() {
			b.WriteString("\t" + memberDecl(n.Leaf) + "\n")
			continue
		}
		var members []string
		for j := range n.Children {
			members = append(members, memberDecl(n.Children[j].Leaf))
		}
		fmt.Fprintf(&b, "\tstruct %s_%s {\n", name, n.Name)
		b.WriteString(indent(2, strings.Join(members, "\n")) + "\n")
		fmt.Fprintf(&b, "\t} %s;\n", n.Name)
	}
	fmt.Fprintf(&b, "} %s;", name)
	return b.String()
}

func memberDecl(c *layout.Compiled) string {
	decl := c.Type.CType() + " " + c.Name
	switch c.Shape.Kind {
	case layout.Vector1D:
		decl += fmt.Sprintf("[%d]", c.Shape.Rows)
	case layout.Vector2D:
		decl += fmt.Sprintf("[%d][%d]", c.Shape.Rows, c.Shape.Cols)
	}
	return decl + ";"
}

func dimRow(r layout.DimRow) string {
	return fmt.Sprintf("%2d, %2d, /* %s */", r.Major, r.Minor, r.Member)
}

// ioRows renders the rtIOAttribs entries of one port family followed by a
// blank line, or nothing for an empty family.
func ioRows(cf *layout.CompiledFamily, title string) string {
	if cf.Len() == 0 {
		return ""
	}
	lines := []string{"/* " + title + " */"}
	for i, d := range cf.Tables.Descriptors {
		dim := cf.Tables.Dims[i]
		lines = append(lines, fmt.Sprintf("{0, %s, 0, %d, 1, %d, %d},",
			common.CString(d.HostPath), d.Direction, dim.Major, dim.Minor))
	}
	return indent(1, strings.Join(lines, "\n")) + "\n\n"
}

func indent(tabs int, s string) string {
	prefix := strings.Repeat("\t", tabs)
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		if p != "" {
			parts[i] = prefix + p
		}
	}
	return strings.Join(parts, "\n")
}
