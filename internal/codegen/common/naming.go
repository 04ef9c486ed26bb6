package common

import (
	"fmt"
	"strconv"
	"strings"
)

// IncludeGuard returns the header guard macro for a model, e.g. "M_MODEL_H".
func IncludeGuard(model string) string {
	return strings.ToUpper(model) + "_MODEL_H"
}

// CFloat formats a float as a C double literal that always carries a
// decimal point or exponent ("0.0025", "1.0", "1e-05").
func CFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

// CString quotes s as a C string literal.
func CString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, "\\%03o", c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
