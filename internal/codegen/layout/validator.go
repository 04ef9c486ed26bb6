package layout

import (
	"math"
	"strings"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

// Separator joins the group and leaf halves of a compound channel name.
const Separator = "."

// MaxElements bounds dimensions, element counts and backing structure sizes.
// The host stores all of them in int32_t fields.
const MaxElements = math.MaxInt32

// maxPadding over-approximates the alignment padding one channel can add to
// its backing structure: its own padding, entry and tail padding of a group
// it opens and the structure's final tail padding.
const maxPadding = 4 * 8

// cKeywords are rejected as identifiers since every name becomes a C member.
var cKeywords = map[string]struct{}{
	"auto": {}, "break": {}, "case": {}, "char": {}, "const": {}, "continue": {},
	"default": {}, "do": {}, "double": {}, "else": {}, "enum": {}, "extern": {},
	"float": {}, "for": {}, "goto": {}, "if": {}, "inline": {}, "int": {},
	"long": {}, "register": {}, "restrict": {}, "return": {}, "short": {},
	"signed": {}, "sizeof": {}, "static": {}, "struct": {}, "switch": {},
	"typedef": {}, "union": {}, "unsigned": {}, "void": {}, "volatile": {},
	"while": {}, "_Bool": {}, "_Complex": {}, "_Imaginary": {},
}

// IsIdentifier reports whether s is a non-empty run of ASCII letters, digits
// and underscores that does not start with a digit and is not a C keyword.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	_, reserved := cKeywords[s]
	return !reserved
}

// SplitName splits a channel name into its group and leaf. Plain identifiers
// have an empty group. ok is false for anything that is neither an
// Identifier nor a CompoundIdentifier.
func SplitName(name string) (group, leaf string, ok bool) {
	parts := strings.Split(name, Separator)
	switch len(parts) {
	case 1:
		return "", parts[0], IsIdentifier(parts[0])
	case 2:
		return parts[0], parts[1], IsIdentifier(parts[0]) && IsIdentifier(parts[1])
	default:
		return "", "", false
	}
}

// Validate checks one family. It returns every problem found, in
// declaration order; a nil result means the family is well formed.
func Validate(f channel.Family, specs []channel.Spec) ErrorList {
	var errs ErrorList

	leaves := make(map[string]struct{}, len(specs))
	groups := make(map[string]struct{})
	topLeaves := make(map[string]struct{})
	var total int64

	for _, s := range specs {
		group, leaf, ok := SplitName(s.Name)
		if !ok {
			if strings.Count(s.Name, Separator) > 1 {
				errs = append(errs, newError(InvalidIdentifier, f, s.Name, "only one level of nesting is supported"))
			} else {
				errs = append(errs, newError(InvalidIdentifier, f, s.Name, "not a valid C identifier"))
			}
			continue
		}

		if s.DimX < 1 {
			errs = append(errs, newError(InvalidDimension, f, s.Name, "dimX must be at least 1, got %d", s.DimX))
		}
		if s.DimY < 1 {
			errs = append(errs, newError(InvalidDimension, f, s.Name, "dimY must be at least 1, got %d", s.DimY))
		}
		if s.DimX > MaxElements {
			errs = append(errs, newError(InvalidDimension, f, s.Name, "dimX must be at most %d, got %d", MaxElements, s.DimX))
		}
		if s.DimY > MaxElements {
			errs = append(errs, newError(InvalidDimension, f, s.Name, "dimY must be at most %d, got %d", MaxElements, s.DimY))
		}
		if s.DimX >= 1 && s.DimY >= 1 && s.DimX <= MaxElements && s.DimY <= MaxElements {
			if s.DimX > MaxElements/s.DimY {
				errs = append(errs, newError(InvalidDimension, f, s.Name, "%d x %d elements exceed %d", s.DimX, s.DimY, MaxElements))
			} else if total >= 0 {
				total += int64(s.DimX)*int64(s.DimY)*int64(elementWidth(f, s)) + maxPadding
				if total > MaxElements {
					errs = append(errs, newError(InvalidDimension, f, s.Name, "%s backing structure exceeds %d bytes", f.StructName(), MaxElements))
					total = -1
				}
			}
		}

		if _, dup := leaves[s.Name]; dup {
			errs = append(errs, newError(DuplicateChannel, f, s.Name, "declared more than once"))
			continue
		}
		leaves[s.Name] = struct{}{}

		if group == "" {
			if _, clash := groups[leaf]; clash {
				errs = append(errs, newError(DuplicateChannel, f, s.Name, "collides with group %q", leaf))
				continue
			}
			topLeaves[leaf] = struct{}{}
			continue
		}
		if _, clash := topLeaves[group]; clash {
			errs = append(errs, newError(DuplicateChannel, f, s.Name, "group %q collides with channel %q", group, group))
			continue
		}
		groups[group] = struct{}{}
	}

	return errs
}

func elementWidth(f channel.Family, s channel.Spec) int {
	if f.IsPort() {
		return channel.Double.Width()
	}
	return s.Type.Width()
}

// ValidateModel checks the model header and every family. The builder is
// free text and may be empty. Errors from all families are accumulated.
func ValidateModel(m *channel.Model) error {
	var errs ErrorList

	if !IsIdentifier(m.Name) {
		errs = append(errs, Error{Kind: InvalidModel, Name: m.Name, Message: "model name is not a valid identifier"})
	}
	if !(m.BaseRate > 0) || math.IsInf(m.BaseRate, 0) {
		errs = append(errs, Error{Kind: InvalidModel, Name: m.Name, Message: "baserate must be a positive number of seconds"})
	}

	for _, f := range channel.Families {
		errs = append(errs, Validate(f, m.Channels(f))...)
	}
	return errs.err()
}
