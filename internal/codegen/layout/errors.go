package layout

import (
	"fmt"
	"strings"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// InvalidIdentifier: a name is not an Identifier or CompoundIdentifier.
	InvalidIdentifier ErrorKind = "invalid-identifier"
	// DuplicateChannel: two channels of one family resolve to the same member.
	DuplicateChannel ErrorKind = "duplicate-channel"
	// InvalidDimension: dimX or dimY is below 1.
	InvalidDimension ErrorKind = "invalid-dimension"
	// InvalidModel: the model header (name, builder, baserate) is unusable.
	InvalidModel ErrorKind = "invalid-model"
)

// Error describes one rejected declaration.
type Error struct {
	Kind    ErrorKind
	Family  string // empty for model-level errors
	Name    string
	Message string
}

func (e Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Family != "" {
		b.WriteString(" in ")
		b.WriteString(e.Family)
	}
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func newError(kind ErrorKind, f channel.Family, name, format string, args ...any) Error {
	return Error{Kind: kind, Family: f.String(), Name: name, Message: fmt.Sprintf(format, args...)}
}

// ErrorList is returned when a model fails validation. It holds every
// rejected declaration in declaration order.
type ErrorList []Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:", len(l))
	for _, e := range l {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Has reports whether any entry has the given kind.
func (l ErrorList) Has(kind ErrorKind) bool {
	for _, e := range l {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (l ErrorList) err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
