package meta

import (
	"fmt"

	"github.com/Alia5/vsgen/internal/codegen/channel"
	"github.com/Alia5/vsgen/internal/codegen/common"
	"github.com/Alia5/vsgen/internal/codegen/layout"
)

// HeaderFile is the name of the rendered types header. The host build
// includes it by this name, so it is not configurable.
const HeaderFile = "model.h"

// Metadata holds the compiled model needed for code generation.
// Shared between generator orchestrator and language-specific generators.
type Metadata struct {
	Model   *channel.Model
	Layout  *layout.Result
	Digest  string // configuration fingerprint stamped into every banner
	Version string // tool version stamped into every banner
}

// New compiles m and collects everything a renderer needs. A model that
// fails validation yields the layout.ErrorList unchanged.
func New(m *channel.Model) (*Metadata, error) {
	res, err := layout.Compile(m)
	if err != nil {
		return nil, err
	}

	digest, err := common.ConfigDigest(m)
	if err != nil {
		return nil, err
	}

	version, err := common.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}

	return &Metadata{
		Model:   m,
		Layout:  res,
		Digest:  digest,
		Version: version,
	}, nil
}

// Family is shorthand for md.Layout.Family(f).
func (md *Metadata) Family(f channel.Family) *layout.CompiledFamily {
	return md.Layout.Family(f)
}
