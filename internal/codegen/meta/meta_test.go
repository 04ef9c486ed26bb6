package meta

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/vsgen/internal/codegen/channel"
	"github.com/Alia5/vsgen/internal/codegen/common"
	"github.com/Alia5/vsgen/internal/codegen/layout"
	vstest "github.com/Alia5/vsgen/internal/testing"
)

func TestNew(t *testing.T) {
	md, err := New(vstest.ExampleModel())
	require.NoError(t, err)

	assert.Equal(t, "my_new_model", md.Model.Name)
	assert.Equal(t, 2, md.Family(channel.Signal).Len())
	assert.Contains(t, md.Digest, common.DigestPrefix)
	assert.NotEmpty(t, md.Version)
}

func TestNewRejectsInvalidModel(t *testing.T) {
	m := vstest.MinimalModel()
	m.Signals = []channel.Spec{{Name: "bad name", DimX: 1, DimY: 1}}

	md, err := New(m)
	assert.Nil(t, md)

	var list layout.ErrorList
	require.True(t, errors.As(err, &list))
	assert.True(t, list.Has(layout.InvalidIdentifier))
}
