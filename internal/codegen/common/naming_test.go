package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vstest "github.com/Alia5/vsgen/internal/testing"
)

func TestCFloat(t *testing.T) {
	tests := map[float64]string{
		0.0025: "0.0025",
		1:      "1.0",
		0.5:    "0.5",
		1e-05:  "1e-05",
		100:    "100.0",
	}
	for in, want := range tests {
		assert.Equal(t, want, CFloat(in))
	}
}

func TestCString(t *testing.T) {
	assert.Equal(t, `"a double value"`, CString("a double value"))
	assert.Equal(t, `"say \"hi\"\\n"`, CString(`say "hi"\n`))
	assert.Equal(t, `"line\nnext"`, CString("line\nnext"))
	assert.Equal(t, `"\0011"`, CString("\x011"))
}

func TestIncludeGuard(t *testing.T) {
	assert.Equal(t, "MY_NEW_MODEL_MODEL_H", IncludeGuard("my_new_model"))
}

func TestConfigDigest(t *testing.T) {
	a, err := ConfigDigest(vstest.ExampleModel())
	require.NoError(t, err)
	b, err := ConfigDigest(vstest.ExampleModel())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, DigestPrefix))
	assert.Len(t, a, len(DigestPrefix)+64)

	m := vstest.ExampleModel()
	m.Signals[0].Description = "changed"
	c, err := ConfigDigest(m)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGetVersion(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = ""
	v, err := GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	Version = "v1.2.3-dirty"
	v, err = GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-dirty", v)

	Version = "nope"
	_, err = GetVersion()
	assert.Error(t, err)
}
