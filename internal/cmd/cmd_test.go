package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/vsgen/internal/modelconfig"
	vstest "github.com/Alia5/vsgen/internal/testing"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func defaultGenerate(model, outDir string) *Generate {
	return &Generate{Model: model, OutDir: outDir, Output: "model.c", IndentWidth: 2, Header: true, Src: true}
}

func TestGenerateRun(t *testing.T) {
	cfg := vstest.WriteFile(t, "model.yaml", mustEncode(t, modelconfig.YAML))
	out := t.TempDir()

	g := defaultGenerate(cfg, out)
	g.Output = "my_model.c"
	require.NoError(t, g.Run(discard()))

	assert.FileExists(t, filepath.Join(out, "model.h"))
	assert.FileExists(t, filepath.Join(out, "my_model.c"))

	err := g.Run(discard())
	assert.NoError(t, err, "unchanged config is up to date")
}

func TestGenerateRunStdout(t *testing.T) {
	buf := captureStdout(t)
	cfg := vstest.WriteFile(t, "model.json", []byte(vstest.ExampleModelJSON))
	out := t.TempDir()

	g := defaultGenerate(cfg, out)
	g.Stdout = true
	g.Header = false
	g.Tabs = true
	require.NoError(t, g.Run(discard()))

	assert.NotContains(t, buf.String(), "#ifndef")
	assert.Contains(t, buf.String(), "\t{0, \"my_new_model/i32_param\"")
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateRunInvalid(t *testing.T) {
	cfg := vstest.WriteFile(t, "model.json", []byte(`{"name":"1bad","builder":"b","baserate":1,"signals":["x", "x"]}`))
	err := defaultGenerate(cfg, t.TempDir()).Run(discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid-model")
	assert.Contains(t, err.Error(), "duplicate-channel")
}

func TestInspectFormats(t *testing.T) {
	cfg := vstest.WriteFile(t, "model.json", []byte(vstest.ExampleModelJSON))

	t.Run("json", func(t *testing.T) {
		buf := captureStdout(t)
		require.NoError(t, (&Inspect{Model: cfg, Format: "json"}).Run(discard()))

		var r layoutReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
		assert.Equal(t, "my_new_model", r.Model)
		require.Len(t, r.Families, 4)

		params := r.Families[2]
		assert.Equal(t, "parameters", params.Family)
		assert.Equal(t, 136, params.Size)
		require.Len(t, params.Channels, 2)
		require.NotNil(t, params.Channels[1].Offset)
		assert.Equal(t, 8, *params.Channels[1].Offset)
		assert.Equal(t, [2]int{4, 4}, params.Channels[1].Dims)

		inports := r.Families[0]
		assert.Nil(t, inports.Channels[0].Offset)
		assert.Equal(t, "vectors/vector2d_in", inports.Channels[2].HostPath)
		assert.Equal(t, "vector2d(2,12)", inports.Channels[2].Shape)
	})

	t.Run("yaml", func(t *testing.T) {
		buf := captureStdout(t)
		require.NoError(t, (&Inspect{Model: cfg, Format: "yaml"}).Run(discard()))

		var r layoutReport
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &r))
		assert.Equal(t, "signals", r.Families[3].Family)
		assert.Equal(t, "an array of integers", r.Families[3].Channels[0].Description)
		assert.Equal(t, 104, r.Families[3].Size)
	})

	t.Run("table", func(t *testing.T) {
		buf := captureStdout(t)
		require.NoError(t, (&Inspect{Model: cfg, Format: "table"}).Run(discard()))

		out := buf.String()
		assert.Contains(t, out, "MODEL my_new_model")
		assert.Contains(t, out, "sizeof(Signals)")
		var sig string
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, "double_sig") {
				sig = line
			}
		}
		assert.Equal(t, []string{"signals", "double_sig", "double", "1", "scalar", "8", "96"}, strings.Fields(sig))
	})
}

func mustEncode(t *testing.T, f modelconfig.Format) []byte {
	t.Helper()
	data, err := modelconfig.Encode(modelconfig.Example(), f)
	require.NoError(t, err)
	return data
}
