package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePaths(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout only")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	tests := []struct {
		name     string
		user     string
		wantJSON string
		wantYAML string
		wantTOML string
	}{
		{"json", "my.json", "my.json", "", ""},
		{"yml", "my.yml", "", "my.yml", ""},
		{"toml", "my.toml", "", "", "my.toml"},
		{"no extension", "my", "my", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, y, tm := ConfigCandidatePaths(tt.user)
			first := func(want string, got []string) {
				if want != "" {
					assert.Equal(t, want, got[0])
				} else {
					assert.NotEqual(t, tt.user, got[0])
				}
			}
			first(tt.wantJSON, j)
			first(tt.wantYAML, y)
			first(tt.wantTOML, tm)
		})
	}

	j, _, _ := ConfigCandidatePaths("")
	assert.Contains(t, j, filepath.Join(home, AppName, "vsgen.json"))
	assert.Contains(t, j, filepath.Join("/etc", AppName, "config.json"))
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout only")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	tests := map[string]string{
		"json": "generate.json",
		"yml":  "generate.yaml",
		"toml": "generate.toml",
		"hcl":  "generate.hcl",
	}
	for format, want := range tests {
		p, err := DefaultNamedConfigPath("generate", format)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, AppName, want), p)
	}
}
