package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("VSGEN_CONFIG", "")

	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{"equals", []string{"generate", "--config=a.yaml", "m.json"}, "", "a.yaml"},
		{"separate", []string{"--config", "b.toml", "generate", "m.json"}, "", "b.toml"},
		{"dangling", []string{"generate", "--config"}, "", ""},
		{"env", []string{"generate", "m.json"}, "c.json", "c.json"},
		{"flag beats env", []string{"--config=d.json"}, "c.json", "d.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VSGEN_CONFIG", tt.env)
			assert.Equal(t, tt.want, findUserConfig(tt.args))
		})
	}
}
