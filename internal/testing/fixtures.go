package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

// ExampleModelJSON is the reference model configuration used across tests.
const ExampleModelJSON = `{
  "name": "my_new_model",
  "builder": "a newly-generated model",
  "baserate": 0.0025,
  "inports": [
    {"name": "scalar_in"},
    {"name": "vectors.vector1d_in", "dimX": 8},
    {"name": "vectors.vector2d_in", "dimX": 2, "dimY": 12}
  ],
  "outports": [
    {"name": "scalar_out"},
    {"name": "vectors.vector1d_out", "dimX": 6},
    {"name": "vectors.vector2d_out", "dimX": 3, "dimY": 5}
  ],
  "parameters": [
    {"name": "i32_param", "type": "i32"},
    {"name": "double_vec_param", "type": "double", "dimX": 4, "dimY": 4}
  ],
  "signals": [
    {"name": "i32_vec_sig", "type": "i32", "dimX": 24, "description": "an array of integers"},
    {"name": "double_sig", "type": "double", "description": "a double value"}
  ]
}
`

func spec(name string, dimX, dimY int, t channel.ElementType, desc string) channel.Spec {
	return channel.Spec{Name: name, DimX: dimX, DimY: dimY, Type: t, Description: desc}
}

// ExampleModel returns ExampleModelJSON as a loaded model.
func ExampleModel() *channel.Model {
	return &channel.Model{
		Name:     "my_new_model",
		Builder:  "a newly-generated model",
		BaseRate: 0.0025,
		Inports: []channel.Spec{
			spec("scalar_in", 1, 1, channel.Double, ""),
			spec("vectors.vector1d_in", 8, 1, channel.Double, ""),
			spec("vectors.vector2d_in", 2, 12, channel.Double, ""),
		},
		Outports: []channel.Spec{
			spec("scalar_out", 1, 1, channel.Double, ""),
			spec("vectors.vector1d_out", 6, 1, channel.Double, ""),
			spec("vectors.vector2d_out", 3, 5, channel.Double, ""),
		},
		Parameters: []channel.Spec{
			spec("i32_param", 1, 1, channel.Int32, ""),
			spec("double_vec_param", 4, 4, channel.Double, ""),
		},
		Signals: []channel.Spec{
			spec("i32_vec_sig", 24, 1, channel.Int32, "an array of integers"),
			spec("double_sig", 1, 1, channel.Double, "a double value"),
		},
	}
}

// MinimalModel returns a model with a valid header and no channels.
func MinimalModel() *channel.Model {
	return &channel.Model{Name: "m", Builder: "test", BaseRate: 0.0025}
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}
