package modelconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

// Format is a configuration document syntax.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	HCL  Format = "hcl"
)

// Formats lists the supported document formats.
var Formats = []Format{JSON, YAML, TOML, HCL}

// Stdin is the path that selects standard input. Documents read from stdin
// are JSON.
const Stdin = "-"

// ParseFormat normalizes a format name ("yml" is accepted for YAML).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "hcl":
		return HCL, nil
	default:
		return "", fmt.Errorf("unsupported config format %q", s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	if path == Stdin {
		return JSON, nil
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer config format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Load reads and converts the configuration at path, or stdin for "-".
func Load(path string) (*channel.Model, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == Stdin {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open model config: %w", err)
		}
		defer f.Close()
		r = f
	}

	return LoadReader(r, format, path)
}

// LoadReader reads a document of the given format from r. name is used in
// error messages and HCL diagnostics.
func LoadReader(r io.Reader, format Format, name string) (*channel.Model, error) {
	data, err := readText(r)
	if err != nil {
		return nil, fmt.Errorf("read model config %s: %w", name, err)
	}
	doc, err := Decode(data, format, name)
	if err != nil {
		return nil, err
	}
	m, err := doc.Model()
	if err != nil {
		return nil, fmt.Errorf("model config %s: %w", name, err)
	}
	return m, nil
}

// readText returns r as UTF-8. A byte order mark selects UTF-8 or UTF-16 and
// is stripped; without one the input is taken as UTF-8.
func readText(r io.Reader) ([]byte, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return io.ReadAll(transform.NewReader(r, dec))
}

// Decode parses a document without applying defaults.
func Decode(data []byte, format Format, name string) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, &doc)
	case YAML:
		err = yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
		if err == io.EOF {
			err = fmt.Errorf("empty document")
		}
	case TOML:
		err = toml.Unmarshal(data, &doc)
	case HCL:
		return decodeHCL(data, name)
	default:
		err = fmt.Errorf("unsupported config format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s model config %s: %w", format, name, err)
	}
	return &doc, nil
}

// Encode renders a document in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case JSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case YAML:
		return yaml.Marshal(doc)
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Order(toml.OrderPreserve).Encode(*doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case HCL:
		return encodeHCL(doc), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}
