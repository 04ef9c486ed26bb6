package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/Alia5/vsgen/internal/configpaths"
	"github.com/Alia5/vsgen/internal/modelconfig"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds either the CLI configuration of a command or a starter
// model configuration.
type ConfigInit struct {
	Kind   string `arg:"" name:"kind" help:"What to scaffold: 'generate' (CLI defaults) or 'model' (example model configuration)" enum:"generate,model"`
	Format string `help:"Output format (hcl is only available for models)" enum:"json,yaml,toml,hcl" default:"json"`
	Output string `help:"Destination file path (defaults to current directory)"`
	User   bool   `help:"Write into the per-user configuration directory instead of the current directory"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run generates the template. CLI configurations are built dynamically via
// reflection of the command structs and tags.
func (c *ConfigInit) Run(logger *slog.Logger) error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	var data []byte
	var err error
	switch c.Kind {
	case "generate":
		if format == "hcl" {
			return errors.New("CLI configuration cannot be written as hcl; use json, yaml or toml")
		}
		data, err = encodeMap(buildMapFromStruct(reflect.TypeOf(Generate{})), format)
	case "model":
		var mf modelconfig.Format
		if mf, err = modelconfig.ParseFormat(format); err == nil {
			data, err = modelconfig.Encode(modelconfig.Example(), mf)
		}
	default:
		return errors.New("unknown kind; expected 'generate' or 'model'")
	}
	if err != nil {
		return fmt.Errorf("encode %s template: %w", c.Kind, err)
	}

	dest, err := c.destination(format)
	if err != nil {
		return err
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	logger.Info("Wrote configuration template", "kind", c.Kind, "file", dest)
	return nil
}

func (c *ConfigInit) destination(format string) (string, error) {
	switch {
	case c.Output != "":
		return c.Output, nil
	case c.User:
		return configpaths.DefaultNamedConfigPath(c.Kind, format)
	default:
		return c.Kind + "." + configpaths.Ext(format), nil
	}
}

func encodeMap(root map[string]any, format string) ([]byte, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	case "hcl":
		return "hcl"
	default:
		return ""
	}
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	// Convert first character to lowercase
	r := []rune(s)
	r[0] = toLower(r[0])
	return string(r)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		// positional arguments are never read from config files
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			prefix := f.Tag.Get("prefix")
			name := strings.TrimSuffix(prefix, ".")
			sub := buildMapFromStruct(f.Type)
			if name != "" {
				out[name] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		key := f.Tag.Get("name")
		if key == "" {
			key = lowerCamel(f.Name)
		}
		def := f.Tag.Get("default")
		val := defaultValueForField(f.Type, def)
		if val != nil {
			out[key] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def // may be empty
	case reflect.Bool:
		if def == "" {
			return false
		}
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if def == "" {
			return 0
		}
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if def == "" {
			return 0
		}
		n, err := strconv.ParseUint(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Float32, reflect.Float64:
		if def == "" {
			return 0
		}
		f, err := strconv.ParseFloat(def, 64)
		if err != nil {
			return 0
		}
		return f
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
