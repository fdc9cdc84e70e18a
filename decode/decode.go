package decode

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/kbukum/confkit/encryption"
	"github.com/kbukum/confkit/record"
)

// Func decodes raw file content.
type Func func(data []byte) (any, error)

// JSON decodes UTF-8 JSON text.
func JSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// YAML decodes a YAML document. Mapping keys are converted to strings and an
// empty document decodes to an empty record.
func YAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if v == nil {
		return record.Record{}, nil
	}
	return normalize(v), nil
}

// TOML decodes a TOML document.
func TOML(data []byte) (any, error) {
	v := make(record.Record)
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return v, nil
}

// Dotenv decodes KEY=value lines into a flat record of strings.
func Dotenv(data []byte) (any, error) {
	vars, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode dotenv: %w", err)
	}
	out := make(record.Record, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out, nil
}

// Viper returns a decoder for any format viper supports ("yaml", "json",
// "toml", "hcl", "ini", "properties", "dotenv"). Viper lower-cases keys.
func Viper(format string) Func {
	return func(data []byte) (any, error) {
		v := viper.New()
		v.SetConfigType(format)
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("decode %s: %w", format, err)
		}
		return v.AllSettings(), nil
	}
}

// Sealed opens content sealed with encryption.SealText and decodes the
// plaintext with inner (JSON when nil).
func Sealed(c encryption.Cipher, inner Func) Func {
	if inner == nil {
		inner = JSON
	}
	return func(data []byte) (any, error) {
		plaintext, err := encryption.OpenText(c, data)
		if err != nil {
			return nil, fmt.Errorf("open sealed config: %w", err)
		}
		return inner(plaintext)
	}
}

// ForPath picks a decoder from the file extension, falling back to JSON.
func ForPath(path string) Func {
	if strings.HasPrefix(filepath.Base(path), ".env") {
		return Dotenv
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	case ".env":
		return Dotenv
	default:
		return JSON
	}
}

// normalize converts YAML mappings with non-string keys into records.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(record.Record, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
