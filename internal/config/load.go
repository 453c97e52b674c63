package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Syntax is the encoding of a declaration file.
type Syntax string

// Supported syntaxes.
const (
	YAML Syntax = "yaml"
	TOML Syntax = "toml"
)

// SyntaxOf picks the syntax from a file extension.
func SyntaxOf(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%s: unknown declaration format (want .yaml, .yml or .toml)", path)
}

// Load reads and parses the declaration file at path.
func Load(path string) (*Config, error) {
	syntax, err := SyntaxOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // user-provided declaration path
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data, syntax)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a declaration. Unknown keys are errors, so typos in a
// declaration never pass silently.
func Parse(data []byte, syntax Syntax) (*Config, error) {
	var cfg Config
	switch syntax {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case TOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("unknown syntax %q", syntax)
	}
	return &cfg, nil
}

// Write marshals the config in the given syntax and writes it to w.
func Write(w io.Writer, cfg *Config, syntax Syntax) error {
	switch syntax {
	case TOML:
		return toml.NewEncoder(w).Encode(cfg)
	case YAML, "":
		enc := yaml.NewEncoder(w)
		defer enc.Close() //nolint:errcheck // best-effort close
		enc.SetIndent(2)
		return enc.Encode(cfg)
	}
	return fmt.Errorf("unknown syntax %q", syntax)
}
