package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a config document.
type Format string

const (
	FormatSDL  Format = "sdl"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks a codec from the file extension. SDL is the default
// for .graphql/.gql files.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".graphql", ".gql":
		return FormatSDL, nil
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Decode parses src according to format. The name is used in errors.
func Decode(src []byte, format Format, name string) (*Config, error) {
	switch format {
	case FormatSDL:
		return Parse(src, name)
	case FormatJSON:
		return DecodeJSON(src)
	case FormatYAML:
		return DecodeYAML(src)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// DecodeJSON parses a JSON-encoded config.
func DecodeJSON(src []byte) (*Config, error) {
	c := NewConfig()
	if err := json.Unmarshal(src, c); err != nil {
		return nil, err
	}
	c.ensureMaps()
	return c, nil
}

// DecodeYAML parses a YAML-encoded config.
func DecodeYAML(src []byte) (*Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(src, c); err != nil {
		return nil, err
	}
	c.ensureMaps()
	return c, nil
}

// EncodeJSON renders the config as indented JSON.
func (c *Config) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// EncodeYAML renders the config as YAML.
func (c *Config) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) ensureMaps() {
	if c.Types == nil {
		c.Types = make(map[string]*Type)
	}
	if c.Enums == nil {
		c.Enums = make(map[string]*Enum)
	}
	if c.Unions == nil {
		c.Unions = make(map[string]*Union)
	}
}
