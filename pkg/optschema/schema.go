// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a schema document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported schema file %q (expected .toml, .yaml or .yml)", path)
}

// Schema is a list of option declarations for one command.
type Schema struct {
	// Name is the program name shown in usage output. Optional.
	Name    string       `toml:"name" yaml:"name"`
	Options []OptionDecl `toml:"option" yaml:"option"`
}

// OptionDecl declares one option. An empty Name declares a positional
// option.
type OptionDecl struct {
	Name        string `toml:"name" yaml:"name"`
	Short       string `toml:"short" yaml:"short"`
	Kind        string `toml:"kind" yaml:"kind"`
	Description string `toml:"description" yaml:"description"`
	Required    bool   `toml:"required" yaml:"required"`
	Default     any    `toml:"default" yaml:"default"`
}

// Load reads a schema file. The format follows the file extension.
func Load(path string) (*Schema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// Decode parses a schema document. Unknown keys are rejected.
func Decode(data []byte, format Format) (*Schema, error) {
	var s Schema
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown schema format %q", format)
	}
	return &s, nil
}

// toInt64 converts the integer types TOML and YAML decoders produce.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}
