// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest loads and validates render descriptors from JSON or YAML.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/storyforge/bindery/pkg/types"
)

// Parse decodes a JSON manifest from r.
func Parse(r io.Reader) (types.Manifest, error) {
	var m types.Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return types.Manifest{}, fmt.Errorf("parsing manifest JSON: %w", err)
	}
	return m, nil
}

// ParseInline decodes a manifest passed as a literal JSON object argument.
func ParseInline(s string) (types.Manifest, error) {
	return Parse(strings.NewReader(s))
}

// LoadFile reads a manifest file. Files with a .yaml or .yml extension are
// decoded as YAML, everything else as JSON.
func LoadFile(path string) (types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var m types.Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return types.Manifest{}, fmt.Errorf("parsing manifest YAML: %w", err)
		}
		return m, nil
	default:
		return Parse(strings.NewReader(string(data)))
	}
}

// Resolve turns the CLI's single manifest argument into a Manifest. An empty
// argument or "-" reads JSON from stdin; an argument starting with "{" is an
// inline JSON object; anything else is a file path.
func Resolve(arg string, stdin io.Reader) (types.Manifest, error) {
	switch {
	case arg == "" || arg == "-":
		return Parse(stdin)
	case strings.HasPrefix(strings.TrimSpace(arg), "{"):
		return ParseInline(arg)
	default:
		return LoadFile(arg)
	}
}

// Validate checks the manifest for the one hard requirement: a non-empty
// output path. Unknown format names are not an error; they fall back to the
// default page size at render time.
func Validate(m types.Manifest) error {
	if m.OutputPath == "" {
		return errors.New("manifest has no output_path")
	}
	return nil
}
