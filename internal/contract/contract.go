// Package contract loads the API contract manifest: a document with a
// top-level "endpoints" list of method/path pairs. JSON is the native
// format; .yaml and .yml files are read as YAML.
package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Alia5/routecov/internal/endpoint"
)

// Manifest is the part of the contract document routecov reads.
type Manifest struct {
	Endpoints []Entry `json:"endpoints" yaml:"endpoints"`
}

// Entry is one contract endpoint. Paths are used verbatim.
type Entry struct {
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
}

// Load reads the manifest at path and returns its endpoint set.
func Load(path string) (endpoint.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contract: %w", err)
	}
	m, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("parse contract %s: %w", path, err)
	}
	return m.Set(), nil
}

// Parse decodes a manifest in the given format ("json" or "yaml").
func Parse(data []byte, format string) (*Manifest, error) {
	var m Manifest
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported contract format %q", format)
	}
	return &m, nil
}

// Set converts the manifest entries to endpoints, upper-casing methods.
func (m *Manifest) Set() endpoint.Set {
	s := make(endpoint.Set, len(m.Endpoints))
	for _, e := range m.Endpoints {
		s.Add(endpoint.New(e.Method, e.Path))
	}
	return s
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
