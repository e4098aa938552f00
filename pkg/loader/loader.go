// Package loader reads form definitions from JSON or YAML files so builder
// sessions can resume from a saved snapshot.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Format identifies a supported serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat maps a file path to its format by extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("loader: unsupported extension %q", filepath.Ext(path))
	}
}

// Parse decodes a form snapshot from raw bytes.
func Parse(data []byte, format Format) (model.FormMetadata, error) {
	var f model.FormMetadata
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return model.FormMetadata{}, fmt.Errorf("loader: parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return model.FormMetadata{}, fmt.Errorf("loader: parse yaml: %w", err)
		}
	default:
		return model.FormMetadata{}, fmt.Errorf("loader: unknown format %q", format)
	}
	return normalize(f), nil
}

// LoadFile reads and decodes a form snapshot from disk.
func LoadFile(path string) (model.FormMetadata, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return model.FormMetadata{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormMetadata{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return Parse(data, format)
}

// normalize fills in defaults and repairs item ordering so snapshots from
// hand-edited files behave like builder-created ones.
func normalize(f model.FormMetadata) model.FormMetadata {
	if f.Title == "" {
		f.Title = form.DefaultFormTitle
	}
	if f.Version == "" {
		f.Version = form.DefaultFormVersion
	}
	for si := range f.Sections {
		if f.Sections[si].ID == "" {
			f.Sections[si].ID = form.NewSectionID()
		}
		for ii := range f.Sections[si].Items {
			item := &f.Sections[si].Items[ii]
			if item.ID == "" {
				item.ID = form.NewItemID()
			}
			item.Order = ii
			if item.Type == "" {
				item.Type = model.ItemTypeString
			}
		}
	}
	return f
}
