// Package yaml provides YAML-based parsing of the optional .req2poetry.yml
// metadata-override file.
package yaml

import (
	"fmt"
	"os"

	"github.com/ochairo/req2poetry/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlMetadata represents the raw YAML structure
type yamlMetadata struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Description string   `yaml:"description"`
	Authors     []string `yaml:"authors"`
	Readme      string   `yaml:"readme"`
	Python      string   `yaml:"python"`
}

// MetadataParser parses YAML metadata-override files
type MetadataParser struct{}

// NewMetadataParser creates a new YAML parser
func NewMetadataParser() *MetadataParser {
	return &MetadataParser{}
}

// ParseFile parses a YAML override file into a MetadataOverrides entity
func (p *MetadataParser) ParseFile(filePath string) (*entities.MetadataOverrides, error) {
	//nolint:gosec // G304: filePath is the user-supplied config path
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a MetadataOverrides entity
func (p *MetadataParser) Parse(data []byte) (*entities.MetadataOverrides, error) {
	var yamlOv yamlMetadata
	if err := yaml.Unmarshal(data, &yamlOv); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Reject empty author entries early; they would render as "" in the manifest
	for _, author := range yamlOv.Authors {
		if author == "" {
			return nil, fmt.Errorf("authors must not contain empty entries")
		}
	}

	return &entities.MetadataOverrides{
		Name:        yamlOv.Name,
		Version:     yamlOv.Version,
		Description: yamlOv.Description,
		Authors:     yamlOv.Authors,
		Readme:      yamlOv.Readme,
		Python:      yamlOv.Python,
	}, nil
}
