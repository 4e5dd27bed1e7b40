// Package seedfile loads an optional YAML seed catalog, used to populate
// a fresh deployment before any admin data exists.
package seedfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one seed catalog item. Only the name is required; everything
// else follows the same defaults as a manual add.
type Entry struct {
	Name       string `yaml:"name"`
	Provider   string `yaml:"provider,omitempty"`
	Price      string `yaml:"price,omitempty"`
	Status     string `yaml:"status,omitempty"`
	Link       string `yaml:"link,omitempty"`
	ExpiryDate string `yaml:"expiryDate,omitempty"`
	Note       string `yaml:"note,omitempty"`
}

// Loader handles loading and parsing of the seed catalog file.
type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file.
func (l *Loader) Load() ([]Entry, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return entries, nil
}
