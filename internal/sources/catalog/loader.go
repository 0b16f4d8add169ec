package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/showreel/internal/content"
)

// BundledSource is the source name of the catalog embedded in the binary
const BundledSource = "bundled"

// Loader handles loading and parsing of catalog.yaml
type Loader struct {
	filePath string
}

// NewLoader creates a new catalog loader.
// An empty path loads the bundled catalog.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source returns the file path, or BundledSource when none is configured
func (l *Loader) Source() string {
	if l.filePath == "" {
		return BundledSource
	}
	return l.filePath
}

// FilePath returns the configured file path, empty for the bundled catalog
func (l *Loader) FilePath() string {
	return l.filePath
}

// Load reads and parses the catalog
func (l *Loader) Load() (*File, error) {
	data := content.Catalog
	if l.filePath != "" {
		var err error
		data, err = os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
	}

	return Parse(data)
}

// Parse decodes catalog YAML
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}
	return &file, nil
}
