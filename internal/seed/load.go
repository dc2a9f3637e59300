package seed

import (
	"bytes"
	"embed"
	"fmt"
	"os"

	"github.com/jonathan/trail-guidebook/internal/schemas"
	rootschemas "github.com/jonathan/trail-guidebook/schemas"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFiles embed.FS

// DefaultFile is the embedded dataset shipped with the binary.
const DefaultFile = "data/guidebook.yaml"

// Default decodes the embedded dataset.
func Default() (*Document, error) {
	data, err := dataFiles.ReadFile(DefaultFile)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read embedded dataset %s", DefaultFile),
			Cause:   err,
		}
	}
	return Decode(data)
}

// LoadFile decodes a seed document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Decode(data)
}

// Decode parses YAML seed content, checks its shape against the seed
// schema and decodes it strictly into a Document. Unknown keys are rejected.
func Decode(data []byte) (*Document, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if tree == nil {
		return nil, &LoadError{Message: "seed document is empty"}
	}

	if err := schemas.ValidateDocument(rootschemas.Seed, tree); err != nil {
		return nil, &LoadError{Message: "schema validation failed", Cause: err}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Message: "failed to decode seed document", Cause: err}
	}

	return &doc, nil
}
