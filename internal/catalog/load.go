package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	internalschemas "github.com/jonathan/match-engine/internal/schemas"
	"github.com/jonathan/match-engine/schemas"
)

//go:embed data/catalog.json
var defaultCatalogJSON []byte

// catalogFile is the on-disk shape of a catalog document.
type catalogFile struct {
	Skills    []Skill             `json:"skills"`
	Adjacency map[string][]string `json:"adjacency"`
}

// LoadError represents a failure to read, validate, or parse a catalog file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Default builds the catalog shipped with the engine.
func Default() (*Catalog, error) {
	return parse("(embedded)", defaultCatalogJSON)
}

// LoadFile reads a catalog document from path, validates it against the
// catalog JSON Schema, and builds a Catalog from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read failed", Cause: err}
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Catalog, error) {
	if err := internalschemas.ValidateBytes(schemas.Catalog, data); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Message: "parse failed", Cause: err}
	}

	c, err := New(file.Skills, file.Adjacency)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid catalog", Cause: err}
	}
	return c, nil
}
