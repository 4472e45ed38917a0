package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/match-engine/internal/catalog"
	internalschemas "github.com/jonathan/match-engine/internal/schemas"
	"github.com/jonathan/match-engine/internal/types"
	"github.com/jonathan/match-engine/schemas"
)

// loadCatalog builds the skill catalog: the embedded default when path is
// empty, otherwise a schema-validated file.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// loadResume reads and schema-validates a resume snapshot file.
func loadResume(path string) (*types.ResumeSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume snapshot %s: %w", path, err)
	}
	if err := internalschemas.ValidateBytes(schemas.ResumeSnapshot, data); err != nil {
		return nil, fmt.Errorf("resume snapshot %s: %w", path, err)
	}

	var snapshot types.ResumeSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse resume snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}

// loadJob reads and schema-validates a job snapshot file.
func loadJob(path string) (*types.JobSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job snapshot %s: %w", path, err)
	}
	if err := internalschemas.ValidateBytes(schemas.JobSnapshot, data); err != nil {
		return nil, fmt.Errorf("job snapshot %s: %w", path, err)
	}

	var snapshot types.JobSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse job snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}
