// Package schemas embeds the JSON Schemas for the documents the engine
// accepts: the skill catalog and the résumé/job snapshots.
package schemas

import _ "embed"

// Catalog is the schema for skill catalog files (skills plus adjacency).
//
//go:embed catalog.schema.json
var Catalog []byte

// ResumeSnapshot is the schema for résumé snapshot files.
//
//go:embed resume_snapshot.schema.json
var ResumeSnapshot []byte

// JobSnapshot is the schema for job snapshot files.
//
//go:embed job_snapshot.schema.json
var JobSnapshot []byte
