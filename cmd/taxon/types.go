package main

import (
	"time"

	"github.com/jward/taxon"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command    string `json:"command"`
	Results    any    `json:"results"`
	TotalCount *int   `json:"total_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CLICategoryList is the payload for a by-category listing.
type CLICategoryList struct {
	Category string   `json:"category"`
	Names    []string `json:"names"`
}

// CLIInspection is the payload for describe-all: the summary plus every
// description in fixed category order.
type CLIInspection struct {
	Summary      taxon.Summary        `json:"summary"`
	Descriptions []*taxon.Description `json:"descriptions"`
}

// CLISnapshot is a JSON-friendly persisted snapshot header.
type CLISnapshot struct {
	ID        string    `json:"id"`
	Namespace string    `json:"namespace"`
	CreatedAt time.Time `json:"created_at"`
	Total     int       `json:"total"`
}

// CLIExport reports a completed snapshot export.
type CLIExport struct {
	SnapshotID string `json:"snapshot_id"`
	Database   string `json:"database"`
	Entries    int    `json:"entries"`
}
