package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule reports a migration rule that cannot produce the expected header.
var ErrInvalidRule = errors.New("invalid migration rule")

// Policy selects how an incoming batch is merged into a table.
type Policy string

const (
	// Upsert replaces rows by key and appends new keys; other rows are kept.
	Upsert Policy = "upsert"
	// Overwrite discards every existing data row in favour of the batch.
	Overwrite Policy = "overwrite"
)

// ParsePolicy maps a client mode string to a Policy. An empty mode is Upsert.
func ParsePolicy(mode string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", string(Upsert):
		return Upsert, nil
	case string(Overwrite):
		return Overwrite, nil
	default:
		return "", fmt.Errorf("unknown merge mode %q", mode)
	}
}

// Summary counts what a merge did to the data rows.
type Summary struct {
	// Updated counts existing rows replaced by an incoming row with the same key.
	Updated int `json:"updated"`
	// Appended counts incoming rows whose key was new.
	Appended int `json:"appended"`
	// Untouched counts existing rows whose key was absent from the batch.
	Untouched int `json:"untouched"`
	// Discarded counts existing rows dropped by an overwrite.
	Discarded int `json:"discarded"`
}

// Insertion places a new column with a default value at a fixed position.
type Insertion struct {
	// Position is the zero-based column index after all earlier insertions of the same rule.
	Position int
	// Column is the header name of the new column.
	Column string
	// Default is written into every existing data row.
	Default string
}

// Rule describes how a table evolves when a marker column is missing.
type Rule struct {
	// Table is the table the rule belongs to.
	Table string
	// Trigger is the marker column; the rule fires when the header lacks it.
	Trigger string
	// Inserts are applied in order.
	Inserts []Insertion
}

// Name identifies the rule in logs and metrics.
func (r Rule) Name() string {
	return r.Table + ":" + r.Trigger
}

// MigrationKind classifies what EnsureSchema did.
type MigrationKind string

const (
	MigrationNone        MigrationKind = "none"
	MigrationInitialized MigrationKind = "initialized"
	MigrationRule        MigrationKind = "rule"
	MigrationGeneric     MigrationKind = "generic"
)

// Migration reports the outcome of EnsureSchema.
type Migration struct {
	Kind MigrationKind `json:"kind"`
	// Rule is the name of the rule that fired, for MigrationRule.
	Rule string `json:"rule,omitempty"`
	// Added lists header names that were not present before.
	Added []string `json:"added,omitempty"`
}

// Changed reports whether the table differs from what was read.
func (m Migration) Changed() bool {
	return m.Kind != MigrationNone
}
