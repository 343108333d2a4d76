// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"
	"fmt"
	"maps"
)

// VersionKey is the JSON field holding a record's schema version.
const VersionKey = "schemaVersion"

// Step upgrades a record document from version N to N+1. It must be pure:
// the same input always yields the same output and nothing else is touched.
type Step func(doc map[string]any) (map[string]any, error)

// Migrator upgrades documents of one record kind to its current version.
type Migrator struct {
	name    string
	current int
	steps   map[int]Step
}

// NewMigrator returns a migrator whose steps[n] maps version n to n+1.
func NewMigrator(name string, current int, steps map[int]Step) *Migrator {
	return &Migrator{name: name, current: current, steps: steps}
}

// Current returns the version documents are migrated to.
func (m *Migrator) Current() int { return m.current }

// Migrate applies steps until doc reaches the current version. It reports
// whether anything changed; a document already at the current version is
// returned as is.
func (m *Migrator) Migrate(doc map[string]any) (map[string]any, bool, error) {
	version, err := Version(doc)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", m.name, err)
	}

	if version > m.current {
		return nil, false, fmt.Errorf("%s: %w: %d > %d", m.name, ErrUnknownVersion, version, m.current)
	}
	if version == m.current {
		return doc, false, nil
	}

	// steps receive a copy so a failing chain leaves the caller's map intact
	out := maps.Clone(doc)
	for v := version; v < m.current; v++ {
		step, ok := m.steps[v]
		if !ok {
			return nil, false, fmt.Errorf("%s: %w: %d -> %d", m.name, ErrMigrationMissing, v, v+1)
		}
		next, err := step(out)
		if err != nil {
			return nil, false, fmt.Errorf("%s: migrate %d -> %d: %w", m.name, v, v+1, err)
		}
		next[VersionKey] = v + 1
		out = next
	}
	return out, true, nil
}

// Version reads the schema version of doc. Documents written before
// versioning carry none and are version 1.
func Version(doc map[string]any) (int, error) {
	raw, ok := doc[VersionKey]
	if !ok || raw == nil {
		return 1, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) || v < 1 {
			return 0, fmt.Errorf("%w: schemaVersion %v", ErrMalformedRecord, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil || n < 1 {
			return 0, fmt.Errorf("%w: schemaVersion %v", ErrMalformedRecord, v)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: schemaVersion has type %T", ErrMalformedRecord, raw)
}
