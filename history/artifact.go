package history

import (
	"path/filepath"
)

// Kind groups artifacts into output subdirectories
type Kind string

const (
	KindTable    Kind = "TABLES"
	KindSequence Kind = "SEQUENCES"
	KindTrigger  Kind = "TRIGGERS"
)

// Artifact is one generated SQL file
type Artifact struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	SQL  string `json:"sql"`
}

// FileName returns the artifact's file name
func (a Artifact) FileName() string {
	return a.Name + ".sql"
}

// Path returns the artifact path relative to the output root
func (a Artifact) Path() string {
	return filepath.Join(string(a.Kind), a.FileName())
}

// Artifacts holds everything generated for one source table
type Artifacts struct {
	Schema        string
	Table         string
	HistoryTable  Artifact
	Sequence      Artifact
	KeyTrigger    Artifact
	AuditTriggers map[Event]Artifact
}

// All returns the artifacts in write order: history table, sequence, key
// trigger, then the audit triggers for INSERT, UPDATE and DELETE.
func (a *Artifacts) All() []Artifact {
	all := []Artifact{a.HistoryTable, a.Sequence, a.KeyTrigger}
	for _, event := range Events {
		if trigger, ok := a.AuditTriggers[event]; ok {
			all = append(all, trigger)
		}
	}
	return all
}
