package ddl

// Table represents a table parsed from a single CREATE TABLE script
type Table struct {
	Schema      string   `json:"schema"`
	Name        string   `json:"name"`
	Columns     []Column `json:"columns"`
	Constraints []string `json:"constraints,omitempty"`
	// Remainder is the verbatim text following the column list, up to and
	// including the statement terminator.
	Remainder string `json:"remainder,omitempty"`
	// Statement is the normalized CREATE TABLE statement without its terminator.
	Statement string `json:"-"`
}

// Column represents a single column definition
type Column struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Options string `json:"options,omitempty"`
}

// QualifiedName returns SCHEMA.NAME
func (t *Table) QualifiedName() string {
	return t.Schema + "." + t.Name
}

// ColumnNames returns the column names in source order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}
