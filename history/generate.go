package history

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/alc6/histgen/ddl"
)

// ErrNoColumns is returned for a table without column definitions
var ErrNoColumns = errors.New("table has no columns")

var plainIdentifier = regexp.MustCompile(`^[A-Z][A-Z0-9_$#]*$`)

// reservedWords are the Oracle SQL reserved words; they can only be used as
// identifiers when quoted.
var reservedWords = toSet(strings.Fields(`
	ACCESS ADD ALL ALTER AND ANY AS ASC AUDIT BETWEEN BY CHAR CHECK CLUSTER
	COLUMN COMMENT COMPRESS CONNECT CREATE CURRENT DATE DECIMAL DEFAULT DELETE
	DESC DISTINCT DROP ELSE EXCLUSIVE EXISTS FILE FLOAT FOR FROM GRANT GROUP
	HAVING IDENTIFIED IMMEDIATE IN INCREMENT INDEX INITIAL INSERT INTEGER
	INTERSECT INTO IS LEVEL LIKE LOCK LONG MAXEXTENTS MINUS MLSLABEL MODE MODIFY
	NOAUDIT NOCOMPRESS NOT NOWAIT NULL NUMBER OF OFFLINE ON ONLINE OPTION OR
	ORDER PCTFREE PRIOR PUBLIC RAW RENAME RESOURCE REVOKE ROW ROWID ROWNUM ROWS
	SELECT SESSION SET SHARE SIZE SMALLINT START SUCCESSFUL SYNONYM SYSDATE
	TABLE THEN TO TRIGGER UID UNION UNIQUE UPDATE USER VALIDATE VALUES VARCHAR
	VARCHAR2 VIEW WHENEVER WHERE WITH`))

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Generator renders history artifacts for parsed tables
type Generator struct {
	logger *slog.Logger
}

// NewGenerator creates a generator logging through logger. A nil logger discards output.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{logger: logger}
}

// Generate renders the history table, sequence, key trigger and one audit
// trigger per event for table. Output depends only on table.
func (g *Generator) Generate(table *ddl.Table) (*Artifacts, error) {
	if table == nil || len(table.Columns) == 0 {
		return nil, ErrNoColumns
	}
	if table.Schema == "" || table.Name == "" {
		return nil, fmt.Errorf("table name is incomplete: %q", table.QualifiedName())
	}

	n := newNames(table.Schema, table.Name)
	artifacts := &Artifacts{
		Schema:        table.Schema,
		Table:         table.Name,
		HistoryTable:  Artifact{Kind: KindTable, Name: n.historyTable, SQL: historyTableSQL(n, table)},
		Sequence:      Artifact{Kind: KindSequence, Name: n.sequence, SQL: sequenceSQL(n)},
		KeyTrigger:    Artifact{Kind: KindTrigger, Name: n.keyTrigger, SQL: keyTriggerSQL(n)},
		AuditTriggers: make(map[Event]Artifact, len(Events)),
	}
	for _, event := range Events {
		name := n.auditTrigger(event)
		artifacts.AuditTriggers[event] = Artifact{Kind: KindTrigger, Name: name, SQL: auditTriggerSQL(n, name, event, table.Columns)}
	}

	for _, a := range artifacts.All() {
		g.logger.Debug("generated artifact", "table", table.QualifiedName(), "artifact", a.Path())
	}
	g.logger.Info("generated history artifacts", "table", table.QualifiedName(), "count", len(artifacts.All()))

	return artifacts, nil
}

// names holds the object names derived from one source table
type names struct {
	schema       string
	table        string
	historyTable string
	sequence     string
	keyTrigger   string
}

func newNames(schema, table string) names {
	return names{
		schema:       schema,
		table:        table,
		historyTable: "H_" + table,
		sequence:     "H_" + table + "_SEQ",
		keyTrigger:   "H_" + table + "_TRG",
	}
}

func (n names) auditTrigger(event Event) string {
	return n.table + "_H_" + event.Abbrev() + "_TRG"
}

// qualified returns SCHEMA.OBJECT, quoting parts that are not plain identifiers.
func (n names) qualified(object string) string {
	return QuoteIdentifier(n.schema) + "." + QuoteIdentifier(object)
}

// QuoteIdentifier double-quotes name unless it is a plain upper-case
// identifier that is not a reserved word
func QuoteIdentifier(name string) string {
	if _, reserved := reservedWords[name]; !reserved && plainIdentifier.MatchString(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func historyTableSQL(n names, table *ddl.Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE TABLE %s\n", n.qualified(n.historyTable))
	sb.WriteString("(\n")
	sb.WriteString("\tHIST_ID NUMBER PRIMARY KEY,\n")
	sb.WriteString("\tCHANGE VARCHAR(10) NOT NULL")
	for _, col := range table.Columns {
		fmt.Fprintf(&sb, ",\n\t%s %s", QuoteIdentifier(col.Name), col.Type)
	}
	sb.WriteString("\n)\n")
	if table.Remainder != "" {
		sb.WriteString(table.Remainder)
		sb.WriteString("\n")
	}
	sb.WriteString("/")
	return sb.String()
}

func sequenceSQL(n names) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE SEQUENCE %s", n.qualified(n.sequence))
	for _, clause := range []string{"MINVALUE 1", "NOMAXVALUE", "INCREMENT BY 1", "START WITH 1", "CACHE 20", "NOORDER", "NOCYCLE", "NOKEEP", "NOSCALE"} {
		sb.WriteString("\n\t")
		sb.WriteString(clause)
	}
	sb.WriteString(";\n/")
	return sb.String()
}

func keyTriggerSQL(n names) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE OR REPLACE EDITIONABLE TRIGGER %s\n", n.qualified(n.keyTrigger))
	sb.WriteString("BEFORE INSERT\n")
	fmt.Fprintf(&sb, "ON %s\n", n.qualified(n.historyTable))
	sb.WriteString("REFERENCING NEW AS NEW OLD AS OLD\n")
	sb.WriteString("FOR EACH ROW\n")
	sb.WriteString("BEGIN\n")
	fmt.Fprintf(&sb, "\t:new.HIST_ID := %s.nextval;\n", n.qualified(n.sequence))
	fmt.Fprintf(&sb, "END %s;\n/\n", QuoteIdentifier(n.keyTrigger))
	fmt.Fprintf(&sb, "ALTER TRIGGER %s ENABLE;\n/", n.qualified(n.keyTrigger))
	return sb.String()
}

func auditTriggerSQL(n names, trigger string, event Event, columns []ddl.Column) string {
	targets := []string{"CHANGE"}
	values := []string{"'" + event.String() + "'"}
	for _, col := range columns {
		name := QuoteIdentifier(col.Name)
		targets = append(targets, name)
		values = append(values, ":"+string(event.Image())+"."+name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE OR REPLACE EDITIONABLE TRIGGER %s\n", n.qualified(trigger))
	fmt.Fprintf(&sb, "BEFORE %s\n", event)
	fmt.Fprintf(&sb, "ON %s\n", n.qualified(n.table))
	sb.WriteString("REFERENCING NEW AS NEW OLD AS OLD\n")
	sb.WriteString("FOR EACH ROW\n")
	sb.WriteString("BEGIN\n")
	fmt.Fprintf(&sb, "INSERT INTO %s\n", n.qualified(n.historyTable))
	fmt.Fprintf(&sb, "(\n\t%s\n)\n", strings.Join(targets, ",\n\t"))
	fmt.Fprintf(&sb, "VALUES\n(\n\t%s\n);\n", strings.Join(values, ",\n\t"))
	fmt.Fprintf(&sb, "END %s;\n/\n", QuoteIdentifier(trigger))
	fmt.Fprintf(&sb, "ALTER TRIGGER %s ENABLE;\n/", n.qualified(trigger))
	return sb.String()
}
