package ddl

import (
	"fmt"
	"strings"
)

// FormatTableInfo formats parsed tables as human-readable text
func FormatTableInfo(tables []*Table) string {
	var sb strings.Builder

	for _, table := range tables {
		sb.WriteString(fmt.Sprintf("Table: %s\n", table.QualifiedName()))
		sb.WriteString("Columns:\n")

		for _, col := range table.Columns {
			options := ""
			if col.Options != "" {
				options = " " + col.Options
			}
			sb.WriteString(fmt.Sprintf("  - %s %s%s\n", col.Name, col.Type, options))
		}

		if len(table.Constraints) > 0 {
			sb.WriteString("Constraints:\n")
			for _, c := range table.Constraints {
				sb.WriteString(fmt.Sprintf("  - %s\n", c))
			}
		}

		if table.Remainder != "" {
			sb.WriteString("Remainder:\n")
			for _, line := range strings.Split(table.Remainder, "\n") {
				sb.WriteString(fmt.Sprintf("  %s\n", line))
			}
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
