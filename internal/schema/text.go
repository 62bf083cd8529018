package schema

import (
	"fmt"
	"io"
	"strings"
)

// TextFormatter writes a schema in a compact text format.
type TextFormatter struct {
	writer io.Writer
}

func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

func (f *TextFormatter) Format(s *Schema) error {
	for i, table := range s.Tables {
		if i > 0 {
			if _, err := fmt.Fprintln(f.writer); err != nil {
				return err
			}
		}
		if err := f.formatTable(table); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatTable(table Table) error {
	pkStr := ""
	if len(table.PrimaryKey) > 0 {
		pkStr = fmt.Sprintf(" (PK: %s)", strings.Join(table.PrimaryKey, ", "))
	}
	if _, err := fmt.Fprintf(f.writer, "TABLE %s%s\n", table.Name, pkStr); err != nil {
		return err
	}

	for _, col := range table.Columns {
		if _, err := fmt.Fprintf(f.writer, "  %s\n", formatColumn(col)); err != nil {
			return err
		}
	}

	if len(table.Relations) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "  RELATIONS:")
		for _, rel := range table.Relations {
			onDelete := ""
			if rel.OnDelete != "" {
				onDelete = " ON DELETE " + rel.OnDelete
			}
			_, _ = fmt.Fprintf(f.writer, "    %s: %s.%s (%s)%s\n",
				rel.Name, rel.TargetTable, rel.TargetColumn, rel.Kind, onDelete)
		}
	}

	if len(table.Indexes) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "  INDEXES:")
		for _, idx := range table.Indexes {
			unique := ""
			if idx.IsUnique {
				unique = " UNIQUE"
			}
			_, _ = fmt.Fprintf(f.writer, "    %s (%s)%s\n", idx.Name, strings.Join(idx.Columns, ", "), unique)
		}
	}

	return nil
}

func formatColumn(col Column) string {
	parts := []string{col.Name + ":", col.Type}
	if col.AutoIncrement {
		parts = append(parts, "AUTOINCREMENT")
	}
	if col.Nullable {
		parts = append(parts, "NULL")
	} else {
		parts = append(parts, "NOT NULL")
	}
	if col.Default != nil {
		parts = append(parts, "DEFAULT "+*col.Default)
	}
	return strings.Join(parts, " ")
}
