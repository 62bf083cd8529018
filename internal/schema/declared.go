package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	gormschema "gorm.io/gorm/schema"

	"github.com/Tejash429/course-platform-backend/internal/domain"
)

// Declared parses every declared model with the production naming strategy
// and returns the schema as descriptors. No database connection is involved.
func Declared() (*Schema, error) {
	namer := gormschema.NamingStrategy{TablePrefix: domain.TablePrefix}
	cache := &sync.Map{}

	out := &Schema{}
	for _, model := range domain.Models() {
		parsed, err := gormschema.Parse(model, cache, namer)
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		out.Tables = append(out.Tables, buildTable(parsed))
	}
	return out, nil
}

// Find returns the table with the given physical name, or nil.
func (s *Schema) Find(name string) *Table {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}

func buildTable(parsed *gormschema.Schema) Table {
	t := Table{
		Name:       parsed.Table,
		PrimaryKey: parsed.PrimaryFieldDBNames,
	}

	for _, dbName := range parsed.DBNames {
		field := parsed.FieldsByDBName[dbName]
		col := Column{
			Name:          dbName,
			Type:          string(field.DataType),
			Nullable:      !field.NotNull && !field.PrimaryKey,
			AutoIncrement: field.AutoIncrement,
		}
		// Auto-incremented keys report no default even though gorm marks
		// them as having one; an empty-string default is a real default.
		if field.HasDefaultValue && !field.AutoIncrement {
			def := field.DefaultValue
			if def == "" {
				def = "''"
			}
			col.Default = &def
		}
		t.Columns = append(t.Columns, col)
	}

	// Relation map iteration order is not stable; sort by field name.
	names := make([]string, 0, len(parsed.Relationships.Relations))
	for name := range parsed.Relationships.Relations {
		// gorm adds back-reference relations prefixed "_" to the parse
		// cache; they are not declared edges.
		if strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rel := parsed.Relationships.Relations[name]
		r := Relation{
			Name:        name,
			Kind:        string(rel.Type),
			TargetTable: rel.FieldSchema.Table,
			OnDelete:    relationOnDelete(rel),
		}
		for _, ref := range rel.References {
			if ref.OwnPrimaryKey {
				r.SourceColumn = ref.PrimaryKey.DBName
				r.TargetColumn = ref.ForeignKey.DBName
			} else {
				r.SourceColumn = ref.ForeignKey.DBName
				r.TargetColumn = ref.PrimaryKey.DBName
			}
		}
		t.Relations = append(t.Relations, r)
	}

	for _, idx := range parsed.ParseIndexes() {
		descriptor := Index{
			Name:     idx.Name,
			IsUnique: idx.Class == "UNIQUE",
		}
		for _, opt := range idx.Fields {
			descriptor.Columns = append(descriptor.Columns, opt.DBName)
		}
		t.Indexes = append(t.Indexes, descriptor)
	}
	sort.Slice(t.Indexes, func(i, j int) bool { return t.Indexes[i].Name < t.Indexes[j].Name })

	return t
}

// relationOnDelete resolves the declared delete action for a relation.
// ParseConstraint returns nothing for a belongs-to edge whose paired has-one
// or has-many owns the constraint, so fall back to the relation field's own
// constraint tag.
func relationOnDelete(rel *gormschema.Relationship) string {
	if constraint := rel.ParseConstraint(); constraint != nil && constraint.OnDelete != "" {
		return constraint.OnDelete
	}
	settings := gormschema.ParseTagSetting(rel.Field.TagSettings["CONSTRAINT"], ",")
	return settings["ONDELETE"]
}
