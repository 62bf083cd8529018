package schema

import (
	"sort"
	"strings"
	"testing"
)

func declared(t *testing.T) *Schema {
	t.Helper()
	s, err := Declared()
	if err != nil {
		t.Fatalf("parse declared schema: %v", err)
	}
	return s
}

func findTable(t *testing.T, s *Schema, name string) *Table {
	t.Helper()
	table := s.Find(name)
	if table == nil {
		t.Fatalf("table %q not declared", name)
	}
	return table
}

func findColumn(t *testing.T, table *Table, name string) Column {
	t.Helper()
	for _, col := range table.Columns {
		if col.Name == name {
			return col
		}
	}
	t.Fatalf("column %q not declared on %q", name, table.Name)
	return Column{}
}

func findIndexByColumns(table *Table, columns ...string) *Index {
	for i := range table.Indexes {
		if len(table.Indexes[i].Columns) != len(columns) {
			continue
		}
		match := true
		for j, col := range columns {
			if table.Indexes[i].Columns[j] != col {
				match = false
				break
			}
		}
		if match {
			return &table.Indexes[i]
		}
	}
	return nil
}

func TestDeclared_TableSet(t *testing.T) {
	s := declared(t)

	want := []string{
		"app_accounts",
		"app_attachment",
		"app_comment",
		"app_module",
		"app_progress",
		"app_profile",
		"app_segment",
		"app_session",
		"app_testimonial",
		"app_user",
	}
	got := make([]string, 0, len(s.Tables))
	for _, table := range s.Tables {
		got = append(got, table.Name)
	}
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("table count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("table set mismatch: got %v, want %v", got, want)
		}
	}
}

func TestDeclared_EveryFKRelationCascades(t *testing.T) {
	s := declared(t)

	count := 0
	for _, table := range s.Tables {
		for _, rel := range table.Relations {
			count++
			if rel.OnDelete != "CASCADE" {
				t.Fatalf("%s.%s: OnDelete = %q, want CASCADE (uniform policy)",
					table.Name, rel.Name, rel.OnDelete)
			}
		}
	}
	if count == 0 {
		t.Fatal("no relations parsed")
	}
}

// Belongs-to edges whose foreign key constraint is owned by the paired
// has-one or has-many side must still report the declared delete action.
func TestDeclared_InverseOwnedConstraintsReportCascade(t *testing.T) {
	s := declared(t)

	cases := []struct {
		table    string
		relation string
	}{
		{"app_profile", "User"},
		{"app_segment", "Module"},
		{"app_attachment", "Segment"},
		{"app_comment", "Parent"},
	}
	for _, tc := range cases {
		table := findTable(t, s, tc.table)
		found := false
		for _, rel := range table.Relations {
			if rel.Name != tc.relation {
				continue
			}
			found = true
			if rel.OnDelete != "CASCADE" {
				t.Fatalf("%s.%s: OnDelete = %q, want CASCADE", tc.table, tc.relation, rel.OnDelete)
			}
		}
		if !found {
			t.Fatalf("%s: relation %q not declared", tc.table, tc.relation)
		}
	}
}

func TestDeclared_RelationSets(t *testing.T) {
	s := declared(t)

	want := map[string][]string{
		"app_user":        {"Profile"},
		"app_accounts":    {"User"},
		"app_profile":     {"User"},
		"app_session":     {"User"},
		"app_module":      {"Segments"},
		"app_segment":     {"Attachments", "Comments", "Module"},
		"app_comment":     {"Children", "Parent", "RepliedTo", "Segment", "User"},
		"app_progress":    {"Segment", "User"},
		"app_testimonial": {"User"},
		"app_attachment":  {"Segment"},
	}
	for name, wantRels := range want {
		table := findTable(t, s, name)
		got := make([]string, 0, len(table.Relations))
		for _, rel := range table.Relations {
			if strings.HasPrefix(rel.Name, "_") {
				t.Fatalf("%s: gorm-internal back-reference %q leaked into descriptors", name, rel.Name)
			}
			got = append(got, rel.Name)
		}
		if strings.Join(got, ",") != strings.Join(wantRels, ",") {
			t.Fatalf("%s relations: got %v, want %v", name, got, wantRels)
		}
	}
}

func TestDeclared_SelfReferentialCommentEdges(t *testing.T) {
	s := declared(t)
	comment := findTable(t, s, "app_comment")

	for _, rel := range comment.Relations {
		switch rel.Name {
		case "Parent":
			if rel.Kind != "belongs_to" || rel.TargetTable != "app_comment" {
				t.Fatalf("Parent edge: %+v", rel)
			}
			if rel.SourceColumn != "parent_id" || rel.TargetColumn != "id" {
				t.Fatalf("Parent edge columns: %+v", rel)
			}
		case "Children":
			if rel.Kind != "has_many" || rel.TargetTable != "app_comment" {
				t.Fatalf("Children edge: %+v", rel)
			}
		case "RepliedTo":
			// Resolves against the user table, same target as the FK.
			if rel.Kind != "belongs_to" || rel.TargetTable != "app_user" {
				t.Fatalf("RepliedTo edge: %+v", rel)
			}
			if rel.SourceColumn != "replied_to_id" {
				t.Fatalf("RepliedTo edge columns: %+v", rel)
			}
		}
	}
}

func TestDeclared_UniqueIndexes(t *testing.T) {
	s := declared(t)

	cases := []struct {
		table   string
		columns []string
		unique  bool
	}{
		{"app_user", []string{"email"}, true},
		{"app_accounts", []string{"google_id"}, true},
		{"app_profile", []string{"user_id"}, true},
		{"app_progress", []string{"user_id", "segment_id"}, true},
		{"app_accounts", []string{"user_id", "google_id"}, false},
		{"app_segment", []string{"slug"}, false},
	}
	for _, tc := range cases {
		table := findTable(t, s, tc.table)
		idx := findIndexByColumns(table, tc.columns...)
		if idx == nil {
			t.Fatalf("%s: no index on %v", tc.table, tc.columns)
		}
		if idx.IsUnique != tc.unique {
			t.Fatalf("%s index on %v: unique = %v, want %v", tc.table, tc.columns, idx.IsUnique, tc.unique)
		}
	}
}

func TestDeclared_NamedIndexes(t *testing.T) {
	s := declared(t)

	cases := []struct {
		table string
		name  string
	}{
		{"app_segment", "idx_segment_slug"},
		{"app_accounts", "idx_account_user_google"},
		{"app_progress", "idx_progress_user_segment"},
	}
	for _, tc := range cases {
		table := findTable(t, s, tc.table)
		found := false
		for _, idx := range table.Indexes {
			if idx.Name == tc.name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("%s: missing declared index %q", tc.table, tc.name)
		}
	}
}

func TestDeclared_ColumnMetadata(t *testing.T) {
	s := declared(t)

	user := findTable(t, s, "app_user")
	if got := findColumn(t, user, "id"); !got.AutoIncrement {
		t.Fatalf("app_user.id should auto-increment: %+v", got)
	}
	if got := findColumn(t, user, "email"); !got.Nullable {
		t.Fatalf("app_user.email should be nullable: %+v", got)
	}
	if got := findColumn(t, user, "is_premium"); got.Nullable || got.Default == nil || *got.Default != "false" {
		t.Fatalf("app_user.is_premium should be not null default false: %+v", got)
	}

	session := findTable(t, s, "app_session")
	if got := findColumn(t, session, "id"); got.AutoIncrement {
		t.Fatalf("app_session.id is an opaque token, not auto-incremented: %+v", got)
	}
	if len(session.PrimaryKey) != 1 || session.PrimaryKey[0] != "id" {
		t.Fatalf("app_session primary key: %v", session.PrimaryKey)
	}
	if got := findColumn(t, session, "expires_at"); got.Nullable {
		t.Fatalf("app_session.expires_at must be not null: %+v", got)
	}

	segment := findTable(t, s, "app_segment")
	if got := findColumn(t, segment, "order"); got.Nullable || got.Default != nil {
		t.Fatalf("app_segment.order must be not null with no default: %+v", got)
	}
	if got := findColumn(t, segment, "content"); !got.Nullable {
		t.Fatalf("app_segment.content should be nullable: %+v", got)
	}

	profile := findTable(t, s, "app_profile")
	if got := findColumn(t, profile, "bio"); got.Nullable || got.Default == nil || *got.Default != "''" {
		t.Fatalf("app_profile.bio should be not null default '': %+v", got)
	}
	if got := findColumn(t, user, "id"); got.Default != nil {
		t.Fatalf("auto-incremented keys report no default: %+v", got)
	}

	testimonial := findTable(t, s, "app_testimonial")
	if got := findColumn(t, testimonial, "emojis"); got.Nullable || got.Default == nil {
		t.Fatalf("app_testimonial.emojis should be not null with a default: %+v", got)
	}

	module := findTable(t, s, "app_module")
	if got := findColumn(t, module, "created_at"); got.Default == nil || *got.Default != "now()" {
		t.Fatalf("app_module.created_at should default to now(): %+v", got)
	}
}
