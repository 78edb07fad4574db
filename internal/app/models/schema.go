package models

import (
	"reflect"
	"strings"
)

// Column maps a struct field to a table column.
type Column[T any] struct {
	Name  string       // column name in the table
	Field string       // JSON field name exposed by the API
	Ref   func(*T) any // pointer to the backing struct field
	Text  bool         // compared case-insensitively when part of the natural key
}

// ForeignKey describes a column that references the id of another table.
type ForeignKey struct {
	Column     string
	Field      string
	References string
}

// Dependent is a column in another table that references a given table.
type Dependent struct {
	Table  string
	Column string
}

// TableInfo is the type-independent part of a schema.
type TableInfo struct {
	Table       string
	ForeignKeys []ForeignKey
}

// Schema describes how an entity type is stored and identified.
// Columns holds the mutable columns only; the id column is implicit.
// NaturalKey lists the column names that must be unique together.
type Schema[T any] struct {
	Name        string
	Plural      string
	Table       string
	ID          func(*T) *int64
	Columns     []Column[T]
	NaturalKey  []string
	ForeignKeys []ForeignKey
}

// Info returns the type-independent description of the schema.
func (s *Schema[T]) Info() TableInfo {
	return TableInfo{Table: s.Table, ForeignKeys: s.ForeignKeys}
}

// ColumnNames returns the mutable column names in declaration order.
func (s *Schema[T]) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

// SelectColumns returns "id" followed by the mutable columns.
func (s *Schema[T]) SelectColumns() []string {
	return append([]string{"id"}, s.ColumnNames()...)
}

// Values returns the current values of the mutable columns of rec.
func (s *Schema[T]) Values(rec *T) []any {
	values := make([]any, 0, len(s.Columns))
	for _, c := range s.Columns {
		values = append(values, reflect.ValueOf(c.Ref(rec)).Elem().Interface())
	}
	return values
}

// ValueMap returns column name to value for the mutable columns of rec.
func (s *Schema[T]) ValueMap(rec *T) map[string]any {
	m := make(map[string]any, len(s.Columns))
	for i, v := range s.Values(rec) {
		m[s.Columns[i].Name] = v
	}
	return m
}

// ScanTargets returns pointers matching SelectColumns, for rows.Scan.
func (s *Schema[T]) ScanTargets(rec *T) []any {
	targets := make([]any, 0, len(s.Columns)+1)
	targets = append(targets, s.ID(rec))
	for _, c := range s.Columns {
		targets = append(targets, c.Ref(rec))
	}
	return targets
}

// Column looks up a mutable column by its name.
func (s *Schema[T]) Column(name string) (Column[T], bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column[T]{}, false
}

// Fields returns the JSON field names of the mutable columns.
func (s *Schema[T]) Fields() []string {
	fields := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		fields = append(fields, c.Field)
	}
	return fields
}

// Int64 reads an integer column of rec. Non-integer columns return 0.
func (s *Schema[T]) Int64(rec *T, column string) int64 {
	c, ok := s.Column(column)
	if !ok {
		return 0
	}
	v := reflect.ValueOf(c.Ref(rec)).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	}
	return 0
}

// ForeignKey looks up a foreign key by its column name.
func (s *Schema[T]) ForeignKey(column string) (ForeignKey, bool) {
	for _, fk := range s.ForeignKeys {
		if fk.Column == column {
			return fk, true
		}
	}
	return ForeignKey{}, false
}

// Tables lists every table of the domain, parents before children.
func Tables() []TableInfo {
	return []TableInfo{
		SchoolSchema.Info(),
		TeacherSchema.Info(),
		StudentSchema.Info(),
		CourseSchema.Info(),
		GradeSchema.Info(),
		EnrollmentSchema.Info(),
	}
}

// DependentsOf returns the columns of other tables referencing table.
func DependentsOf(table string) []Dependent {
	var deps []Dependent
	for _, t := range Tables() {
		for _, fk := range t.ForeignKeys {
			if strings.EqualFold(fk.References, table) {
				deps = append(deps, Dependent{Table: t.Table, Column: fk.Column})
			}
		}
	}
	return deps
}
