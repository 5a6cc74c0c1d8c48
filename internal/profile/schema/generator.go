// Package schema synthesizes persisted-record column specifications and
// admin UI configuration from entity struct declarations. Generation runs
// once at startup; the resulting schemas are cached in a Registry and
// treated as read-only afterwards.
package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
)

// ColumnType is the storage-level type of a generated column.
type ColumnType string

const (
	TypeString     ColumnType = "varchar"
	TypeInteger    ColumnType = "integer"
	TypeBoolean    ColumnType = "boolean"
	TypeTimestamp  ColumnType = "timestamp"
	TypeForeignKey ColumnType = "foreign_key"
)

// OnDelete states what the store does to a row when its referenced row is
// removed.
type OnDelete string

const (
	Cascade OnDelete = "CASCADE"
	SetNull OnDelete = "SET NULL"
)

// ColumnSpec describes one generated column.
type ColumnSpec struct {
	Name       string      `json:"name"`
	Type       ColumnType  `json:"type"`
	MaxLength  int         `json:"max_length,omitempty"`
	Nullable   bool        `json:"nullable"`
	Default    interface{} `json:"default,omitempty"`
	AutoNowAdd bool        `json:"auto_now_add,omitempty"` // set once at insert, immutable
	AutoNow    bool        `json:"auto_now,omitempty"`     // refreshed on every write
	Unique     bool        `json:"unique,omitempty"`
	References string      `json:"references,omitempty"` // target table for foreign keys
	OnDelete   OnDelete    `json:"on_delete,omitempty"`
}

// TableSchema is the full generated definition for one persisted record.
type TableSchema struct {
	Name           string       `json:"name"`
	Table          string       `json:"table"`
	Columns        []ColumnSpec `json:"columns"`
	UniqueTogether [][]string   `json:"unique_together,omitempty"`
	Ordering       []string     `json:"ordering,omitempty"`
}

// Column returns the column with the given name, or nil.
func (t *TableSchema) Column(name string) *ColumnSpec {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Options carries caller-supplied additions merged in after the automatic
// pass. Caller values are never overridden by generated ones.
type Options struct {
	// Columns are merged by name: a column matching a generated one
	// replaces it, anything else is appended (relations, overrides).
	Columns        []ColumnSpec
	UniqueTogether [][]string
	Ordering       []string
}

// Reserved field names receive fixed treatment regardless of declared type.
var reservedColumns = map[string]ColumnSpec{
	"created_at": {Type: TypeTimestamp, AutoNowAdd: true},
	"updated_at": {Type: TypeTimestamp, AutoNow: true},
	"is_active":  {Type: TypeBoolean, Default: true},
}

// Derived-identity and resolved-name fields are computed by the gateways,
// not stored, so generation skips them entirely.
var excludedColumns = map[string]bool{
	"device_id":   true,
	"session_id":  true,
	"username":    true,
	"device_name": true,
}

// String fields carrying these names keep the full 255 bound; any other
// string field narrows to 100 unless the caller overrides it.
var wideStringColumns = map[string]bool{
	"name":        true,
	"device_type": true,
	"platform":    true,
}

// Generate reflects over the entity struct type and produces its
// TableSchema. entity must be a struct or pointer to struct.
func Generate(name string, entity interface{}, opts Options) (*TableSchema, error) {
	t := reflect.TypeOf(entity)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: entity for %q must be a struct, got %v", name, reflect.TypeOf(entity))
	}

	ts := &TableSchema{
		Name:  name,
		Table: strings.ToLower(name),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		col := toSnake(f.Name)
		if excludedColumns[col] {
			continue
		}
		if reserved, ok := reservedColumns[col]; ok {
			reserved.Name = col
			ts.Columns = append(ts.Columns, reserved)
			continue
		}

		ft := f.Type
		nullable := false
		if ft.Kind() == reflect.Ptr {
			nullable = true
			ft = ft.Elem()
		}
		ts.Columns = append(ts.Columns, columnFor(col, ft, nullable))
	}

	mergeOptions(ts, opts)
	return ts, nil
}

// columnFor maps a Go type to a column spec. Unrecognized types widen to a
// generic varchar(255) rather than failing generation.
func columnFor(name string, ft reflect.Type, nullable bool) ColumnSpec {
	col := ColumnSpec{Name: name, Nullable: nullable}
	switch {
	case ft.Kind() == reflect.String:
		col.Type = TypeString
		if wideStringColumns[name] {
			col.MaxLength = 255
		} else {
			col.MaxLength = 100
		}
	case ft.Kind() >= reflect.Int && ft.Kind() <= reflect.Uint64:
		col.Type = TypeInteger
	case ft.Kind() == reflect.Bool:
		col.Type = TypeBoolean
		col.Default = false
	case ft == reflect.TypeOf(time.Time{}):
		col.Type = TypeTimestamp
	default:
		col.Type = TypeString
		col.MaxLength = 255
	}
	return col
}

func mergeOptions(ts *TableSchema, opts Options) {
	for _, c := range opts.Columns {
		if existing := ts.Column(c.Name); existing != nil {
			*existing = c
		} else {
			ts.Columns = append(ts.Columns, c)
		}
	}
	ts.UniqueTogether = append(ts.UniqueTogether, opts.UniqueTogether...)
	ts.Ordering = append(ts.Ordering, opts.Ordering...)
}

// toSnake converts a Go field name to its column name, keeping acronym runs
// together: "IPAddress" -> "ip_address", "DeviceID" -> "device_id".
func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
