package gateway

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"profile-backend/internal/profile/domain"
)

// Reflective variant of the per-kind gateways. It derives the field set by
// introspecting the entity's declared fields at call time instead of a
// hand-written field list, and must produce identical output to the
// hand-written gateway for the same input. Derived-identity fields and
// relation-resolved name fields are excluded from the naive pass and
// handled explicitly.
var mapperExcluded = map[string]bool{
	"device_id":   true,
	"session_id":  true,
	"username":    true,
	"device_name": true,
}

// ValuesFromEntity converts an entity struct into a column-name to value
// map suitable for a record update, skipping excluded fields and unset
// optionals.
func ValuesFromEntity(entity interface{}) map[string]interface{} {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	values := make(map[string]interface{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		col := fieldColumn(f.Name)
		if mapperExcluded[col] {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		values[col] = fv.Interface()
	}
	return values
}

// EntityFromRecord fills entity (a pointer to an entity struct) from the
// record's fields, matching by derived column name. The entity's
// derived-identity field receives the record's primary key and its owner
// name field receives username; those are the fields the naive pass skips.
func EntityFromRecord(rec interface{}, entity interface{}, username string) error {
	ev := reflect.ValueOf(entity)
	if ev.Kind() != reflect.Ptr || ev.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("entity must be a struct pointer: %w", domain.ErrValidation)
	}
	ev = ev.Elem()
	et := ev.Type()

	recFields := recordColumns(rec)

	for i := 0; i < et.NumField(); i++ {
		f := et.Field(i)
		if f.PkgPath != "" {
			continue
		}
		col := fieldColumn(f.Name)
		target := ev.Field(i)

		switch {
		case col == "username":
			target.SetString(username)
		case col == "device_id" || col == "session_id":
			id, ok := recFields["id"]
			if !ok {
				continue
			}
			if err := assign(target, id); err != nil {
				return fmt.Errorf("field %s: %w", f.Name, err)
			}
		default:
			src, ok := recFields[col]
			if !ok {
				continue
			}
			if err := assign(target, src); err != nil {
				return fmt.Errorf("field %s: %w", f.Name, err)
			}
		}
	}
	return nil
}

// recordColumns maps a record struct's fields by derived column name.
func recordColumns(rec interface{}) map[string]reflect.Value {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	cols := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || isRelationField(f.Type) {
			continue
		}
		cols[fieldColumn(f.Name)] = v.Field(i)
	}
	return cols
}

var timeType = reflect.TypeOf(time.Time{})

// isRelationField reports whether a record field is an embedded relation
// struct rather than a scalar or timestamp column.
func isRelationField(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t != timeType
}

// assign copies src into dst, adapting pointer-ness in either direction.
func assign(dst, src reflect.Value) error {
	if src.Kind() == reflect.Ptr {
		if src.IsNil() {
			return nil
		}
		src = src.Elem()
	}
	if dst.Kind() == reflect.Ptr {
		p := reflect.New(dst.Type().Elem())
		if !src.Type().AssignableTo(dst.Type().Elem()) {
			return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
		}
		p.Elem().Set(src)
		dst.Set(p)
		return nil
	}
	if !src.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}
	dst.Set(src)
	return nil
}

// fieldColumn derives the column name for a Go field, keeping acronym runs
// together: "IPAddress" -> "ip_address", "DeviceID" -> "device_id".
func fieldColumn(name string) string {
	var b strings.Builder
	runes := []rune(name)
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
