package logfacade

import (
	"fmt"
	"reflect"

	smerrors "github.com/Station-Manager/errors"
)

const (
	maxDumpDepth    = 10
	maxDumpElements = 10
)

// Dump logs the structure of v at debug level, one line per field, element
// or scalar. Exported struct fields are followed; cycles and nesting deeper
// than maxDumpDepth are cut short. It returns false when h is not live or the
// logger filters debug records.
func (c *Context) Dump(h LoggerHandle, v any) bool {
	const op smerrors.Op = "logfacade.Dump"
	return c.guard(op, func() bool {
		w, ok := c.resolveLeveled(h, LevelDebug)
		if !ok {
			return false
		}
		d := &dumper{w: w, visited: make(map[uintptr]bool)}
		if v == nil {
			d.line("Dump: <nil>")
			return true
		}
		d.value(v, emptyString, 0)
		return true
	})
}

type dumper struct {
	w       *LoggerWrapper
	visited map[uintptr]bool
}

func (d *dumper) line(format string, args ...any) {
	d.w.emit(LevelDebug, fmt.Sprintf(format, args...))
}

// unwrap follows interfaces and pointers. It returns false once it has
// already logged a terminal line for prefix.
func (d *dumper) unwrap(val reflect.Value, prefix string) (reflect.Value, bool) {
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				d.line("%s: <nil>", prefix)
				return val, false
			}
			val = val.Elem()
		case reflect.Pointer:
			if val.IsNil() {
				d.line("%s: <nil>", prefix)
				return val, false
			}
			ptr := val.Pointer()
			if d.visited[ptr] {
				d.line("%s: <circular reference>", prefix)
				return val, false
			}
			d.visited[ptr] = true
			val = val.Elem()
		default:
			return val, true
		}
	}
}

func (d *dumper) value(v any, prefix string, depth int) {
	if depth > maxDumpDepth {
		d.line("%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		d.line("%s: <nil>", prefix)
		return
	}

	val, ok := d.unwrap(reflect.ValueOf(v), prefix)
	if !ok {
		return
	}
	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			d.line("Struct: %s", typ.Name())
		} else {
			d.line("%s: %s {", prefix, typ.Name())
		}
		for i := 0; i < val.NumField(); i++ {
			fv := val.Field(i)
			if !fv.CanInterface() {
				continue
			}
			name := typ.Field(i).Name
			if prefix != emptyString {
				name = prefix + "." + name
			}
			d.value(fv.Interface(), name, depth+1)
		}
		if prefix != emptyString {
			d.line("%s: }", prefix)
		}

	case reflect.Map:
		d.line("%s: map[%s]%s (len: %d) {", prefix, typ.Key(), typ.Elem(), val.Len())
		iter := val.MapRange()
		for iter.Next() {
			d.value(iter.Value().Interface(), fmt.Sprintf("%s[%v]", prefix, iter.Key().Interface()), depth+1)
		}
		d.line("%s: }", prefix)

	case reflect.Slice, reflect.Array:
		d.line("%s: %s (len: %d, cap: %d) {", prefix, typ, val.Len(), val.Cap())
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			d.value(val.Index(i).Interface(), fmt.Sprintf("%s[%d]", prefix, i), depth+1)
		}
		if val.Len() > maxDumpElements {
			d.line("%s: ... (%d more elements)", prefix, val.Len()-maxDumpElements)
		}
		d.line("%s: }", prefix)

	default:
		d.line("%s: %v", prefix, val.Interface())
	}
}
