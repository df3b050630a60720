package objectdto

import (
	"maps"
	"reflect"
	"slices"
)

// Record is the plain key/value result of every operation. A key holding nil
// is absent.
type Record map[string]any

// Keys returns the record's keys in sorted order.
func (r Record) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// IsAbsent reports whether key is missing or holds nil.
func (r Record) IsAbsent(key string) bool {
	return r[key] == nil
}

// viewOf reads the top-level fields of obj. Maps with string keys are read
// entry by entry, structs through their reflected shape. Everything else has
// no fields.
func viewOf(obj any) Record {
	switch o := obj.(type) {
	case nil:
		return Record{}
	case Record:
		return copyRecord(o)
	case map[string]any:
		return copyRecord(o)
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Record{}
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return Record{}
		}
		out := make(Record, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out
	case reflect.Struct:
		ss := shapeForType(v.Type())
		out := make(Record, len(ss.index))
		for i, idx := range ss.index {
			fv, err := v.FieldByIndexErr(idx)
			if err != nil {
				// nil embedded pointer along the path
				out[ss.shape.Fields[i]] = nil
				continue
			}
			out[ss.shape.Fields[i]] = fv.Interface()
		}
		return out
	default:
		return Record{}
	}
}

func copyRecord(m map[string]any) Record {
	out := make(Record, len(m))
	maps.Copy(out, m)
	return out
}
