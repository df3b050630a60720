package objectdto

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Shape names the keys an operation extracts or requires.
// Name identifies the target type in diagnostics.
type Shape struct {
	Name   string
	Fields []string
}

// NewShape creates a shape from an explicit field list. Repeated names keep
// their first position.
func NewShape(name string, fields ...string) Shape {
	s := Shape{Name: name, Fields: make([]string, 0, len(fields))}
	for _, f := range fields {
		if !s.Has(f) {
			s.Fields = append(s.Fields, f)
		}
	}
	return s
}

// Keys returns a copy of the shape's field names.
func (s Shape) Keys() []string {
	return slices.Clone(s.Fields)
}

// Has reports whether key is one of the shape's fields.
func (s Shape) Has(key string) bool {
	return slices.Contains(s.Fields, key)
}

// structShape is the reflected form of a struct type. index holds the
// reflect field index path for every entry in shape.Fields.
type structShape struct {
	shape Shape
	index [][]int
}

var shapeCache sync.Map // reflect.Type -> *structShape

// ShapeOf reflects the shape of T. Pointer types are dereferenced.
func ShapeOf[T any]() Shape {
	return shapeForType(reflect.TypeFor[T]()).public()
}

// ShapeFor reflects the shape of v's dynamic type. A nil v yields an empty shape.
func ShapeFor(v any) Shape {
	if v == nil {
		return Shape{}
	}
	return shapeForType(reflect.TypeOf(v)).public()
}

// public returns a copy of the cached shape that callers may modify.
func (ss *structShape) public() Shape {
	return Shape{Name: ss.shape.Name, Fields: slices.Clone(ss.shape.Fields)}
}

func shapeForType(t reflect.Type) *structShape {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := shapeCache.Load(t); ok {
		return cached.(*structShape)
	}

	ss := &structShape{shape: Shape{Name: typeName(t)}}
	if t.Kind() == reflect.Struct {
		collectFields(t, nil, ss)
	}

	actual, _ := shapeCache.LoadOrStore(t, ss)
	return actual.(*structShape)
}

func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// collectFields walks exported fields in declaration order. Anonymous struct
// fields without an explicit json name contribute their own fields.
func collectFields(t reflect.Type, parent []int, ss *structShape) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, skip := fieldName(f)
		if skip {
			continue
		}

		idx := append(slices.Clone(parent), i)

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collectFields(ft, idx, ss)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if ss.shape.Has(name) {
			continue
		}
		ss.shape.Fields = append(ss.shape.Fields, name)
		ss.index = append(ss.index, idx)
	}
}

// fieldName returns the json name of f ("" when untagged) and whether the
// field is excluded.
func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}
