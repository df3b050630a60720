package objectdto

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/jinzhu/copier"
)

// ErrIncompletePayload is returned by the typed helpers when the payload
// fails the presence check.
var ErrIncompletePayload = errors.New("payload is missing required fields")

// Decode stores the values of rec into the struct pointed to by dst, matching
// keys against json tags. Absent (nil) values leave the field untouched.
// Strings decode into encoding.TextUnmarshaler targets such as time.Time.
func Decode(rec Record, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Squash:     true,
		TagName:    "json",
		Result:     dst,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder for %T: %w", dst, err)
	}
	if err := dec.Decode(map[string]any(rec)); err != nil {
		return fmt.Errorf("failed to decode record into %T: %w", dst, err)
	}
	return nil
}

// MaterializeInto materializes payload against the shape of dst and decodes
// the result into dst.
func (m *Mapper) MaterializeInto(payload Payload, dst any) error {
	shape := ShapeFor(dst)
	rec := m.Materialize(payload, shape)
	if rec == nil {
		return fmt.Errorf("%s: %w", shape.Name, ErrIncompletePayload)
	}
	return Decode(rec, dst)
}

// MaterializeAs allocates a fresh T and materializes payload into it.
func MaterializeAs[T any](m *Mapper, payload Payload) (*T, error) {
	out := new(T)
	if err := m.MaterializeInto(payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectInto copies the fields of src into the struct pointed to by dst,
// matching Go field names. Fields of embedded structs are matched as if they
// were declared on the outer struct. Pointer-to-struct fields receive a copy
// of their target; slices stay shared with src.
func ProjectInto(src, dst any) error {
	if err := copier.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to project %T into %T: %w", src, dst, err)
	}
	return nil
}

// ProjectAs projects src into a fresh T.
func ProjectAs[T any](src any) (T, error) {
	var out T
	err := ProjectInto(src, &out)
	return out, err
}
