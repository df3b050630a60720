// Package objectdto copies fields between request payloads and plain data
// objects.
//
// It offers three operations:
//
//   - Materialize validates that a payload carries every key of a shape and
//     copies those keys into a fresh Record, or returns nil.
//   - Flatten copies the top-level fields of a map or struct into a Record.
//   - Project copies the keys named by a shape from a source into a Record,
//     leaving nil under keys the source does not have.
//
// A Shape is only a type name and a list of keys. It can be declared with
// NewShape or reflected once from a struct with ShapeOf.
//
// Typical usage from a request handler:
//
//	payload, err := objectdto.DecodePayload(r.Body)
//	req, err := objectdto.MaterializeAs[CreateUserRequest](mapper, payload)
//	...
//	c.JSON(http.StatusCreated, mapper.Project(user, userResponseShape))
package objectdto
