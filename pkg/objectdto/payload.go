package objectdto

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Payload is an externally supplied request body. The submitted fields live
// under the "data" key.
type Payload struct {
	Data map[string]any `json:"data"`
}

// NewPayload wraps data in a Payload.
func NewPayload(data map[string]any) Payload {
	return Payload{Data: data}
}

// payloadJSON keeps numbers as json.Number so large IDs survive decoding.
var payloadJSON = jsoniter.Config{
	EscapeHTML:             true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// DecodePayload reads one JSON document of the form {"data": {...}} from r.
// A document without a data member decodes to a Payload with nil Data.
func DecodePayload(r io.Reader) (Payload, error) {
	var p Payload
	if err := payloadJSON.NewDecoder(r).Decode(&p); err != nil {
		return Payload{}, fmt.Errorf("failed to decode payload: %w", err)
	}
	return p, nil
}
