package objectdto_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	body := `{"data": {"id": 9007199254740993, "name": "Ann", "active": true, "tags": ["a"]}, "meta": {}}`

	p, err := objectdto.DecodePayload(strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, json.Number("9007199254740993"), p.Data["id"])
	assert.Equal(t, "Ann", p.Data["name"])
	assert.Equal(t, true, p.Data["active"])
	assert.Equal(t, []any{"a"}, p.Data["tags"])
}

func TestDecodePayload_ZeroNumberIsFalsy(t *testing.T) {
	m, sink := newTestMapper()
	p, err := objectdto.DecodePayload(strings.NewReader(`{"data": {"id": 0, "name": "Ann"}}`))
	require.NoError(t, err)

	assert.Nil(t, m.Materialize(p, personShape))
	assert.Equal(t, []diagnostic{{"Person", "id"}}, sink.calls)
}

func TestDecodePayload_MissingData(t *testing.T) {
	p, err := objectdto.DecodePayload(strings.NewReader(`{"name": "Ann"}`))

	require.NoError(t, err)
	assert.Nil(t, p.Data)
}

func TestDecodePayload_Malformed(t *testing.T) {
	_, err := objectdto.DecodePayload(strings.NewReader(`{"data": `))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode payload")
}

func TestSlogSink_WritesShapeAndKey(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := objectdto.New(objectdto.WithLogger(logger))

	got := m.Materialize(objectdto.NewPayload(map[string]any{"id": 42}), personShape)
	require.Nil(t, got)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "Person", line["shape"])
	assert.Equal(t, "name", line["key"])
	assert.Contains(t, line["msg"], "Person")
	assert.Contains(t, line["msg"], "name")
}

func TestSinkFunc(t *testing.T) {
	var got []string
	sink := objectdto.SinkFunc(func(shape, key string) {
		got = append(got, shape+"."+key)
	})

	objectdto.New(objectdto.WithSink(sink)).Materialize(objectdto.Payload{}, personShape)

	assert.Equal(t, []string{"Person.id", "Person.name"}, got)
}
