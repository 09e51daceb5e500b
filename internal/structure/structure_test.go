package structure

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" yaml:"name" validate:"required"`
	Value float64 `json:"value" yaml:"value" validate:"gt=0,finite"`
	Items []item  `json:"items" yaml:"items" validate:"dive"`
}

type item struct {
	Kind string `json:"kind" yaml:"kind" validate:"oneof=A B"`
}

func TestValidationErrorMessage(t *testing.T) {
	err := Invalid("span 2", "length", "must be positive, got %g", -1.0)
	assert.Equal(t, "invalid input: span 2: length must be positive, got -1", err.Error())
	assert.Equal(t, "invalid input: nothing", (&ValidationError{Msg: "nothing"}).Error())

	wrapped := fmt.Errorf("beam: %w", err)
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(errors.New("other")))
}

func TestCheckTags(t *testing.T) {
	require.NoError(t, CheckTags(&sample{Name: "a", Value: 1, Items: []item{{Kind: "A"}}}))

	err := CheckTags(&sample{Value: 1})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
	assert.Equal(t, "is required", ve.Msg)

	err = CheckTags(&sample{Name: "a", Value: math.Inf(1)})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "value", ve.Field)
	assert.Equal(t, "must be a finite number", ve.Msg)

	err = CheckTags(&sample{Name: "a", Value: 1, Items: []item{{Kind: "C"}}})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "items[0]", ve.Entity)
	assert.Equal(t, "kind", ve.Field)
}

func TestDecodeFormats(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "req.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"x","value":2}`), 0o644))
	var s sample
	require.NoError(t, DecodeFile(jsonPath, &s))
	assert.Equal(t, sample{Name: "x", Value: 2}, s)

	yamlPath := filepath.Join(dir, "req.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: y\nvalue: 3\nitems:\n  - kind: B\n"), 0o644))
	s = sample{}
	require.NoError(t, DecodeFile(yamlPath, &s))
	assert.Equal(t, "y", s.Name)
	assert.Equal(t, []item{{Kind: "B"}}, s.Items)

	assert.Error(t, Decode([]byte(`{"name":"x","bogus":1}`), JSON, &s))
	assert.Error(t, Decode([]byte("bogus: 1\n"), YAML, &s))
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, YAML, sample{Name: "z", Value: 1}))
	assert.Contains(t, buf.String(), "name: z")

	buf.Reset()
	require.NoError(t, Encode(&buf, JSON, Warning{Kind: NumericalTolerance, Residual: 1}))
	assert.Contains(t, buf.String(), `"kind": "NUMERICAL_TOLERANCE"`)
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.yaml")
	require.NoError(t, EncodeFile(path, sample{Name: "w", Value: 4}))

	var s sample
	require.NoError(t, DecodeFile(path, &s))
	assert.Equal(t, "w", s.Name)
	assert.Equal(t, 4.0, s.Value)
}
