package shape_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karasuda/modec/shape"
)

func TestString(t *testing.T) {
	s, ok := shape.String().TryRaw("hi")
	require.True(t, ok)
	assert.Equal(t, "hi", s)

	_, ok = shape.String().TryRaw(42)
	assert.False(t, ok)
	assert.Equal(t, "", shape.String().Fallback())
}

func TestBool(t *testing.T) {
	b, ok := shape.Bool().TryRaw(true)
	require.True(t, ok)
	assert.True(t, b)

	_, ok = shape.Bool().TryRaw("true")
	assert.False(t, ok)
}

func TestInt_RawForms(t *testing.T) {
	for _, raw := range []any{json.Number("27"), 27, int64(27), float64(27)} {
		n, ok := shape.Int().TryRaw(raw)
		require.True(t, ok, "raw %T", raw)
		assert.Equal(t, 27, n)
	}
}

func TestInt_Mismatches(t *testing.T) {
	for _, raw := range []any{"27", 27.5, json.Number("27.5"), true, nil} {
		_, ok := shape.Int().TryRaw(raw)
		assert.False(t, ok, "raw %v (%T)", raw, raw)
	}
}

func TestInt64(t *testing.T) {
	n, ok := shape.Int64().TryRaw(json.Number("9007199254740993"))
	require.True(t, ok)
	assert.Equal(t, int64(9007199254740993), n)
}

func TestFloat64(t *testing.T) {
	f, ok := shape.Float64().TryRaw(json.Number("2.5"))
	require.True(t, ok)
	assert.Equal(t, 2.5, f)

	f, ok = shape.Float64().TryRaw(3)
	require.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = shape.Float64().TryRaw("2.5")
	assert.False(t, ok)
}

func TestNumber(t *testing.T) {
	n, ok := shape.Number().TryRaw(json.Number("1e100"))
	require.True(t, ok)
	assert.Equal(t, json.Number("1e100"), n)

	n, ok = shape.Number().TryRaw(12)
	require.True(t, ok)
	assert.Equal(t, json.Number("12"), n)

	_, ok = shape.Number().TryRaw("12")
	assert.False(t, ok)
}

func TestAny(t *testing.T) {
	v, ok := shape.Any().TryRaw([]any{1, 2})
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, v)
}

type userID string

func TestStringAs(t *testing.T) {
	id, ok := shape.StringAs[userID]().TryRaw("u-1")
	require.True(t, ok)
	assert.Equal(t, userID("u-1"), id)

	_, ok = shape.StringAs[userID]().TryRaw(1)
	assert.False(t, ok)
}

func TestTransformed(t *testing.T) {
	upper := shape.Transformed(shape.String(), func(s string) (int, bool) {
		return len(s), s != ""
	})

	n, ok := upper.TryRaw("abc")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	// A failed conversion is treated like a type mismatch.
	_, ok = upper.TryRaw("")
	assert.False(t, ok)
	_, ok = upper.TryRaw(5)
	assert.False(t, ok)
}

type color int

const (
	red color = iota
	green
)

func TestEnum(t *testing.T) {
	c := shape.Enum(shape.String(), map[string]color{"red": red, "green": green})

	v, ok := c.TryRaw("green")
	require.True(t, ok)
	assert.Equal(t, green, v)

	_, ok = c.TryRaw("blue")
	assert.False(t, ok)
	_, ok = c.TryRaw(1)
	assert.False(t, ok)
}

type mode string

func TestOneOf(t *testing.T) {
	m := shape.OneOf[mode]("fast", "safe")

	v, ok := m.TryRaw("safe")
	require.True(t, ok)
	assert.Equal(t, mode("safe"), v)

	_, ok = m.TryRaw("reckless")
	assert.False(t, ok)
}
