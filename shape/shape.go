// Package shape provides the ready-made Shape constructors used at resolver
// call sites: scalar shapes, transformed shapes, and enum-like shapes.
package shape

import (
	"encoding/json"
	"math"
	"strconv"

	modec "github.com/karasuda/modec"
)

// String returns the shape matching raw string nodes.
func String() modec.Shape[string] {
	return modec.ShapeFunc[string](func(raw any) (string, bool) {
		s, ok := raw.(string)
		return s, ok
	})
}

// Bool returns the shape matching raw boolean nodes.
func Bool() modec.Shape[bool] {
	return modec.ShapeFunc[bool](func(raw any) (bool, bool) {
		b, ok := raw.(bool)
		return b, ok
	})
}

// Int returns the shape matching integral raw numbers as int. Floating raw
// values with a fractional part are mismatches, as are values outside the int
// range.
func Int() modec.Shape[int] {
	return modec.ShapeFunc[int](func(raw any) (int, bool) {
		n, ok := toInt64(raw)
		if !ok || int64(int(n)) != n {
			return 0, false
		}
		return int(n), true
	})
}

// Int64 returns the shape matching integral raw numbers as int64.
func Int64() modec.Shape[int64] {
	return modec.ShapeFunc[int64](toInt64)
}

// Float64 returns the shape matching raw numbers (integral or floating) as
// float64.
func Float64() modec.Shape[float64] {
	return modec.ShapeFunc[float64](toFloat64)
}

// Number returns the shape preserving raw numbers as json.Number without
// precision loss.
func Number() modec.Shape[json.Number] {
	return modec.ShapeFunc[json.Number](func(raw any) (json.Number, bool) {
		switch n := raw.(type) {
		case json.Number:
			return n, true
		case int:
			return json.Number(strconv.FormatInt(int64(n), 10)), true
		case int64:
			return json.Number(strconv.FormatInt(n, 10)), true
		case float64:
			return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), true
		default:
			return "", false
		}
	})
}

// Any returns the shape accepting every present raw node unchanged.
func Any() modec.Shape[any] {
	return modec.ShapeFunc[any](func(raw any) (any, bool) { return raw, true })
}

// StringAs returns the shape matching raw string nodes projected onto a
// domain type with underlying string.
func StringAs[T ~string]() modec.Shape[T] {
	return modec.ShapeFunc[T](func(raw any) (T, bool) {
		s, ok := raw.(string)
		return T(s), ok
	})
}

// Transformed resolves a raw value through inner, then applies fn. A failed
// conversion is treated identically to a type mismatch: the required variants
// record a failure, the optional variants report absence.
func Transformed[R, T any](inner modec.Shape[R], fn func(R) (T, bool)) modec.Shape[T] {
	return modec.ShapeFunc[T](func(raw any) (T, bool) {
		var zero T
		rv, ok := inner.TryRaw(raw)
		if !ok {
			return zero, false
		}
		return fn(rv)
	})
}

// Enum resolves a raw value through inner and maps it onto the matching case
// from a fixed finite set of variants. A raw value outside the set is a
// mismatch.
func Enum[R comparable, T any](inner modec.Shape[R], cases map[R]T) modec.Shape[T] {
	return modec.ShapeFunc[T](func(raw any) (T, bool) {
		var zero T
		rv, ok := inner.TryRaw(raw)
		if !ok {
			return zero, false
		}
		v, ok := cases[rv]
		if !ok {
			return zero, false
		}
		return v, true
	})
}

// OneOf returns the shape matching raw strings against a fixed set of
// string-typed variants.
func OneOf[T ~string](variants ...T) modec.Shape[T] {
	return modec.ShapeFunc[T](func(raw any) (T, bool) {
		s, ok := raw.(string)
		if !ok {
			return "", false
		}
		for _, v := range variants {
			if T(s) == v {
				return v, true
			}
		}
		return "", false
	})
}

// ---- raw number coercion helpers ----

func toInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if math.Trunc(n) != n || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(raw any) (float64, bool) {
	switch n := raw.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
