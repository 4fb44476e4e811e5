package engine

import (
	"encoding/json"
	"io"
	"reflect"
	"testing"
)

type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *sliceSource) Location() int64 { return -1 }

func TestDecodeValueFromSource_Object(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "name"},
		{Kind: KindString, String: "John"},
		{Kind: KindKey, String: "age"},
		{Kind: KindNumber, Number: "27"},
		{Kind: KindKey, String: "tags"},
		{Kind: KindBeginArray},
		{Kind: KindString, String: "a"},
		{Kind: KindBool, Bool: true},
		{Kind: KindNull},
		{Kind: KindEndArray},
		{Kind: KindEndObject},
	}}
	v, err := DecodeValueFromSource(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"name": "John",
		"age":  json.Number("27"),
		"tags": []any{"a", true, nil},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v, want %#v", v, want)
	}
}

func TestDecodeValueFromSource_TruncatedInput(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
	}}
	if _, err := DecodeValueFromSource(src); err == nil {
		t.Fatalf("expected an error for truncated token stream")
	}
}

func TestCheckDepth(t *testing.T) {
	deep := map[string]any{"a": map[string]any{"b": []any{map[string]any{"c": 1}}}}
	if err := CheckDepth(deep, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckDepth(deep, 2); err != ErrMaxDepth {
		t.Fatalf("expected ErrMaxDepth, got %v", err)
	}
	// Zero disables the check.
	if err := CheckDepth(deep, 0); err != nil {
		t.Fatalf("unexpected error with disabled bound: %v", err)
	}
}

func TestCheckDepth_CyclicTreeTerminates(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	if err := CheckDepth(m, 5); err != ErrMaxDepth {
		t.Fatalf("expected ErrMaxDepth on a cyclic tree, got %v", err)
	}
}
