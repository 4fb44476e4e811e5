package modec_test

import (
	"testing"

	j "github.com/goccy/go-json"

	modec "github.com/karasuda/modec"
	"github.com/karasuda/modec/shape"
)

func TestDecodeBytes_Success(t *testing.T) {
	u, err := modec.DecodeBytes[user]([]byte(`{"name":"John","age":27}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "John" || u.Age != 27 {
		t.Fatalf("unexpected model: %+v", u)
	}
}

func TestDecodeBytes_InvalidDocument(t *testing.T) {
	_, err := modec.DecodeBytes[user]([]byte(`{"name":`))
	if !modec.IsInvalidDocument(err) {
		t.Fatalf("expected invalid_document for malformed bytes, got %v", err)
	}
	// A well-formed scalar is still not a document.
	_, err = modec.DecodeBytes[user]([]byte(`"just a string"`))
	if !modec.IsInvalidDocument(err) {
		t.Fatalf("expected invalid_document for non-object root, got %v", err)
	}
}

func TestDecodeBytesSlice(t *testing.T) {
	us, err := modec.DecodeBytesSlice[user]([]byte(`[{"name":"A","age":1},{"name":"B","age":2}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(us) != 2 || us[0].Name != "A" || us[1].Age != 2 {
		t.Fatalf("unexpected models: %+v", us)
	}

	_, err = modec.DecodeBytesSlice[user]([]byte(`{"name":"A","age":1}`))
	if !modec.IsInvalidDocument(err) {
		t.Fatalf("expected invalid_document for non-array root, got %v", err)
	}
}

func TestDecodeSlice_FailsOnFirstElementFailure(t *testing.T) {
	docs := []modec.Document{
		{"name": "A", "age": 1},
		{"name": "B"}, // missing age
		{"name": "C", "age": 3},
	}
	us, err := modec.DecodeSlice[user](docs)
	if !modec.IsMissingKey(err) {
		t.Fatalf("expected missing_key, got %v", err)
	}
	if us != nil {
		t.Fatalf("expected no partial result, got %+v", us)
	}
}

func TestMustDecode(t *testing.T) {
	u := modec.MustDecode[user](modec.Document{"name": "John", "age": 27})
	if u.Name != "John" {
		t.Fatalf("unexpected model: %+v", u)
	}

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatalf("expected MustDecode to panic on failure")
		}
		if _, ok := rec.(error); !ok {
			t.Fatalf("expected the panic value to be the decode error, got %T", rec)
		}
	}()
	modec.MustDecode[user](modec.Document{})
}

func TestMustDecodeBytes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustDecodeBytes to panic on malformed input")
		}
	}()
	modec.MustDecodeBytes[user]([]byte(`{`))
}

// Round trip: re-encoding a decoded model through the external serializer and
// decoding again reproduces an equal model.
func TestRoundTrip(t *testing.T) {
	orig := modec.Document{"name": "Jane", "age": 31}
	u, err := modec.Decode[user](orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded, err := j.Marshal(map[string]any{"name": u.Name, "age": u.Age})
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	again, err := modec.DecodeBytes[user](encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != u {
		t.Fatalf("round trip mismatch: %+v vs %+v", again, u)
	}
}

// A self-referencing hand-built tree is cut off by the nested-model depth
// bound instead of recursing unboundedly.
type chain struct {
	Name string
	Next *chain
}

func (c *chain) DecodeFields(r *modec.Resolver) {
	c.Name = modec.Required(r, "name", shape.String())
	if next, ok := modec.OptionalModel[chain](r, "next"); ok {
		c.Next = &next
	}
}

func TestDecode_DepthBoundOnCyclicTree(t *testing.T) {
	doc := map[string]any{"name": "loop"}
	doc["next"] = doc

	c, err := modec.Decode[chain](modec.Document(doc), modec.DecodeOpt{MaxDepth: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	depth := 0
	for n := &c; n != nil; n = n.Next {
		depth++
		if depth > 100 {
			t.Fatalf("depth bound not applied")
		}
	}
}

type strictChain struct {
	Next *strictChain
}

func (c *strictChain) DecodeFields(r *modec.Resolver) {
	next := modec.RequiredModel[strictChain](r, "next")
	c.Next = &next
}

func TestDecode_DepthBoundFailsRequiredNesting(t *testing.T) {
	doc := map[string]any{}
	doc["next"] = doc

	_, err := modec.Decode[strictChain](modec.Document(doc), modec.DecodeOpt{MaxDepth: 4})
	if !modec.IsInvalidValue(err) {
		t.Fatalf("expected invalid_value once the depth bound is hit, got %v", err)
	}
}

func TestDecodeBytes_DepthBound(t *testing.T) {
	deep := []byte(`{"a":{"a":{"a":{"a":{"a":1}}}}}`)
	_, err := modec.DecodeBytes[optListModel](deep, modec.DecodeOpt{MaxDepth: 2})
	if !modec.IsInvalidDocument(err) {
		t.Fatalf("expected invalid_document for overly deep input, got %v", err)
	}
}
