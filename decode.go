package modec

import (
	"github.com/davecgh/go-spew/spew"
)

// Decodable is implemented by model types that populate themselves from a
// Resolver. DecodeFields always runs to completion: required fields that fail
// to resolve are assigned their shape's fallback value and the aggregate
// failure is checked only after construction finishes. Implementations must
// not retain the Resolver.
type Decodable interface {
	DecodeFields(r *Resolver)
}

// DecodablePtr constrains PT to a pointer to T implementing Decodable, letting
// the decode entry points construct models without reflection.
type DecodablePtr[T any] interface {
	*T
	Decodable
}

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	// Context is an opaque caller-supplied value forwarded unchanged and
	// read-only to every nested model decode in this call tree. Models read
	// it through ContextValue/RequireContextValue.
	Context any
	// MaxDepth bounds nesting during byte parsing and nested-model
	// recursion. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth bounds document nesting when DecodeOpt.MaxDepth is zero.
// Parser-produced trees are acyclic, so the bound only matters for hand-built
// documents and pathologically deep inputs.
const DefaultMaxDepth = 200

func lastOpt(opts []DecodeOpt) DecodeOpt {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	return opt
}

// Decode runs one full decode of doc into a model T.
//
// Construction always runs to completion, then the failure tracker is checked
// exactly once: empty means success, otherwise the constructed instance is
// discarded and the recorded failure is mapped to a DecodeError (raw value
// present => invalid_value, absent => missing_key).
func Decode[T any, PT DecodablePtr[T]](doc Document, opts ...DecodeOpt) (T, error) {
	opt := lastOpt(opts)
	return decodeWith[T, PT](doc, opt.Context, 0, opt.MaxDepth)
}

// DecodeSlice decodes each document into a model T. The whole operation fails
// the instant any element decode fails; there is no partial or lenient mode.
func DecodeSlice[T any, PT DecodablePtr[T]](docs []Document, opts ...DecodeOpt) ([]T, error) {
	opt := lastOpt(opts)
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := decodeWith[T, PT](doc, opt.Context, 0, opt.MaxDepth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeFrom parses a single document out of src and decodes it into a model
// T. Any parser failure becomes an invalid_document error without entering
// model construction.
func DecodeFrom[T any, PT DecodablePtr[T]](src Source, opts ...DecodeOpt) (T, error) {
	var zero T
	doc, err := documentFromSource(src, lastOpt(opts).MaxDepth)
	if err != nil {
		return zero, err
	}
	return Decode[T, PT](doc, opts...)
}

// DecodeSliceFrom parses a list of documents out of src and decodes them into
// models, failing the whole operation on the first element failure.
func DecodeSliceFrom[T any, PT DecodablePtr[T]](src Source, opts ...DecodeOpt) ([]T, error) {
	docs, err := documentsFromSource(src, lastOpt(opts).MaxDepth)
	if err != nil {
		return nil, err
	}
	return DecodeSlice[T, PT](docs, opts...)
}

// DecodeBytes parses data as a single JSON document via the registered JSON
// driver and decodes it into a model T.
func DecodeBytes[T any, PT DecodablePtr[T]](data []byte, opts ...DecodeOpt) (T, error) {
	return DecodeFrom[T, PT](JSONBytes(data), opts...)
}

// DecodeBytesSlice parses data as a JSON array of documents and decodes it
// into a list of models.
func DecodeBytesSlice[T any, PT DecodablePtr[T]](data []byte, opts ...DecodeOpt) ([]T, error) {
	return DecodeSliceFrom[T, PT](JSONBytes(data), opts...)
}

// MustDecode is the strict variant of Decode: it returns the model directly
// and panics with the DecodeError on failure.
func MustDecode[T any, PT DecodablePtr[T]](doc Document, opts ...DecodeOpt) T {
	v, err := Decode[T, PT](doc, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// MustDecodeSlice is the strict variant of DecodeSlice.
func MustDecodeSlice[T any, PT DecodablePtr[T]](docs []Document, opts ...DecodeOpt) []T {
	vs, err := DecodeSlice[T, PT](docs, opts...)
	if err != nil {
		panic(err)
	}
	return vs
}

// MustDecodeBytes is the strict variant of DecodeBytes.
func MustDecodeBytes[T any, PT DecodablePtr[T]](data []byte, opts ...DecodeOpt) T {
	v, err := DecodeBytes[T, PT](data, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// decodeWith is the shared two-phase decode body: construct, then check.
func decodeWith[T any, PT DecodablePtr[T]](doc Document, ctx any, depth, maxDepth int) (T, error) {
	var v T
	r := &Resolver{doc: doc, ctx: ctx, trk: &tracker{}, depth: depth, maxDepth: maxDepth}
	PT(&v).DecodeFields(r)
	if !r.trk.failed {
		return v, nil
	}
	var zero T
	return zero, trackerError(r.trk)
}

func trackerError(t *tracker) error {
	if t.hasRaw {
		return &DecodeError{Code: CodeInvalidValue, Key: t.key, Raw: describeRaw(t.raw)}
	}
	return &DecodeError{Code: CodeMissingKey, Key: t.key}
}

// describeRaw renders the offending raw value for diagnostics.
func describeRaw(raw any) string {
	return spew.Sprintf("%#v", raw)
}
