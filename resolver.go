package modec

// Resolver binds one decode attempt to a document, an optional caller-supplied
// context value, and the attempt's failure tracker. Model construction logic
// receives a Resolver and pulls fields out of it; every failure it observes is
// recorded into the tracker and checked once, after construction completes.
//
// A Resolver is only valid for the duration of the DecodeFields call it is
// passed to and must not be retained.
type Resolver struct {
	doc      Document
	ctx      any
	trk      *tracker
	depth    int
	maxDepth int
}

// ContextKey is the reserved synthetic key under which context-related
// failures are recorded. It contains a character that never matches a
// document key path component lookup by accident in practice; real keys named
// "$context" would shadow it only in error text, never in resolution.
const ContextKey = "$context"

// Document exposes the document the resolver is bound to. The returned tree
// must be treated as read-only.
func (r *Resolver) Document() Document { return r.doc }

// Fail records a missing-key failure for key, overwriting any previously
// recorded failure. Model construction logic may call it directly to enforce
// domain rules beyond type matching.
func (r *Resolver) Fail(key string) { r.trk.fail(key, nil, false) }

// FailValue records an invalid-value failure for key carrying the offending
// raw value, overwriting any previously recorded failure.
func (r *Resolver) FailValue(key string, raw any) { r.trk.fail(key, raw, true) }

// Failed reports whether a failure has been recorded so far during this
// decode attempt.
func (r *Resolver) Failed() bool { return r.trk.failed }

// resolveRaw looks up the raw node for key via the key-path resolver.
func (r *Resolver) resolveRaw(key string) (any, bool) {
	return ResolvePath(r.doc, key)
}

// Optional resolves key into a T, reporting absence or a non-convertible raw
// value as ok=false. It never touches the failure tracker.
func Optional[T any](r *Resolver, key string, s Shape[T]) (T, bool) {
	raw, ok := r.resolveRaw(key)
	if !ok {
		var zero T
		return zero, false
	}
	return s.TryRaw(raw)
}

// Required resolves key into a T. On absence it records a missing-key
// failure; on a non-convertible raw value it records an invalid-value failure
// carrying the raw node. Either way it returns the shape's fallback so that
// construction can continue.
func Required[T any](r *Resolver, key string, s Shape[T]) T {
	raw, ok := r.resolveRaw(key)
	if !ok {
		r.Fail(key)
		return s.Fallback()
	}
	v, ok := s.TryRaw(raw)
	if !ok {
		r.FailValue(key, raw)
		return s.Fallback()
	}
	return v
}

// OptionalList resolves key into a list of T. Elements that fail the element
// shape are silently dropped; surviving elements keep their original order.
// An absent or non-list raw value yields an empty list. No failure is ever
// recorded.
func OptionalList[T any](r *Resolver, key string, elem Shape[T]) []T {
	raw, ok := r.resolveRaw(key)
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if v, ok := elem.TryRaw(it); ok {
			out = append(out, v)
		}
	}
	return out
}

// RequiredList resolves key into a list of T. Elements are converted in
// order; the first failing element records an invalid-value failure carrying
// the whole raw list and resolution returns an empty list, discarding the
// already-converted elements. An absent key records a missing-key failure and
// a non-list raw value records an invalid-value failure; both yield an empty
// list.
func RequiredList[T any](r *Resolver, key string, elem Shape[T]) []T {
	raw, ok := r.resolveRaw(key)
	if !ok {
		r.Fail(key)
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		r.FailValue(key, raw)
		return nil
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		v, ok := elem.TryRaw(it)
		if !ok {
			r.FailValue(key, raw)
			return nil
		}
		out = append(out, v)
	}
	return out
}

// OptionalMap resolves key into a string-keyed map of V with the same lenient
// semantics as OptionalList: entries whose value fails the shape are dropped
// and an absent or non-document raw value yields an empty map.
func OptionalMap[V any](r *Resolver, key string, elem Shape[V]) map[string]V {
	return OptionalMapKeyed(r, key, identityKey, elem)
}

// RequiredMap resolves key into a string-keyed map of V with the same strict
// semantics as RequiredList.
func RequiredMap[V any](r *Resolver, key string, elem Shape[V]) map[string]V {
	return RequiredMapKeyed(r, key, identityKey, elem)
}

func identityKey(k string) (string, bool) { return k, true }

// OptionalMapKeyed resolves key into a map of V keyed by K. Document keys are
// converted through keyFn; entries whose key or value conversion fails are
// silently dropped. An absent or non-document raw value yields an empty map
// and no failure is ever recorded.
func OptionalMapKeyed[K comparable, V any](r *Resolver, key string, keyFn func(string) (K, bool), elem Shape[V]) map[K]V {
	raw, ok := r.resolveRaw(key)
	if !ok {
		return nil
	}
	sub, ok := asDocument(raw)
	if !ok {
		return nil
	}
	out := make(map[K]V, len(sub))
	for k, it := range sub {
		mk, ok := keyFn(k)
		if !ok {
			continue
		}
		if v, ok := elem.TryRaw(it); ok {
			out[mk] = v
		}
	}
	return out
}

// RequiredMapKeyed resolves key into a map of V keyed by K. The first entry
// whose key or value conversion fails records an invalid-value failure
// carrying the whole raw document and resolution aborts to an empty map,
// exactly as RequiredList does for lists.
func RequiredMapKeyed[K comparable, V any](r *Resolver, key string, keyFn func(string) (K, bool), elem Shape[V]) map[K]V {
	raw, ok := r.resolveRaw(key)
	if !ok {
		r.Fail(key)
		return nil
	}
	sub, ok := asDocument(raw)
	if !ok {
		r.FailValue(key, raw)
		return nil
	}
	out := make(map[K]V, len(sub))
	for k, it := range sub {
		mk, ok := keyFn(k)
		if !ok {
			r.FailValue(key, raw)
			return nil
		}
		v, ok := elem.TryRaw(it)
		if !ok {
			r.FailValue(key, raw)
			return nil
		}
		out[mk] = v
	}
	return out
}

// ModelOf returns a Shape that decodes a nested document into the model T by
// running a full nested decode sharing the resolver's context but an isolated
// failure tracker. A nested decode failure is not propagated in detail:
// conversion simply reports false, which the required variants flatten into a
// single invalid-value failure at the outer key.
//
// The returned shape also reports false when the nesting depth bound is
// exceeded, which keeps hand-built cyclic trees from recursing unboundedly.
func ModelOf[T any, PT DecodablePtr[T]](r *Resolver) Shape[T] {
	return ShapeFunc[T](func(raw any) (T, bool) {
		var zero T
		sub, ok := asDocument(raw)
		if !ok {
			return zero, false
		}
		if r.depth+1 >= r.maxDepth {
			return zero, false
		}
		v, err := decodeWith[T, PT](sub, r.ctx, r.depth+1, r.maxDepth)
		if err != nil {
			return zero, false
		}
		return v, true
	})
}

// OptionalModel resolves key into a nested model T, reporting absence or a
// failed nested decode as ok=false without recording a failure.
func OptionalModel[T any, PT DecodablePtr[T]](r *Resolver, key string) (T, bool) {
	return Optional(r, key, ModelOf[T, PT](r))
}

// RequiredModel resolves key into a nested model T. Absence records a
// missing-key failure; a non-document raw value or a failed nested decode
// records an invalid-value failure at key, discarding the nested failure's
// own key and value.
func RequiredModel[T any, PT DecodablePtr[T]](r *Resolver, key string) T {
	return Required(r, key, ModelOf[T, PT](r))
}

// ContextValue reads the decode context as a C. ok is false when no context
// was supplied or when the supplied context is not a C.
func ContextValue[C any](r *Resolver) (C, bool) {
	c, ok := r.ctx.(C)
	return c, ok
}

// RequireContextValue reads the decode context as a C. A missing context
// records a missing-key failure and an incompatible one records an
// invalid-value failure, both under the reserved ContextKey.
func RequireContextValue[C any](r *Resolver) C {
	if c, ok := ContextValue[C](r); ok {
		return c
	}
	if r.ctx != nil {
		r.FailValue(ContextKey, r.ctx)
	} else {
		r.Fail(ContextKey)
	}
	var zero C
	return zero
}
