package modec

// Document is an already-parsed tree of key to node mappings. Node values are
// one of: bool, string, json.Number (or int/int64/float64 in hand-built
// trees), []any, or a nested document (Document or map[string]any).
//
// Documents are treated as immutable by the engine: no operation mutates the
// tree, so a Document may be shared across concurrent decode calls.
type Document map[string]any

// Lookup resolves a dot-separated key path against the document and reports
// whether a node exists at that path. See ResolvePath for the path semantics.
func (d Document) Lookup(path string) (any, bool) {
	return ResolvePath(d, path)
}

// asDocument reports raw as a nested document. Both Document and the plain
// map form produced by the parsers are accepted.
func asDocument(raw any) (Document, bool) {
	switch m := raw.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	default:
		return nil, false
	}
}
