package modec

import (
	"io"
	"sync"

	eng "github.com/karasuda/modec/internal/engine"
	jsonsrc "github.com/karasuda/modec/source/json"
)

// Source abstracts over polymorphic byte inputs. Parse returns the raw parsed
// tree: a document (map form), a list of documents, or a scalar. Sources in
// source/yaml and source/toml parse eagerly; JSON sources stream tokens
// through the internal engine.
type Source interface {
	Parse() (any, error)
	Name() string
}

// JSONDriver converts JSON input into a Source via a pluggable SPI. The
// default implementation is backed by goccy/go-json and may be swapped with
// SetJSONDriver.
type JSONDriver interface {
	NewBytes(b []byte) Source
	NewReader(r io.Reader) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default goccy/go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps the goccy/go-json token source.
type defaultJSONDriver struct{}

func (defaultJSONDriver) NewBytes(b []byte) Source {
	return SourceFromEngine(jsonsrc.NewBytes(b), "go-json")
}
func (defaultJSONDriver) NewReader(r io.Reader) Source {
	return SourceFromEngine(jsonsrc.NewReader(r), "go-json")
}
func (defaultJSONDriver) Name() string { return "go-json" }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// SourceFromEngine wraps an engine.TokenSource as a Source. Custom drivers use
// this to plug their tokenizer into the tree-building engine.
func SourceFromEngine(inner eng.TokenSource, name string) Source {
	return &engineSource{inner: inner, name: name}
}

type engineSource struct {
	inner eng.TokenSource
	name  string
}

func (s *engineSource) Parse() (any, error) { return eng.DecodeValueFromSource(s.inner) }
func (s *engineSource) Name() string        { return s.name }

// ---- Source -> Document mapping used by the decode entry points ----

func invalidDocument(cause error, raw any) error {
	de := &DecodeError{Code: CodeInvalidDocument, Cause: cause}
	if raw != nil {
		de.Raw = describeRaw(raw)
	}
	return de
}

func documentFromSource(src Source, maxDepth int) (Document, error) {
	raw, err := src.Parse()
	if err != nil {
		return nil, invalidDocument(err, nil)
	}
	if err := eng.CheckDepth(raw, maxDepth); err != nil {
		return nil, invalidDocument(err, nil)
	}
	doc, ok := asDocument(raw)
	if !ok {
		return nil, invalidDocument(nil, raw)
	}
	return doc, nil
}

func documentsFromSource(src Source, maxDepth int) ([]Document, error) {
	raw, err := src.Parse()
	if err != nil {
		return nil, invalidDocument(err, nil)
	}
	if err := eng.CheckDepth(raw, maxDepth); err != nil {
		return nil, invalidDocument(err, nil)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, invalidDocument(nil, raw)
	}
	docs := make([]Document, 0, len(items))
	for _, it := range items {
		doc, ok := asDocument(it)
		if !ok {
			return nil, invalidDocument(nil, it)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
