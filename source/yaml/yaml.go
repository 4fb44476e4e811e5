// Package yaml provides a modec.Source backed by gopkg.in/yaml.v3.
//
// YAML has no streaming token driver here; documents are parsed eagerly into
// the raw tree form the engine expects (map[string]any / []any / scalars).
package yaml

import (
	"io"

	yml "gopkg.in/yaml.v3"

	modec "github.com/karasuda/modec"
)

// Bytes wraps a byte slice as a YAML Source.
func Bytes(b []byte) modec.Source { return bytesSource(b) }

// Reader wraps an io.Reader as a YAML Source.
func Reader(r io.Reader) modec.Source { return readerSource{r: r} }

type bytesSource []byte

func (s bytesSource) Parse() (any, error) {
	var v any
	if err := yml.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s bytesSource) Name() string { return "yaml" }

type readerSource struct{ r io.Reader }

func (s readerSource) Parse() (any, error) {
	var v any
	if err := yml.NewDecoder(s.r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s readerSource) Name() string { return "yaml" }
