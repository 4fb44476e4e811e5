// Package toml provides a modec.Source backed by pelletier/go-toml/v2.
//
// TOML input is always a table at the root, so this source never yields a
// document list.
package toml

import (
	"io"

	tml "github.com/pelletier/go-toml/v2"

	modec "github.com/karasuda/modec"
)

// Bytes wraps a byte slice as a TOML Source.
func Bytes(b []byte) modec.Source { return bytesSource(b) }

// Reader wraps an io.Reader as a TOML Source.
func Reader(r io.Reader) modec.Source { return readerSource{r: r} }

type bytesSource []byte

func (s bytesSource) Parse() (any, error) {
	var m map[string]any
	if err := tml.Unmarshal([]byte(s), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s bytesSource) Name() string { return "toml" }

type readerSource struct{ r io.Reader }

func (s readerSource) Parse() (any, error) {
	var m map[string]any
	if err := tml.NewDecoder(s.r).Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s readerSource) Name() string { return "toml" }
