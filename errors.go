package modec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karasuda/modec/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingKey      = "missing_key"      // Required key or key-path segment absent or not traversable.
	CodeInvalidValue    = "invalid_value"    // Key present but the raw value failed cast/transform/enum/nested decode.
	CodeInvalidDocument = "invalid_document" // Input bytes could not be parsed into the expected document shape.
)

// DecodeError is the single terminal failure reported by a decode call.
// Exactly one failure is observable per decode; when several fields fail
// independently, only the most recently recorded one surfaces.
type DecodeError struct {
	Code  string // One of the codes listed above.
	Key   string // Key or key path the failure is attributed to (empty for invalid_document).
	Raw   string // Textual form of the offending raw value, when one was present.
	Cause error  // Optional: underlying parser error for invalid_document.
}

func (e *DecodeError) Error() string {
	b := &strings.Builder{}
	b.WriteString(i18n.T(e.Code, map[string]string{"key": e.Key}))
	if e.Key != "" {
		fmt.Fprintf(b, " at %s", e.Key)
	}
	if e.Raw != "" {
		fmt.Fprintf(b, ": got %s", e.Raw)
	}
	if e.Cause != nil {
		fmt.Fprintf(b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// AsDecodeError extracts a *DecodeError from err using errors.As internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	de, ok := AsDecodeError(err)
	return ok && de.Code == code
}

// IsMissingKey reports whether err is a missing_key decode error.
func IsMissingKey(err error) bool { return hasCode(err, CodeMissingKey) }

// IsInvalidValue reports whether err is an invalid_value decode error.
func IsInvalidValue(err error) bool { return hasCode(err, CodeInvalidValue) }

// IsInvalidDocument reports whether err is an invalid_document decode error.
func IsInvalidDocument(err error) bool { return hasCode(err, CodeInvalidDocument) }
