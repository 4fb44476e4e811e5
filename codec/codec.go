// Package codec provides ready-made transformed shapes for common wire
// representations: RFC3339 timestamps, durations, URLs, and base64 payloads.
package codec

import (
	"encoding/base64"
	"net/url"
	"time"

	modec "github.com/karasuda/modec"
	"github.com/karasuda/modec/shape"
)

// TimeRFC3339 returns a shape converting RFC3339 strings into time.Time.
// RFC3339Nano inputs are accepted as well.
func TimeRFC3339() modec.Shape[time.Time] {
	return shape.Transformed(shape.String(), func(s string) (time.Time, bool) {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, true
		}
		t, err := time.Parse(time.RFC3339, s)
		return t, err == nil
	})
}

// Duration returns a shape converting Go duration strings ("1h30m") into
// time.Duration.
func Duration() modec.Shape[time.Duration] {
	return shape.Transformed(shape.String(), func(s string) (time.Duration, bool) {
		d, err := time.ParseDuration(s)
		return d, err == nil
	})
}

// URL returns a shape converting absolute URL strings into *url.URL.
// Relative references are mismatches.
func URL() modec.Shape[*url.URL] {
	return shape.Transformed(shape.String(), func(s string) (*url.URL, bool) {
		u, err := url.Parse(s)
		if err != nil || !u.IsAbs() {
			return nil, false
		}
		return u, true
	})
}

// Base64 returns a shape converting standard-encoding base64 strings into
// byte slices.
func Base64() modec.Shape[[]byte] {
	return shape.Transformed(shape.String(), func(s string) ([]byte, bool) {
		b, err := base64.StdEncoding.DecodeString(s)
		return b, err == nil
	})
}
