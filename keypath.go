package modec

import "strings"

// ResolvePath walks a dot-separated key path through nested documents.
//
// Every component except the last must land on a nested document; hitting a
// scalar or list midway stops the walk and reports absence, not a mismatch,
// even though a value exists at that position. Components match keys by
// exact, case-sensitive string equality and there is no escape mechanism for
// literal dots. A bare key with no dot is a single-component path.
func ResolvePath(d Document, path string) (any, bool) {
	segs := strings.Split(path, ".")
	cur := d
	for _, seg := range segs[:len(segs)-1] {
		raw, ok := cur[seg]
		if !ok {
			return nil, false
		}
		sub, ok := asDocument(raw)
		if !ok {
			return nil, false
		}
		cur = sub
	}
	raw, ok := cur[segs[len(segs)-1]]
	return raw, ok
}
