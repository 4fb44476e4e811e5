package engine

import "errors"

// ErrMaxDepth reports that a parsed tree nests deeper than the configured
// bound.
var ErrMaxDepth = errors.New("max depth exceeded")

// CheckDepth walks a raw document tree and enforces the nesting depth bound.
// Parser-produced trees are acyclic so the walk terminates; for hand-built
// trees the bound itself guarantees termination.
func CheckDepth(v any, maxDepth int) error {
	if maxDepth <= 0 {
		return nil
	}
	return checkDepth(v, 0, maxDepth)
}

func checkDepth(v any, depth, maxDepth int) error {
	if depth > maxDepth {
		return ErrMaxDepth
	}
	switch node := v.(type) {
	case map[string]any:
		for _, sub := range node {
			if err := checkDepth(sub, depth+1, maxDepth); err != nil {
				return err
			}
		}
	case []any:
		for _, sub := range node {
			if err := checkDepth(sub, depth+1, maxDepth); err != nil {
				return err
			}
		}
	}
	return nil
}
