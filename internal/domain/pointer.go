package domain

import (
	"strconv"
	"strings"
)

// ResolvePointer walks a slash-delimited pointer path into a decoded JSON
// value. An empty path or "/" addresses the root. Segments are matched
// literally; ~0/~1 escapes are not decoded, which keeps paths byte-compatible
// with the engine's keyword locations.
func ResolvePointer(root any, path string) (any, bool) {
	if path == "" || path == "/" {
		return root, true
	}

	current := root
	for _, segment := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		switch node := current.(type) {
		case map[string]any:
			child, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = child
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}

// ParentPointer strips the final segment from a pointer path. The parent of a
// single-segment path is the root ("").
func ParentPointer(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
