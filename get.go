package jdig

import "fmt"

// ShapeError reports an attempt to index a value that is not a mapping, such
// as a sequence, a scalar, or nil.
type ShapeError struct {
	Key   string // the key whose lookup failed
	Value any    // the non-mapping value that was indexed
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("index %q: cannot descend into %T", e.Key, e.Value)
}

// Get traverses root by indexing with each key in order and returns the value
// reached. A key missing from a mapping along the way aborts the traversal and
// returns nil with no error; indexing a non-mapping value returns a
// *ShapeError. With zero keys the root is returned unchanged.
func Get(root any, keys ...string) (any, error) {
	return GetDefault(root, nil, keys...)
}

// GetDefault is Get with an explicit value to return when a key is missing.
// Only a missing key yields def; a wrong-shape index still fails with a
// *ShapeError rather than being converted to the default, since callers may
// rely on that failure surfacing.
func GetDefault(root, def any, keys ...string) (any, error) {
	cur := root
	for _, key := range keys {
		next, found, err := Index(cur, key)
		if err != nil {
			return nil, err
		}
		if !found {
			return def, nil
		}
		cur = next
	}
	return cur, nil
}
