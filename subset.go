package jdig

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// IsSubset reports whether every key-value pair of subset appears in superset
// with a structurally equal value. Values are compared as a whole: a nested
// mapping must match exactly, it is not re-subsetted. An empty subset is
// vacuously contained in anything.
//
// A missing key or an unequal value is a plain false. A subset that is not a
// mapping, or a superset that cannot be indexed, is an error; only the
// missing-key case is soft.
func IsSubset(subset, superset any) (bool, error) {
	pairs, ok := entries(subset)
	if !ok {
		return false, fmt.Errorf("subset: expected a mapping, got %T", subset)
	}
	for _, e := range pairs {
		got, found, err := Index(superset, e.Key)
		if err != nil {
			return false, fmt.Errorf("superset: %w", err)
		}
		if !found || !cmp.Equal(e.Value, got) {
			return false, nil
		}
	}
	return true, nil
}
