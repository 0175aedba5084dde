// Package jdig provides defensive read access to generic decoded JSON/YAML
// documents: nested traversal by key path, mapping containment checks, and
// lookup of named conditions in resource status objects.
//
// Documents are modelled as an explicit sum of shapes: an ordered mapping (D),
// a sequence (A), or a scalar. Plain map[string]any mappings and []any
// sequences, as produced by stdlib-style decoders, are accepted everywhere the
// ordered types are. All operations are pure and never mutate their inputs, so
// they are safe to call concurrently.
package jdig

// D represents a document, defined as an ordered collection of key-value
// pairs. Each entry in the document is represented by an E.
type D []E

// A represents an array, defined as a slice of values of any type.
type A []any

// E represents a single entry in a document. It consists of a string key and
// an associated value of any type.
type E struct {
	Key   string
	Value any
}

// Index looks up key in v, which must be a mapping (D or map[string]any).
// It reports whether the key was found. A non-mapping v (sequence, scalar or
// nil) yields a *ShapeError; found is false only when v is a mapping that
// lacks the key. This split lets callers decide per call site whether a
// wrong-shape index is an error or just an absence.
func Index(v any, key string) (any, bool, error) {
	switch doc := v.(type) {
	case D:
		for _, e := range doc {
			if e.Key == key {
				return e.Value, true, nil
			}
		}
		return nil, false, nil
	case map[string]any:
		val, ok := doc[key]
		return val, ok, nil
	default:
		return nil, false, &ShapeError{Key: key, Value: v}
	}
}

// entries returns the key-value pairs of a mapping value in iteration order,
// or ok=false when v is not a mapping. For map[string]any the order is the
// map's range order.
func entries(v any) ([]E, bool) {
	switch doc := v.(type) {
	case D:
		return doc, true
	case map[string]any:
		es := make([]E, 0, len(doc))
		for k, val := range doc {
			es = append(es, E{Key: k, Value: val})
		}
		return es, true
	default:
		return nil, false
	}
}

// sequence returns the elements of a sequence value (A or []any), or ok=false
// when v is not a sequence.
func sequence(v any) ([]any, bool) {
	switch arr := v.(type) {
	case A:
		return arr, true
	case []any:
		return arr, true
	default:
		return nil, false
	}
}

// Map deep-converts the ordered document into a map[string]any, converting
// nested D and A values along the way. Key order is lost; with duplicate keys
// the last occurrence wins. Useful for handing documents to map-based
// consumers such as struct decoders.
func (d D) Map() map[string]any {
	m := make(map[string]any, len(d))
	for _, e := range d {
		m[e.Key] = plain(e.Value)
	}
	return m
}

// Slice deep-converts the sequence into a []any, converting nested D and A
// values along the way.
func (a A) Slice() []any {
	s := make([]any, len(a))
	for i, v := range a {
		s[i] = plain(v)
	}
	return s
}

func plain(v any) any {
	switch val := v.(type) {
	case D:
		return val.Map()
	case A:
		return val.Slice()
	default:
		return v
	}
}
