package jdig

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// FindCondition returns the first entry in obj's status.conditions whose
// "type" field equals conditionType, or nil when no entry matches. Entries are
// scanned in document order and the scan stops at the first match.
//
// The conditions list is deliberately not guarded: when status or conditions
// is absent, Get yields nil and treating it as a sequence fails. Callers are
// expected to pass objects known to carry a conditions list; a genuinely
// missing list surfaces as an error rather than a quiet nil. An entry that is
// not a mapping, or that lacks a "type" key, is likewise an error.
func FindCondition(obj any, conditionType string) (any, error) {
	conditions, err := Get(obj, "status", "conditions")
	if err != nil {
		return nil, fmt.Errorf("status.conditions: %w", err)
	}
	seq, ok := sequence(conditions)
	if !ok {
		return nil, fmt.Errorf("status.conditions: expected a sequence, got %T", conditions)
	}
	for i, entry := range seq {
		typ, found, err := Index(entry, "type")
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		if !found {
			return nil, fmt.Errorf("condition %d: missing type field", i)
		}
		if typ == conditionType {
			return entry, nil
		}
	}
	return nil, nil
}

// Condition is the common shape of an entry in a resource's status condition
// list.
type Condition struct {
	Type               string    `mapstructure:"type"`
	Status             string    `mapstructure:"status"`
	Reason             string    `mapstructure:"reason"`
	Message            string    `mapstructure:"message"`
	LastTransitionTime time.Time `mapstructure:"lastTransitionTime"`
}

// DecodeCondition decodes a raw condition entry (D or map[string]any) into a
// Condition. Timestamps in RFC3339 form are parsed into time.Time. Fields
// absent from the entry are left at their zero values; fields in the entry
// with no counterpart in Condition are ignored.
func DecodeCondition(entry any) (*Condition, error) {
	var m map[string]any
	switch v := entry.(type) {
	case D:
		m = v.Map()
	case map[string]any:
		m = v
	default:
		return nil, fmt.Errorf("condition: expected a mapping, got %T", entry)
	}

	var cond Condition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     &cond,
	})
	if err != nil {
		return nil, fmt.Errorf("condition decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("decode condition: %w", err)
	}
	return &cond, nil
}

// FindConditionOf combines FindCondition and DecodeCondition, returning the
// first matching condition in typed form, or nil when no entry matches.
func FindConditionOf(obj any, conditionType string) (*Condition, error) {
	entry, err := FindCondition(obj, conditionType)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return DecodeCondition(entry)
}
