package catalog

import (
	"github.com/ludotrove/catalog/internal/validation"
)

// Payload is a decoded JSON request body. Key presence is significant: on
// update an absent key leaves the field untouched while an explicit null
// clears it, so payloads are kept as raw maps instead of typed structs.
type Payload map[string]any

func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Payload) Get(key string) any { return p[key] }

// Missing returns the fields that are absent or null, in the given order.
func (p Payload) Missing(fields ...string) []string {
	var missing []string
	for _, f := range fields {
		if v, ok := p[f]; !ok || v == nil {
			missing = append(missing, f)
		}
	}
	return missing
}

// Float extracts an optional numeric field. Absent or null yields nil;
// any other non-number value is a validation failure.
func (p Payload) Float(key, field string) (*float64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil, validation.Errorf(field, "must be a number")
	}
	return &f, nil
}
