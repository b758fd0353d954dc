package types

import (
	"fmt"
	"sort"
	"strings"
)

// InputData holds the free-text fields collected from the user for one run.
// Keys are service-specific field names (see ServiceType.RequiredInputKeys).
type InputData map[string]string

// Get returns the value for a field, or the empty string when the field is
// absent. Missing fields are never an error in the core.
func (d InputData) Get(key string) string {
	return d[key]
}

// Clone returns an independent copy so a run cannot observe caller mutations.
func (d InputData) Clone() InputData {
	out := make(InputData, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Summary renders the full input as "key: value" lines in stable key order.
// Used by the generic fallback templates, which have no named fields to bind.
func (d InputData) Summary() string {
	if len(d) == 0 {
		return ""
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%s: %s\n", k, d[k]))
	}
	return sb.String()
}
