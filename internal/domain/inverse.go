package domain

import "strings"

// InverseRule decides whether a unit expresses the inverse of its table's base
// convention (volume per distance against distance per volume, mass per energy
// against energy per mass). A unit is inverse if its canonical ID is listed in IDs
// or starts with one of Prefixes.
type InverseRule struct {
	IDs      []string
	Prefixes []string
}

// IsInverse reports whether the canonical unit ID is an inverse unit
func (r InverseRule) IsInverse(id string) bool {
	for _, candidate := range r.IDs {
		if candidate == id {
			return true
		}
	}
	for _, prefix := range r.Prefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

// IsZero reports whether the rule matches nothing
func (r InverseRule) IsZero() bool {
	return len(r.IDs) == 0 && len(r.Prefixes) == 0
}
