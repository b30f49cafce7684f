package office

import "strings"

// SearchCriteria is rebuilt from user input on every change.
// The zero value (and MinCapacity == 1) imposes no filtering.
type SearchCriteria struct {
	Type          Type
	LocationQuery string
	MinCapacity   int
}

func (c SearchCriteria) typeActive() bool {
	return c.Type != "" && c.Type != TypeAll
}

func (c SearchCriteria) normalizedQuery() string {
	return strings.ToLower(strings.TrimSpace(c.LocationQuery))
}

func (c SearchCriteria) capacityActive() bool {
	return c.MinCapacity > 1
}

// IsEmpty reports whether no predicate is active.
func (c SearchCriteria) IsEmpty() bool {
	return !c.typeActive() && c.normalizedQuery() == "" && !c.capacityActive()
}

// Matches evaluates every active predicate against o.
func (c SearchCriteria) Matches(o *Office) bool {
	return c.matches(o, c.normalizedQuery())
}

func (c SearchCriteria) matches(o *Office, query string) bool {
	if c.typeActive() && o.Type() != c.Type {
		return false
	}
	if query != "" &&
		!strings.Contains(strings.ToLower(o.Location()), query) &&
		!strings.Contains(strings.ToLower(o.Address()), query) {
		return false
	}
	if c.capacityActive() && o.Capacity() < c.MinCapacity {
		return false
	}
	return true
}

// Filter returns the offices matching c in input order.
// The input slice is never modified; with no active predicate a copy of it is returned.
func Filter(offices []*Office, c SearchCriteria) []*Office {
	out := make([]*Office, 0, len(offices))
	if c.IsEmpty() {
		return append(out, offices...)
	}

	query := c.normalizedQuery()
	for _, o := range offices {
		if c.matches(o, query) {
			out = append(out, o)
		}
	}
	return out
}
