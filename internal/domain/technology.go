package domain

import "strings"

// TechnologyDelimiter separates technology identifiers on the wire.
// Every selected identifier is terminated by it, trailing one included.
const TechnologyDelimiter = ","

// TechnologySet is an insertion-ordered set of technology identifiers.
// The delimited-string encoding exists only at the system boundary; in
// memory membership is exact, so one identifier being a substring of
// another can no longer confuse toggle or filter logic.
type TechnologySet struct {
	ids []string
}

// NewTechnologySet returns an empty set.
func NewTechnologySet() *TechnologySet {
	return &TechnologySet{}
}

// ParseTechnologies decodes a delimited technology string. Empty tokens
// produced by the trailing-delimiter convention are dropped.
func ParseTechnologies(s string) *TechnologySet {
	set := NewTechnologySet()
	for _, id := range strings.Split(s, TechnologyDelimiter) {
		if id = strings.TrimSpace(id); id != "" {
			set.Add(id)
		}
	}
	return set
}

func (s *TechnologySet) Has(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Add inserts the identifier unless already present.
func (s *TechnologySet) Add(id string) {
	if id == "" || s.Has(id) {
		return
	}
	s.ids = append(s.ids, id)
}

// Remove deletes the identifier, preserving the order of the rest.
func (s *TechnologySet) Remove(id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// Toggle flips membership of the identifier. Toggling twice restores
// the encoded string exactly when the identifier was the latest added.
func (s *TechnologySet) Toggle(id string) {
	if s.Has(id) {
		s.Remove(id)
		return
	}
	s.Add(id)
}

func (s *TechnologySet) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the identifiers in insertion order.
func (s *TechnologySet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// String encodes the set with the trailing-delimiter convention, e.g.
// "Go,React,".
func (s *TechnologySet) String() string {
	if len(s.ids) == 0 {
		return ""
	}
	var b strings.Builder
	for _, id := range s.ids {
		b.WriteString(id)
		b.WriteString(TechnologyDelimiter)
	}
	return b.String()
}
