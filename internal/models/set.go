package models

import "sort"

// Set is an insertion-ordered collection of unique strings.
// The zero value is an empty set ready to use.
type Set []string

func NewSet(items ...string) Set {
	var s Set
	for _, item := range items {
		s = s.Add(item)
	}
	return s
}

// Add returns the set with item appended when it is not already present.
// Empty strings are ignored.
func (s Set) Add(item string) Set {
	if item == "" || s.Contains(item) {
		return s
	}
	return append(s, item)
}

func (s Set) Contains(item string) bool {
	for _, existing := range s {
		if existing == item {
			return true
		}
	}
	return false
}

// Union returns a new set holding every element of s followed by the
// elements of other that s did not already contain. Neither input is modified.
func (s Set) Union(other Set) Set {
	out := make(Set, 0, len(s)+len(other))
	out = append(out, s...)
	for _, item := range other {
		out = out.Add(item)
	}
	return out
}

// Equal compares two sets ignoring order.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for _, item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether any of the given items is in the set.
func (s Set) ContainsAny(items ...string) bool {
	for _, item := range items {
		if s.Contains(item) {
			return true
		}
	}
	return false
}

// Sorted returns a lexically sorted copy.
func (s Set) Sorted() []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}

func (s Set) Len() int {
	return len(s)
}
