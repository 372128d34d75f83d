package workflow

import "strings"

// Separator joins tool names when a sequence is serialized for output.
// It never appears inside a tool name.
const Separator = " -> "

// Sequence is the ordered list of tool names extracted from a single
// transcript. It is derived once and never mutated afterwards.
type Sequence []string

// Count returns the number of exact-name matches in the sequence.
func (s Sequence) Count(tool string) int {
	n := 0
	for _, name := range s {
		if name == tool {
			n++
		}
	}
	return n
}

// Contains reports whether the tool was called at least once.
func (s Sequence) Contains(tool string) bool {
	return s.IndexOf(tool) >= 0
}

// IndexOf returns the position of the first call to the tool, or -1 if the
// tool was never called. Comparing first-occurrence indexes is how call
// order is checked; it is robust to tool names that are substrings of each
// other, unlike matching offsets in the joined form.
func (s Sequence) IndexOf(tool string) int {
	for i, name := range s {
		if name == tool {
			return i
		}
	}
	return -1
}

// ContainsAll reports whether every given tool was called at least once.
func (s Sequence) ContainsAll(tools ...string) bool {
	for _, tool := range tools {
		if !s.Contains(tool) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one of the given tools was called.
func (s Sequence) ContainsAny(tools ...string) bool {
	for _, tool := range tools {
		if s.Contains(tool) {
			return true
		}
	}
	return false
}

// Join serializes the sequence with the fixed separator.
func (s Sequence) Join() string {
	return strings.Join(s, Separator)
}

// ParseSequence splits a serialized sequence back into its tool names.
// Joining and re-parsing is lossless for any sequence of tool names.
func ParseSequence(serialized string) Sequence {
	if serialized == "" {
		return Sequence{}
	}
	return Sequence(strings.Split(serialized, Separator))
}
