package emitter

import "strings"

// orderedSet keeps the first-insertion order of distinct names.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

// add reports whether name was inserted. Blank names are ignored.
func (s *orderedSet) add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	s.items = append(s.items, name)
	return true
}

func (s *orderedSet) len() int {
	return len(s.items)
}

func (s *orderedSet) values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *orderedSet) clear() {
	s.items = nil
	s.seen = make(map[string]struct{})
}
