package containers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// set of strings. Encoded in JSON as a sorted array
type StringSet struct {
	elements map[string]struct{}
}

// returns a new set holding the given elements
func NewStringSet(elements ...string) *StringSet {
	s := &StringSet{make(map[string]struct{})}
	s.Add(elements...)
	return s
}

func (s *StringSet) Add(elements ...string) {
	for _, element := range elements {
		s.elements[element] = struct{}{}
	}
}

func (s *StringSet) Remove(elements ...string) {
	for _, element := range elements {
		delete(s.elements, element)
	}
}

func (s *StringSet) Contains(element string) bool {
	if s == nil {
		return false
	}
	_, found := s.elements[element]
	return found
}

// returns the elements of the set, sorted
func (s *StringSet) Slice() []string {
	elements := make([]string, 0, len(s.elements))
	for element := range s.elements {
		elements = append(elements, element)
	}
	sort.Strings(elements)
	return elements
}

func (s *StringSet) NumberOfElements() int {
	if s == nil {
		return 0
	}
	return len(s.elements)
}

func (s *StringSet) String() string {
	return fmt.Sprintf("{%s}", strings.Join(s.Slice(), ","))
}

func (s *StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var elements []string
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	s.elements = make(map[string]struct{})
	s.Add(elements...)
	return nil
}
