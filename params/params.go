// Package params holds the named options handed to a method constructor.
// A Set keeps insertion order; a Manager hands out typed values and
// reports options nobody asked for.
package params

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is an ordered collection of name=value options. Names are unique.
type Set struct {
	names  []string
	values []string
}

// New builds a Set from alternating name, value arguments.
func New(pairs ...string) (*Set, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("params: odd number of arguments %d", len(pairs))
	}
	s := &Set{}
	for i := 0; i < len(pairs); i += 2 {
		if err := s.Add(pairs[i], pairs[i+1]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Parse reads the comma-separated form "name=value,name2=value2".
// Whitespace around names and values is ignored; an empty description
// yields an empty Set.
func Parse(desc string) (*Set, error) {
	s := &Set{}
	if strings.TrimSpace(desc) == "" {
		return s, nil
	}
	for _, part := range strings.Split(desc, ",") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("params: %q is not of the form name=value", strings.TrimSpace(part))
		}
		if err := s.Add(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FromYAML reads a flat YAML mapping, keeping document order.
func FromYAML(data []byte) (*Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	s := &Set{}
	if len(doc.Content) == 0 {
		return s, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("params: expected a mapping at line %d", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("params: %s at line %d is not a scalar", key.Value, val.Line)
		}
		if err := s.Add(key.Value, val.Value); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends an option.
func (s *Set) Add(name, value string) error {
	if name == "" {
		return fmt.Errorf("params: empty name")
	}
	if _, ok := s.Get(name); ok {
		return fmt.Errorf("params: duplicate parameter %q", name)
	}
	s.names = append(s.names, name)
	s.values = append(s.values, value)
	return nil
}

// Merge appends every option of other; a name present in both is an error.
func (s *Set) Merge(other *Set) error {
	for _, name := range other.Names() {
		value, _ := other.Get(name)
		if err := s.Add(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value for name.
func (s *Set) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	for i, n := range s.names {
		if n == name {
			return s.values[i], true
		}
	}
	return "", false
}

// Names returns option names in insertion order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Len returns the number of options.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// String renders the Set in the form accepted by Parse.
func (s *Set) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(s.names))
	for i := range s.names {
		parts[i] = s.names[i] + "=" + s.values[i]
	}
	return strings.Join(parts, ",")
}
