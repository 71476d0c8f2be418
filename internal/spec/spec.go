package spec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Type is the expected type declared for a variable.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeFloat   Type = "float"
	TypeBoolean Type = "boolean"
)

// ValidTypes lists the recognized type names in a stable order for error messages.
var ValidTypes = []Type{TypeString, TypeInteger, TypeFloat, TypeBoolean}

var (
	ErrEmptyName   = errors.New("empty variable name")
	ErrUnknownType = errors.New("unknown type")
)

// Entry is one declared variable.
type Entry struct {
	Name string
	Type Type
}

// Spec is an ordered set of declared variables. Declaration order is
// preserved for deterministic reporting; a duplicate name keeps the
// position of its first occurrence and takes the last declared type.
type Spec struct {
	entries []Entry
	index   map[string]int
}

func (s *Spec) add(name string, t Type) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[name]; ok {
		s.entries[i].Type = t
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{Name: name, Type: t})
}

// Entries returns the declared variables in declaration order.
func (s *Spec) Entries() []Entry {
	return s.entries
}

// Len returns the number of declared variables.
func (s *Spec) Len() int {
	return len(s.entries)
}

// Load reads and parses the specification file at path. A `.toml`
// extension selects the TOML shape; everything else goes through Parse.
func Load(path string) (*Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specification file %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path, content)
	}
	return Parse(path, content)
}

// Parse parses specification content. The primary shape is a YAML mapping
// of `NAME: type`. Content that is not a YAML mapping (bare names, mixed
// lines) falls back to the plain-line shape, so both historical spec
// layouts keep working.
func Parse(path string, content []byte) (*Spec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return parseLines(path, content)
	}
	if len(doc.Content) == 0 {
		// Only comments or whitespace: declares nothing.
		return &Spec{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return parseLines(path, content)
	}

	s := &Spec{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		name := strings.TrimSpace(keyNode.Value)
		if name == "" {
			return nil, fmt.Errorf("%s: line %d: %w", path, keyNode.Line, ErrEmptyName)
		}
		if valNode.Kind != yaml.ScalarNode || (valNode.Tag != "!!str" && valNode.Tag != "!!null") {
			return nil, fmt.Errorf("%s: type for variable %q must be a string", path, name)
		}
		t, err := parseType(valNode.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: variable %q: %w", path, name, err)
		}
		s.add(name, t)
	}
	return s, nil
}

func parseLines(path string, content []byte) (*Spec, error) {
	s := &Spec{}
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, typeStr, hasType := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%s: line %d: %w", path, i+1, ErrEmptyName)
		}
		t := TypeString
		if hasType {
			var err error
			if t, err = parseType(typeStr); err != nil {
				return nil, fmt.Errorf("%s: variable %q: %w", path, name, err)
			}
		}
		s.add(name, t)
	}
	return s, nil
}

func parseTOML(path string, content []byte) (*Spec, error) {
	var table map[string]any
	md, err := toml.Decode(string(content), &table)
	if err != nil {
		return nil, fmt.Errorf("parse specification file %s: %w", path, err)
	}
	s := &Spec{}
	// MetaData.Keys preserves declaration order.
	for _, key := range md.Keys() {
		if len(key) != 1 {
			return nil, fmt.Errorf("%s: specification must be a flat table of variable = type", path)
		}
		name := strings.TrimSpace(key[0])
		if name == "" {
			return nil, fmt.Errorf("%s: %w", path, ErrEmptyName)
		}
		raw, ok := table[key[0]].(string)
		if !ok {
			return nil, fmt.Errorf("%s: type for variable %q must be a string", path, name)
		}
		t, err := parseType(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: variable %q: %w", path, name, err)
		}
		s.add(name, t)
	}
	return s, nil
}

// parseType normalizes a declared type. An omitted type defaults to string.
func parseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case "":
		return TypeString, nil
	case TypeString, TypeInteger, TypeFloat, TypeBoolean:
		return t, nil
	}
	names := make([]string, len(ValidTypes))
	for i, v := range ValidTypes {
		names[i] = string(v)
	}
	return "", fmt.Errorf("%w %q (valid types: %s)", ErrUnknownType, strings.TrimSpace(raw), strings.Join(names, ", "))
}
