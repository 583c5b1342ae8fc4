package skill

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// Set holds loaded skills keyed by name.
type Set struct {
	skills map[string]*Skill
}

// NewSet creates an empty skill set.
func NewSet() *Set {
	return &Set{skills: make(map[string]*Skill)}
}

// Add inserts a skill, rejecting duplicate names.
func (s *Set) Add(sk *Skill) error {
	if sk == nil {
		return fmt.Errorf("skill: skill is required")
	}
	if _, exists := s.skills[sk.Name]; exists {
		return fmt.Errorf("skill: %q already loaded", sk.Name)
	}
	s.skills[sk.Name] = sk
	return nil
}

// Get retrieves a skill by name.
func (s *Set) Get(name string) (*Skill, error) {
	sk, ok := s.skills[name]
	if !ok {
		return nil, fmt.Errorf("skill: %q not found", name)
	}
	return sk, nil
}

// Has reports whether a skill is loaded.
func (s *Set) Has(name string) bool {
	_, ok := s.skills[name]
	return ok
}

// Names returns the loaded skill names, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.skills))
	for name := range s.skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the loaded skills ordered by name.
func (s *Set) All() []*Skill {
	all := make([]*Skill, 0, len(s.skills))
	for _, name := range s.Names() {
		all = append(all, s.skills[name])
	}
	return all
}

// Len reports the number of loaded skills.
func (s *Set) Len() int {
	return len(s.skills)
}

// LoadFS walks root within fsys and loads every SKILL.md found. Directory
// layout is <root>/<skill-name>/SKILL.md; duplicate names fail the load.
func LoadFS(fsys fs.FS, root string) (*Set, error) {
	set := NewSet()

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Base(p) != FileName {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("skill: read %s: %w", p, err)
		}

		sk, err := Parse(data, p)
		if err != nil {
			return err
		}
		return set.Add(sk)
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}
