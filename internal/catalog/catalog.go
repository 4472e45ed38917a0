// Package catalog holds the static skill reference data: canonical skills
// with their aliases, and the adjacency table of substitutable skills.
// A Catalog is built once at startup and is read-only afterwards, so it is
// safe to share across concurrent evaluations without locking.
package catalog

import (
	"fmt"
)

// Skill is one canonical catalog entry.
type Skill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases,omitempty"`
}

// Catalog is an immutable set of canonical skills plus the adjacency table.
type Catalog struct {
	skills    []Skill
	byID      map[string]int
	adjacency map[string][]string
}

// New builds a Catalog from skill entries and an adjacency table.
// Skill IDs must be unique; adjacency keys and values must reference known
// skill IDs, and a skill must not list itself as adjacent.
func New(skills []Skill, adjacency map[string][]string) (*Catalog, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("catalog has no skills")
	}

	byID := make(map[string]int, len(skills))
	for i, s := range skills {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("catalog skill at index %d missing id or name", i)
		}
		if _, exists := byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog skill id %q", s.ID)
		}
		byID[s.ID] = i
	}

	adj := make(map[string][]string, len(adjacency))
	for id, neighbors := range adjacency {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("adjacency key %q is not a catalog skill", id)
		}
		kept := make([]string, 0, len(neighbors))
		for _, n := range neighbors {
			if n == id {
				return nil, fmt.Errorf("skill %q lists itself as adjacent", id)
			}
			if _, ok := byID[n]; !ok {
				return nil, fmt.Errorf("adjacency for %q references unknown skill %q", id, n)
			}
			kept = append(kept, n)
		}
		adj[id] = kept
	}

	// Defensive copy so callers cannot mutate the catalog afterwards.
	own := make([]Skill, len(skills))
	copy(own, skills)

	return &Catalog{skills: own, byID: byID, adjacency: adj}, nil
}

// Skill returns the catalog entry for id.
func (c *Catalog) Skill(id string) (Skill, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Skill{}, false
	}
	return c.skills[i], true
}

// Skills returns all catalog entries in catalog file order.
func (c *Catalog) Skills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// Adjacent returns the substitutable skills for id, best substitute first.
// Returns nil when the skill has no adjacency entry.
func (c *Catalog) Adjacent(id string) []string {
	neighbors := c.adjacency[id]
	if len(neighbors) == 0 {
		return nil
	}
	out := make([]string, len(neighbors))
	copy(out, neighbors)
	return out
}

// Len returns the number of canonical skills.
func (c *Catalog) Len() int {
	return len(c.skills)
}
