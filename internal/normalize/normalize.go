// Package normalize resolves free-text skill names to canonical catalog
// skills. Resolution is pure: the same input against the same catalog always
// yields the same outcome.
package normalize

import (
	"strings"

	"github.com/jonathan/match-engine/internal/catalog"
)

// similarityThreshold is the minimum normalized similarity for a fuzzy hit.
const similarityThreshold = 0.75

// maxEditDistance bounds the fuzzy search.
const maxEditDistance = 2

// Resolution is the outcome of normalizing one raw skill string.
// When Resolved is false the other fields are zero except Folded, which the
// caller can use as a stable identifier for the unresolved text.
type Resolution struct {
	SkillID    string
	Name       string
	Similarity float64
	Folded     string
	Resolved   bool
}

// Normalizer maps raw skill text onto a catalog.
type Normalizer struct {
	cat     *catalog.Catalog
	exact   map[string]string // folded name or alias -> skill ID
	entries []indexEntry      // catalog order, for deterministic fuzzy ties
}

type indexEntry struct {
	folded  string
	tokens  []string
	skillID string
}

// New builds a Normalizer over the given catalog. The index covers every
// canonical name and alias; the catalog's file order breaks fuzzy ties.
func New(cat *catalog.Catalog) *Normalizer {
	n := &Normalizer{
		cat:   cat,
		exact: make(map[string]string),
	}
	for _, s := range cat.Skills() {
		n.index(s.Name, s.ID)
		for _, alias := range s.Aliases {
			n.index(alias, s.ID)
		}
	}
	return n
}

func (n *Normalizer) index(text, skillID string) {
	folded := Fold(text)
	if folded == "" {
		return
	}
	if _, taken := n.exact[folded]; !taken {
		n.exact[folded] = skillID
	}
	n.entries = append(n.entries, indexEntry{
		folded:  folded,
		tokens:  strings.Fields(folded),
		skillID: skillID,
	})
}

// Fold lowercases s and strips punctuation and whitespace variants, keeping
// '+' and '#' so names like "C++" and "C#" survive. Tokens are rejoined with
// single spaces.
func Fold(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#':
			b.WriteRune(r)
		case r > 127:
			// Non-ASCII letters pass through untouched.
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Normalize resolves raw skill text to a canonical skill. Lookup order:
// exact match on folded names and aliases, then whole-token containment for
// multi-word text, then bounded fuzzy match (edit distance <= 2 and
// similarity >= 0.75). Anything else is unresolved.
func (n *Normalizer) Normalize(raw string) Resolution {
	folded := Fold(raw)
	if folded == "" {
		return Resolution{Folded: folded}
	}

	if id, ok := n.exact[folded]; ok {
		return n.resolved(id, 1.0, folded)
	}

	if res, ok := n.byContainment(folded); ok {
		return res
	}

	if res, ok := n.byEditDistance(folded); ok {
		return res
	}

	return Resolution{Folded: folded}
}

// byContainment matches a catalog entry appearing as a whole-token run inside
// multi-word text ("React.js framework" contains "react js"). The longest
// contained entry wins; catalog order breaks length ties.
func (n *Normalizer) byContainment(folded string) (Resolution, bool) {
	tokens := strings.Fields(folded)
	if len(tokens) < 2 {
		return Resolution{}, false
	}

	best := -1
	for i, e := range n.entries {
		if !containsTokenRun(tokens, e.tokens) {
			continue
		}
		if best == -1 || len(e.folded) > len(n.entries[best].folded) {
			best = i
		}
	}
	if best == -1 {
		return Resolution{}, false
	}

	e := n.entries[best]
	sim := float64(len(e.folded)) / float64(len(folded))
	if sim > 1 {
		sim = 1
	}
	return n.resolved(e.skillID, sim, folded), true
}

func (n *Normalizer) byEditDistance(folded string) (Resolution, bool) {
	best := -1
	bestSim := 0.0
	for i, e := range n.entries {
		if abs(len(e.folded)-len(folded)) > maxEditDistance {
			continue
		}
		dist := editDistance(folded, e.folded)
		if dist > maxEditDistance {
			continue
		}
		longest := max(len(folded), len(e.folded))
		if longest == 0 {
			continue
		}
		sim := 1.0 - float64(dist)/float64(longest)
		if sim < similarityThreshold {
			continue
		}
		if sim > bestSim {
			best, bestSim = i, sim
		}
	}
	if best == -1 {
		return Resolution{}, false
	}
	return n.resolved(n.entries[best].skillID, bestSim, folded), true
}

func (n *Normalizer) resolved(skillID string, sim float64, folded string) Resolution {
	s, _ := n.cat.Skill(skillID)
	return Resolution{
		SkillID:    skillID,
		Name:       s.Name,
		Similarity: sim,
		Folded:     folded,
		Resolved:   true,
	}
}

// containsTokenRun reports whether needle appears in haystack as a
// contiguous run of whole tokens.
func containsTokenRun(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
