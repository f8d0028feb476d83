package tagging

import (
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
)

// CategoryNode is one node of the travel taxonomy tree. Keywords are the
// terms whose presence in text counts as evidence for the node.
type CategoryNode struct {
	Name     string
	Keywords []string
	Children []*CategoryNode
}

// CategoryMatch is one taxonomy node scored against a piece of text.
type CategoryMatch struct {
	Category domain.ContentCategory
	Path     []string
	Score    float64
	Matched  []string
}

// Taxonomy is the static travel category tree with an Aho-Corasick matcher
// over every node keyword, so scoring a text against all nodes is a single
// pass plus a boundary check per candidate.
type Taxonomy struct {
	roots   []*CategoryNode
	nodes   []*flatNode
	matcher *ahocorasick.Matcher

	// keyword list in matcher order, and keyword -> owning nodes.
	keywords  []string
	kwToNodes map[string][]*flatNode
}

type flatNode struct {
	path     []string
	category domain.ContentCategory
	keywords []string
}

// NewTaxonomy builds the matcher over the static tree.
func NewTaxonomy() *Taxonomy {
	t := &Taxonomy{
		roots:     taxonomyTree(),
		kwToNodes: make(map[string][]*flatNode),
	}
	for _, root := range t.roots {
		t.flatten(root, nil)
	}

	seen := make(map[string]bool)
	for _, node := range t.nodes {
		for _, kw := range node.keywords {
			t.kwToNodes[kw] = append(t.kwToNodes[kw], node)
			if !seen[kw] {
				seen[kw] = true
				t.keywords = append(t.keywords, kw)
			}
		}
	}
	t.matcher = ahocorasick.NewStringMatcher(t.keywords)
	return t
}

func (t *Taxonomy) flatten(node *CategoryNode, parent []string) {
	path := append(append([]string{}, parent...), node.Name)
	t.nodes = append(t.nodes, &flatNode{
		path:     path,
		category: domain.ContentCategory(path[0]),
		keywords: node.Keywords,
	})
	for _, child := range node.Children {
		t.flatten(child, path)
	}
}

// ParentCategories returns the top-level categories in tree order.
func (t *Taxonomy) ParentCategories() []domain.ContentCategory {
	categories := make([]domain.ContentCategory, 0, len(t.roots))
	for _, root := range t.roots {
		categories = append(categories, domain.ContentCategory(root.Name))
	}
	return categories
}

// CategoryPath returns the dotted path of the first node with the given
// name, or nil when no node matches.
func (t *Taxonomy) CategoryPath(name string) []string {
	for _, node := range t.nodes {
		if node.path[len(node.path)-1] == name {
			return node.path
		}
	}
	return nil
}

// CategoryKeywords returns the union of a node's own keywords and all of
// its descendants', addressed by path elements from the root.
func (t *Taxonomy) CategoryKeywords(path ...string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, node := range t.nodes {
		if !hasPrefix(node.path, path) {
			continue
		}
		for _, kw := range node.keywords {
			if !seen[kw] {
				seen[kw] = true
				keywords = append(keywords, kw)
			}
		}
	}
	return keywords
}

// MatchCategories scores every taxonomy node against the text by keyword
// overlap (unique matched keywords over the node's keyword count) and
// returns matches at or above the threshold, best first.
func (t *Taxonomy) MatchCategories(text string, threshold float64) []CategoryMatch {
	normalized := normalizeMatchText(text)
	hits := t.matcher.Match([]byte(normalized))

	// Aho-Corasick matches substrings; confirm a word boundary before
	// counting the keyword.
	matchedByNode := make(map[*flatNode][]string)
	for _, hit := range hits {
		kw := t.keywords[hit]
		if !containsWord(normalized, kw) {
			continue
		}
		for _, node := range t.kwToNodes[kw] {
			matchedByNode[node] = append(matchedByNode[node], kw)
		}
	}

	matches := make([]CategoryMatch, 0, len(matchedByNode))
	for node, matched := range matchedByNode {
		if len(node.keywords) == 0 {
			continue
		}
		score := float64(len(unique(matched))) / float64(len(node.keywords))
		if score < threshold {
			continue
		}
		matches = append(matches, CategoryMatch{
			Category: node.category,
			Path:     node.path,
			Score:    score,
			Matched:  unique(matched),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return strings.Join(matches[i].Path, ".") < strings.Join(matches[j].Path, ".")
	})
	return matches
}

func hasPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i, p := range prefix {
		if path[i] != p {
			return false
		}
	}
	return true
}

func normalizeMatchText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func containsWord(normalized, keyword string) bool {
	return strings.Contains(" "+normalized+" ", " "+keyword+" ")
}

func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
