package index

import (
	"sort"

	"docrag/internal/domain"
)

// Graph is an undirected weighted word graph. Every edge is stored under
// both endpoints by addEdge, so Weight(a, b) == Weight(b, a) always holds.
type Graph struct {
	adj map[string]map[string]int
}

func newGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]int)}
}

func (g *Graph) addEdge(a, b string) {
	if a == b {
		return
	}
	g.link(a, b)
	g.link(b, a)
}

func (g *Graph) link(from, to string) {
	m, ok := g.adj[from]
	if !ok {
		m = make(map[string]int)
		g.adj[from] = m
	}
	m[to]++
}

// Contains reports whether word has at least one neighbor.
func (g *Graph) Contains(word string) bool {
	_, ok := g.adj[word]
	return ok
}

// Weight returns how many chunks contain both a and b.
func (g *Graph) Weight(a, b string) int {
	return g.adj[a][b]
}

// Len returns the number of words with at least one neighbor.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int {
	n := 0
	for _, m := range g.adj {
		n += len(m)
	}
	return n / 2
}

// Neighbors returns the words related to word, strongest first. Ties are
// ordered alphabetically.
func (g *Graph) Neighbors(word string) []domain.Neighbor {
	m := g.adj[word]
	out := make([]domain.Neighbor, 0, len(m))
	for w, c := range m {
		out = append(out, domain.Neighbor{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}
