// Package wire infers connectivity between drawing primitives: it merges
// paths and circles into continuous groups, bridges intentionally broken
// line segments, buckets groups into structural / text-like / singleton
// categories, and detects multi-wire junction points.
package wire

// UnionFind is an array-backed disjoint-set structure with path compression
// and union by rank. Elements are dense indices 0..n-1; one instance is
// owned by exactly one analysis pass.
type UnionFind struct {
	parent []int
	rank   []int
}

// NewUnionFind creates a union-find over n singleton elements.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Find returns the representative of x's set, compressing the path.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets containing x and y. It reports whether a merge
// happened (false when they were already in the same set).
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	return true
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Groups materializes the equivalence classes. Classes appear in order of
// their smallest member and members appear in ascending index order, so the
// result is deterministic for a given sequence of unions.
func (uf *UnionFind) Groups() [][]int {
	order := make(map[int]int) // root -> position in result
	var groups [][]int
	for i := 0; i < len(uf.parent); i++ {
		root := uf.Find(i)
		pos, ok := order[root]
		if !ok {
			pos = len(groups)
			order[root] = pos
			groups = append(groups, nil)
		}
		groups[pos] = append(groups[pos], i)
	}
	return groups
}
