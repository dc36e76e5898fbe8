// Package relation provides a dense, packed store for an antisymmetric
// pairwise relation over {0,...,n-1}: get(i,i) is always absent, and
// get(j,i) is always the inverse of get(i,j). It backs both the layout
// model's direction graph (component B of the design) and the solver's
// dual-constraint store (component E), instantiated with two different
// relation types.
package relation

import "fmt"

// InvertibleRelation is any relation type with a computable inverse -
// Direction (LeftOf/RightOf/Above/Under) and the solver's dual constraint
// range both satisfy it.
type InvertibleRelation[T any] interface {
	Inverse() T
}

type entry[T any] struct {
	value T
	set   bool
}

// Matrix is a RelationMatrix<T>: a map (i,j) -> Option<T> over an n-element
// index set, stored as a flat buffer of n(n-1)/2 optional values for i<j.
type Matrix[T InvertibleRelation[T]] struct {
	n    int
	data []entry[T]
}

// bufferSize returns n(n-1)/2 for n>1, and 0 for n<=1.
func bufferSize(n int) int {
	if n <= 1 {
		return 0
	}
	return n * (n - 1) / 2
}

// packedIndex returns the buffer offset for i<j, as j(j-1)/2+i.
func packedIndex(i, j int) int {
	return j*(j-1)/2 + i
}

// New returns an n-element Matrix with every relation absent.
func New[T InvertibleRelation[T]](n int) *Matrix[T] {
	return &Matrix[T]{n: n, data: make([]entry[T], bufferSize(n))}
}

// N returns the number of elements.
func (m *Matrix[T]) N() int { return m.n }

func (m *Matrix[T]) checkIndex(i int) {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("relation: index %d out of range [0,%d)", i, m.n))
	}
}

// Get returns the relation between i and j, and whether one is set.
// get(i,i) is always (zero, false). get(j,i) is the inverse of get(i,j).
func (m *Matrix[T]) Get(i, j int) (T, bool) {
	m.checkIndex(i)
	m.checkIndex(j)
	var zero T
	if i == j {
		return zero, false
	}
	if i < j {
		e := m.data[packedIndex(i, j)]
		if !e.set {
			return zero, false
		}
		return e.value, true
	}
	e := m.data[packedIndex(j, i)]
	if !e.set {
		return zero, false
	}
	return e.value.Inverse(), true
}

// Set stores v as the relation from i to j. i==j is a silent no-op.
// When i>j, the inverse of v is what gets stored at (j,i), so a later
// Get(i,j) reads back v exactly.
func (m *Matrix[T]) Set(i, j int, v T) {
	m.checkIndex(i)
	m.checkIndex(j)
	if i == j {
		return
	}
	if i < j {
		m.data[packedIndex(i, j)] = entry[T]{value: v, set: true}
		return
	}
	m.data[packedIndex(j, i)] = entry[T]{value: v.Inverse(), set: true}
}

// Clear removes the relation between i and j, if any.
func (m *Matrix[T]) Clear(i, j int) {
	m.checkIndex(i)
	m.checkIndex(j)
	if i == j {
		return
	}
	if i < j {
		m.data[packedIndex(i, j)] = entry[T]{}
		return
	}
	m.data[packedIndex(j, i)] = entry[T]{}
}

// AddElement appends a new row/column of absent relations and returns its
// index. The new element's pairs with every existing element occupy
// exactly the tail n-1 slots of the packed buffer, so existing slots are
// never moved; the cost is linear in n, not constant.
func (m *Matrix[T]) AddElement() int {
	m.n++
	m.data = append(m.data, make([]entry[T], m.n-1)...)
	return m.n - 1
}

// remapIndex maps an old index to its new index after element k is
// removed: indices below k are unchanged, indices above k shift down by
// one, and k itself must never be passed in.
func remapIndex(x, k int) int {
	if x < k {
		return x
	}
	return x - 1
}

// RemoveElement deletes element k: every relation to k is gone, and every
// element with index >k is shifted down by one so the buffer stays
// contiguous and packed.
func (m *Matrix[T]) RemoveElement(k int) {
	m.checkIndex(k)
	newN := m.n - 1
	newData := make([]entry[T], bufferSize(newN))
	for j := 0; j < m.n; j++ {
		if j == k {
			continue
		}
		for i := 0; i < j; i++ {
			if i == k {
				continue
			}
			e := m.data[packedIndex(i, j)]
			if !e.set {
				continue
			}
			ni, nj := remapIndex(i, k), remapIndex(j, k)
			newData[packedIndex(ni, nj)] = e
		}
	}
	m.n = newN
	m.data = newData
}

// IsSingleConnectedComponent reports whether the relations define one
// connected component over the n elements, via union-find with path
// compression and union by rank. n<=1 is trivially connected. The outer
// loop runs over the higher index for cache locality of the packed,
// column-major-by-upper-index buffer.
func (m *Matrix[T]) IsSingleConnectedComponent() bool {
	if m.n <= 1 {
		return true
	}

	parent := make([]int, m.n)
	rank := make([]int, m.n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	for j := 1; j < m.n; j++ {
		for i := 0; i < j; i++ {
			if _, ok := m.Get(i, j); ok {
				union(i, j)
			}
		}
	}

	root := find(0)
	for i := 1; i < m.n; i++ {
		if find(i) != root {
			return false
		}
	}
	return true
}
