package game

import (
	"fmt"
	"slices"
	"strings"
)

// Item is an element that can be kept in a Bag or a Deck.
type Item[T any] interface {
	comparable
	Compare(other T) int
}

// Bag is an immutable multiset. Its elements are kept sorted, so two bags
// holding the same elements are equal.
type Bag[T Item[T]] struct {
	items []T
}

func BagOf[T Item[T]](items ...T) Bag[T] {
	if len(items) == 0 {
		return Bag[T]{}
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int { return a.Compare(b) })
	return Bag[T]{items: sorted}
}

// BagOfN returns a bag holding n copies of item.
func BagOfN[T Item[T]](n int, item T) Bag[T] {
	if n <= 0 {
		return Bag[T]{}
	}
	items := make([]T, n)
	for i := range items {
		items[i] = item
	}
	return Bag[T]{items: items}
}

func (b Bag[T]) Size() int {
	return len(b.items)
}

func (b Bag[T]) IsEmpty() bool {
	return len(b.items) == 0
}

// Items returns the elements in ascending order.
func (b Bag[T]) Items() []T {
	return slices.Clone(b.items)
}

func (b Bag[T]) Get(i int) T {
	return b.items[i]
}

// Count returns the multiplicity of item.
func (b Bag[T]) Count(item T) int {
	n := 0
	for _, v := range b.items {
		if v == item {
			n++
		}
	}
	return n
}

func (b Bag[T]) Has(item T) bool {
	return slices.Contains(b.items, item)
}

// Distinct returns each element once, in ascending order.
func (b Bag[T]) Distinct() []T {
	var out []T
	for _, v := range b.items {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Contains reports whether sub is a sub-multiset of b.
func (b Bag[T]) Contains(sub Bag[T]) bool {
	for _, v := range sub.Distinct() {
		if b.Count(v) < sub.Count(v) {
			return false
		}
	}
	return true
}

func (b Bag[T]) Union(other Bag[T]) Bag[T] {
	all := make([]T, 0, len(b.items)+len(other.items))
	all = append(all, b.items...)
	return BagOf(append(all, other.items...)...)
}

// Difference removes from b as many copies of each element as other holds.
func (b Bag[T]) Difference(other Bag[T]) Bag[T] {
	remaining := map[T]int{}
	for _, v := range other.items {
		remaining[v]++
	}
	var out []T
	for _, v := range b.items {
		if remaining[v] > 0 {
			remaining[v]--
			continue
		}
		out = append(out, v)
	}
	return Bag[T]{items: out}
}

func (b Bag[T]) Equal(other Bag[T]) bool {
	return slices.Equal(b.items, other.items)
}

// SubsetsOfSize returns every distinct sub-multiset of b holding n elements.
// Subsets using more of the smaller elements come first.
func (b Bag[T]) SubsetsOfSize(n int) []Bag[T] {
	if n < 0 || n > b.Size() {
		return nil
	}
	distinct := b.Distinct()
	counts := make([]int, len(distinct))
	for i, v := range distinct {
		counts[i] = b.Count(v)
	}

	var subsets []Bag[T]
	var pick func(i, left int, acc []T)
	pick = func(i, left int, acc []T) {
		if left == 0 {
			subsets = append(subsets, BagOf(acc...))
			return
		}
		if i == len(distinct) {
			return
		}
		for k := min(counts[i], left); k >= 0; k-- {
			next := slices.Clone(acc)
			for j := 0; j < k; j++ {
				next = append(next, distinct[i])
			}
			pick(i+1, left-k, next)
		}
	}
	pick(0, n, nil)
	return subsets
}

func (b Bag[T]) String() string {
	parts := make([]string, len(b.items))
	for i, v := range b.items {
		parts[i] = fmt.Sprint(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
