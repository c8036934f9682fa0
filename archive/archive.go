// SPDX-License-Identifier: MIT

package archive

import (
	"errors"

	"github.com/google/btree"
)

// ErrCapacity indicates a non-positive capacity.
var ErrCapacity = errors.New("archive: capacity must be positive")

// btreeDegree is the B-tree branching factor; 32 keeps nodes cache-sized
// for the few-thousand-entry archives typical here.
const btreeDegree = 32

type item[T any] struct {
	ts    int64
	seq   uint64
	value T
}

func less[T any](a, b item[T]) bool {
	if a.ts != b.ts {
		return a.ts < b.ts
	}

	return a.seq < b.seq
}

// Bounded stores at most Cap values ordered by timestamp.
type Bounded[T any] struct {
	tree    *btree.BTreeG[item[T]]
	cap     int
	nextSeq uint64
}

// New returns an empty archive of the given capacity.
func New[T any](capacity int) (*Bounded[T], error) {
	if capacity <= 0 {
		return nil, ErrCapacity
	}

	return &Bounded[T]{
		tree: btree.NewG[item[T]](btreeDegree, less[T]),
		cap:  capacity,
	}, nil
}

// Cap returns the capacity.
func (b *Bounded[T]) Cap() int { return b.cap }

// Len returns the number of stored values.
func (b *Bounded[T]) Len() int { return b.tree.Len() }

// Insert adds value under timestamp ts. While the archive exceeds its
// capacity, the entry with the smallest (timestamp, insertion) key is
// evicted and returned in eviction order.
//
// Complexity: O(log K) plus O(log K) per eviction.
func (b *Bounded[T]) Insert(ts int64, value T) (evicted []T) {
	b.tree.ReplaceOrInsert(item[T]{ts: ts, seq: b.nextSeq, value: value})
	b.nextSeq++
	for b.tree.Len() > b.cap {
		old, ok := b.tree.DeleteMin()
		if !ok {
			break
		}
		evicted = append(evicted, old.value)
	}

	return evicted
}

// Oldest returns the value with the smallest key.
func (b *Bounded[T]) Oldest() (ts int64, value T, ok bool) {
	it, ok := b.tree.Min()
	if !ok {
		return 0, value, false
	}

	return it.ts, it.value, true
}

// Newest returns the value with the largest key.
func (b *Bounded[T]) Newest() (ts int64, value T, ok bool) {
	it, ok := b.tree.Max()
	if !ok {
		return 0, value, false
	}

	return it.ts, it.value, true
}

// Ascend calls fn for every entry in ascending key order until fn returns false.
func (b *Bounded[T]) Ascend(fn func(ts int64, value T) bool) {
	b.tree.Ascend(func(it item[T]) bool { return fn(it.ts, it.value) })
}

// Range calls fn, in ascending order, for every entry with lo ≤ ts ≤ hi.
// Iteration starts at the first key ≥ lo and stops at the first timestamp
// beyond hi. An inverted range (hi < lo) visits nothing; callers that must
// report it check before calling.
//
// Complexity: O(log K + m) for m visited entries.
func (b *Bounded[T]) Range(lo, hi int64, fn func(ts int64, value T) bool) {
	if hi < lo {
		return
	}
	b.tree.AscendGreaterOrEqual(item[T]{ts: lo}, func(it item[T]) bool {
		if it.ts > hi {
			return false
		}

		return fn(it.ts, it.value)
	})
}

// Clear removes every entry. The insertion sequence keeps counting.
func (b *Bounded[T]) Clear() {
	b.tree.Clear(false)
}
