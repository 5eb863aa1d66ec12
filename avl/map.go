// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Map - ordered map, each node stores a key/value pair
type Map[K any, V any] struct {
	tree *Tree[K, Pair[K, V]]
}

// Entry - a key and a pointer to its value inside the map
//
// writing through Value changes the stored value
type Entry[K any, V any] struct {
	Key   K
	Value *V
}

// NewMap - create an empty map
func NewMap[K any, V any](compare Comparator[K]) *Map[K, V] {
	return &Map[K, V]{
		tree: New(compare, First[K, V]()),
	}
}

// NewOrderedMap - map using the natural ordering of K
func NewOrderedMap[K cmp.Ordered, V any]() *Map[K, V] {
	return NewMap[K, V](Ordered[K]())
}

// Tree - the underlying tree
func (m *Map[K, V]) Tree() *Tree[K, Pair[K, V]] {
	return m.tree
}

// Insert - add a new key, fails with fault.ErrKeyExists if present
func (m *Map[K, V]) Insert(key K, value V) error {
	_, err := m.tree.Insert(Pair[K, V]{Key: key, Value: value})
	return err
}

// Remove - delete a key, fails with fault.ErrKeyNotFound if absent
func (m *Map[K, V]) Remove(key K) error {
	_, err := m.tree.Remove(key)
	return keyError(err)
}

// Contains - true if the key is present
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// HasKey - same as Contains
func (m *Map[K, V]) HasKey(key K) bool {
	return m.tree.Contains(key)
}

// Find - pointer to the value stored under key
func (m *Map[K, V]) Find(key K) (*V, bool) {
	node, ok := m.tree.Find(key)
	if !ok {
		return nil, false
	}
	return &node.value.Value, true
}

// Get - the value stored under key, fails with fault.ErrKeyNotFound
// if absent
func (m *Map[K, V]) Get(key K) (V, error) {
	node, err := m.tree.Get(key)
	if nil != err {
		var nothing V
		return nothing, err
	}
	return node.value.Value, nil
}

// At - pointer to the value stored under key, a zero value is
// inserted first if the key is absent
func (m *Map[K, V]) At(key K) *V {
	last, ok := lastStep(m.tree.Search(key))
	if ok && Match == last.Branch {
		return &last.Node.value.Value
	}
	var zero V
	// reuse the slot the search has just located
	node, err := m.tree.attach(last, key, Pair[K, V]{Key: key, Value: zero})
	fault.PanicIfError("map insert", err)
	return &node.value.Value
}

// Set - assign a value, inserting the key if needed
func (m *Map[K, V]) Set(key K, value V) {
	*m.At(key) = value
}

// Size - number of keys
func (m *Map[K, V]) Size() int {
	return m.tree.Size()
}

// IsEmpty - true if there are no keys
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// entry view of a map node
func entryView[K any, V any](p *Node[K, Pair[K, V]]) Entry[K, V] {
	return Entry[K, V]{
		Key:   p.key,
		Value: &p.value.Value,
	}
}

// Nodes - node view traversal
func (m *Map[K, V]) Nodes(order Order) *Iterator[K, Pair[K, V], *Node[K, Pair[K, V]]] {
	return m.tree.Iterate(order)
}

// Iterate - entry view traversal
func (m *Map[K, V]) Iterate(order Order) *Iterator[K, Pair[K, V], Entry[K, V]] {
	return NewIterator(m.tree, order, entryView[K, V])
}

// Entries - entries in post-order
func (m *Map[K, V]) Entries() *Iterator[K, Pair[K, V], Entry[K, V]] {
	return m.Iterate(PostOrder)
}

// InOrder - entries in ascending key order
func (m *Map[K, V]) InOrder() *Iterator[K, Pair[K, V], Entry[K, V]] {
	return m.Iterate(InOrder)
}

// PreOrder - entries in tree pre-order
func (m *Map[K, V]) PreOrder() *Iterator[K, Pair[K, V], Entry[K, V]] {
	return m.Iterate(PreOrder)
}

// PostOrder - entries in tree post-order
func (m *Map[K, V]) PostOrder() *Iterator[K, Pair[K, V], Entry[K, V]] {
	return m.Iterate(PostOrder)
}

// ToSlice - copies of all pairs in post-order
func (m *Map[K, V]) ToSlice() []Pair[K, V] {
	return m.ToSliceOrder(PostOrder)
}

// ToSliceOrder - copies of all pairs in the given order
func (m *Map[K, V]) ToSliceOrder(order Order) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.tree.Size())
	m.tree.Walk(order, func(p *Node[K, Pair[K, V]]) bool {
		pairs = append(pairs, p.value)
		return true
	})
	return pairs
}

// Copy - an independent map with the same entries and shape
func (m *Map[K, V]) Copy() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Copy()}
}

// Destroy - remove all entries
func (m *Map[K, V]) Destroy() {
	m.tree.Destroy()
}
