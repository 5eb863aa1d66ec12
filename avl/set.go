// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Set - ordered set of keys, each key is stored as its own value
type Set[K any] struct {
	tree *Tree[K, K]
}

// NewSet - create a set, inserting keys one at a time
func NewSet[K any](compare Comparator[K], keys ...K) (*Set[K], error) {
	tree, err := NewFrom(compare, Identity[K](), keys...)
	if nil != err {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// NewOrderedSet - set using the natural ordering of K
func NewOrderedSet[K cmp.Ordered](keys ...K) (*Set[K], error) {
	return NewSet(Ordered[K](), keys...)
}

// Tree - the underlying tree
func (s *Set[K]) Tree() *Tree[K, K] {
	return s.tree
}

// Insert - add a key, fails with fault.ErrKeyExists if present
func (s *Set[K]) Insert(key K) error {
	_, err := s.tree.Insert(key)
	return err
}

// Remove - delete a key, fails with fault.ErrKeyNotFound if absent
func (s *Set[K]) Remove(key K) error {
	_, err := s.tree.Remove(key)
	return keyError(err)
}

// Contains - true if the key is present
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// Find - the stored key equal to key
func (s *Set[K]) Find(key K) (K, bool) {
	node, ok := s.tree.Find(key)
	if !ok {
		var nothing K
		return nothing, false
	}
	return node.value, true
}

// Get - the stored key equal to key, fails with
// fault.ErrKeyNotFound if absent
func (s *Set[K]) Get(key K) (K, error) {
	node, err := s.tree.Get(key)
	if nil != err {
		var nothing K
		return nothing, err
	}
	return node.value, nil
}

// Size - number of keys
func (s *Set[K]) Size() int {
	return s.tree.Size()
}

// IsEmpty - true if there are no keys
func (s *Set[K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Nodes - node view traversal
func (s *Set[K]) Nodes(order Order) *Iterator[K, K, *Node[K, K]] {
	return s.tree.Iterate(order)
}

// Iterate - key view traversal
func (s *Set[K]) Iterate(order Order) *Iterator[K, K, K] {
	return s.tree.IterateValues(order)
}

// InOrder - keys in ascending order
func (s *Set[K]) InOrder() *Iterator[K, K, K] {
	return s.Iterate(InOrder)
}

// PreOrder - keys in tree pre-order
func (s *Set[K]) PreOrder() *Iterator[K, K, K] {
	return s.Iterate(PreOrder)
}

// PostOrder - keys in tree post-order
func (s *Set[K]) PostOrder() *Iterator[K, K, K] {
	return s.Iterate(PostOrder)
}

// ToSlice - all keys in post-order
func (s *Set[K]) ToSlice() []K {
	return s.ToSliceOrder(PostOrder)
}

// ToSliceOrder - all keys in the given order
func (s *Set[K]) ToSliceOrder(order Order) []K {
	keys := make([]K, 0, s.tree.Size())
	s.tree.Walk(order, func(p *Node[K, K]) bool {
		keys = append(keys, p.value)
		return true
	})
	return keys
}

// Copy - an independent set with the same keys and shape
func (s *Set[K]) Copy() *Set[K] {
	return &Set[K]{tree: s.tree.Copy()}
}

// Destroy - remove all keys
func (s *Set[K]) Destroy() {
	s.tree.Destroy()
}

// a removal miss is reported as a missing key
func keyError(err error) error {
	if fault.ErrNodeNotFound == err || fault.ErrEmptyTree == err {
		return fault.ErrKeyNotFound
	}
	return err
}
