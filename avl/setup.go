// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root    *Node[K, V]
	size    int
	compare Comparator[K]
	project KeyProjection[V, K]
}

// New - create an initially empty tree
func New[K any, V any](compare Comparator[K], project KeyProjection[V, K]) *Tree[K, V] {
	return &Tree[K, V]{
		root:    nil,
		size:    0,
		compare: compare,
		project: project,
	}
}

// NewFrom - create a tree by inserting each value in turn
//
// stops at the first duplicate key and returns the error
func NewFrom[K any, V any](compare Comparator[K], project KeyProjection[V, K], values ...V) (*Tree[K, V], error) {
	tree := New(compare, project)
	for _, v := range values {
		if _, err := tree.Insert(v); nil != err {
			return nil, err
		}
	}
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[K, V]) Size() int {
	return tree.size
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return tree.root.safeHeight()
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if 0 == depth {
		return []*Node[K, V]{p}
	}
	nodes := []*Node[K, V]{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
