// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K any, V any] struct {
	left   *Node[K, V] // left sub-tree, owned
	right  *Node[K, V] // right sub-tree, owned
	up     *Node[K, V] // parent node, never owning
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 for a leaf
}

// allocate a new leaf node
func newNode[K any, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// detach a node that is no longer reachable from the tree
//
// the key and value are kept so a caller still holding the node can
// read what was removed
func freeNode[K any, V any](node *Node[K, V]) {
	node.up = nil
	node.left = nil
	node.right = nil
	node.height = 0
}

// height of a possibly absent sub-tree
func (p *Node[K, V]) safeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// height the node should have given its children
func (p *Node[K, V]) newHeight() int {
	lh := p.left.safeHeight()
	rh := p.right.safeHeight()
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// balance factor: height(right) - height(left)
func (p *Node[K, V]) balance() int {
	return p.right.safeHeight() - p.left.safeHeight()
}

// IsLeaf - true if the node has no children
func (p *Node[K, V]) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Balance - height(right) - height(left), always in [-1, +1] for a
// node in a consistent tree
func (p *Node[K, V]) Balance() int {
	return p.balance()
}

// Left - return left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
