// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Order - the sequence in which a traversal visits nodes
type Order int

// traversal orders
const (
	InOrder   Order = iota // left, node, right: ascending keys
	PreOrder  Order = iota // node, left, right
	PostOrder Order = iota // left, right, node: children before parents
)

// String - name of the order
func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	default:
		return "unknown"
	}
}

// ParseOrder - convert "in", "pre" or "post" (optionally suffixed
// by "order" or "-order") to an order
func ParseOrder(s string) (Order, error) {
	s = strings.TrimSuffix(strings.ToLower(s), "order")
	switch strings.TrimSuffix(s, "-") {
	case "in":
		return InOrder, nil
	case "pre":
		return PreOrder, nil
	case "post":
		return PostOrder, nil
	default:
		return InOrder, fault.ErrInvalidOrder
	}
}

// first node an order visits in the sub-tree rooted at p
func startNode[K any, V any](o Order, p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	switch o {
	case InOrder:
		return p.first()
	case PreOrder:
		return p
	default:
		return p.deepest()
	}
}

// node an order visits after p, nil when the traversal is complete
func advance[K any, V any](o Order, p *Node[K, V]) *Node[K, V] {
	switch o {
	case InOrder:
		return p.Next()
	case PreOrder:
		return p.preorderNext()
	default:
		return p.postorderNext()
	}
}

// end of the descent that prefers left children and otherwise goes
// right, i.e. the first node of a post-order traversal
func (p *Node[K, V]) deepest() *Node[K, V] {
	for {
		switch {
		case nil != p.left:
			p = p.left
		case nil != p.right:
			p = p.right
		default:
			return p
		}
	}
}

// pre-order successor
func (p *Node[K, V]) preorderNext() *Node[K, V] {
	if nil != p.left {
		return p.left
	}
	if nil != p.right {
		return p.right
	}
	// ascend to the first ancestor reached from its left whose
	// right sub-tree has not been visited
	for up := p.up; nil != up; p, up = up, up.up {
		if p == up.left && nil != up.right {
			return up.right
		}
	}
	return nil
}

// post-order successor
func (p *Node[K, V]) postorderNext() *Node[K, V] {
	up := p.up
	if nil == up {
		return nil
	}
	if p == up.left && nil != up.right {
		return up.right.deepest()
	}
	return up
}

// Iterator - forward only traversal producing R for each node
//
// the zero position is before the first node; call Next to move
// onto it.  Mutating the tree while iterating gives undefined
// results.
type Iterator[K any, V any, R any] struct {
	tree    *Tree[K, V]
	order   Order
	node    *Node[K, V]
	started bool
	project func(*Node[K, V]) R
}

// NewIterator - traversal of tree in the given order, each visited
// node is converted by project
func NewIterator[K any, V any, R any](tree *Tree[K, V], order Order, project func(*Node[K, V]) R) *Iterator[K, V, R] {
	return &Iterator[K, V, R]{
		tree:    tree,
		order:   order,
		project: project,
	}
}

// Next - move to the next node, false when the traversal is exhausted
func (it *Iterator[K, V, R]) Next() bool {
	switch {
	case !it.started:
		it.started = true
		it.node = startNode(it.order, it.tree.root)
	case nil != it.node:
		it.node = advance(it.order, it.node)
	}
	return nil != it.node
}

// Node - the current node
func (it *Iterator[K, V, R]) Node() (*Node[K, V], error) {
	if nil == it.node {
		return nil, fault.ErrInvalidPosition
	}
	return it.node, nil
}

// Value - the projection of the current node
func (it *Iterator[K, V, R]) Value() (R, error) {
	if nil == it.node {
		var nothing R
		return nothing, fault.ErrInvalidPosition
	}
	return it.project(it.node), nil
}

// Done - true once Next has run past the last node
func (it *Iterator[K, V, R]) Done() bool {
	return it.started && nil == it.node
}

// Order - the traversal order of this iterator
func (it *Iterator[K, V, R]) Order() Order {
	return it.order
}

// Equal - same order and positioned on the same node; two
// iterators with no current node are equal, a nil iterator equals nothing
func (it *Iterator[K, V, R]) Equal(other *Iterator[K, V, R]) bool {
	return nil != other && it.order == other.order && it.node == other.node
}

// Reset - restart from before the first node
func (it *Iterator[K, V, R]) Reset() {
	it.node = nil
	it.started = false
}

// identity projection for node views
func nodeView[K any, V any](p *Node[K, V]) *Node[K, V] {
	return p
}

// value projection for value views
func valueView[K any, V any](p *Node[K, V]) V {
	return p.value
}

// Iterate - node view traversal in any order
func (tree *Tree[K, V]) Iterate(order Order) *Iterator[K, V, *Node[K, V]] {
	return NewIterator(tree, order, nodeView[K, V])
}

// IterateValues - value view traversal in any order
func (tree *Tree[K, V]) IterateValues(order Order) *Iterator[K, V, V] {
	return NewIterator(tree, order, valueView[K, V])
}

// InOrder - nodes in ascending key order
func (tree *Tree[K, V]) InOrder() *Iterator[K, V, *Node[K, V]] {
	return tree.Iterate(InOrder)
}

// PreOrder - nodes before their sub-trees
func (tree *Tree[K, V]) PreOrder() *Iterator[K, V, *Node[K, V]] {
	return tree.Iterate(PreOrder)
}

// PostOrder - nodes after their sub-trees
func (tree *Tree[K, V]) PostOrder() *Iterator[K, V, *Node[K, V]] {
	return tree.Iterate(PostOrder)
}

// InOrderValues - values in ascending key order
func (tree *Tree[K, V]) InOrderValues() *Iterator[K, V, V] {
	return tree.IterateValues(InOrder)
}

// PreOrderValues - values of nodes before their sub-trees
func (tree *Tree[K, V]) PreOrderValues() *Iterator[K, V, V] {
	return tree.IterateValues(PreOrder)
}

// PostOrderValues - values of nodes after their sub-trees
func (tree *Tree[K, V]) PostOrderValues() *Iterator[K, V, V] {
	return tree.IterateValues(PostOrder)
}

// Walk - call f for each node in order until it returns false
func (tree *Tree[K, V]) Walk(order Order, f func(*Node[K, V]) bool) {
	for p := startNode(order, tree.root); nil != p; p = advance(order, p) {
		if !f(p) {
			return
		}
	}
}

// ToSlice - all nodes in post-order
func (tree *Tree[K, V]) ToSlice() []*Node[K, V] {
	return tree.ToSliceOrder(PostOrder)
}

// ToSliceOrder - all nodes in the given order
func (tree *Tree[K, V]) ToSliceOrder(order Order) []*Node[K, V] {
	nodes := make([]*Node[K, V], 0, tree.size)
	tree.Walk(order, func(p *Node[K, V]) bool {
		nodes = append(nodes, p)
		return true
	})
	return nodes
}
