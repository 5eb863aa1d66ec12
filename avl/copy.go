// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Destroy - break every link in the tree and leave it empty
//
// visits children before their parent so each node is detached only
// after the traversal no longer needs its links
func (tree *Tree[K, V]) Destroy() {
	p := startNode(PostOrder, tree.root)
	for nil != p {
		next := advance(PostOrder, p)
		freeNode(p)
		p = next
	}
	tree.root = nil
	tree.size = 0
}

// Copy - an independent tree with the same shape, keys and values
func (tree *Tree[K, V]) Copy() *Tree[K, V] {
	c := New(tree.compare, tree.project)
	c.CopyFrom(tree)
	return c
}

// CopyFrom - replace the contents of tree by a clone of other
//
// the clone is built breadth first; heights are copied, parent links
// come only from relinking the cloned children.  Values are copied
// by assignment, so reference typed values are shared.
func (tree *Tree[K, V]) CopyFrom(other *Tree[K, V]) {
	if tree == other {
		return
	}
	tree.Destroy()
	tree.compare = other.compare
	tree.project = other.project
	if nil == other.root {
		return
	}

	type pending struct {
		from *Node[K, V]
		to   *Node[K, V]
	}

	tree.root = cloneNode(other.root)
	queue := []pending{{from: other.root, to: tree.root}}

	for 0 != len(queue) {
		item := queue[0]
		queue = queue[1:]

		if nil != item.from.left {
			left := cloneNode(item.from.left)
			left.up = item.to
			item.to.left = left
			queue = append(queue, pending{from: item.from.left, to: left})
		}
		if nil != item.from.right {
			right := cloneNode(item.from.right)
			right.up = item.to
			item.to.right = right
			queue = append(queue, pending{from: item.from.right, to: right})
		}
	}
	tree.size = other.size
}

// new unlinked node with the scalar state of p
func cloneNode[K any, V any](p *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:    p.key,
		value:  p.value,
		height: p.height,
	}
}
