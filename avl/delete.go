// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - removes a specific item from the tree
//
// returns the value that was stored under key.  Fails with
// fault.ErrEmptyTree when there are no nodes and with
// fault.ErrNodeNotFound when key is not present.
func (tree *Tree[K, V]) Remove(key K) (V, error) {
	var nothing V
	if tree.IsEmpty() {
		return nothing, fault.ErrEmptyTree
	}

	last, _ := lastStep(tree.Search(key))
	if Match != last.Branch || nil == last.Node {
		return nothing, fault.ErrNodeNotFound
	}

	q := last.Node
	value := q.value // preserve the value part
	if err := tree.removeNode(q); nil != err {
		return nothing, err
	}
	tree.size -= 1
	freeNode(q)
	return value, nil
}

// unlink q and rebalance from the lowest node whose sub-tree changed
func (tree *Tree[K, V]) removeNode(q *Node[K, V]) error {
	parent := q.up

	switch {
	case nil == q.left && nil == q.right:
		// leaf: just empty the parent's slot
		tree.replaceChild(parent, q, nil)
		return tree.retrace(parent)

	case nil == q.left:
		// single child splices into q's position
		tree.replaceChild(parent, q, q.right)
		return tree.retrace(parent)

	case nil == q.right:
		tree.replaceChild(parent, q, q.left)
		return tree.retrace(parent)
	}

	// two children: the in-order successor r takes q's place
	r := q.right
	for nil != r.left {
		r = r.left
	}

	start := r
	if r != q.right {
		// r is a left child deeper down, its right sub-tree
		// (possibly empty) moves up into its slot
		rp := r.up
		rp.left = r.right
		if nil != r.right {
			r.right.up = rp
		}
		r.right = q.right
		r.right.up = r
		start = rp
	}

	r.left = q.left
	r.left.up = r
	r.height = q.height
	tree.replaceChild(parent, q, r)

	return tree.retrace(start)
}
