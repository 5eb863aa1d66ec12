// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// put child into the slot of parent that currently holds old
//
// a nil parent means old is the root
func (tree *Tree[K, V]) replaceChild(parent *Node[K, V], old *Node[K, V], child *Node[K, V]) {
	switch {
	case nil == parent:
		tree.root = child
	case parent.left == old:
		parent.left = child
	default:
		parent.right = child
	}
	if nil != child {
		child.up = parent
	}
}

// single left rotation about p, returns the new sub-tree root
//
//	  p                 p1
//	 / \               /  \
//	a   p1     →      p    c
//	   /  \          / \
//	  b    c        a   b
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) (*Node[K, V], error) {
	if nil == p || nil == p.right {
		return nil, fault.ErrNullPointer
	}
	p1 := p.right
	inner := p1.left

	tree.replaceChild(p.up, p, p1)

	p.right = inner
	if nil != inner {
		inner.up = p
	}
	p1.left = p
	p.up = p1

	p.height = p.newHeight()
	p1.height = p1.newHeight()
	return p1, nil
}

// single right rotation about p, returns the new sub-tree root
//
//	    p             p1
//	   / \           /  \
//	  p1  c    →    a    p
//	 /  \               / \
//	a    b             b   c
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) (*Node[K, V], error) {
	if nil == p || nil == p.left {
		return nil, fault.ErrNullPointer
	}
	p1 := p.left
	inner := p1.right

	tree.replaceChild(p.up, p, p1)

	p.left = inner
	if nil != inner {
		inner.up = p
	}
	p1.right = p
	p.up = p1

	p.height = p.newHeight()
	p1.height = p1.newHeight()
	return p1, nil
}
