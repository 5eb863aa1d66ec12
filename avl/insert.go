// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new node into the tree
//
// fails with fault.ErrKeyExists if a node with an equal key is
// already present, the tree is then unchanged
func (tree *Tree[K, V]) Insert(value V) (*Node[K, V], error) {
	key := tree.project(value)
	last, ok := lastStep(tree.Search(key))
	if ok && Match == last.Branch {
		return nil, fault.ErrKeyExists
	}
	return tree.attach(last, key, value)
}

// Upsert - insert a new node or overwrite the value of an existing one
//
// an existing node keeps its position and identity, returns true if
// a node was added
func (tree *Tree[K, V]) Upsert(value V) (*Node[K, V], bool, error) {
	key := tree.project(value)
	last, ok := lastStep(tree.Search(key))
	if ok && Match == last.Branch {
		last.Node.value = value
		return last.Node, false, nil
	}
	node, err := tree.attach(last, key, value)
	if nil != err {
		return nil, false, err
	}
	return node, true, nil
}

// link a new leaf below the final step of a failed search
func (tree *Tree[K, V]) attach(at Step[K, V], key K, value V) (*Node[K, V], error) {
	node := newNode(key, value)

	if nil == at.Node {
		if nil != tree.root {
			return nil, fault.ErrNullPointer
		}
		tree.root = node
		tree.size += 1
		return node, nil
	}

	parent := at.Node
	switch at.Branch {
	case Left:
		parent.left = node
	case Right:
		parent.right = node
	default:
		return nil, fault.ErrNodeKeysMatch
	}
	node.up = parent
	tree.size += 1

	// a new leaf is balanced, start with its parent
	if err := tree.retrace(parent); nil != err {
		return nil, err
	}
	return node, nil
}
