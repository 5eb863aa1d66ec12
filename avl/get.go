// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - the node holding key, false if there is none
func (tree *Tree[K, V]) Find(key K) (*Node[K, V], bool) {
	node := tree.search(key)
	return node, nil != node
}

// Get - the node holding key
//
// fails with fault.ErrKeyNotFound if there is none
func (tree *Tree[K, V]) Get(key K) (*Node[K, V], error) {
	node := tree.search(key)
	if nil == node {
		return nil, fault.ErrKeyNotFound
	}
	return node, nil
}

// Contains - true if a node with key exists
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.search(key)
}
