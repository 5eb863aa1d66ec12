// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// internal: consistency checker for up pointers, ordering, heights,
// balance and the node count
func (tree *Tree[K, V]) check() error {
	n, err := tree.checkNode(tree.root, nil)
	if nil != err {
		return err
	}
	if n != tree.size {
		return fmt.Errorf("node count: %d  size: %d", n, tree.size)
	}
	return nil
}

// returns the number of nodes in the sub-tree rooted at p
func (tree *Tree[K, V]) checkNode(p *Node[K, V], up *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fmt.Errorf("node: %v  up pointer mismatch", p.key)
	}
	if nil != p.left && tree.compare(p.left.key, p.key) >= 0 {
		return 0, fmt.Errorf("node: %v  left child: %v out of order", p.key, p.left.key)
	}
	if nil != p.right && tree.compare(p.right.key, p.key) <= 0 {
		return 0, fmt.Errorf("node: %v  right child: %v out of order", p.key, p.right.key)
	}
	nl, err := tree.checkNode(p.left, p)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkNode(p.right, p)
	if nil != err {
		return 0, err
	}
	if h := p.newHeight(); h != p.height {
		return 0, fmt.Errorf("node: %v  height: %d  expected: %d", p.key, p.height, h)
	}
	if b := p.balance(); b < -1 || b > 1 {
		return 0, fmt.Errorf("node: %v  unbalanced: %+d", p.key, b)
	}
	return 1 + nl + nr, nil
}
