// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// walk up from p restoring heights and balance
//
// stops as soon as a sub-tree ends up with the height it had before
// the change, since nothing above it can then be affected
func (tree *Tree[K, V]) retrace(p *Node[K, V]) error {
	for nil != p {
		oldHeight := p.height
		b := p.balance()

		if b > 1 || b < -1 {
			top, err := tree.rebalance(p, b)
			if nil != err {
				return err
			}
			// after an insert this always holds; a delete may
			// leave the rotated sub-tree one shorter
			if top.height == oldHeight {
				return nil
			}
			p = top.up
			continue
		}

		newHeight := p.newHeight()
		if newHeight == oldHeight {
			return nil
		}
		p.height = newHeight
		p = p.up
	}
	return nil
}

// rotate an unbalanced node, returns the new sub-tree root
func (tree *Tree[K, V]) rebalance(p *Node[K, V], b int) (*Node[K, V], error) {
	if b > 1 {
		// right heavy
		if p.right.balance() < 0 {
			// double RL rotation
			if _, err := tree.rotateRight(p.right); nil != err {
				return nil, err
			}
		}
		return tree.rotateLeft(p)
	}

	// left heavy
	if p.left.balance() > 0 {
		// double LR rotation
		if _, err := tree.rotateLeft(p.left); nil != err {
			return nil, err
		}
	}
	return tree.rotateRight(p)
}
