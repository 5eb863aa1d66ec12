// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Branch - direction taken at one step of a search
type Branch int

// possible branches
const (
	Left  Branch = -1 // key is less than the node key
	Match Branch = 0  // key equals the node key, always the last step
	Right Branch = +1 // key is greater than the node key
)

// Step - a node visited by a search and the branch taken there
type Step[K any, V any] struct {
	Node   *Node[K, V]
	Branch Branch
}

// Search - descend from the root towards key
//
// returns every node visited in root to leaf order; the last step
// either matches or names the empty child slot where key would be
// attached.  An empty tree gives an empty path.
func (tree *Tree[K, V]) Search(key K) []Step[K, V] {
	path := make([]Step[K, V], 0, tree.Height())
	for p := tree.root; nil != p; {
		br := tree.branch(key, p)
		path = append(path, Step[K, V]{Node: p, Branch: br})
		switch br {
		case Left:
			p = p.left
		case Right:
			p = p.right
		default:
			return path
		}
	}
	return path
}

// find the node holding key, nil if absent
func (tree *Tree[K, V]) search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch tree.branch(key, p) {
		case Left:
			p = p.left
		case Right:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// compare key against a node and map to a branch
func (tree *Tree[K, V]) branch(key K, p *Node[K, V]) Branch {
	c := tree.compare(key, p.key)
	switch {
	case c < 0:
		return Left
	case c > 0:
		return Right
	default:
		return Match
	}
}

// last step of a search path
func lastStep[K any, V any](path []Step[K, V]) (Step[K, V], bool) {
	if 0 == len(path) {
		return Step[K, V]{}, false
	}
	return path[len(path)-1], true
}
