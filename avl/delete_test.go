// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// every combination of child count and root/non-root target, plus
// the position of the in-order successor for two children
func TestRemoveCases(t *testing.T) {
	perfect := []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15}
	deep := []int{10, 5, 20, 3, 7, 15, 30, 1, 4, 6, 8, 25, 35, 12, 27}

	testCases := []struct {
		name     string
		keys     []int
		remove   int
		children int
		isRoot   bool
		direct   bool // successor is the right child of the target
	}{
		{"leaf root", []int{1}, 1, 0, true, false},
		{"leaf", []int{2, 1}, 1, 0, false, false},
		{"right child root", []int{1, 2}, 1, 1, true, false},
		{"left child root", []int{2, 1}, 2, 1, true, false},
		{"right child", []int{2, 1, 3, 4}, 3, 1, false, false},
		{"left child", []int{3, 2, 4, 1}, 2, 1, false, false},
		{"two children root direct", []int{2, 1, 3}, 2, 2, true, true},
		{"two children root deep", []int{10, 5, 20, 3, 7, 15, 25, 17}, 10, 2, true, false},
		{"two children direct", deep, 30, 2, false, true},
		{"two children deep leaf successor", perfect, 4, 2, false, false},
		{"two children deep successor with child", deep, 20, 2, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := avl.NewOrderedSet(tc.keys...)
			require.Nil(t, err, "new set")
			require.Nil(t, s.Tree().Check(), "consistency before")

			node, ok := s.Tree().Find(tc.remove)
			require.True(t, ok, "find target")
			children := 0
			if nil != node.Left() {
				children += 1
			}
			if nil != node.Right() {
				children += 1
			}
			require.Equal(t, tc.children, children, "child count")
			require.Equal(t, tc.isRoot, nil == node.Parent(), "root")
			successor := node.Next()
			if 2 == children {
				require.Equal(t, tc.direct, successor == node.Right(), "successor position")
			}

			value, err := s.Tree().Remove(tc.remove)
			require.Nil(t, err, "remove")
			assert.Equal(t, tc.remove, value, "removed value")
			require.Nil(t, s.Tree().Check(), "consistency after")

			// the successor node itself now occupies the slot
			if 2 == children {
				n, ok := s.Tree().Find(successor.Key())
				require.True(t, ok, "find successor")
				assert.True(t, n == successor, "successor node identity")
			}

			want := []int{}
			for _, k := range tc.keys {
				if k != tc.remove {
					want = append(want, k)
				}
			}
			sort.Ints(want)
			if diff := cmp.Diff(want, s.ToSliceOrder(avl.InOrder)); "" != diff {
				t.Errorf("in-order (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(want), s.Size(), "size")

			// removed node no longer links into the tree
			assert.Nil(t, node.Parent(), "removed parent")
			assert.Nil(t, node.Left(), "removed left")
			assert.Nil(t, node.Right(), "removed right")
		})
	}
}

func TestRemoveMissing(t *testing.T) {
	tree := avl.New(avl.Ordered[int](), avl.Identity[int]())

	_, err := tree.Remove(1)
	assert.Equal(t, fault.ErrEmptyTree, err, "empty tree")

	for _, k := range []int{1, 3, 5} {
		_, err := tree.Insert(k)
		require.Nil(t, err, "insert %d", k)
	}
	for _, k := range []int{0, 2, 4, 6} {
		_, err := tree.Remove(k)
		assert.Equal(t, fault.ErrNodeNotFound, err, "remove %d", k)
	}
	assert.Equal(t, 3, tree.Size(), "size unchanged")
}

// removing every key in ascending order forces rotations on the way
// down and exercises retracing past a rotation
func TestRemoveAllAscending(t *testing.T) {
	keys := []int{}
	for i := 0; i < 200; i += 1 {
		keys = append(keys, (i*37)%200)
	}
	s, err := avl.NewOrderedSet(keys...)
	require.Nil(t, err, "new set")

	for k := 0; k < 200; k += 1 {
		require.Nil(t, s.Remove(k), "remove %d", k)
		require.Nil(t, s.Tree().Check(), "consistency after %d", k)
	}
	assert.True(t, s.IsEmpty(), "empty")
	assert.Nil(t, s.Tree().Root(), "no root")
}
