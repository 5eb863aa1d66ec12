// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers, exposed as
// an ordered set and an ordered map
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node records its height (a leaf is 1, an absent child is 0)
// and a non-owning pointer to its parent.  The parent pointer is only
// followed upwards for retracing and iteration, and Destroy clears
// every link so teardown never relies on the collector breaking
// cycles.
//
// Ordering is supplied by a Comparator and the key of a stored value
// is extracted by a KeyProjection; a Set uses the value itself as the
// key, a Map uses the first element of a Pair.
//
// Three traversals are available: in-order (ascending keys),
// pre-order (node, left, right) and post-order (left, right, node).
// Each is a small state machine over the node graph that produces
// either nodes or values projected from them.
package avl
