// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// KeyProjection - extract the ordering key from a stored value
type KeyProjection[V any, K any] func(value V) K

// Pair - key and value stored together in a map node
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Identity - the value is its own key
func Identity[K any]() KeyProjection[K, K] {
	return func(value K) K {
		return value
	}
}

// First - the key is the first element of a pair
func First[K any, V any]() KeyProjection[Pair[K, V], K] {
	return func(value Pair[K, V]) K {
		return value.Key
	}
}
