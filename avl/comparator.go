// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Comparator - three way ordering of keys
//
// returns a negative number when a < b, zero when a == b and a
// positive number when a > b; it must be a strict weak order
type Comparator[K any] func(a K, b K) int

//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/avltree/avl Item

// Item - a key that carries its own ordering
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Ordered - comparator using the natural ordering of the key type
func Ordered[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// ItemComparator - comparator delegating to the key's own Compare
func ItemComparator[K Item]() Comparator[K] {
	return func(a K, b K) int {
		return a.Compare(b)
	}
}

// Reverse - invert the sense of a comparator
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a K, b K) int {
		return c(b, a)
	}
}
