// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Check - run the internal consistency checker
func (tree *Tree[K, V]) Check() error {
	return tree.check()
}
