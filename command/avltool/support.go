// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/avltree/fault"
)

// convert command arguments to integer keys
func parseKeys(arguments []string) ([]int, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingArguments
	}
	keys := make([]int, 0, len(arguments))
	for _, s := range arguments {
		k, err := strconv.Atoi(s)
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
