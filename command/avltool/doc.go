// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - build AVL trees from the command line
//
// traverse and dump insert integer arguments in the order given;
// run executes a Lua scenario of insert/set/remove/get operations on
// a string map and prints the final contents as JSON:
//
//   avltool traverse --order=pre 5 7 2 4 3
//   avltool dump --data 3 2 1
//   avltool run --config-file=scenario.conf
package main
