// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}

	// value is the insertion sequence number
	tree := avl.New(avl.Ordered[int](), avl.First[int, int]())
	for i, k := range keys {
		if _, err := tree.Insert(avl.Pair[int, int]{Key: k, Value: i}); nil != err {
			return fmt.Errorf("insert: %d  error: %s", k, err)
		}
	}

	depth := tree.Print(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "nodes: %d  depth: %d\n", tree.Size(), depth)
	}
	return nil
}
