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

var allOrders = []avl.Order{avl.InOrder, avl.PreOrder, avl.PostOrder}

type traversalReply struct {
	Size      int              `json:"size" yaml:"size"`
	Height    int              `json:"height" yaml:"height"`
	Traversal map[string][]int `json:"traversal" yaml:"traversal"`
}

func runTraverse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	orders, err := checkOrders(c.String("order"))
	if nil != err {
		return err
	}

	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}

	set, err := avl.NewOrderedSet[int]()
	if nil != err {
		return err
	}
	for _, k := range keys {
		if err := set.Insert(k); nil != err {
			return fmt.Errorf("insert: %d  error: %s", k, err)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "inserted: %d  height: %d\n", k, set.Tree().Height())
		}
	}

	reply := traversalReply{
		Size:      set.Size(),
		Height:    set.Tree().Height(),
		Traversal: make(map[string][]int),
	}
	for _, order := range orders {
		reply.Traversal[order.String()] = set.ToSliceOrder(order)
	}

	return printReply(m, reply)
}

// "all" selects every order
func checkOrders(s string) ([]avl.Order, error) {
	if "" == s || "all" == s {
		return allOrders, nil
	}
	order, err := avl.ParseOrder(s)
	if nil != err {
		return nil, err
	}
	return []avl.Order{order}, nil
}
