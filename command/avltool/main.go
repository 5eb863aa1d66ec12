// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	format  string
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

// build the command table, output goes to w and diagnostics to e
func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "build AVL trees and show their traversals"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: formatJson,
			Usage: " output `FORMAT` [json|yaml]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "traverse",
			Usage:     "insert integers into a set and print its traversals",
			ArgsUsage: "INT…",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "all",
					Usage: " traversal `ORDER` [in|pre|post|all]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:      "dump",
			Usage:     "insert integers into a tree and print it as ASCII art",
			ArgsUsage: "INT…",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include value, balance and height of each node",
				},
			},
			Action: runDump,
		},
		{
			Name:      "run",
			Usage:     "execute the operations of a Lua scenario file against a string map",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config-file, c",
					Value: "",
					Usage: "*scenario `FILE`",
				},
			},
			Action: runScenario,
		},
		{
			Name:   "version",
			Usage:  "display avltool version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			format:  c.GlobalString("format"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
