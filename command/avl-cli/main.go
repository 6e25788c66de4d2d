// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	json    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "AVL tree demonstrations"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	countFlag := cli.IntFlag{
		Name:  "count, c",
		Value: 15,
		Usage: " number of values to insert `N`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " JSON output",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "traverse",
			Usage:     "list the tree in one or all traversal orders",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				countFlag,
				cli.StringFlag{
					Name:  "order, o",
					Value: "all",
					Usage: " traversal `ORDER` [preorder|inorder|postorder|reverse|all]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:      "range",
			Usage:     "values strictly between min and max",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				countFlag,
				cli.IntFlag{
					Name:  "min, m",
					Value: 2,
					Usage: " exclusive lower bound `MIN`",
				},
				cli.IntFlag{
					Name:  "max, M",
					Value: 14,
					Usage: " exclusive upper bound `MAX`",
				},
			},
			Action: runRange,
		},
		{
			Name:      "find",
			Usage:     "locate a value and show its position",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				countFlag,
				cli.IntFlag{
					Name:  "value, V",
					Value: 0,
					Usage: "*value to find `VALUE`",
				},
			},
			Action: runFind,
		},
		{
			Name:      "print",
			Usage:     "draw the tree sideways",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{countFlag},
			Action:    runPrint,
		},
		{
			Name:      "random",
			Usage:     "insert a shuffled sequence and output Graphviz dot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 64,
					Usage: " number of values to insert `N`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` (0 = use time)",
				},
			},
			Action: runRandom,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			json:    c.GlobalBool("json"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
