// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import "github.com/urfave/cli/v2"

const (
	flagConfig     = "config"
	flagChainFile  = "chain-file"
	flagNotaFile   = "nota-file"
	flagStoreDir   = "store-dir"
	flagTxHash     = "tx-hash"
	flagSymbol     = "symbol"
	flagCCId       = "cc-id"
	flagKmdHeight  = "kmd-height"
	flagOut        = "out"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: flagConfig, Aliases: []string{"c"}, Value: "./xcproof.yaml", Usage: "path to configuration"},
		&cli.StringFlag{Name: flagChainFile, Usage: "path to a chain fixture JSON file", Required: true},
		&cli.StringFlag{Name: flagNotaFile, Usage: "path to a notarisation fixture JSON file", Required: true},
		&cli.StringFlag{Name: flagStoreDir, Usage: "badger directory for the notarisation store; empty uses an in-memory store seeded from --nota-file"},
	}
}
