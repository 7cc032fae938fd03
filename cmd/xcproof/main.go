// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// xcproof is the operational front end for the crosschain proof engine:
// prove a local transaction, walk the back-notarisation stream, and audit
// a MoM-collection window to CSV — all over an operator-supplied
// chain/notarisation fixture. Extending a proof to a MoMoM and completing
// an import are not exposed as commands.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"gitlab.com/jaxnet/xchainproof/authority"
	"gitlab.com/jaxnet/xchainproof/chainhash"
	"gitlab.com/jaxnet/xchainproof/chainindex"
	"gitlab.com/jaxnet/xchainproof/config"
	"gitlab.com/jaxnet/xchainproof/corelog"
	"gitlab.com/jaxnet/xchainproof/crosschain"
	"gitlab.com/jaxnet/xchainproof/notarisation"
)

type app struct {
	cfg   config.Config
	index *chainindex.MemIndex
	store notarisation.Store
	log   zerolog.Logger
}

func main() {
	a := &app{}

	cliApp := &cli.App{
		Name:  "xcproof",
		Usage: "cross-chain Merkle proof tooling",
		Flags: commonFlags(),
		Before: a.init,
		Commands: []*cli.Command{
			{
				Name:  "prove-local",
				Usage: "prove a transaction confirmed on this chain terminates at a known MoM",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagTxHash, Required: true},
				},
				Action: a.proveLocal,
			},
			{
				Name:  "next-backnotarisation",
				Usage: "follow the back-notarisation stream forward from a KMD notarisation txid",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagTxHash, Usage: "KMD notarisation txid", Required: true},
				},
				Action: a.nextBacknotarisation,
			},
			{
				Name:  "audit",
				Usage: "dump the MoM vector a calculate_proof_root scan would collect to CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagSymbol, Required: true},
					&cli.Uint64Flag{Name: flagCCId, Required: true},
					&cli.IntFlag{Name: flagKmdHeight, Required: true},
					&cli.StringFlag{Name: flagOut, Value: "audit.csv"},
				},
				Action: a.audit,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) init(c *cli.Context) error {
	cfg, err := config.Load(c.String(flagConfig), os.Args[1:])
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = corelog.New("xcproof", corelog.DefaultLevel, cfg.Log)

	idx, err := chainindex.LoadFixture(c.String(flagChainFile))
	if err != nil {
		return errors.Wrap(err, "loading chain fixture")
	}
	a.index = idx

	storeDir := c.String(flagStoreDir)
	var store notarisation.Store
	if storeDir != "" {
		store, err = notarisation.OpenBadgerStore(storeDir)
		if err != nil {
			return errors.Wrap(err, "opening notarisation store")
		}
	} else {
		store = notarisation.NewMemStore()
	}
	if err := notarisation.LoadFixture(c.String(flagNotaFile), store); err != nil {
		return errors.Wrap(err, "loading notarisation fixture")
	}
	a.store = store

	return nil
}

func (a *app) engine() *crosschain.Engine {
	return &crosschain.Engine{
		Index:           a.index,
		Store:           a.store,
		Registry:        authority.NewStaticRegistry(nil),
		Symbol:          a.cfg.Symbol,
		ScanLimitBlocks: a.cfg.ScanLimitBlocks,
		Log:             a.log,
	}
}

func (a *app) proveLocal(c *cli.Context) error {
	txHash, err := parseHashFlag(c, flagTxHash)
	if err != nil {
		return err
	}

	proof, err := a.engine().ProveLocal(txHash)
	if err != nil {
		return err
	}

	fmt.Printf("notarisation txid: %s\nbranch index: %d\nsiblings: %d\n",
		proof.Txid, proof.Branch.Index, len(proof.Branch.Siblings))
	return nil
}

func (a *app) nextBacknotarisation(c *cli.Context) error {
	txHash, err := parseHashFlag(c, flagTxHash)
	if err != nil {
		return err
	}

	bn, err := a.engine().NextBacknotarisation(txHash)
	if err != nil {
		return err
	}

	fmt.Printf("next backnotarisation txid: %s height: %d momom: %s\n",
		bn.Txid, bn.Body.Height, bn.Body.MoMoM)
	return nil
}

func (a *app) audit(c *cli.Context) error {
	symbol := c.String(flagSymbol)
	ccID := uint32(c.Uint64(flagCCId))
	kmdHeight := int32(c.Int(flagKmdHeight))

	root, moms, destTxid := a.engine().CalculateProofRoot(symbol, ccID, kmdHeight)
	if root == chainhash.ZeroHash {
		return errors.New("scan produced no determinate MoMoM")
	}

	return writeAuditCSV(c.String(flagOut), symbol, ccID, kmdHeight, moms, destTxid)
}

func parseHashFlag(c *cli.Context, name string) (chainhash.Hash, error) {
	raw, err := hex.DecodeString(c.String(name))
	if err != nil {
		return chainhash.ZeroHash, errors.Wrapf(err, "parsing --%s", name)
	}
	h, err := chainhash.NewHash(raw)
	if err != nil {
		return chainhash.ZeroHash, err
	}
	return *h, nil
}
