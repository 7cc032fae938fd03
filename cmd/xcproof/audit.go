// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"gitlab.com/jaxnet/xchainproof/chainhash"
)

// auditRow is one line of the CSV audit trail a calculate_proof_root
// scan leaves behind: the MoM vector it collected and the
// notarisation txid the scan bracketed the window against.
type auditRow struct {
	Symbol        string `csv:"symbol"`
	CCId          uint32 `csv:"cc_id"`
	KmdHeight     int32  `csv:"kmd_height"`
	MoMIndex      int    `csv:"mom_index"`
	MoM           string `csv:"mom"`
	DestNotaTxid  string `csv:"dest_notarisation_txid"`
}

func writeAuditCSV(path, symbol string, ccID uint32, kmdHeight int32, moms []chainhash.Hash, destTxid chainhash.Hash) error {
	rows := make([]*auditRow, 0, len(moms))
	for i, m := range moms {
		rows = append(rows, &auditRow{
			Symbol:       symbol,
			CCId:         ccID,
			KmdHeight:    kmdHeight,
			MoMIndex:     i,
			MoM:          m.String(),
			DestNotaTxid: destTxid.String(),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating audit file")
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return errors.Wrap(err, "writing audit csv")
	}
	return nil
}
