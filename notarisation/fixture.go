// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notarisation

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"gitlab.com/jaxnet/xchainproof/chainhash"
)

// FixtureNotarisation is the JSON-friendly description of one
// notarisation, used to seed a Store from an operator-supplied file.
type FixtureNotarisation struct {
	Txid       string `json:"txid"`
	BlockHash  string `json:"block_hash"`
	Symbol     string `json:"symbol"`
	CCId       uint32 `json:"cc_id"`
	Height     int32  `json:"height"`
	MoM        string `json:"mom"`
	MoMDepth   int32  `json:"mom_depth"`
	MoMoM      string `json:"momom,omitempty"`
	IsBackNota bool   `json:"is_back_notarisation,omitempty"`
	// ForKmdTxid names the KMD notarisation txid this record
	// back-notarises, when IsBackNota is true.
	ForKmdTxid string `json:"for_kmd_txid,omitempty"`
}

// LoadFixture reads a JSON array of FixtureNotarisation and populates
// store with them, grouping plain notarisations by block hash and
// indexing back-notarisations by the KMD txid they answer.
func LoadFixture(path string, store Store) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading notarisation fixture")
	}

	var records []FixtureNotarisation
	if err := json.Unmarshal(data, &records); err != nil {
		return errors.Wrap(err, "parsing notarisation fixture")
	}

	byBlock := make(map[chainhash.Hash]InBlock)
	var blockOrder []chainhash.Hash

	for i, rec := range records {
		nota, err := rec.toNotarisation()
		if err != nil {
			return errors.Wrapf(err, "record %d", i)
		}

		if rec.IsBackNota {
			kmdTxid, err := parseHash(rec.ForKmdTxid)
			if err != nil {
				return errors.Wrapf(err, "record %d for_kmd_txid", i)
			}
			if err := store.PutBackNotarisation(kmdTxid, nota); err != nil {
				return errors.Wrapf(err, "record %d", i)
			}
			continue
		}

		blockHash, err := parseHash(rec.BlockHash)
		if err != nil {
			return errors.Wrapf(err, "record %d block_hash", i)
		}
		if _, seen := byBlock[blockHash]; !seen {
			blockOrder = append(blockOrder, blockHash)
		}
		byBlock[blockHash] = append(byBlock[blockHash], nota)
	}

	for _, blockHash := range blockOrder {
		if err := store.PutBlockNotarisations(blockHash, byBlock[blockHash]); err != nil {
			return errors.Wrap(err, "writing block notarisations")
		}
	}

	return nil
}

func (rec FixtureNotarisation) toNotarisation() (Notarisation, error) {
	txid, err := parseHash(rec.Txid)
	if err != nil {
		return Notarisation{}, errors.Wrap(err, "txid")
	}
	mom, err := parseHash(rec.MoM)
	if err != nil {
		return Notarisation{}, errors.Wrap(err, "mom")
	}
	momom, err := parseHash(rec.MoMoM)
	if err != nil {
		return Notarisation{}, errors.Wrap(err, "momom")
	}

	return Notarisation{
		Txid: txid,
		Body: Body{
			Symbol:   rec.Symbol,
			CCId:     rec.CCId,
			Height:   rec.Height,
			MoM:      mom,
			MoMDepth: rec.MoMDepth,
			MoMoM:    momom,
			TxHash:   txid,
		},
	}, nil
}

func parseHash(s string) (chainhash.Hash, error) {
	if s == "" {
		return chainhash.ZeroHash, nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return chainhash.ZeroHash, errors.Wrap(err, "decoding hex hash")
	}
	h, err := chainhash.NewHash(raw)
	if err != nil {
		return chainhash.ZeroHash, err
	}
	return *h, nil
}
