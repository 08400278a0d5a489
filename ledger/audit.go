// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/tokenledger/fault"
)

// AuditResult - comparison of total supply against the balances
type AuditResult struct {
	AssetId     AssetId `json:"assetId"`
	Exists      bool    `json:"exists"`
	TotalSupply Balance `json:"totalSupply"`
	Sum         Balance `json:"sum"`
	Accounts    int     `json:"accounts"`
}

// Consistent - total supply equals the sum of balances
func (r AuditResult) Consistent() bool {
	return r.TotalSupply == r.Sum
}

// Audit - sum all balances of one asset
//
// reads committed state by scanning every balance record of the asset
func (l *Ledger) Audit(assetId AssetId) (AuditResult, error) {
	supply, found := l.TotalSupply(assetId)
	result := AuditResult{
		AssetId:     assetId,
		Exists:      found,
		TotalSupply: supply,
	}

	cursor := l.pools.Balances.NewFetchCursor().Prefix(assetKey(assetId))
	err := cursor.Map(func(key []byte, value []byte) error {
		n, ok := decodeBalance(value)
		if !ok {
			return fault.RecordTruncated
		}
		sum, err := result.Sum.Add(n)
		if nil != err {
			return err
		}
		result.Sum = sum
		result.Accounts += 1
		return nil
	})

	return result, err
}

// AuditAll - audit every existing asset
//
// returns fault.SupplyMismatch with the results if any asset is inconsistent
func (l *Ledger) AuditAll() ([]AuditResult, error) {
	assets := []AssetId{}
	err := l.pools.TotalSupply.NewFetchCursor().Map(func(key []byte, value []byte) error {
		assetId, ok := assetFromKey(key)
		if !ok {
			return fault.RecordTruncated
		}
		assets = append(assets, assetId)
		return nil
	})
	if nil != err {
		return nil, err
	}

	results := make([]AuditResult, 0, len(assets))
	mismatch := false
	for _, assetId := range assets {
		r, err := l.Audit(assetId)
		if nil != err {
			return results, err
		}
		if !r.Consistent() {
			l.log.Criticalf("audit: asset: %d  supply: %d  sum: %d", assetId, r.TotalSupply, r.Sum)
			mismatch = true
		}
		results = append(results, r)
	}

	if mismatch {
		return results, fault.SupplyMismatch
	}
	return results, nil
}

func decodeBalance(value []byte) (Balance, bool) {
	if len(value) < 8 {
		return 0, false
	}
	return Balance(binary.BigEndian.Uint64(value[:8])), true
}
