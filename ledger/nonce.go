// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// RecordNonce - accept nonce as the latest one signed by account
//
// each nonce must be greater than the last accepted one from the same
// account, otherwise fault.DuplicateOperation; the first may be any value
func (l *Ledger) RecordNonce(account AccountId, nonce uint64) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := account.Bytes()
	last, found := trx.GetN(l.pools.Nonces, key)
	if found && nonce <= last {
		trx.Abort()
		l.log.Debugf("nonce: account: %s  nonce: %d  last: %d  error: %s", account, nonce, last, fault.DuplicateOperation)
		return fault.DuplicateOperation
	}

	trx.PutN(l.pools.Nonces, key, nonce)

	if err := trx.Commit(); nil != err {
		l.log.Errorf("nonce: commit error: %s", err)
		return err
	}
	return nil
}

// LastNonce - the highest nonce accepted from account
func (l *Ledger) LastNonce(account AccountId) (uint64, bool) {
	return l.pools.Nonces.GetN(account.Bytes())
}
