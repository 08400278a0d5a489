// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/tokenledger/fault"
)

// Transaction - a single atomic set of writes across pools
//
// reads through the transaction see its own pending writes; nothing
// is visible to pool handles until Commit
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type transactionData struct {
	sync.Mutex
	inUse  bool
	access *AccessData
}

func newTransaction(access *AccessData) Transaction {
	return &transactionData{
		inUse:  false,
		access: access,
	}
}

// Begin - start a new transaction, fails if one is already active
func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}
	t.inUse = true
	t.access.reset()

	return nil
}

func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *transactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *transactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.getPending(key)
}

func (t *transactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.getNPending(key)
}

func (t *transactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.hasPending(key)
}

// Commit - write all pending data in a single batch
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotStarted
	}
	t.inUse = false

	return t.access.write()
}

// Abort - discard all pending data
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.inUse = false
	t.access.reset()
}

func (t *transactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}
