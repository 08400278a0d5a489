// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/storage"
)

func TestRecordNonce(t *testing.T) {
	l, sink := setupLedger(t)
	sink.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	a := testAccount(1)
	b := testAccount(2)

	_, found := l.LastNonce(a)
	assert.False(t, found, "no nonce yet")

	assert.Nil(t, l.RecordNonce(a, 0), "first nonce may be zero")
	assert.Equal(t, fault.DuplicateOperation, l.RecordNonce(a, 0), "same nonce")
	assert.Nil(t, l.RecordNonce(a, 10), "increase")
	assert.Equal(t, fault.DuplicateOperation, l.RecordNonce(a, 10), "repeat")
	assert.Equal(t, fault.DuplicateOperation, l.RecordNonce(a, 9), "lower")

	last, found := l.LastNonce(a)
	assert.True(t, found, "found")
	assert.Equal(t, uint64(10), last, "last accepted")

	assert.Nil(t, l.RecordNonce(b, 5), "accounts are independent")
	last, _ = l.LastNonce(b)
	assert.Equal(t, uint64(5), last, "other account")
}

func TestRecordNonceRejectionLeavesState(t *testing.T) {
	l, _ := setupLedger(t)
	a := testAccount(1)

	require.Nil(t, l.RecordNonce(a, 100), "record")
	before := snapshot(t)
	assert.Equal(t, fault.DuplicateOperation, l.RecordNonce(a, 50), "stale")
	assert.Equal(t, before, snapshot(t), "state unchanged")
}

func TestNonceSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "nonce.leveldb")
	a := testAccount(1)

	require.Nil(t, storage.Initialise(name, storage.ReadWrite), "open")
	l := ledger.New(ledger.DefaultPools(), nil, logger.New("ledger"))
	require.Nil(t, l.RecordNonce(a, 42), "record")
	storage.Finalise()

	require.Nil(t, storage.Initialise(name, storage.ReadWrite), "reopen")
	defer storage.Finalise()
	l = ledger.New(ledger.DefaultPools(), nil, logger.New("ledger"))

	last, found := l.LastNonce(a)
	assert.True(t, found, "persisted")
	assert.Equal(t, uint64(42), last, "value")
	assert.Equal(t, fault.DuplicateOperation, l.RecordNonce(a, 42), "replay after reopen")
}
