// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/chain"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/mode"
	"github.com/bitmark-inc/tokenledger/operation"
	"github.com/bitmark-inc/tokenledger/rpc/assets"
	"github.com/bitmark-inc/tokenledger/rpc/fixtures"
	"github.com/bitmark-inc/tokenledger/rpc/listeners"
	"github.com/bitmark-inc/tokenledger/rpc/node"
	"github.com/bitmark-inc/tokenledger/storage"
)

func makeKey(t *testing.T) *account.PrivateKey {
	seed, err := account.NewSeed(true)
	require.Nil(t, err, "new seed")
	key, err := account.PrivateKeyFromBase58Seed(seed)
	require.Nil(t, err, "private key")
	return key
}

func TestClientRoundTrip(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir := t.TempDir()
	require.Nil(t, storage.Initialise(filepath.Join(dir, "rpc.leveldb"), storage.ReadWrite), "storage")
	defer storage.Finalise()

	require.Nil(t, mode.Initialise(chain.Testing), "mode")
	defer mode.Finalise()
	mode.Set(mode.Normal)

	cer, key, err := fixtures.Certificate(dir)
	require.Nil(t, err, "certificate")

	l := ledger.New(ledger.DefaultPools(), nil, logger.New("ledger"))

	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        cer,
		PrivateKey:         key,
	}
	require.Nil(t, Initialise(configuration, "test", l), "initialise")
	defer Finalise()

	assert.Equal(t, fault.AlreadyInitialised, Initialise(configuration, "test", l), "twice")

	addresses := Addresses()
	require.Equal(t, 1, len(addresses), "addresses")
	address := addresses[0].String()
	conn, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	require.Nil(t, err, "dial")
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	owner := makeKey(t)
	recipient := makeKey(t).Account()

	create := &operation.CreateAsset{Creator: owner.Account(), InitialSupply: 1000, Nonce: 1}
	require.Nil(t, create.Sign(owner), "sign create")
	var createReply assets.CreateReply
	require.Nil(t, client.Call("Assets.Create", create, &createReply), "create")
	assert.Equal(t, ledger.AssetId(0), createReply.AssetId, "asset id")

	transfer := &operation.Transfer{Owner: owner.Account(), AssetId: 0, To: recipient, Amount: 300, Nonce: 2}
	require.Nil(t, transfer.Sign(owner), "sign transfer")
	var reply assets.OperationReply
	require.Nil(t, client.Call("Assets.Transfer", transfer, &reply), "transfer")
	assert.Equal(t, reply.Digest, reply.Record.Digest().String(), "record returned")

	err = client.Call("Assets.Transfer", transfer, &reply)
	require.NotNil(t, err, "replay")
	assert.Equal(t, fault.DuplicateOperation.Error(), err.Error(), "replay error")

	query := &operation.Query{Requester: owner.Account(), AssetId: 0, Account: recipient}
	require.Nil(t, query.Sign(owner), "sign query")
	var balance assets.BalanceReply
	require.Nil(t, client.Call("Assets.Balance", query, &balance), "balance")
	assert.Equal(t, ledger.Balance(300), balance.Balance, "recipient balance")
	assert.Equal(t, ledger.Balance(1000), balance.TotalSupply, "supply")

	var info node.InfoReply
	require.Nil(t, client.Call("Node.Info", &node.InfoArguments{}, &info), "info")
	assert.Equal(t, ledger.AssetId(1), info.NextAssetId, "next asset id")
	assert.Equal(t, chain.Testing, info.Chain, "chain")

	require.Nil(t, Finalise(), "finalise")
	assert.Equal(t, 0, len(Addresses()), "stopped")
	require.Nil(t, Initialise(configuration, "test", l), "restart")
}
