// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/command/ledger-cli/rpccalls"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/operation"
	"github.com/bitmark-inc/tokenledger/rpc/assets"
	"github.com/bitmark-inc/tokenledger/rpc/fixtures"
	"github.com/bitmark-inc/tokenledger/rpc/node"
)

// records what the server received
type stubAssets struct {
	creates   []*operation.CreateAsset
	transfers []*operation.Transfer
	issues    []*operation.Issue
	queries   []*operation.Query
	tamper    bool
}

func (s *stubAssets) Create(arguments *operation.CreateAsset, reply *assets.CreateReply) error {
	packed, err := arguments.Pack(arguments.Creator)
	if nil != err {
		return err
	}
	s.creates = append(s.creates, arguments)
	if s.tamper {
		packed = append(operation.Packed{}, packed...)
		packed[len(packed)-1] ^= 0xff
	}
	reply.AssetId = 7
	reply.Digest = packed.Digest().String()
	reply.Record = packed
	return nil
}

func (s *stubAssets) Transfer(arguments *operation.Transfer, reply *assets.OperationReply) error {
	packed, err := arguments.Pack(arguments.Owner)
	if nil != err {
		return err
	}
	if arguments.Amount > 100 {
		return fault.InsufficientBalance
	}
	s.transfers = append(s.transfers, arguments)
	reply.Digest = packed.Digest().String()
	reply.Record = packed
	return nil
}

func (s *stubAssets) Issue(arguments *operation.Issue, reply *assets.OperationReply) error {
	packed, err := arguments.Pack(arguments.Issuer)
	if nil != err {
		return err
	}
	s.issues = append(s.issues, arguments)
	reply.Digest = packed.Digest().String()
	reply.Record = packed
	return nil
}

func (s *stubAssets) Balance(arguments *operation.Query, reply *assets.BalanceReply) error {
	if _, err := arguments.Pack(arguments.Requester); nil != err {
		return err
	}
	s.queries = append(s.queries, arguments)
	reply.Balance = 40
	reply.TotalSupply = 100
	return nil
}

type stubNode struct{}

func (stubNode) Info(arguments *node.InfoArguments, reply *node.InfoReply) error {
	reply.Chain = "testing"
	reply.Mode = "Normal"
	reply.NextAssetId = 8
	return nil
}

func startServer(t *testing.T, stub *stubAssets) string {
	certificateFileName, keyFileName, err := fixtures.Certificate(t.TempDir())
	require.Nil(t, err, "certificate")

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	require.Nil(t, err, "key pair")

	listener, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{keyPair},
	})
	require.Nil(t, err, "listen")
	t.Cleanup(func() { listener.Close() })

	server := rpc.NewServer()
	require.Nil(t, server.RegisterName("Assets", stub), "register assets")
	require.Nil(t, server.RegisterName("Node", stubNode{}), "register node")

	go func() {
		for {
			conn, err := listener.Accept()
			if nil != err {
				return
			}
			go server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return listener.Addr().String()
}

func privateKey(t *testing.T) *account.PrivateKey {
	seed, err := account.NewSeed(true)
	require.Nil(t, err, "seed")
	key, err := account.PrivateKeyFromBase58Seed(seed)
	require.Nil(t, err, "key")
	return key
}

func TestClientCalls(t *testing.T) {
	stub := &stubAssets{}
	address := startServer(t, stub)

	verbose := &bytes.Buffer{}
	client, err := rpccalls.NewClient(true, address, true, verbose)
	require.Nil(t, err, "connect")
	defer client.Close()

	alice := privateKey(t)
	bob := privateKey(t)

	created, err := client.CreateAsset(&rpccalls.CreateData{
		Creator:       alice,
		InitialSupply: 100,
		Nonce:         1,
	})
	require.Nil(t, err, "create")
	assert.Equal(t, uint64(7), uint64(created.AssetId), "asset id")
	assert.Equal(t, 64, len(created.Digest), "digest")
	assert.Equal(t, created.Digest, created.Record.Digest().String(), "record")
	require.Equal(t, 1, len(stub.creates), "server received create")
	assert.True(t, alice.Account().Equal(stub.creates[0].Creator), "creator")
	assert.Equal(t, uint64(100), stub.creates[0].InitialSupply, "supply")

	transferred, err := client.Transfer(&rpccalls.TransferData{
		Owner:   alice,
		AssetId: 7,
		To:      bob.Account(),
		Amount:  60,
		Nonce:   2,
	})
	require.Nil(t, err, "transfer")
	assert.NotEqual(t, created.Digest, transferred.Digest, "distinct digests")
	require.Equal(t, 1, len(stub.transfers), "server received transfer")
	assert.True(t, bob.Account().Equal(stub.transfers[0].To), "recipient")

	_, err = client.Transfer(&rpccalls.TransferData{
		Owner:   alice,
		AssetId: 7,
		To:      bob.Account(),
		Amount:  1000,
		Nonce:   3,
	})
	require.NotNil(t, err, "server error")
	assert.Equal(t, fault.InsufficientBalance.Error(), err.Error(), "error text")

	_, err = client.Issue(&rpccalls.IssueData{
		Issuer:  bob,
		AssetId: 7,
		Amount:  5,
		Nonce:   4,
	})
	require.Nil(t, err, "issue")
	require.Equal(t, 1, len(stub.issues), "server received issue")

	balance, err := client.GetBalance(7, alice, bob.Account())
	require.Nil(t, err, "balance")
	require.Equal(t, 1, len(stub.queries), "server received query")
	assert.True(t, alice.Account().Equal(stub.queries[0].Requester), "requester")
	assert.True(t, bob.Account().Equal(stub.queries[0].Account), "queried account")
	assert.Equal(t, uint64(40), uint64(balance.Balance), "balance")
	assert.Equal(t, uint64(100), uint64(balance.TotalSupply), "supply")

	info, err := client.GetNodeInfo()
	require.Nil(t, err, "info")
	assert.Equal(t, "testing", info.Chain, "chain")
	assert.Equal(t, uint64(8), uint64(info.NextAssetId), "next asset")

	assert.Contains(t, verbose.String(), "Transfer Request", "verbose output")
}

func TestClientArguments(t *testing.T) {
	stub := &stubAssets{}
	address := startServer(t, stub)

	client, err := rpccalls.NewClient(true, address, false, nil)
	require.Nil(t, err, "connect")
	defer client.Close()

	_, err = client.CreateAsset(&rpccalls.CreateData{})
	assert.Equal(t, fault.InvalidAccount, err, "no creator")

	_, err = client.Transfer(&rpccalls.TransferData{Owner: privateKey(t)})
	assert.Equal(t, fault.InvalidAccount, err, "no recipient")

	_, err = client.Issue(&rpccalls.IssueData{})
	assert.Equal(t, fault.InvalidAccount, err, "no issuer")

	_, err = client.GetBalance(0, privateKey(t), nil)
	assert.Equal(t, fault.InvalidAccount, err, "no owner")

	_, err = client.GetBalance(0, nil, privateKey(t).Account())
	assert.Equal(t, fault.InvalidAccount, err, "no requester")

	assert.Equal(t, 0, len(stub.creates)+len(stub.transfers)+len(stub.issues)+len(stub.queries), "nothing sent")
}

func TestClientRejectsAlteredRecord(t *testing.T) {
	stub := &stubAssets{tamper: true}
	address := startServer(t, stub)

	client, err := rpccalls.NewClient(true, address, false, nil)
	require.Nil(t, err, "connect")
	defer client.Close()

	_, err = client.CreateAsset(&rpccalls.CreateData{
		Creator:       privateKey(t),
		InitialSupply: 1,
		Nonce:         1,
	})
	assert.Equal(t, fault.RecordMismatch, err, "altered record")
}

func TestConnectFailure(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err, "listen")
	address := listener.Addr().String()
	listener.Close()

	_, err = rpccalls.NewClient(true, address, false, nil)
	assert.NotNil(t, err, "nothing listening")
}
