// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/operation"
)

func makeKey(t *testing.T, test bool) *account.PrivateKey {
	seed, err := account.NewSeed(test)
	require.Nil(t, err, "new seed")
	key, err := account.PrivateKeyFromBase58Seed(seed)
	require.Nil(t, err, "private key")
	return key
}

func TestPackUnpackTransfer(t *testing.T) {
	owner := makeKey(t, true)
	recipient := makeKey(t, true)

	r := &operation.Transfer{
		Owner:   owner.Account(),
		AssetId: 7,
		To:      recipient.Account(),
		Amount:  300,
		Nonce:   12345,
	}
	require.Nil(t, r.Sign(owner), "sign")

	packed, err := r.Pack(owner.Account())
	require.Nil(t, err, "pack")
	assert.Equal(t, operation.TransferTag, packed.Type(), "type")

	unpacked, n, err := packed.Unpack(true)
	require.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "consumed")

	transfer, ok := unpacked.(*operation.Transfer)
	require.True(t, ok, "record type")
	assert.Equal(t, r, transfer, "record")
	assert.True(t, owner.Account().Equal(transfer.Caller()), "caller")

	name, ok := operation.RecordName(unpacked)
	assert.True(t, ok, "known")
	assert.Equal(t, "Transfer", name, "name")

	repacked, err := transfer.Pack(transfer.Caller())
	assert.Nil(t, err, "repack")
	assert.Equal(t, packed, repacked, "repacked bytes")
}

func TestPackCreateAndIssue(t *testing.T) {
	key := makeKey(t, false)

	create := &operation.CreateAsset{
		Creator:       key.Account(),
		InitialSupply: 0,
		Nonce:         1,
	}
	require.Nil(t, create.Sign(key), "sign create")
	packed, err := create.Pack(key.Account())
	require.Nil(t, err, "pack create")

	unpacked, _, err := packed.Unpack(false)
	require.Nil(t, err, "unpack create")
	assert.Equal(t, create, unpacked, "create")

	issue := &operation.Issue{
		Issuer:  key.Account(),
		AssetId: 0,
		Amount:  500,
		Nonce:   2,
	}
	require.Nil(t, issue.Sign(key), "sign issue")
	packed, err = issue.Pack(key.Account())
	require.Nil(t, err, "pack issue")

	unpacked, _, err = packed.Unpack(false)
	require.Nil(t, err, "unpack issue")
	assert.Equal(t, issue, unpacked, "issue")
}

func TestPackRejectsWrongSigner(t *testing.T) {
	owner := makeKey(t, true)
	other := makeKey(t, true)

	r := &operation.Issue{
		Issuer:  owner.Account(),
		AssetId: 1,
		Amount:  10,
		Nonce:   3,
	}
	require.Nil(t, r.Sign(other), "sign")

	message, err := r.Pack(owner.Account())
	assert.Equal(t, fault.InvalidSignature, err, "signature")
	assert.NotNil(t, message, "unsigned message returned")

	r.Signature = nil
	_, err = r.Pack(owner.Account())
	assert.Equal(t, fault.InvalidSignature, err, "missing signature")

	r.Signature = make(account.Signature, 65)
	_, err = r.Pack(owner.Account())
	assert.Equal(t, fault.InvalidSignature, err, "long signature")
}

func TestPackRejectsTamperedField(t *testing.T) {
	owner := makeKey(t, true)

	r := &operation.Transfer{
		Owner:   owner.Account(),
		AssetId: 1,
		To:      makeKey(t, true).Account(),
		Amount:  10,
		Nonce:   4,
	}
	require.Nil(t, r.Sign(owner), "sign")

	r.Amount = 11
	_, err := r.Pack(owner.Account())
	assert.Equal(t, fault.InvalidSignature, err, "tampered amount")
}

func TestPackMissingAccount(t *testing.T) {
	r := &operation.Transfer{AssetId: 1}
	_, err := r.Pack(nil)
	assert.Equal(t, fault.InvalidAccount, err, "nil accounts")

	c := &operation.CreateAsset{}
	assert.Equal(t, fault.InvalidAccount, c.Sign(makeKey(t, true)), "sign without creator")
}

func TestUnpackErrors(t *testing.T) {
	key := makeKey(t, true)
	r := &operation.CreateAsset{
		Creator:       key.Account(),
		InitialSupply: 1000,
		Nonce:         5,
	}
	require.Nil(t, r.Sign(key), "sign")
	packed, err := r.Pack(key.Account())
	require.Nil(t, err, "pack")

	_, _, err = packed.Unpack(false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong network")

	for i := 1; i < len(packed); i += 1 {
		_, _, err := packed[:i].Unpack(true)
		assert.NotNil(t, err, "truncated at: %d", i)
	}

	_, _, err = operation.Packed{}.Unpack(true)
	assert.Equal(t, fault.NotOperationPack, err, "empty")

	_, _, err = operation.Packed{0x7f, 0x00}.Unpack(true)
	assert.Equal(t, fault.UnknownRecordType, err, "unknown tag")
	assert.Equal(t, operation.NullTag, operation.Packed{0x7f}.Type(), "unknown type")
}

func TestDigest(t *testing.T) {
	key := makeKey(t, true)
	r := &operation.CreateAsset{
		Creator: key.Account(),
		Nonce:   1,
	}
	require.Nil(t, r.Sign(key), "sign")
	p1, err := r.Pack(key.Account())
	require.Nil(t, err, "pack 1")

	r.Nonce = 2
	require.Nil(t, r.Sign(key), "sign")
	p2, err := r.Pack(key.Account())
	require.Nil(t, err, "pack 2")

	assert.Equal(t, p1.Digest(), p1.Digest(), "stable")
	assert.NotEqual(t, p1.Digest(), p2.Digest(), "nonce changes digest")
	assert.Equal(t, 64, len(p1.Digest().String()), "hex length")
}

func TestPackUnpackQuery(t *testing.T) {
	requester := makeKey(t, true)
	owner := makeKey(t, true).Account()

	q := &operation.Query{
		Requester: requester.Account(),
		AssetId:   3,
		Account:   owner,
	}
	require.Nil(t, q.Sign(requester), "sign")

	packed, err := q.Pack(q.Caller())
	require.Nil(t, err, "pack")
	assert.Equal(t, operation.QueryTag, packed.Type(), "type")

	unpacked, n, err := packed.Unpack(true)
	require.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "consumed")
	assert.Equal(t, q, unpacked, "query")

	name, ok := operation.RecordName(unpacked)
	assert.True(t, ok, "known")
	assert.Equal(t, "Query", name, "name")

	q.AssetId = 4
	_, err = q.Pack(q.Caller())
	assert.Equal(t, fault.InvalidSignature, err, "tampered asset")

	q.Account = nil
	_, err = q.Pack(requester.Account())
	assert.Equal(t, fault.InvalidAccount, err, "no account")
}

func TestPackedText(t *testing.T) {
	key := makeKey(t, true)
	r := &operation.Issue{
		Issuer:  key.Account(),
		AssetId: 2,
		Amount:  9,
		Nonce:   6,
	}
	require.Nil(t, r.Sign(key), "sign")
	packed, err := r.Pack(key.Account())
	require.Nil(t, err, "pack")

	text, err := packed.MarshalText()
	require.Nil(t, err, "marshal")
	assert.Equal(t, 2*len(packed), len(text), "hex length")

	var decoded operation.Packed
	require.Nil(t, decoded.UnmarshalText(text), "unmarshal")
	assert.Equal(t, packed, decoded, "round trip")

	assert.NotNil(t, decoded.UnmarshalText([]byte("zz")), "not hex")
}
