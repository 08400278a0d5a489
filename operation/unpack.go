// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/util"
)

// reads fields sequentially from a packed record
type unpacker struct {
	record  Packed
	n       int
	testnet bool
	err     error
}

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	switch op := result.(type) {
//	case *operation.Transfer:
//
// returns the number of bytes consumed; the signature is not checked
func (record Packed) Unpack(testnet bool) (Operation, int, error) {

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.NotOperationPack
	}

	u := &unpacker{
		record:  record,
		n:       n,
		testnet: testnet,
	}

	var op Operation

	switch TagType(recordType) {

	case CreateAssetTag:
		r := &CreateAsset{}
		r.Creator = u.account()
		r.InitialSupply = u.uint64()
		r.Nonce = u.uint64()
		r.Signature = u.signature()
		op = r

	case TransferTag:
		r := &Transfer{}
		r.Owner = u.account()
		r.AssetId = u.uint64()
		r.To = u.account()
		r.Amount = u.uint64()
		r.Nonce = u.uint64()
		r.Signature = u.signature()
		op = r

	case IssueTag:
		r := &Issue{}
		r.Issuer = u.account()
		r.AssetId = u.uint64()
		r.Amount = u.uint64()
		r.Nonce = u.uint64()
		r.Signature = u.signature()
		op = r

	case QueryTag:
		r := &Query{}
		r.Requester = u.account()
		r.AssetId = u.uint64()
		r.Account = u.account()
		r.Signature = u.signature()
		op = r

	default:
		return nil, 0, fault.UnknownRecordType
	}

	if nil != u.err {
		return nil, 0, u.err
	}
	return op, u.n, nil
}

func (u *unpacker) uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := util.FromVarint64(u.record[u.n:])
	if 0 == n {
		u.err = fault.RecordTruncated
		return 0
	}
	u.n += n
	return value
}

func (u *unpacker) bytes() []byte {
	if nil != u.err {
		return nil
	}
	data, n := util.FromBytes(u.record[u.n:])
	if 0 == n {
		u.err = fault.RecordTruncated
		return nil
	}
	u.n += n
	return data
}

func (u *unpacker) account() *account.Account {
	data := u.bytes()
	if nil != u.err {
		return nil
	}
	a, err := account.FromBytes(data)
	if nil != err {
		u.err = err
		return nil
	}
	if a.IsTesting() != u.testnet {
		u.err = fault.WrongNetworkForPublicKey
		return nil
	}
	return a
}

func (u *unpacker) signature() account.Signature {
	data := u.bytes()
	if nil != u.err {
		return nil
	}
	if len(data) > maxSignatureLength {
		u.err = fault.InvalidSignature
		return nil
	}
	return account.Signature(data)
}
