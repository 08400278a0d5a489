// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/operation"
	"github.com/bitmark-inc/tokenledger/rpc/assets"
)

// CreateData - data for a create request
type CreateData struct {
	Creator       *account.PrivateKey
	InitialSupply uint64
	Nonce         uint64
}

// TransferData - data for a transfer request
type TransferData struct {
	Owner   *account.PrivateKey
	AssetId uint64
	To      *account.Account
	Amount  uint64
	Nonce   uint64
}

// IssueData - data for an issue request
type IssueData struct {
	Issuer  *account.PrivateKey
	AssetId uint64
	Amount  uint64
	Nonce   uint64
}

// CreateReply - JSON data to output after create completes
type CreateReply struct {
	AssetId ledger.AssetId   `json:"assetId"`
	Digest  string           `json:"digest"`
	Record  operation.Packed `json:"record"`
}

// OperationReply - JSON data to output after a transfer or issue completes
type OperationReply struct {
	Digest string           `json:"digest"`
	Record operation.Packed `json:"record"`
}

// BalanceReply - JSON data to output for a balance query
type BalanceReply struct {
	AssetId     ledger.AssetId   `json:"assetId"`
	Account     *account.Account `json:"account"`
	Balance     ledger.Balance   `json:"balance"`
	TotalSupply ledger.Balance   `json:"totalSupply"`
}

// CreateAsset - sign and send a create asset operation
func (client *Client) CreateAsset(data *CreateData) (*CreateReply, error) {
	if nil == data.Creator {
		return nil, fault.InvalidAccount
	}

	create := &operation.CreateAsset{
		Creator:       data.Creator.Account(),
		InitialSupply: data.InitialSupply,
		Nonce:         data.Nonce,
	}
	packed, err := sign(create, data.Creator)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Request", create)

	var reply assets.CreateReply
	if err := client.client.Call("Assets.Create", create, &reply); nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	if err := checkRecord(packed, reply.Record, reply.Digest); nil != err {
		return nil, err
	}

	return &CreateReply{
		AssetId: reply.AssetId,
		Digest:  reply.Digest,
		Record:  reply.Record,
	}, nil
}

// Transfer - sign and send a transfer operation
func (client *Client) Transfer(data *TransferData) (*OperationReply, error) {
	if nil == data.Owner || nil == data.To {
		return nil, fault.InvalidAccount
	}

	transfer := &operation.Transfer{
		Owner:   data.Owner.Account(),
		AssetId: data.AssetId,
		To:      data.To,
		Amount:  data.Amount,
		Nonce:   data.Nonce,
	}
	packed, err := sign(transfer, data.Owner)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Request", transfer)

	var reply assets.OperationReply
	if err := client.client.Call("Assets.Transfer", transfer, &reply); nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	if err := checkRecord(packed, reply.Record, reply.Digest); nil != err {
		return nil, err
	}

	return &OperationReply{Digest: reply.Digest, Record: reply.Record}, nil
}

// Issue - sign and send an issue operation
func (client *Client) Issue(data *IssueData) (*OperationReply, error) {
	if nil == data.Issuer {
		return nil, fault.InvalidAccount
	}

	issue := &operation.Issue{
		Issuer:  data.Issuer.Account(),
		AssetId: data.AssetId,
		Amount:  data.Amount,
		Nonce:   data.Nonce,
	}
	packed, err := sign(issue, data.Issuer)
	if nil != err {
		return nil, err
	}

	client.printJson("Issue Request", issue)

	var reply assets.OperationReply
	if err := client.client.Call("Assets.Issue", issue, &reply); nil != err {
		return nil, err
	}

	client.printJson("Issue Reply", reply)

	if err := checkRecord(packed, reply.Record, reply.Digest); nil != err {
		return nil, err
	}

	return &OperationReply{Digest: reply.Digest, Record: reply.Record}, nil
}

// GetBalance - fetch the balance of an account and the total supply
//
// the query is signed by the requester
func (client *Client) GetBalance(assetId uint64, requester *account.PrivateKey, owner *account.Account) (*BalanceReply, error) {
	if nil == requester || nil == owner {
		return nil, fault.InvalidAccount
	}

	query := &operation.Query{
		Requester: requester.Account(),
		AssetId:   assetId,
		Account:   owner,
	}
	if _, err := sign(query, requester); nil != err {
		return nil, err
	}

	client.printJson("Balance Request", query)

	var reply assets.BalanceReply
	if err := client.client.Call("Assets.Balance", query, &reply); nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return &BalanceReply{
		AssetId:     ledger.AssetId(assetId),
		Account:     owner,
		Balance:     reply.Balance,
		TotalSupply: reply.TotalSupply,
	}, nil
}

// sign and check the result by packing again
func sign(op operation.Operation, privateKey *account.PrivateKey) (operation.Packed, error) {
	if err := op.Sign(privateKey); nil != err {
		return nil, err
	}
	return op.Pack(op.Caller())
}

// the node must return exactly the record that was sent
func checkRecord(sent operation.Packed, received operation.Packed, digest string) error {
	if !bytes.Equal(sent, received) || received.Digest().String() != digest {
		return fault.RecordMismatch
	}
	return nil
}
