// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/util"
)

const (
	maxSignatureLength = ed25519.SignatureSize
)

// Pack - pack a CreateAsset and verify its signature
//
// NOTE: returns the "unsigned" message on signature failure - for
//
//	debugging/testing
func (c *CreateAsset) Pack(address *account.Account) (Packed, error) {
	message, err := c.message(address)
	if nil != err {
		return nil, err
	}
	return signed(message, address, c.Signature)
}

func (c *CreateAsset) message(address *account.Account) (Packed, error) {
	if nil == c.Creator || nil == address {
		return nil, fault.InvalidAccount
	}

	message := util.ToVarint64(uint64(CreateAssetTag))
	message = appendAccount(message, c.Creator)
	message = util.AppendVarint64(message, c.InitialSupply)
	message = util.AppendVarint64(message, c.Nonce)
	return message, nil
}

// Sign - set the signature using the creator's private key
func (c *CreateAsset) Sign(privateKey *account.PrivateKey) error {
	message, err := c.message(c.Creator)
	if nil != err {
		return err
	}
	c.Signature = privateKey.Sign(message)
	return nil
}

// Pack - pack a Transfer and verify its signature
//
// NOTE: returns the "unsigned" message on signature failure - for
//
//	debugging/testing
func (t *Transfer) Pack(address *account.Account) (Packed, error) {
	message, err := t.message(address)
	if nil != err {
		return nil, err
	}
	return signed(message, address, t.Signature)
}

func (t *Transfer) message(address *account.Account) (Packed, error) {
	if nil == t.Owner || nil == t.To || nil == address {
		return nil, fault.InvalidAccount
	}

	message := util.ToVarint64(uint64(TransferTag))
	message = appendAccount(message, t.Owner)
	message = util.AppendVarint64(message, t.AssetId)
	message = appendAccount(message, t.To)
	message = util.AppendVarint64(message, t.Amount)
	message = util.AppendVarint64(message, t.Nonce)
	return message, nil
}

// Sign - set the signature using the owner's private key
func (t *Transfer) Sign(privateKey *account.PrivateKey) error {
	message, err := t.message(t.Owner)
	if nil != err {
		return err
	}
	t.Signature = privateKey.Sign(message)
	return nil
}

// Pack - pack an Issue and verify its signature
//
// NOTE: returns the "unsigned" message on signature failure - for
//
//	debugging/testing
func (i *Issue) Pack(address *account.Account) (Packed, error) {
	message, err := i.message(address)
	if nil != err {
		return nil, err
	}
	return signed(message, address, i.Signature)
}

func (i *Issue) message(address *account.Account) (Packed, error) {
	if nil == i.Issuer || nil == address {
		return nil, fault.InvalidAccount
	}

	message := util.ToVarint64(uint64(IssueTag))
	message = appendAccount(message, i.Issuer)
	message = util.AppendVarint64(message, i.AssetId)
	message = util.AppendVarint64(message, i.Amount)
	message = util.AppendVarint64(message, i.Nonce)
	return message, nil
}

// Sign - set the signature using the issuer's private key
func (i *Issue) Sign(privateKey *account.PrivateKey) error {
	message, err := i.message(i.Issuer)
	if nil != err {
		return err
	}
	i.Signature = privateKey.Sign(message)
	return nil
}

// Pack - pack a Query and verify its signature
func (q *Query) Pack(address *account.Account) (Packed, error) {
	message, err := q.message(address)
	if nil != err {
		return nil, err
	}
	return signed(message, address, q.Signature)
}

func (q *Query) message(address *account.Account) (Packed, error) {
	if nil == q.Requester || nil == q.Account || nil == address {
		return nil, fault.InvalidAccount
	}

	message := util.ToVarint64(uint64(QueryTag))
	message = appendAccount(message, q.Requester)
	message = util.AppendVarint64(message, q.AssetId)
	message = appendAccount(message, q.Account)
	return message, nil
}

// Sign - set the signature using the requester's private key
func (q *Query) Sign(privateKey *account.PrivateKey) error {
	message, err := q.message(q.Requester)
	if nil != err {
		return err
	}
	q.Signature = privateKey.Sign(message)
	return nil
}

// check the signature and append it
func signed(message Packed, address *account.Account, signature account.Signature) (Packed, error) {
	if len(signature) > maxSignatureLength {
		return nil, fault.InvalidSignature
	}
	if err := address.CheckSignature(message, signature); nil != err {
		return message, err
	}
	return util.AppendBytes(message, signature), nil
}

func appendAccount(buffer Packed, address *account.Account) Packed {
	return util.AppendBytes(buffer, address.Bytes())
}
