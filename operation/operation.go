// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation - signed ledger operation records
//
// Each record packs as Varint64(tag) followed by its fields in struct
// order with the signature last.  The signature covers every byte
// before it and must be made by the calling account.
package operation

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	CreateAssetTag = TagType(iota)
	TransferTag    = TagType(iota)
	IssueTag       = TagType(iota)
	QueryTag       = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Operation - any signed record
type Operation interface {
	Caller() *account.Account
	Pack(*account.Account) (Packed, error)
	Sign(*account.PrivateKey) error
}

// CreateAsset - create a new asset with an initial supply
type CreateAsset struct {
	Creator       *account.Account  `json:"creator"`       // base58
	InitialSupply uint64            `json:"initialSupply"` // may be zero
	Nonce         uint64            `json:"nonce"`         // unique per caller
	Signature     account.Signature `json:"signature"`     // hex
}

// Transfer - move an amount of an asset to another account
type Transfer struct {
	Owner     *account.Account  `json:"owner"`     // base58
	AssetId   uint64            `json:"assetId"`   // decimal
	To        *account.Account  `json:"to"`        // base58
	Amount    uint64            `json:"amount"`    // may be zero
	Nonce     uint64            `json:"nonce"`     // unique per caller
	Signature account.Signature `json:"signature"` // hex
}

// Issue - add new supply of an asset to the issuer
type Issue struct {
	Issuer    *account.Account  `json:"issuer"`    // base58
	AssetId   uint64            `json:"assetId"`   // decimal
	Amount    uint64            `json:"amount"`    // may be zero
	Nonce     uint64            `json:"nonce"`     // unique per caller
	Signature account.Signature `json:"signature"` // hex
}

// Query - read the balance of an account and the total supply
//
// signed so that only authenticated callers can read; never replayed
// into the ledger so it carries no nonce
type Query struct {
	Requester *account.Account  `json:"requester"` // base58
	AssetId   uint64            `json:"assetId"`   // decimal
	Account   *account.Account  `json:"account"`   // base58
	Signature account.Signature `json:"signature"` // hex
}

// Caller - the account that must sign
func (c *CreateAsset) Caller() *account.Account { return c.Creator }

// Caller - the account that must sign
func (t *Transfer) Caller() *account.Account { return t.Owner }

// Caller - the account that must sign
func (i *Issue) Caller() *account.Account { return i.Issuer }

// Caller - the account that must sign
func (q *Query) Caller() *account.Account { return q.Requester }

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n || recordType >= uint64(InvalidTag) {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *CreateAsset, CreateAsset:
		return "CreateAsset", true

	case *Transfer, Transfer:
		return "Transfer", true

	case *Issue, Issue:
		return "Issue", true

	case *Query, Query:
		return "Query", true

	default:
		return "*unknown*", false
	}
}

// Digest - SHA3-256 of a packed record
type Digest [32]byte

// Digest - identify a packed record
func (record Packed) Digest() Digest {
	return Digest(sha3.Sum256(record))
}

// String - hex form of a digest
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
