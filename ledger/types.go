// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"math"

	"github.com/bitmark-inc/tokenledger/fault"
)

// AssetId - sequentially assigned asset identifier
type AssetId uint64

// Balance - token amount
type Balance uint64

// MaximumAssetId - once assigned, no further asset can be created
const MaximumAssetId AssetId = math.MaxUint64

// MaximumBalance - largest representable amount
const MaximumBalance Balance = math.MaxUint64

// AccountId - an authenticated identity
//
// two accounts are equal iff their byte encodings are equal
type AccountId interface {
	Bytes() []byte
	String() string
}

// Add - checked addition
func (b Balance) Add(amount Balance) (Balance, error) {
	if amount > MaximumBalance-b {
		return 0, fault.Overflow
	}
	return b + amount, nil
}

// Sub - checked subtraction
func (b Balance) Sub(amount Balance) (Balance, error) {
	if amount > b {
		return 0, fault.Overflow
	}
	return b - amount, nil
}

func sameAccount(a AccountId, b AccountId) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}
