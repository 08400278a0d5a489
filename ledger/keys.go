// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
)

const assetIdSize = 8

var nextAssetIdKey = []byte("next-asset-id")

// total supply key: asset id
func assetKey(asset AssetId) []byte {
	key := make([]byte, assetIdSize)
	binary.BigEndian.PutUint64(key, uint64(asset))
	return key
}

// balance key: asset id ++ account
func balanceKey(asset AssetId, account AccountId) []byte {
	a := account.Bytes()
	key := make([]byte, assetIdSize, assetIdSize+len(a))
	binary.BigEndian.PutUint64(key, uint64(asset))
	return append(key, a...)
}

func assetFromKey(key []byte) (AssetId, bool) {
	if len(key) < assetIdSize {
		return 0, false
	}
	return AssetId(binary.BigEndian.Uint64(key[:assetIdSize])), true
}
