// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. asset id = big endian uint64 (8 bytes)
// 4. account  = account bytes (key variant ++ public key)
// 5. amount   = big endian uint64 (8 bytes)
//
// Supply:
//
//	S ++ asset id              - total supply, present iff the asset exists
//	                             data: amount
//
// Balances:
//
//	B ++ asset id ++ account   - balance of one account for one asset
//	                             data: amount
//
// Counters:
//
//	N ++ name                  - named counters, "next-asset-id"
//	                             data: big endian uint64
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
