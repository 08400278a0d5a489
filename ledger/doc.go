// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - multi-asset token ledger
//
// Keeps, per asset, a total supply and a balance per account and
// assigns asset ids from a persistent counter.  Each mutating operation
// runs as one storage transaction: every precondition is checked before
// the first write and a rejected call leaves storage untouched.
//
// Invariants after each committed operation:
//
//	total supply of an asset == sum of the balances of that asset
//	next asset id > every asset id ever assigned
//	an asset exists iff it has a total supply record
package ledger
