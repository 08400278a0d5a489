// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// notification commands
const (
	CommandAssetCreated = "asset-created"
	CommandTransferred  = "transferred"
	CommandTokensIssued = "tokens-issued"
)

// Sink - receives one notification per committed operation
type Sink interface {
	Send(command string, parameters ...interface{})
}

// AssetCreated - parameter of CommandAssetCreated
type AssetCreated struct {
	AssetId       AssetId   `json:"assetId"`
	Creator       AccountId `json:"creator"`
	InitialSupply Balance   `json:"initialSupply"`
}

// Transferred - parameter of CommandTransferred
type Transferred struct {
	AssetId AssetId   `json:"assetId"`
	From    AccountId `json:"from"`
	To      AccountId `json:"to"`
	Amount  Balance   `json:"amount"`
}

// TokensIssued - parameter of CommandTokensIssued
type TokensIssued struct {
	AssetId AssetId   `json:"assetId"`
	Issuer  AccountId `json:"issuer"`
	Amount  Balance   `json:"amount"`
}
