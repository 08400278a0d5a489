// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assets - RPC surface of the ledger
//
// mutating calls carry a signed operation record; the signature
// authenticates the caller passed to the ledger
package assets

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/mode"
	"github.com/bitmark-inc/tokenledger/operation"
	"github.com/bitmark-inc/tokenledger/rpc/ratelimit"
)

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Ledger - the ledger operations used by the RPC
type Ledger interface {
	CreateAsset(ledger.AccountId, ledger.Balance) (ledger.AssetId, error)
	Transfer(ledger.AccountId, ledger.AssetId, ledger.AccountId, ledger.Balance) error
	IssueTokens(ledger.AccountId, ledger.AssetId, ledger.Balance) error
	GetBalance(ledger.AssetId, ledger.AccountId) (ledger.Balance, ledger.Balance)
	RecordNonce(ledger.AccountId, uint64) error
}

// Assets - type for the RPC
type Assets struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	Ledger         Ledger
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool

	// serialises all ledger calls
	lock *sync.Mutex
}

// New - create the RPC service
func New(log *logger.L, l Ledger, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Assets {
	return &Assets{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Ledger:         l,
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		lock:           &sync.Mutex{},
	}
}

// CreateReply - result of creating an asset
type CreateReply struct {
	AssetId ledger.AssetId   `json:"assetId"`
	Digest  string           `json:"digest"`
	Record  operation.Packed `json:"record"`
}

// OperationReply - result of a transfer or issue
type OperationReply struct {
	Digest string           `json:"digest"`
	Record operation.Packed `json:"record"`
}

// BalanceReply - result of a balance query
type BalanceReply struct {
	Balance     ledger.Balance `json:"balance"`
	TotalSupply ledger.Balance `json:"totalSupply"`
}

// Create - create a new asset
func (assets *Assets) Create(arguments *operation.CreateAsset, reply *CreateReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	packed, err := assets.authorise("Assets.Create", arguments, true)
	if nil != err {
		return err
	}

	return assets.apply(arguments.Creator, arguments.Nonce, func() error {
		assetId, err := assets.Ledger.CreateAsset(arguments.Creator, ledger.Balance(arguments.InitialSupply))
		if nil != err {
			return err
		}
		reply.AssetId = assetId
		reply.Digest = packed.Digest().String()
		reply.Record = packed
		return nil
	})
}

// Transfer - move tokens to another account
func (assets *Assets) Transfer(arguments *operation.Transfer, reply *OperationReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	packed, err := assets.authorise("Assets.Transfer", arguments, true)
	if nil != err {
		return err
	}
	if err := assets.checkNetwork(arguments.To); nil != err {
		return err
	}

	return assets.apply(arguments.Owner, arguments.Nonce, func() error {
		err := assets.Ledger.Transfer(arguments.Owner, ledger.AssetId(arguments.AssetId), arguments.To, ledger.Balance(arguments.Amount))
		if nil != err {
			return err
		}
		reply.Digest = packed.Digest().String()
		reply.Record = packed
		return nil
	})
}

// Issue - issue new tokens of an existing asset
func (assets *Assets) Issue(arguments *operation.Issue, reply *OperationReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	packed, err := assets.authorise("Assets.Issue", arguments, true)
	if nil != err {
		return err
	}

	return assets.apply(arguments.Issuer, arguments.Nonce, func() error {
		err := assets.Ledger.IssueTokens(arguments.Issuer, ledger.AssetId(arguments.AssetId), ledger.Balance(arguments.Amount))
		if nil != err {
			return err
		}
		reply.Digest = packed.Digest().String()
		reply.Record = packed
		return nil
	})
}

// Balance - read an account balance and the asset total supply
//
// any signed caller may query any account, in any mode
func (assets *Assets) Balance(arguments *operation.Query, reply *BalanceReply) error {
	if nil == arguments || nil == arguments.Account {
		return fault.MissingParameters
	}

	if _, err := assets.authorise("Assets.Balance", arguments, false); nil != err {
		return err
	}

	if err := assets.checkNetwork(arguments.Account); nil != err {
		return err
	}

	assetId := ledger.AssetId(arguments.AssetId)

	assets.lock.Lock()
	balance, supply := assets.Ledger.GetBalance(assetId, arguments.Account)
	assets.lock.Unlock()

	reply.Balance = balance
	reply.TotalSupply = supply

	return nil
}

// common checks for all signed records
//
// mutating records are only accepted in normal mode
func (assets *Assets) authorise(name string, op operation.Operation, mutating bool) (operation.Packed, error) {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return nil, err
	}

	if mutating && !assets.IsNormalMode(mode.Normal) {
		return nil, fault.NotAvailable
	}

	if err := assets.checkNetwork(op.Caller()); nil != err {
		return nil, err
	}

	packed, err := op.Pack(op.Caller())
	if nil != err {
		assets.Log.Debugf("%s: caller: %s  error: %s", name, op.Caller(), err)
		return nil, err
	}

	assets.Log.Infof("%s: caller: %s  digest: %s", name, op.Caller(), packed.Digest())

	return packed, nil
}

// consume the caller's nonce then run one ledger operation
//
// the nonce stays consumed if the operation fails, so a signed
// record can reach the ledger at most once
func (assets *Assets) apply(caller *account.Account, nonce uint64, f func() error) error {
	assets.lock.Lock()
	defer assets.lock.Unlock()

	if err := assets.Ledger.RecordNonce(caller, nonce); nil != err {
		return err
	}

	return f()
}

func (assets *Assets) checkNetwork(a *account.Account) error {
	if nil == a {
		return fault.InvalidAccount
	}
	if a.IsTesting() != assets.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}
	return nil
}
