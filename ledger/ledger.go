// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/storage"
)

// Pools - the storage pools holding ledger state
type Pools struct {
	TotalSupply *storage.PoolHandle
	Balances    *storage.PoolHandle
	Counters    *storage.PoolHandle
	Nonces      *storage.PoolHandle
}

// DefaultPools - the pools of the opened database
func DefaultPools() Pools {
	return Pools{
		TotalSupply: storage.Pool.TotalSupply,
		Balances:    storage.Pool.Balances,
		Counters:    storage.Pool.Counters,
		Nonces:      storage.Pool.Nonces,
	}
}

// Ledger - the asset state machine
//
// calls must be serialised by the caller; a concurrent mutating call
// fails with fault.TransactionAlreadyInUse
type Ledger struct {
	log   *logger.L
	pools Pools
	sink  Sink
}

// New - create a ledger over storage pools
//
// sink may be nil if notifications are not needed
func New(pools Pools, sink Sink, log *logger.L) *Ledger {
	return &Ledger{
		log:   log,
		pools: pools,
		sink:  sink,
	}
}

// CreateAsset - create a new asset owned entirely by creator
//
// any initial supply, including zero, is accepted
func (l *Ledger) CreateAsset(creator AccountId, initialSupply Balance) (AssetId, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	n, _ := trx.GetN(l.pools.Counters, nextAssetIdKey)
	assetId := AssetId(n)
	if MaximumAssetId == assetId {
		trx.Abort()
		l.log.Debugf("create asset: creator: %s  error: %s", creator, fault.Overflow)
		return 0, fault.Overflow
	}

	trx.PutN(l.pools.Counters, nextAssetIdKey, uint64(assetId+1))
	trx.PutN(l.pools.TotalSupply, assetKey(assetId), uint64(initialSupply))
	trx.PutN(l.pools.Balances, balanceKey(assetId, creator), uint64(initialSupply))

	if err := trx.Commit(); nil != err {
		l.log.Errorf("create asset: commit error: %s", err)
		return 0, err
	}

	l.log.Infof("created asset: %d  creator: %s  supply: %d", assetId, creator, initialSupply)
	l.notify(CommandAssetCreated, AssetCreated{
		AssetId:       assetId,
		Creator:       creator,
		InitialSupply: initialSupply,
	})

	return assetId, nil
}

// Transfer - move amount of an asset from caller to another account
//
// an asset that does not exist behaves as a zero balance
func (l *Ledger) Transfer(caller AccountId, assetId AssetId, to AccountId, amount Balance) error {
	if sameAccount(caller, to) {
		l.log.Debugf("transfer: asset: %d  from: %s  error: %s", assetId, caller, fault.TransferToSelf)
		return fault.TransferToSelf
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	fromKey := balanceKey(assetId, caller)
	toKey := balanceKey(assetId, to)

	fromBalance, toBalance, err := l.transferBalances(trx, fromKey, toKey, amount)
	if nil != err {
		trx.Abort()
		l.log.Debugf("transfer: asset: %d  from: %s  to: %s  amount: %d  error: %s", assetId, caller, to, amount, err)
		return err
	}

	trx.PutN(l.pools.Balances, fromKey, uint64(fromBalance))
	trx.PutN(l.pools.Balances, toKey, uint64(toBalance))

	if err := trx.Commit(); nil != err {
		l.log.Errorf("transfer: commit error: %s", err)
		return err
	}

	l.log.Infof("transferred asset: %d  from: %s  to: %s  amount: %d", assetId, caller, to, amount)
	l.notify(CommandTransferred, Transferred{
		AssetId: assetId,
		From:    caller,
		To:      to,
		Amount:  amount,
	})

	return nil
}

// compute the new sender and recipient balances
func (l *Ledger) transferBalances(trx storage.Transaction, fromKey []byte, toKey []byte, amount Balance) (Balance, Balance, error) {
	n, _ := trx.GetN(l.pools.Balances, fromKey)
	fromBalance := Balance(n)
	if fromBalance < amount {
		return 0, 0, fault.InsufficientBalance
	}

	newFrom, err := fromBalance.Sub(amount)
	if nil != err {
		return 0, 0, err
	}

	n, _ = trx.GetN(l.pools.Balances, toKey)
	newTo, err := Balance(n).Add(amount)
	if nil != err {
		return 0, 0, err
	}

	return newFrom, newTo, nil
}

// IssueTokens - create new supply of an existing asset for caller
//
// any account may issue any existing asset
func (l *Ledger) IssueTokens(caller AccountId, assetId AssetId, amount Balance) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	supplyKey := assetKey(assetId)
	callerKey := balanceKey(assetId, caller)

	supply, balance, err := l.issueAmounts(trx, supplyKey, callerKey, amount)
	if nil != err {
		trx.Abort()
		l.log.Debugf("issue: asset: %d  issuer: %s  amount: %d  error: %s", assetId, caller, amount, err)
		return err
	}

	trx.PutN(l.pools.TotalSupply, supplyKey, uint64(supply))
	trx.PutN(l.pools.Balances, callerKey, uint64(balance))

	if err := trx.Commit(); nil != err {
		l.log.Errorf("issue: commit error: %s", err)
		return err
	}

	l.log.Infof("issued asset: %d  issuer: %s  amount: %d  supply: %d", assetId, caller, amount, supply)
	l.notify(CommandTokensIssued, TokensIssued{
		AssetId: assetId,
		Issuer:  caller,
		Amount:  amount,
	})

	return nil
}

// compute the new total supply and issuer balance
func (l *Ledger) issueAmounts(trx storage.Transaction, supplyKey []byte, callerKey []byte, amount Balance) (Balance, Balance, error) {
	n, found := trx.GetN(l.pools.TotalSupply, supplyKey)
	if !found {
		return 0, 0, fault.AssetNotFound
	}

	supply, err := Balance(n).Add(amount)
	if nil != err {
		return 0, 0, err
	}

	n, _ = trx.GetN(l.pools.Balances, callerKey)
	balance, err := Balance(n).Add(amount)
	if nil != err {
		return 0, 0, err
	}

	return supply, balance, nil
}

// GetBalance - balance of account and total supply of an asset
//
// both are zero if the asset or the balance record is absent
func (l *Ledger) GetBalance(assetId AssetId, account AccountId) (Balance, Balance) {
	balance, _ := l.pools.Balances.GetN(balanceKey(assetId, account))
	supply, _ := l.pools.TotalSupply.GetN(assetKey(assetId))
	return Balance(balance), Balance(supply)
}

// TotalSupply - total supply and existence of an asset
func (l *Ledger) TotalSupply(assetId AssetId) (Balance, bool) {
	supply, found := l.pools.TotalSupply.GetN(assetKey(assetId))
	return Balance(supply), found
}

// NextAssetId - the id the next created asset will receive
func (l *Ledger) NextAssetId() AssetId {
	n, _ := l.pools.Counters.GetN(nextAssetIdKey)
	return AssetId(n)
}

func (l *Ledger) notify(command string, event interface{}) {
	if nil == l.sink {
		return
	}
	l.sink.Send(command, event)
}
