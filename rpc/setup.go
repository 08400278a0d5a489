// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the client JSON-RPC over TLS host for the ledger
package rpc

import (
	"net"
	"sync"

	"go.uber.org/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/rpc/certificate"
	"github.com/bitmark-inc/tokenledger/rpc/listeners"
	"github.com/bitmark-inc/tokenledger/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// open connections
	count *atomic.Uint64

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start listening for clients
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string, l *ledger.Ledger) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	globalData.count = atomic.NewUint64(0)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		globalData.count,
		server.Create(log, version, globalData.count, l),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Close()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Addresses - the bound listen addresses, empty if not running
func Addresses() []net.Addr {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return []net.Addr{}
	}
	return globalData.listener.Addresses()
}
