// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register all RPC services
package server

import (
	"net/rpc"
	"time"

	"go.uber.org/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/mode"
	"github.com/bitmark-inc/tokenledger/rpc/assets"
	"github.com/bitmark-inc/tokenledger/rpc/node"
)

// Create - an RPC server with the Assets and Node services
func Create(log *logger.L, version string, rpcCount *atomic.Uint64, l *ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, l, mode.Is, mode.IsTesting))
	_ = server.Register(node.New(log, l, start, version, rpcCount))

	return server
}
