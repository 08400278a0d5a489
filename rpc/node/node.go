// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC for the daemon status
package node

import (
	"time"

	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/mode"
	"github.com/bitmark-inc/tokenledger/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Counter - source of the next asset id
type Counter interface {
	NextAssetId() ledger.AssetId
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Ledger  Counter
	counter *atomic.Uint64
}

// New - create the RPC service
func New(log *logger.L, l Counter, start time.Time, version string, counter *atomic.Uint64) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Ledger:  l,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info
type InfoArguments struct{}

// InfoReply - result from info RPC
type InfoReply struct {
	Chain       string         `json:"chain"`
	Mode        string         `json:"mode"`
	Version     string         `json:"version"`
	Uptime      string         `json:"uptime"`
	NextAssetId ledger.AssetId `json:"nextAssetId"`
	RPCs        uint64         `json:"rpcs"`
}

// Info - return some information about this node
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.NextAssetId = node.Ledger.NextAssetId()
	reply.RPCs = node.counter.Load()

	return nil
}
