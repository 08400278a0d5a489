// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 2)

	start := time.Now()
	for i := 0; i < 4; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "request: %d", i)
	}
	assert.True(t, time.Since(start) >= 15*time.Millisecond, "delayed after burst")
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(10, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "cannot reserve")
}
