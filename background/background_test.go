// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/background"
)

type counter struct {
	started  chan struct{}
	count    int
	finished bool
}

func (c *counter) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(int)
	close(c.started)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			c.count += step
		}
	}
	c.finished = true
}

func TestStartStop(t *testing.T) {
	p1 := &counter{started: make(chan struct{})}
	p2 := &counter{started: make(chan struct{})}

	b := background.Start(background.Processes{p1, p2}, 3)
	<-p1.started
	<-p2.started
	time.Sleep(20 * time.Millisecond)
	b.Stop()

	assert.True(t, p1.finished, "p1 finished")
	assert.True(t, p2.finished, "p2 finished")
	assert.Equal(t, 0, p1.count%3, "p1 step")

	// second stop is harmless
	b.Stop()
}

func TestStopNil(t *testing.T) {
	var b *background.T
	b.Stop()
}
