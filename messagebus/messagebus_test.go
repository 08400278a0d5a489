// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/messagebus"
)

func TestQueue(t *testing.T) {

	items := []string{"c1", "c2", "c3"}

	for _, item := range items {
		messagebus.Bus.TestQueue.Send(item, 1, "two")
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item, received.Command, "command")
		assert.Equal(t, []interface{}{1, "two"}, received.Parameters, "parameters")
	}
}

func TestBroadcast(t *testing.T) {

	q := &messagebus.BroadcastQueue{}

	items := []string{"c1", "c2", "c3"}

	// nothing listening so these messages should be dropped
	for _, item := range items {
		q.Send("ignored:" + item)
	}
	assert.Equal(t, uint64(0), q.Dropped(), "no listener is not a miss")

	const listeners = 5

	var channels [listeners]<-chan messagebus.Message
	for i := 0; i < listeners; i += 1 {
		channels[i] = q.Chan(len(items))
	}
	assert.Equal(t, listeners, q.Listeners(), "listener count")

	for _, item := range items {
		q.Send(item)
	}

	var wg sync.WaitGroup
	var counts [listeners]int
	for i := 0; i < listeners; i += 1 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for _, item := range items {
				received := <-channels[n]
				if received.Command == item {
					counts[n] += 1
				}
			}
		}(i)
	}
	wg.Wait()

	for i, n := range counts {
		assert.Equal(t, len(items), n, "listener[%d]", i)
	}
}

func TestBroadcastFullListenerDoesNotBlock(t *testing.T) {
	q := &messagebus.BroadcastQueue{}
	c := q.Chan(1)

	q.Send("first")
	q.Send("second")

	received := <-c
	assert.Equal(t, "first", received.Command, "kept")
	assert.Equal(t, uint64(1), q.Dropped(), "second counted as dropped")

	select {
	case m := <-c:
		t.Errorf("unexpected message: %q", m.Command)
	default:
	}
}

func TestBroadcastRelease(t *testing.T) {
	q := &messagebus.BroadcastQueue{}
	c := q.Chan(0)
	assert.Equal(t, 1, q.Listeners(), "registered")

	q.Release(c)
	assert.Equal(t, 0, q.Listeners(), "released")

	_, ok := <-c
	assert.False(t, ok, "channel closed")

	q.Send("after")
}
