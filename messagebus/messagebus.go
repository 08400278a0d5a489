// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"go.uber.org/atomic"
)

// internal constants
const (
	queueSize       = 1000
	defaultListener = 100
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters []interface{}
}

// Queue - a single reader queue
type Queue struct {
	c chan Message
}

// BroadcastQueue - fan out to any number of listeners
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
	dropped   atomic.Uint64
}

// the exported message queues
type busses struct {
	Events    *BroadcastQueue
	TestQueue *Queue
}

// Bus - all available message queues
var Bus = busses{
	Events:    &BroadcastQueue{},
	TestQueue: &Queue{c: make(chan Message, queueSize)},
}

// Send - add a message to the queue
func (queue *Queue) Send(command string, parameters ...interface{}) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Send - deliver a message to every listener
//
// never blocks: a listener whose buffer is full misses the message
// and the miss is counted
func (queue *BroadcastQueue) Send(command string, parameters ...interface{}) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
			queue.dropped.Inc()
		}
	}
}

// Chan - register a new listener
//
// size <= 0 selects a default buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultListener
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, listener := range queue.listeners {
		if (<-chan Message)(listener) == c {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			close(listener)
			return
		}
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}

// Dropped - total messages missed by full listeners
func (queue *BroadcastQueue) Dropped() uint64 {
	return queue.dropped.Load()
}
