// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/messagebus"
	"github.com/bitmark-inc/tokenledger/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	eventQueueSize       = 1000
	heartbeatInterval    = 60 * time.Second
	heartbeatCommand     = "heart"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string) error {
	brdc.log = log

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.socket4 = socket4
	brdc.socket6 = socket6

	return nil
}

// Run - wait for events and publish them
//
// args is the broadcast queue to listen on
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	queue := args.(*messagebus.BroadcastQueue)
	events := queue.Chan(eventQueueSize)
	defer queue.Release(events)

	log := brdc.log

	log.Info("starting…")

	reported := queue.Dropped()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item := <-events:
			if err := brdc.process(item); nil != err {
				log.Errorf("publish: %q  error: %s", item.Command, err)
			}
			reported = reportDropped(log, queue, reported)

		case <-time.After(heartbeatInterval):
			if err := brdc.send(heartbeatCommand, []byte(time.Now().UTC().Format(time.RFC3339))); nil != err {
				log.Errorf("heartbeat error: %s", err)
			}
		}
	}

	log.Info("shutting down")
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// warn about events missed since the last report
func reportDropped(log *logger.L, queue *messagebus.BroadcastQueue, reported uint64) uint64 {
	dropped := queue.Dropped()
	if dropped > reported {
		log.Warnf("event queue full: %d events not published", dropped-reported)
	}
	return dropped
}

func (brdc *broadcaster) process(item messagebus.Message) error {
	command, data, err := encode(item)
	if nil != err {
		return err
	}
	brdc.log.Debugf("publish: %s  data: %s", command, data)
	return brdc.send(command, data)
}

// send a two frame message on every socket
func (brdc *broadcaster) send(command string, data []byte) error {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		if _, err := socket.Send(command, zmq.SNDMORE|zmq.DONTWAIT); nil != err {
			return err
		}
		if _, err := socket.SendBytes(data, zmq.DONTWAIT); nil != err {
			return err
		}
	}
	return nil
}

// event payload: the single parameter as JSON, or a list when there
// are several
func encode(item messagebus.Message) (string, []byte, error) {
	var payload interface{}
	switch len(item.Parameters) {
	case 0:
		payload = nil
	case 1:
		payload = item.Parameters[0]
	default:
		payload = item.Parameters
	}
	data, err := json.Marshal(payload)
	if nil != err {
		return "", nil, err
	}
	return item.Command, data, nil
}
