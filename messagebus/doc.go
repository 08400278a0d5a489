// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process queues for committed ledger events
//
// Bus.Events is a broadcast queue: each message is delivered to every
// current listener and is dropped if nobody is listening.  Bus.TestQueue
// is a plain buffered queue for tests.
package messagebus
