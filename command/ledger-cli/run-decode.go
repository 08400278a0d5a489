// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/operation"
)

type decodeReply struct {
	Type      string              `json:"type"`
	Digest    string              `json:"digest"`
	Operation operation.Operation `json:"operation"`
}

// decode a hex record as returned by create, transfer or issue and
// verify its signature
func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	record := strings.TrimSpace(c.String("record"))
	if "" == record {
		return ErrRequiredRecord
	}

	var packed operation.Packed
	if err := packed.UnmarshalText([]byte(record)); nil != err {
		return err
	}

	if operation.NullTag == packed.Type() {
		return fault.NotOperationPack
	}

	op, n, err := packed.Unpack(m.testnet)
	if nil != err {
		return err
	}
	if n != len(packed) {
		return fault.RecordTruncated
	}

	if _, err := op.Pack(op.Caller()); nil != err {
		return err
	}

	name, _ := operation.RecordName(op)

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s  bytes: %d\n", name, n)
	}

	printJson(m.w, decodeReply{
		Type:      name,
		Digest:    packed.Digest().String(),
		Operation: op,
	})
	return nil
}
