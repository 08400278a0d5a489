// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenledger/command/ledger-cli/rpccalls"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId, err := checkAssetId(c.String("asset"))
	if nil != err {
		return err
	}

	owner, err := identityName(c.String("owner"), m.config)
	if nil != err {
		return err
	}

	name, acc, err := checkAccount(owner, m.config)
	if nil != err {
		return err
	}

	requesterName, requester, err := checkSigner(c.GlobalString("identity"), c.GlobalString("password"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "asset: %d\n", assetId)
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "requester: %s\n", requesterName)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(assetId, requester, acc)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
