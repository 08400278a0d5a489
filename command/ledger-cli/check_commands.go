// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/chain"
	"github.com/bitmark-inc/tokenledger/command/ledger-cli/configuration"
	"github.com/bitmark-inc/tokenledger/fault"
)

var (
	ErrRequiredAssetId     = fault.InvalidError("asset id is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredRecord      = fault.InvalidError("record is required")
	ErrRequiredTransferTo  = fault.InvalidError("transfer to is required")
)

// map the accepted network aliases to a chain name
func checkNetwork(network string) (string, error) {
	switch network {
	case "live", "bitmark", "production":
		return chain.Live, nil
	case "testing", "test", "":
		return chain.Testing, nil
	case "local", "regression":
		return chain.Local, nil
	default:
		return "", fmt.Errorf("network: %q can only be live/testing/local", network)
	}
}

// the directory flag or $XDG_CONFIG_HOME/<app name>
func configurationDirectory(dir string, name string) (string, error) {
	if "" == dir {
		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir = filepath.Join(p, name)
	}
	return filepath.Abs(dir)
}

// one file per network
func configurationFile(dir string, network string, name string) string {
	return filepath.Join(dir, network+"-"+name+".json")
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required.
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// a blank seed creates a new one
func checkSeed(seed string, testnet bool) (string, error) {
	if "" == seed {
		return account.NewSeed(testnet)
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}
	if privateKey.IsTesting() != testnet {
		return "", fault.WrongNetworkForPublicKey
	}
	return seed, nil
}

// asset id is required
func checkAssetId(assetId string) (uint64, error) {
	if "" == assetId {
		return 0, ErrRequiredAssetId
	}
	return strconv.ParseUint(assetId, 10, 64)
}

// blank selects the default identity
func identityName(name string, config *configuration.Configuration) (string, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}

// an identity name from the configuration or a base58 account
func checkAccount(nameOrAccount string, config *configuration.Configuration) (string, *account.Account, error) {
	if _, ok := config.Identities[nameOrAccount]; ok {
		a, err := config.Account(nameOrAccount)
		return nameOrAccount, a, err
	}

	a, err := account.FromBase58(nameOrAccount)
	if nil != err {
		return "", nil, fault.IdentityNameNotFound
	}
	if a.IsTesting() != config.TestNet {
		return "", nil, fault.WrongNetworkForPublicKey
	}
	return a.String(), a, nil
}

// recipient is required
func checkRecipient(to string, config *configuration.Configuration) (string, *account.Account, error) {
	if "" == to {
		return "", nil, ErrRequiredTransferTo
	}
	return checkAccount(to, config)
}

// decrypt the signing key of an identity
func checkSigner(name string, password string, config *configuration.Configuration) (string, *account.PrivateKey, error) {
	name, err := identityName(name, config)
	if nil != err {
		return "", nil, err
	}

	if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return "", nil, err
		}
	}

	private, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}
	return name, private.PrivateKey, nil
}

// the node only accepts increasing nonces from each caller
func makeNonce() uint64 {
	return uint64(time.Now().UnixNano())
}

// check if file exists
func ensureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
