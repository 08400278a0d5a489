// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for rpc tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/rpc/certificate"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a throwaway directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(dir)
}

// Certificate - create a self signed certificate in a directory
//
// returns the certificate and private key file names
func Certificate(directory string) (string, string, error) {
	certificateFileName := filepath.Join(directory, "rpc.crt")
	keyFileName := filepath.Join(directory, "rpc.key")
	err := certificate.MakeSelfSigned("test", certificateFileName, keyFileName, false, []string{"127.0.0.1"})
	return certificateFileName, keyFileName, err
}

// Account - a testing account with a fixed public key
func Account(n byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{n}, 32),
	}
}
