// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "tokenledgerd.conf")
	require.Nil(t, os.WriteFile(fileName, []byte(content), 0600), "write configuration")
	return dir, fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "Testing"
M.client_rpc = {
    listen = { "127.0.0.1:2130" },
}
M.logging = {
    levels = { DEFAULT = "info" },
}
return M
`)

	options, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, "testing", options.Chain, "chain lower cased")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), options.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), options.ClientRPC.PrivateKey, "key")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "clients")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "listen")
	assert.Equal(t, filepath.Join(dir, "publish.private"), options.Publishing.PrivateKey, "publish key")
	assert.Equal(t, 0, len(options.Publishing.Broadcast), "no broadcast")
	assert.Equal(t, "", options.PidFile, "no pid file")
	assert.Equal(t, "info", options.Logging.Levels[logger.DefaultTag], "log level")

	info, err := os.Stat(options.Logging.Directory)
	require.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory")
}

func TestGetConfigurationOverrides(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.pidfile = "tokenledgerd.pid"
M.chain = "local"
M.database = { directory = "db", name = "ledger.leveldb" }
M.publishing = {
    broadcast = { "127.0.0.1:2135" },
    private_key = "/keys/publish.private",
}
return M
`)

	options, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, "local", options.Chain, "chain")
	assert.Equal(t, filepath.Join(dir, "db", "ledger.leveldb"), options.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, "tokenledgerd.pid"), options.PidFile, "pid file")
	assert.Equal(t, "/keys/publish.private", options.Publishing.PrivateKey, "absolute path kept")
	assert.Equal(t, []string{"127.0.0.1:2135"}, options.Publishing.Broadcast, "broadcast")
}

func TestGetConfigurationErrors(t *testing.T) {
	_, fileName := writeConfiguration(t, `return { data_directory = ".", chain = "nonsense" }`)
	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "invalid chain")

	_, fileName = writeConfiguration(t, `return { chain = "testing" }`)
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "blank data directory")

	_, fileName = writeConfiguration(t, `return { data_directory = "/no/such/directory/anywhere" }`)
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "missing data directory")

	_, fileName = writeConfiguration(t, `return { data_directory = ".", database = { name = "sub/ledger.leveldb" } }`)
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "database name with path")
}
