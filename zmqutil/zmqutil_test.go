// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir := t.TempDir()
	public := filepath.Join(dir, "publish.public")
	private := filepath.Join(dir, "publish.private")

	require.Nil(t, zmqutil.MakeKeyPair(public, private), "make")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(publicKey), "public length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(privateKey), "private length")

	_, err = zmqutil.ReadPublicKeyFile(private)
	assert.Equal(t, fault.InvalidPublicKey, err, "private as public")

	_, err = zmqutil.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.InvalidPrivateKey, err, "public as private")

	assert.Equal(t, fault.KeyFileAlreadyExists, zmqutil.MakeKeyPair(public, private), "overwrite")
}

func TestParseKey(t *testing.T) {
	key := "PUBLIC:" + "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
	data, private, err := zmqutil.ParseKey("  " + key + "\n")
	assert.Nil(t, err, "parse")
	assert.False(t, private, "public")
	assert.Equal(t, byte(0x11), data[1], "decoded")

	_, _, err = zmqutil.ParseKey("PRIVATE:0011")
	assert.Equal(t, fault.InvalidPrivateKey, err, "short private")

	_, _, err = zmqutil.ParseKey("SECRET:0011")
	assert.Equal(t, fault.InvalidPublicKey, err, "bad tag")

	_, _, err = zmqutil.ParseKey("PUBLIC:zz")
	assert.NotNil(t, err, "bad hex")
}

func TestBindAddress(t *testing.T) {
	items := []struct {
		in  string
		out string
		v6  bool
	}{
		{"127.0.0.1:2135", "tcp://127.0.0.1:2135", false},
		{"[::1]:2135", "tcp://[::1]:2135", true},
		{"*:2136", "tcp://*:2136", false},
	}
	for _, item := range items {
		out, v6, err := zmqutil.BindAddress(item.in)
		assert.Nil(t, err, item.in)
		assert.Equal(t, item.out, out, item.in)
		assert.Equal(t, item.v6, v6, item.in)
	}

	_, _, err := zmqutil.BindAddress("localhost:2135")
	assert.Equal(t, fault.InvalidIpAddress, err, "hostname")

	_, _, err = zmqutil.BindAddress("2135")
	assert.NotNil(t, err, "no host")
}
