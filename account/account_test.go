// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     string
	base58Account string
}

var testAccounts = []accountTest{
	{
		testnet:       false,
		publicKey:     "60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e",
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     "731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db",
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     "0000000000000000000000000000000000000000000000000000000000000000",
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
}

func TestValidAccounts(t *testing.T) {
	for i, item := range testAccounts {
		publicKey, _ := hex.DecodeString(item.publicKey)

		a, err := account.FromBase58(item.base58Account)
		if !assert.Nil(t, err, "%d: decode error", i) {
			continue
		}
		assert.Equal(t, item.testnet, a.IsTesting(), "%d: wrong network", i)
		assert.Equal(t, publicKey, a.PublicKey, "%d: wrong public key", i)
		assert.Equal(t, item.base58Account, a.String(), "%d: wrong base58", i)

		b, err := account.FromBytes(a.Bytes())
		assert.Nil(t, err, "%d: from bytes error", i)
		assert.True(t, a.Equal(b), "%d: byte round trip differs", i)
	}
}

func TestInvalidAccounts(t *testing.T) {
	_, err := account.FromBase58("")
	assert.Equal(t, fault.CannotDecodeAccount, err, "empty account")

	// last character altered so the checksum fails
	_, err = account.FromBase58("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCk")
	assert.NotNil(t, err, "altered account accepted")

	_, err = account.FromBytes([]byte{0x10, 0x01, 0x02})
	assert.Equal(t, fault.NotPublicKey, err, "private key variant accepted")

	_, err = account.FromBytes([]byte{0x11, 0x01, 0x02})
	assert.Equal(t, fault.InvalidKeyLength, err, "short key accepted")
}

func TestAccountEqualNetwork(t *testing.T) {
	a, _ := account.FromBase58(testAccounts[0].base58Account)
	b := &account.Account{Test: !a.Test, PublicKey: a.PublicKey}
	assert.False(t, a.Equal(b), "same key on different networks must differ")
	assert.True(t, a.Equal(&account.Account{Test: a.Test, PublicKey: a.PublicKey}), "same identity")
}

func TestAccountJSON(t *testing.T) {
	a, _ := account.FromBase58(testAccounts[1].base58Account)

	buffer, err := json.Marshal(a)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+testAccounts[1].base58Account+`"`, string(buffer), "wrong JSON")

	var b account.Account
	err = json.Unmarshal(buffer, &b)
	assert.Nil(t, err, "unmarshal error")
	assert.True(t, a.Equal(&b), "JSON round trip differs")
}

func TestSeedSignature(t *testing.T) {
	for _, test := range []bool{false, true} {
		seed, err := account.NewSeed(test)
		assert.Nil(t, err, "seed error")

		key, err := account.PrivateKeyFromBase58Seed(seed)
		assert.Nil(t, err, "private key error")
		assert.Equal(t, test, key.IsTesting(), "wrong network")

		again, _ := account.PrivateKeyFromBase58Seed(seed)
		assert.True(t, key.Account().Equal(again.Account()), "seed is not deterministic")

		message := []byte("message to sign")
		signature := key.Sign(message)
		assert.Nil(t, key.Account().CheckSignature(message, signature), "signature rejected")
		assert.Equal(t, fault.InvalidSignature, key.Account().CheckSignature([]byte("other"), signature), "wrong message accepted")
	}
}

func TestSeedErrors(t *testing.T) {
	_, err := account.PrivateKeyFromBase58Seed("")
	assert.Equal(t, fault.CannotDecodeSeed, err, "empty seed")

	_, err = account.PrivateKeyFromBase58Seed("3MvykBZzN")
	assert.Equal(t, fault.InvalidSeedLength, err, "short seed")
}
