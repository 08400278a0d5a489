// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/util"
)

// seed layout: header ++ network ++ secret key ++ checksum
var (
	seedHeader = []byte{0x5a, 0xfe, 0x01}
	seedNonce  = [24]byte{}
	seedIndex  = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

const (
	seedHeaderLength   = 3
	seedPrefixLength   = 1
	seedKeyLength      = 32
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + seedPrefixLength + seedKeyLength + seedChecksumLength
)

// PrivateKey - an ed25519 signing key and its network
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewSeed - create a random Base58 seed for the given network
func NewSeed(test bool) (string, error) {
	secretKey := make([]byte, seedKeyLength)
	if _, err := io.ReadFull(rand.Reader, secretKey); nil != err {
		return "", err
	}

	network := byte(0x00)
	if test {
		network = 0x01
	}

	seed := append([]byte{}, seedHeader...)
	seed = append(seed, network)
	seed = append(seed, secretKey...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}

// PrivateKeyFromBase58Seed - derive the signing key from a Base58 seed
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {
	seed := util.FromBase58(seedBase58Encoded)
	if 0 == len(seed) {
		return nil, fault.CannotDecodeSeed
	}
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.InvalidSeedHeader
	}

	checksumStart := seedLength - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	var secretKey [seedKeyLength]byte
	copy(secretKey[:], seed[seedHeaderLength+seedPrefixLength:checksumStart])

	isTest := 0x01 == seed[seedHeaderLength]

	// the ed25519 seed is the first 32 bytes of the sealed index
	encrypted := secretbox.Seal([]byte{}, seedIndex[:], &seedNonce, &secretKey)
	_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(encrypted))
	if nil != err {
		return nil, err
	}

	return &PrivateKey{
		Test:       isTest,
		PrivateKey: priv,
	}, nil
}

// Account - return the corresponding account
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		Test:      privateKey.Test,
		PublicKey: append([]byte{}, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:]...),
	}
}

// IsTesting - whether the key belongs to a test network
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// Sign - produce an ed25519 signature over a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}
