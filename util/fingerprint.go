// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - SHA3-256 of a DER certificate
type FingerprintBytes [32]byte

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in tokenledgerd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}
