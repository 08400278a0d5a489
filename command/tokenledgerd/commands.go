// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/tokenledger/account"
	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/ledger"
	"github.com/bitmark-inc/tokenledger/rpc/certificate"
	"github.com/bitmark-inc/tokenledger/util"
	"github.com/bitmark-inc/tokenledger/zmqutil"
)

const (
	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename, privateKeyFilename, err := makeRPCCertificate(arguments)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-keys", "publish":
		publicKeyFilename, privateKeyFilename, err := makePublishKeys(arguments)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "supply", "audit", "next-asset-id", "next", "balance", "bal", "nonce":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "fingerprint", "fp":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)   - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-keys [DIR]     (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                        and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - display the RPC certificate fingerprint\n")
		fmt.Printf("\n")

		fmt.Printf("  supply ASSET                        - display the total supply of an asset\n")
		fmt.Printf("\n")

		fmt.Printf("  balance ASSET ACCOUNT      (bal)    - display the balance of an account\n")
		fmt.Printf("\n")

		fmt.Printf("  nonce ACCOUNT                       - display the last nonce accepted from an account\n")
		fmt.Printf("\n")

		fmt.Printf("  next-asset-id              (next)   - display the next asset id to be allocated\n")
		fmt.Printf("\n")

		fmt.Printf("  audit                               - check every total supply against its balances\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(out io.Writer, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.MarshalIndent(options, "", "  ")
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Fprintf(out, "%s\n", b)

	case "fingerprint", "fp":
		fingerprint, err := certificateFingerprint(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate: %q  error: %s", options.ClientRPC.Certificate, err)
		}
		fmt.Fprintf(out, "rpc fingerprint: %x\n", fingerprint)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger database is open so these commands can read the committed state
func processDataCommand(out io.Writer, l *ledger.Ledger, arguments []string) (bool, error) {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false, nil // continue processing

	case "supply":
		if len(arguments) < 1 {
			return true, fault.MissingParameters
		}
		assetId, err := parseAssetId(arguments[0])
		if nil != err {
			return true, err
		}
		supply, found := l.TotalSupply(assetId)
		if !found {
			return true, fault.AssetNotFound
		}
		fmt.Fprintf(out, "asset: %d  total supply: %d\n", assetId, supply)

	case "balance", "bal":
		if len(arguments) < 2 {
			return true, fault.MissingParameters
		}
		assetId, err := parseAssetId(arguments[0])
		if nil != err {
			return true, err
		}
		owner, err := account.FromBase58(arguments[1])
		if nil != err {
			return true, err
		}
		balance, supply := l.GetBalance(assetId, owner)
		fmt.Fprintf(out, "asset: %d  account: %s  balance: %d  total supply: %d\n", assetId, owner, balance, supply)

	case "nonce":
		if len(arguments) < 1 {
			return true, fault.MissingParameters
		}
		owner, err := account.FromBase58(arguments[0])
		if nil != err {
			return true, err
		}
		nonce, found := l.LastNonce(owner)
		if !found {
			fmt.Fprintf(out, "account: %s  no nonce recorded\n", owner)
		} else {
			fmt.Fprintf(out, "account: %s  last nonce: %d\n", owner, nonce)
		}

	case "next-asset-id", "next":
		fmt.Fprintf(out, "next asset id: %d\n", l.NextAssetId())

	case "audit":
		results, err := l.AuditAll()
		for _, r := range results {
			status := "ok"
			if !r.Consistent() {
				status = "MISMATCH"
			}
			fmt.Fprintf(out, "asset: %d  supply: %d  sum: %d  accounts: %d  %s\n", r.AssetId, r.TotalSupply, r.Sum, r.Accounts, status)
		}
		if nil != err {
			return true, err
		}

	default:
		return true, fmt.Errorf("no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true, nil
}

func parseAssetId(s string) (ledger.AssetId, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("error in asset id: %s", err)
	}
	return ledger.AssetId(n), nil
}

// create a self-signed certificate, any extra arguments are
// additional host names or addresses
func makeRPCCertificate(arguments []string) (string, string, error) {
	certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
	privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

	addresses := []string{}
	if len(arguments) >= 2 {
		for _, a := range arguments[1:] {
			if "" != a {
				addresses = append(addresses, a)
			}
		}
	}

	err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
	return certificateFilename, privateKeyFilename, err
}

// create the CURVE key pair for the event broadcaster
func makePublishKeys(arguments []string) (string, string, error) {
	publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
	privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)

	err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
	return publicKeyFilename, privateKeyFilename, err
}

func certificateFingerprint(certificateFilename string, keyFilename string) (util.FingerprintBytes, error) {
	keyPair, err := tls.LoadX509KeyPair(certificateFilename, keyFilename)
	if nil != err {
		return util.FingerprintBytes{}, err
	}
	return util.Fingerprint(keyPair.Certificate[0]), nil
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
