// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AssetNotFound                = NotFoundError("asset not found")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CannotDecodeSeed             = InvalidError("cannot decode seed")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CertificateFileNotFound      = NotFoundError("certificate file not found")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ConfigurationNotFound        = NotFoundError("configuration file not found")
	CryptoFailed                 = ProcessError("crypto failed")
	DatabaseIsNewer              = InvalidError("database version is newer than this program")
	DuplicateOperation           = ExistsError("duplicate operation")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncompatibleOptions          = InvalidError("incompatible options")
	InsufficientBalance          = InvalidError("insufficient balance")
	InvalidAccount               = InvalidError("invalid account")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = LengthError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidPasswordLength        = InvalidError("invalid password length")
	InvalidPoolPrefix            = InvalidError("invalid pool prefix")
	InvalidPrivateKey            = InvalidError("invalid private key")
	InvalidPublicKey             = InvalidError("invalid public key")
	InvalidSaltLength            = LengthError("invalid salt length")
	InvalidSeedHeader            = InvalidError("invalid seed header")
	InvalidSeedLength            = LengthError("invalid seed length")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	KeyFileNotFound              = NotFoundError("key file not found")
	MissingParameters            = InvalidError("missing parameters")
	NotAvailable                 = ProcessError("not available")
	NotInitialised               = NotFoundError("not initialised")
	NotOperationPack             = InvalidError("not operation pack")
	NotPrivateKey                = InvalidError("not private key")
	NotPublicKey                 = InvalidError("not public key")
	Overflow                     = ProcessError("arithmetic overflow")
	PasswordMismatch             = InvalidError("password mismatch")
	RateLimiting                 = InvalidError("rate limiting")
	ReceiveOnlyIdentity          = InvalidError("identity has no private key")
	RecordMismatch               = ProcessError("record does not match request")
	RecordTruncated              = LengthError("record truncated")
	SupplyMismatch               = ProcessError("total supply does not match balances")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransactionNotStarted        = ProcessError("transaction not started")
	TransferToSelf               = InvalidError("cannot transfer to self")
	UnknownRecordType            = InvalidError("unknown record type")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
