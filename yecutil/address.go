// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yecutil

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// hash160Size is the size of a RIPEMD160(SHA256(x)) digest.
const hash160Size = 20

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrMalformedAddress describes an error where an address string does
	// not decode to a network ID followed by a 20 byte hash.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrUnknownAddressType describes an error where an address can not be
	// decoded as a specific address type because its network ID matches
	// neither the pay-to-pubkey-hash nor the pay-to-script-hash ID of the
	// network it is being decoded for.
	ErrUnknownAddressType = errors.New("unknown address type")
)

// NetPrefixes holds the two byte network identifiers that prefix transparent
// addresses of a single encoding.  Ycash networks carry two of these: the
// current Ycash encoding and the legacy Zcash encoding that predates the fork.
type NetPrefixes struct {
	PubKeyHashAddrID [2]byte
	ScriptHashAddrID [2]byte
}

// Address is a transparent payment destination.
type Address interface {
	// String returns the encoded address.
	String() string

	// EncodeAddress returns the string encoding of the address.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used when
	// inserting the address into a txout's script.
	ScriptAddress() []byte

	// NetID returns the two byte network identifier of the address.
	NetID() [2]byte
}

// encodeAddress returns a human-readable payment address given a ripemd160
// hash and a two byte netID which encodes the network and address class.
//
// The first byte of the netID is carried as the base58check version byte and
// the second one is prepended to the payload, which yields exactly
// base58(netID || hash || checksum).
func encodeAddress(hash160 []byte, netID [2]byte) string {
	payload := make([]byte, 0, 1+hash160Size)
	payload = append(payload, netID[1])
	payload = append(payload, hash160[:hash160Size]...)
	return base58.CheckEncode(payload, netID[0])
}

// decodeAddress decodes a base58check string into its netID and hash.
func decodeAddress(addr string) ([2]byte, []byte, error) {
	var netID [2]byte
	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		if err == base58.ErrChecksum {
			return netID, nil, ErrChecksumMismatch
		}
		return netID, nil, ErrMalformedAddress
	}
	if len(payload) != 1+hash160Size {
		return netID, nil, ErrMalformedAddress
	}
	netID[0] = version
	netID[1] = payload[0]
	return netID, payload[1:], nil
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if addr is a valid encoding for the passed network prefixes.
func DecodeAddress(addr string, net NetPrefixes) (Address, error) {
	netID, hash, err := decodeAddress(addr)
	if err != nil {
		return nil, err
	}

	switch netID {
	case net.PubKeyHashAddrID:
		return NewAddressPubKeyHash(hash, netID)
	case net.ScriptHashAddrID:
		return NewAddressScriptHashFromHash(hash, netID)
	default:
		return nil, ErrUnknownAddressType
	}
}

// TranslateAddress re-encodes an address from one set of network prefixes to
// another, keeping its class.  A pay-to-script-hash address under from is
// returned as a pay-to-script-hash address under to, and likewise for
// pay-to-pubkey-hash.  The underlying hash is never reinterpreted.
func TranslateAddress(addr string, from, to NetPrefixes) (string, error) {
	decoded, err := DecodeAddress(addr, from)
	if err != nil {
		return "", err
	}

	switch a := decoded.(type) {
	case *AddressPubKeyHash:
		return encodeAddress(a.hash[:], to.PubKeyHashAddrID), nil
	case *AddressScriptHash:
		return encodeAddress(a.hash[:], to.ScriptHashAddrID), nil
	}
	return "", ErrUnknownAddressType
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	hash  [hash160Size]byte
	netID [2]byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, netID [2]byte) (*AddressPubKeyHash, error) {
	if len(pkHash) != hash160Size {
		return nil, errors.New("pkHash must be 20 bytes")
	}
	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// NewAddressPubKeyHashFromPubKey returns the pay-to-pubkey-hash address of the
// compressed serialization of pubKey.
func NewAddressPubKeyHashFromPubKey(pubKey *btcec.PublicKey, netID [2]byte) *AddressPubKeyHash {
	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], btcutil.Hash160(pubKey.SerializeCompressed()))
	return addr
}

// EncodeAddress returns the string encoding of a pay-to-pubkey-hash
// address.  Part of the Address interface.
func (a *AddressPubKeyHash) EncodeAddress() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a pubkey hash.  Part of the Address interface.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// NetID returns the network identifier of the address.  Part of the Address
// interface.
func (a *AddressPubKeyHash) NetID() [2]byte {
	return a.netID
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling EncodeAddress, but is provided so the type can
// be used as a fmt.Stringer.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the underlying array of the pubkey hash.
func (a *AddressPubKeyHash) Hash160() *[hash160Size]byte {
	return &a.hash
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH)
// transaction.
type AddressScriptHash struct {
	hash  [hash160Size]byte
	netID [2]byte
}

// NewAddressScriptHash returns a new AddressScriptHash for the serialized
// redeem script.
func NewAddressScriptHash(serializedScript []byte, netID [2]byte) *AddressScriptHash {
	addr := &AddressScriptHash{netID: netID}
	copy(addr.hash[:], btcutil.Hash160(serializedScript))
	return addr
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash.  scriptHash
// must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, netID [2]byte) (*AddressScriptHash, error) {
	if len(scriptHash) != hash160Size {
		return nil, errors.New("scriptHash must be 20 bytes")
	}
	addr := &AddressScriptHash{netID: netID}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-script-hash
// address.  Part of the Address interface.
func (a *AddressScriptHash) EncodeAddress() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a script hash.  Part of the Address interface.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.hash[:]
}

// NetID returns the network identifier of the address.  Part of the Address
// interface.
func (a *AddressScriptHash) NetID() [2]byte {
	return a.netID
}

// String returns a human-readable string for the pay-to-script-hash address.
// This is equivalent to calling EncodeAddress, but is provided so the type can
// be used as a fmt.Stringer.
func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the underlying array of the script hash.
func (a *AddressScriptHash) Hash160() *[hash160Size]byte {
	return &a.hash
}
