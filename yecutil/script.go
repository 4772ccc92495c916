// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yecutil

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// ErrUnsupportedScript describes an error where a locking script is not one
// of the standard transparent forms this package understands.
var ErrUnsupportedScript = errors.New("unsupported script")

// payToPubKeyHashScript creates a new script to pay a transaction output to a
// 20-byte pubkey hash.
func payToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).AddData(pubKeyHash).
		AddOp(txscript.OP_EQUALVERIFY).AddOp(txscript.OP_CHECKSIG).
		Script()
}

// payToScriptHashScript creates a new script to pay a transaction output to a
// script hash.
func payToScriptHashScript(scriptHash []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().AddOp(txscript.OP_HASH160).
		AddData(scriptHash).AddOp(txscript.OP_EQUAL).Script()
}

// PayToAddrScript creates a new script to pay a transaction output to the
// specified address.
func PayToAddrScript(addr Address) ([]byte, error) {
	switch addr := addr.(type) {
	case *AddressPubKeyHash:
		if addr == nil {
			return nil, ErrUnsupportedScript
		}
		return payToPubKeyHashScript(addr.ScriptAddress())

	case *AddressScriptHash:
		if addr == nil {
			return nil, ErrUnsupportedScript
		}
		return payToScriptHashScript(addr.ScriptAddress())
	}

	return nil, fmt.Errorf("unable to generate payment script for "+
		"unsupported address type %T", addr)
}

// ExtractAddress returns the address paid to by a standard pay-to-pubkey-hash
// or pay-to-script-hash locking script, encoded with the passed network
// prefixes.
func ExtractAddress(pkScript []byte, net NetPrefixes) (Address, error) {
	switch txscript.GetScriptClass(pkScript) {
	case txscript.PubKeyHashTy:
		// OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
		return NewAddressPubKeyHash(pkScript[3:23], net.PubKeyHashAddrID)

	case txscript.ScriptHashTy:
		// OP_HASH160 <20-byte hash> OP_EQUAL
		return NewAddressScriptHashFromHash(pkScript[2:22],
			net.ScriptHashAddrID)
	}

	return nil, ErrUnsupportedScript
}
