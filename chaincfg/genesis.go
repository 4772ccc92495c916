// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// GenesisBlock describes the first block of a chain.  The Equihash solution
// is not carried.
type GenesisBlock struct {
	Version    int32
	MerkleRoot chainhash.Hash
	Timestamp  time.Time
	Bits       uint32

	// Nonce is the 256-bit header nonce.
	Nonce chainhash.Hash

	// Coinbase is the only transaction of the block.
	Coinbase *wire.MsgTx
}

// genesisCoinbaseTx is the coinbase transaction of the genesis block of every
// network.  Its single zero-value output pays to genesisOutputKey.
var genesisCoinbaseTx = wire.MsgTx{
	Version: 1,
	TxIn: []*wire.TxIn{
		{
			PreviousOutPoint: wire.OutPoint{
				Hash:  chainhash.Hash{},
				Index: 0xffffffff,
			},
			SignatureScript: []byte{
				0x04, 0xff, 0xff, 0x07, 0x1f, 0x01, 0x04, 0x45,
				0x5a, 0x63, 0x61, 0x73, 0x68, 0x30, 0x62, 0x39,
				0x63, 0x34, 0x65, 0x65, 0x66, 0x38, 0x62, 0x37,
				0x63, 0x63, 0x34, 0x31, 0x37, 0x65, 0x65, 0x35,
				0x30, 0x30, 0x31, 0x65, 0x33, 0x35, 0x30, 0x30,
				0x39, 0x38, 0x34, 0x62, 0x36, 0x66, 0x65, 0x61,
				0x33, 0x35, 0x36, 0x38, 0x33, 0x61, 0x37, 0x63,
				0x61, 0x63, 0x31, 0x34, 0x31, 0x61, 0x30, 0x34,
				0x33, 0x63, 0x34, 0x32, 0x30, 0x36, 0x34, 0x38,
				0x33, 0x35, 0x64, 0x33, 0x34,
			},
			Sequence: 0xffffffff,
		},
	},
	TxOut: []*wire.TxOut{
		{
			Value: 0,
			PkScript: []byte{
				0x41, 0x04, 0x67, 0x8a, 0xfd, 0xb0, 0xfe, 0x55,
				0x48, 0x27, 0x19, 0x67, 0xf1, 0xa6, 0x71, 0x30,
				0xb7, 0x10, 0x5c, 0xd6, 0xa8, 0x28, 0xe0, 0x39,
				0x09, 0xa6, 0x79, 0x62, 0xe0, 0xea, 0x1f, 0x61,
				0xde, 0xb6, 0x49, 0xf6, 0xbc, 0x3f, 0x4c, 0xef,
				0x38, 0xc4, 0xf3, 0x55, 0x04, 0xe5, 0x1e, 0xc1,
				0x12, 0xde, 0x5c, 0x38, 0x4d, 0xf7, 0xba, 0x0b,
				0x8d, 0x57, 0x8a, 0x4c, 0x70, 0x2b, 0x6b, 0xf1,
				0x1d, 0x5f, 0xac,
			},
		},
	},
	LockTime: 0,
}

// genesisOutputKey is the uncompressed public key the genesis coinbase pays
// to.
const genesisOutputKey = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a" +
	"67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c7" +
	"02b6bf11d5f"

// genesisMerkleRoot is the hash of the genesis coinbase transaction.  It is
// the same on every network.
var genesisMerkleRoot = *newHashFromStr("c4eaa58879081de3c24a7b117ed2b28300e7ec4c4c1dff1d3f1268b7857a4ddb")

// newGenesisBlock returns a genesis block sharing the common coinbase
// transaction.
func newGenesisBlock(timestamp int64, bits uint32, nonce string) *GenesisBlock {
	return &GenesisBlock{
		Version:    4,
		MerkleRoot: genesisMerkleRoot,
		Timestamp:  time.Unix(timestamp, 0),
		Bits:       bits,
		Nonce:      *newHashFromStr(nonce),
		Coinbase:   &genesisCoinbaseTx,
	}
}

// mainNetGenesisBlock returns the genesis block of the main network.
func mainNetGenesisBlock() *GenesisBlock {
	return newGenesisBlock(
		1477641360, // 2016-10-28 07:56:00 +0000 UTC
		0x1f07ffff,
		"0000000000000000000000000000000000000000000000000000000000001257",
	)
}

// testNetGenesisBlock returns the genesis block of the test network.
func testNetGenesisBlock() *GenesisBlock {
	return newGenesisBlock(
		1477648033, // 2016-10-28 09:47:13 +0000 UTC
		0x2007ffff,
		"0000000000000000000000000000000000000000000000000000000000000006",
	)
}

// regTestGenesisBlock returns the genesis block of the regression test
// network.
func regTestGenesisBlock() *GenesisBlock {
	return newGenesisBlock(
		1296688602, // 2011-02-02 23:16:42 +0000 UTC
		0x200f0f0f,
		"0000000000000000000000000000000000000000000000000000000000000009",
	)
}
