// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/nultinator/ycash/yecutil"
)

// Network identifies one of the supported networks.
type Network int

// These constants define the supported networks.
const (
	MainNet Network = iota
	TestNet
	RegTest
)

var networkStrings = map[Network]string{
	MainNet: "main",
	TestNet: "test",
	RegTest: "regtest",
}

// String returns the name the network is selected by.
func (n Network) String() string {
	if s := networkStrings[n]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown Network (%d)", int(n))
}

// Checkpoint identifies a known good point in the block chain.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointStats describes the chain up to the last checkpoint.  It is used
// to estimate verification progress.
type CheckpointStats struct {
	// Timestamp is the time of the last checkpoint block.
	Timestamp time.Time

	// TxCount is the number of transactions between genesis and the last
	// checkpoint.
	TxCount int64

	// TxPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxPerDay float64
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the operator of the seed.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// ValuePoolCheckpoint pins the balance of a shielded value pool at a block
// for nodes that have not indexed the pool from genesis.
type ValuePoolCheckpoint struct {
	Height  int32
	Balance int64
	Hash    *chainhash.Hash
}

// KeyPrefixes holds the prefixes of every key and address encoding other than
// transparent addresses.
type KeyPrefixes struct {
	PrivateKeyID   byte    // First byte of a WIF private key
	HDPublicKeyID  [4]byte // First bytes of a BIP32 extended public key
	HDPrivateKeyID [4]byte // First bytes of a BIP32 extended private key

	SproutPaymentAddressID [2]byte
	SproutViewingKeyID     [3]byte
	SproutSpendingKeyID    [2]byte

	SaplingPaymentAddressHRP         string
	SaplingFullViewingKeyHRP         string
	SaplingIncomingViewingKeyHRP     string
	SaplingExtendedSpendingKeyHRP    string
	SaplingExtendedFullViewingKeyHRP string
}

// Params defines a Ycash network by its parameters.  These parameters may be
// used by Ycash applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// A Params is obtained from SelectNetwork or one of the network constructor
// functions and is exclusively owned by the caller.  Its resolution methods
// are safe for concurrent use once setup is done.  The Set methods are not
// and must only be called before the Params is shared.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Network is the network the parameters describe.
	Network Network

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// PruneAfterHeight is the height below which blocks are never pruned.
	PruneAfterHeight int32

	// AlertPubKey is the key network alerts are signed with.  It is nil
	// on networks without alerts.
	AlertPubKey *btcec.PublicKey

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *GenesisBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Upgrades is the network upgrade schedule.
	Upgrades UpgradeSchedule

	// Equihash is the network default Equihash parameter pair.
	Equihash EquihashParams

	// EquihashUpgrades holds the per-epoch Equihash settings, indexed by
	// the upgrade that starts the epoch.
	EquihashUpgrades [NumUpgrades]EquihashSetting

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowAveragingWindow is the number of blocks the difficulty adjustment
	// averages over.
	PowAveragingWindow int32

	// PowMaxAdjustDown and PowMaxAdjustUp bound a single difficulty
	// adjustment, in percent.
	PowMaxAdjustDown int64
	PowMaxAdjustUp   int64

	// PreBlossomPowTargetSpacing and PostBlossomPowTargetSpacing are the
	// desired times between blocks before and after Blossom.  The first
	// must be a whole multiple of the second.
	PreBlossomPowTargetSpacing  time.Duration
	PostBlossomPowTargetSpacing time.Duration

	// ReduceMinDifficulty defines whether blocks above
	// MinDifficultyAfterHeight may be mined at the minimum difficulty when
	// the chain stalls.  This is really only useful for test networks and
	// should not be set on a main network.
	ReduceMinDifficulty      bool
	MinDifficultyAfterHeight int32

	// PowNoRetargeting disables difficulty adjustment.
	PowNoRetargeting bool

	// MinDifficultyAtYcashFork resets the difficulty to the minimum at the
	// fork.  ScaledDifficultyAtYcashFork instead scales it for the new
	// Equihash parameters.
	MinDifficultyAtYcashFork    bool
	ScaledDifficultyAtYcashFork bool

	// FutureTimestampSoftForkHeight is the height from which the stricter
	// future block timestamp rule applies.
	FutureTimestampSoftForkHeight ActivationHeight

	// MinimumChainWork is the amount of work the best chain is expected to
	// carry at least.
	MinimumChainWork *big.Int

	// SubsidySlowStartInterval is the number of blocks over which the
	// subsidy ramps up after genesis.
	SubsidySlowStartInterval int32

	// PreBlossomSubsidyHalvingInterval and
	// PostBlossomSubsidyHalvingInterval are the subsidy halving intervals
	// in blocks before and after Blossom.
	PreBlossomSubsidyHalvingInterval  int32
	PostBlossomSubsidyHalvingInterval int32

	// FundingPeriodLength is the length in blocks of one funding stream
	// period.
	FundingPeriodLength int32

	// Block version supermajority rules, in blocks of MajorityWindow.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// CoinbaseMustBeShielded requires coinbase outputs to be spent to a
	// shielded address.
	CoinbaseMustBeShielded bool

	// FoundersReward configures the founders reward rotation.
	FoundersReward FoundersReward

	// FundingStreams holds the configured funding streams, indexed by
	// FundingStreamID.  A nil entry is an inactive stream.
	FundingStreams [NumFundingStreams]*FundingStream

	// Checkpoints ordered from oldest to newest.
	Checkpoints     []Checkpoint
	CheckpointStats CheckpointStats

	// SproutValuePool is the fallback Sprout value pool balance.
	SproutValuePool ValuePoolCheckpoint

	// ZIP209Enabled enforces the shielded value pool turnstile.
	ZIP209Enabled bool

	// Mining and policy behavior of nodes on the network.
	MiningRequiresPeers      bool
	DefaultConsistencyChecks bool
	RequireStandard          bool
	MineBlocksOnDemand       bool

	// Prefixes are the current transparent address prefixes and
	// LegacyPrefixes the Zcash ones used before the fork.
	Prefixes       yecutil.NetPrefixes
	LegacyPrefixes yecutil.NetPrefixes

	// Keys and LegacyKeys are the remaining key encodings.
	Keys       KeyPrefixes
	LegacyKeys KeyPrefixes

	// CurrencyUnits is the ticker of the network's coin.
	CurrencyUnits string

	// BIP44CoinType is the SLIP-0044 coin type used in the BIP44 path.
	BIP44CoinType uint32
}

// MessageStart returns the four magic bytes that start every message on the
// network.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// Validate checks the parameters for internal consistency.  It is run on
// every Params returned by SelectNetwork and should be run again after
// overriding parameters.
func (p *Params) Validate() error {
	if err := p.Upgrades.validate(); err != nil {
		return err
	}
	if err := p.validateEquihash(); err != nil {
		return err
	}
	if err := p.validateSpacing(); err != nil {
		return err
	}
	if err := p.validateFoundersReward(); err != nil {
		return err
	}
	return p.validateFundingStreams()
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Only reachable through a typo in a hard-coded hash, so it
		// can only fire while the network tables are built.
		panic(err)
	}
	return hash
}

// newBigFromHex converts a hard-coded big-endian hex string to a big.Int.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hex in source file: " + hexStr)
	}
	return n
}

func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePubKey parses a hard-coded serialized public key.
func parsePubKey(hexStr string) *btcec.PublicKey {
	pubKey, err := btcec.ParsePubKey(hexDecode(hexStr))
	if err != nil {
		panic(err)
	}
	return pubKey
}
