// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"github.com/nultinator/ycash/yecutil"
)

// regTestMagic is the message start of the regression test network, aa e8 3f
// 5f on the wire.
const regTestMagic = 0x5f3fe8aa

// RegressionNetParams returns the network parameters for the regression test
// Ycash network.  It is a private network used by integration tests: blocks
// are mined on demand at the minimum difficulty, every upgrade after Sprout
// starts out unscheduled and the debug Set methods of Params are permitted.
// Every call returns a new, independently owned Params.
func RegressionNetParams() *Params {
	return &Params{
		Name:             "regtest",
		Network:          RegTest,
		Net:              regTestMagic,
		DefaultPort:      "18344",
		PruneAfterHeight: 1000,
		DNSSeeds:         nil, // NOTE: There must NOT be any seeds.

		// Chain parameters
		GenesisBlock: regTestGenesisBlock(),
		GenesisHash:  newHashFromStr("029f11d80ef9765602235e1bc9727e3eb6ba20839319f761fee920d63401e327"),

		Upgrades: UpgradeSchedule{
			BaseSprout:        {ProtocolVersion: 170002, Activation: AlwaysActive},
			UpgradeTestDummy:  {ProtocolVersion: 170002, Activation: NeverActive},
			UpgradeOverwinter: {ProtocolVersion: 170003, Activation: NeverActive},
			UpgradeSapling:    {ProtocolVersion: 170006, Activation: NeverActive},
			UpgradeYcash:      {ProtocolVersion: 270007, Activation: NeverActive},
			UpgradeBlossom:    {ProtocolVersion: 270008, Activation: NeverActive},
			UpgradeHeartwood:  {ProtocolVersion: 270010, Activation: NeverActive},
			UpgradeCanopy:     {ProtocolVersion: 270012, Activation: NeverActive},
			UpgradeNU5:        {ProtocolVersion: 270014, Activation: NeverActive},
			UpgradeZFuture:    {ProtocolVersion: 0x7fffffff, Activation: NeverActive},
		},

		// The per-epoch table is never consulted on this network.
		Equihash: EquihashParams{N: 48, K: 5},

		PowLimit:                    newBigFromHex("0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f"),
		PowAveragingWindow:          17,
		PowMaxAdjustDown:            0, // Turn off adjustment down
		PowMaxAdjustUp:              0, // Turn off adjustment up
		PreBlossomPowTargetSpacing:  preBlossomPowTargetSpacing,
		PostBlossomPowTargetSpacing: postBlossomPowTargetSpacing,
		ReduceMinDifficulty:         true,
		MinDifficultyAfterHeight:    0,
		PowNoRetargeting:            true,
		MinDifficultyAtYcashFork:    false,
		ScaledDifficultyAtYcashFork: false,
		MinimumChainWork:            new(big.Int),

		FutureTimestampSoftForkHeight: NeverActive,

		// Subsidy parameters.
		SubsidySlowStartInterval:          0,
		PreBlossomSubsidyHalvingInterval:  preBlossomRegtestHalvingInterval,
		PostBlossomSubsidyHalvingInterval: preBlossomRegtestHalvingInterval * 2,
		FundingPeriodLength:               preBlossomRegtestHalvingInterval * 2 / fundingPeriodsPerHalving,
		MajorityEnforceBlockUpgrade:       750,
		MajorityRejectBlockOutdated:       950,
		MajorityWindow:                    1000,
		CoinbaseMustBeShielded:            false,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")},
		},

		MiningRequiresPeers:      false,
		DefaultConsistencyChecks: true,
		RequireStandard:          false,
		MineBlocksOnDemand:       true,

		// Address encoding magics
		Prefixes: yecutil.NetPrefixes{
			PubKeyHashAddrID: [2]byte{0x1c, 0x95}, // starts with sm
			ScriptHashAddrID: [2]byte{0x1c, 0x2a}, // starts with s2
		},
		LegacyPrefixes: yecutil.NetPrefixes{
			PubKeyHashAddrID: [2]byte{0x1d, 0x25}, // starts with tm
			ScriptHashAddrID: [2]byte{0x1c, 0xba}, // starts with t2
		},
		Keys:          testNetKeys("yregtestsapling", "regtestsapling", "regtest"),
		LegacyKeys:    testNetKeys("zregtestsapling", "regtestsapling", "regtest"),
		CurrencyUnits: "REG",

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		BIP44CoinType: 1,

		FoundersReward: FoundersReward{
			LegacyAddresses:       []string{"t2FwcEhFdNXuFMv1tcYwaBJtYVtMj8b1uTg"},
			Addresses:             testNetRewardAddresses(),
			AddressChangeInterval: ycashAddressChangeInterval,
		},
	}
}
