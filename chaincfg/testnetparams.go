// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/nultinator/ycash/yecutil"
)

// testNetMagic is the message start of the test network, fa 1a f9 bf on the
// wire.
const testNetMagic = 0xbff91afa

// TestNetParams returns the network parameters for the Ycash test network.
// Every call returns a new, independently owned Params.
func TestNetParams() *Params {
	return &Params{
		Name:             "test",
		Network:          TestNet,
		Net:              testNetMagic,
		DefaultPort:      "18833",
		PruneAfterHeight: 1000,
		DNSSeeds: []DNSSeed{
			{"ycash.xyz", "testseed.ycash.xyz"},
		},
		AlertPubKey: parsePubKey("041c64ece576904e60264571717fc027692455a" +
			"faacdb91d3c7f68724ad17161d6db24632dbac26849bd6d66e534ddf80" +
			"0eb4fe3a4ae3a0b690f737c85625869a2"),

		// Chain parameters
		GenesisBlock: testNetGenesisBlock(),
		GenesisHash:  newHashFromStr("05a60a92d99d85997cce3b87616c089f6124d7342af37106edc76126334a2c38"),

		Upgrades: UpgradeSchedule{
			BaseSprout:       {ProtocolVersion: 170002, Activation: AlwaysActive},
			UpgradeTestDummy: {ProtocolVersion: 170002, Activation: NeverActive},
			UpgradeOverwinter: {
				ProtocolVersion: 170003,
				Activation:      Height(207500),
				ExpectedHash:    newHashFromStr("0000257c4331b098045023fcfbfa2474681f4564ab483f84e4e1ad078e4acf44"),
			},
			UpgradeSapling: {
				ProtocolVersion: 170007,
				Activation:      Height(280000),
				ExpectedHash:    newHashFromStr("000420e7fcc3a49d729479fb0b560dd7b8617b178a08e9e389620a9d1dd6361a"),
			},
			UpgradeYcash: {
				ProtocolVersion: 270007,
				Activation:      Height(510248),
				ExpectedHash:    newHashFromStr("0305d164e8f4dc75b9e9a6a15b7b381dbc1c9cb55f1534267be7c125923255c8"),
			},
			UpgradeBlossom:   {ProtocolVersion: 270008, Activation: Height(661610)},
			UpgradeHeartwood: {ProtocolVersion: 270010, Activation: Height(661622)},
			UpgradeCanopy:    {ProtocolVersion: 270012, Activation: Height(661634)},
			UpgradeNU5:       {ProtocolVersion: 270014, Activation: NeverActive},
			UpgradeZFuture:   {ProtocolVersion: 0x7fffffff, Activation: NeverActive},
		},

		Equihash:         EquihashParams{N: 200, K: 9},
		EquihashUpgrades: ycashEquihashUpgrades(),

		PowLimit:                    newBigFromHex("07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowAveragingWindow:          17,
		PowMaxAdjustDown:            32,
		PowMaxAdjustUp:              16,
		PreBlossomPowTargetSpacing:  preBlossomPowTargetSpacing,
		PostBlossomPowTargetSpacing: postBlossomPowTargetSpacing,
		ReduceMinDifficulty:         true,
		MinDifficultyAfterHeight:    299187,
		PowNoRetargeting:            false,
		MinDifficultyAtYcashFork:    true,
		ScaledDifficultyAtYcashFork: false,
		MinimumChainWork:            newBigFromHex("1959b78e6f"),

		// The stricter timestamp rule arrived together with Blossom.
		FutureTimestampSoftForkHeight: Height(661610),

		// Subsidy parameters.
		SubsidySlowStartInterval:          20000,
		PreBlossomSubsidyHalvingInterval:  preBlossomHalvingInterval,
		PostBlossomSubsidyHalvingInterval: preBlossomHalvingInterval * 2,
		FundingPeriodLength:               preBlossomHalvingInterval * 2 / fundingPeriodsPerHalving,
		MajorityEnforceBlockUpgrade:       51,
		MajorityRejectBlockOutdated:       75,
		MajorityWindow:                    400,
		CoinbaseMustBeShielded:            true,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("05a60a92d99d85997cce3b87616c089f6124d7342af37106edc76126334a2c38")},
			{38000, newHashFromStr("001e9a2d2e2892b88e9998cf7b079b41d59dd085423a921fe8386cecc42287b8")},
			{650000, newHashFromStr("005dd2092f75382581468e870b51233a8950bf9c396689c513e5a80f00c14609")},
		},
		CheckpointStats: CheckpointStats{
			Timestamp: time.Unix(1633853210, 0), // 2021-10-10 08:06:50 +0000 UTC
			TxCount:   862651,
			TxPerDay:  765,
		},

		SproutValuePool: ValuePoolCheckpoint{
			Height:  440329,
			Balance: 40000029096803,
			Hash:    newHashFromStr("000a95d08ba5dcbabe881fc6471d11807bcca7df5f1795c99f3ec4580db4279b"),
		},
		ZIP209Enabled: true,

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		MineBlocksOnDemand:       false,

		// Address encoding magics
		Prefixes: yecutil.NetPrefixes{
			PubKeyHashAddrID: [2]byte{0x1c, 0x95}, // starts with sm
			ScriptHashAddrID: [2]byte{0x1c, 0x2a}, // starts with s2
		},
		LegacyPrefixes: yecutil.NetPrefixes{
			PubKeyHashAddrID: [2]byte{0x1d, 0x25}, // starts with tm
			ScriptHashAddrID: [2]byte{0x1c, 0xba}, // starts with t2
		},
		Keys:          testNetKeys("ytestsapling", "testsapling", "test"),
		LegacyKeys:    testNetKeys("ztestsapling", "testsapling", "test"),
		CurrencyUnits: "TAY",

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		BIP44CoinType: 1,

		FoundersReward: FoundersReward{
			LegacyAddresses: []string{
				"t2UNzUUx8mWBCRYPRezvA363EYXyEpHokyi", "t2N9PH9Wk9xjqYg9iin1Ua3aekJqfAtE543",
				"t2NGQjYMQhFndDHguvUw4wZdNdsssA6K7x2", "t2ENg7hHVqqs9JwU5cgjvSbxnT2a9USNfhy",
				"t2BkYdVCHzvTJJUTx4yZB8qeegD8QsPx8bo", "t2J8q1xH1EuigJ52MfExyyjYtN3VgvshKDf",
				"t2Crq9mydTm37kZokC68HzT6yez3t2FBnFj", "t2EaMPUiQ1kthqcP5UEkF42CAFKJqXCkXC9",
				"t2F9dtQc63JDDyrhnfpzvVYTJcr57MkqA12", "t2LPirmnfYSZc481GgZBa6xUGcoovfytBnC",
				"t26xfxoSw2UV9Pe5o3C8V4YybQD4SESfxtp", "t2D3k4fNdErd66YxtvXEdft9xuLoKD7CcVo",
				"t2DWYBkxKNivdmsMiivNJzutaQGqmoRjRnL", "t2C3kFF9iQRxfc4B9zgbWo4dQLLqzqjpuGQ",
				"t2MnT5tzu9HSKcppRyUNwoTp8MUueuSGNaB", "t2AREsWdoW1F8EQYsScsjkgqobmgrkKeUkK",
				"t2Vf4wKcJ3ZFtLj4jezUUKkwYR92BLHn5UT", "t2K3fdViH6R5tRuXLphKyoYXyZhyWGghDNY",
				"t2VEn3KiKyHSGyzd3nDw6ESWtaCQHwuv9WC", "t2F8XouqdNMq6zzEvxQXHV1TjwZRHwRg8gC",
				"t2BS7Mrbaef3fA4xrmkvDisFVXVrRBnZ6Qj", "t2FuSwoLCdBVPwdZuYoHrEzxAb9qy4qjbnL",
				"t2SX3U8NtrT6gz5Db1AtQCSGjrpptr8JC6h", "t2V51gZNSoJ5kRL74bf9YTtbZuv8Fcqx2FH",
				"t2FyTsLjjdm4jeVwir4xzj7FAkUidbr1b4R", "t2EYbGLekmpqHyn8UBF6kqpahrYm7D6N1Le",
				"t2NQTrStZHtJECNFT3dUBLYA9AErxPCmkka", "t2GSWZZJzoesYxfPTWXkFn5UaxjiYxGBU2a",
				"t2RpffkzyLRevGM3w9aWdqMX6bd8uuAK3vn", "t2JzjoQqnuXtTGSN7k7yk5keURBGvYofh1d",
				"t2AEefc72ieTnsXKmgK2bZNckiwvZe3oPNL", "t2NNs3ZGZFsNj2wvmVd8BSwSfvETgiLrD8J",
				"t2ECCQPVcxUCSSQopdNquguEPE14HsVfcUn", "t2JabDUkG8TaqVKYfqDJ3rqkVdHKp6hwXvG",
				"t2FGzW5Zdc8Cy98ZKmRygsVGi6oKcmYir9n", "t2DUD8a21FtEFn42oVLp5NGbogY13uyjy9t",
				"t2UjVSd3zheHPgAkuX8WQW2CiC9xHQ8EvWp", "t2TBUAhELyHUn8i6SXYsXz5Lmy7kDzA1uT5",
				"t2Tz3uCyhP6eizUWDc3bGH7XUC9GQsEyQNc", "t2NysJSZtLwMLWEJ6MH3BsxRh6h27mNcsSy",
				"t2KXJVVyyrjVxxSeazbY9ksGyft4qsXUNm9", "t2J9YYtH31cveiLZzjaE4AcuwVho6qjTNzp",
				"t2QgvW4sP9zaGpPMH1GRzy7cpydmuRfB4AZ", "t2NDTJP9MosKpyFPHJmfjc5pGCvAU58XGa4",
				"t29pHDBWq7qN4EjwSEHg8wEqYe9pkmVrtRP", "t2Ez9KM8VJLuArcxuEkNRAkhNvidKkzXcjJ",
				"t2D5y7J5fpXajLbGrMBQkFg2mFN8fo3n8cX", "t2UV2wr1PTaUiybpkV3FdSdGxUJeZdZztyt",
			},
			Addresses:             testNetRewardAddresses(),
			AddressChangeInterval: ycashAddressChangeInterval,
		},
	}
}

// testNetKeys returns the key encodings shared by the test and regression
// test networks.  They only differ in their bech32 prefixes.
func testNetKeys(paymentHRP, suffix, net string) KeyPrefixes {
	return KeyPrefixes{
		PrivateKeyID:                     0xef,
		HDPublicKeyID:                    [4]byte{0x04, 0x35, 0x87, 0xcf}, // tpub
		HDPrivateKeyID:                   [4]byte{0x04, 0x35, 0x83, 0x94}, // tprv
		SproutPaymentAddressID:           [2]byte{0x16, 0x52},
		SproutViewingKeyID:               [3]byte{0xa8, 0xac, 0x0c},
		SproutSpendingKeyID:              [2]byte{0xac, 0x08},
		SaplingPaymentAddressHRP:         paymentHRP,
		SaplingFullViewingKeyHRP:         "zview" + suffix,
		SaplingIncomingViewingKeyHRP:     "zivk" + suffix,
		SaplingExtendedSpendingKeyHRP:    "secret-extended-key-" + net,
		SaplingExtendedFullViewingKeyHRP: "zxview" + suffix,
	}
}

// testNetRewardAddresses returns the post-fork founders reward addresses of
// the test network.  The regression test network pays to the same list.
func testNetRewardAddresses() []string {
	return []string{
		"smDw2LWkeuJ1NGBDDZvdNbzY8A9D1mkkDZm", "smDxM6WPpz3HcK6m9cCnhQkBXMLnUf3cryA",
		"smEKdQPcZHYTmcTbVkqfWryRbEZWMrapjMo", "smEVfJmuGErW6ZM3XSNwbJR6cPU3iPABAqY",
		"smEkWMsbV1CBZosu9wtq69f2vNXBT1owNKe", "smFd3Dh5MjEttRHd9S8kx153Vzesefzjc2d",
		"smGBXB9SrjnEDf7ASQxvnujBRc1qBb58o5q", "smGLTYjSriA3n8EMf4JTiHLGUCzUYjau3WV",
		"smGVF2kDywxhjfzBqoFDE1AyXZEafTLSjbH", "smGVrxUHUzd2gaURPw2ASoE3L5WMFcxJcp1",
		"smHTCd59Q9pFzrzA73f6het1ozDzeQaA8E3", "smHy6JaGM9gkaGBJ4DF4p5FbFvoUbpAusWd",
		"smJ1fpQdKNuchkxuVUMBkcCWoBcWFmyDAyZ", "smJ2j3Gea5XH7ERpyYzvo6YQKaoYfzkMUS3",
		"smJ8gtE5EX5oFSp4c5cCDpxoajXTQu73VSC", "smJyGxvwpCxPaFJM6TwZ6cwT1qz5PMPPBeL",
		"smKEt1iVgCDY9V4915HnGpFK3zyTPyQixMa", "smKXxXsNLUVE8Qro6R9EyaEZmvgxqjbsFX9",
		"smLTH7FEiXUVpWjhoL91ToMoSZPU8xAvEh9", "smLo65rNyiEYiVHxWZHNNP9QU1HsQu3QX7b",
		"smMDUN36MqFE4thY54CQnWBpU4ePuayF9TV", "smMWmoipQ7YVuRAJaQHKqhHbbTg28mS6ET5",
		"smMtCCZsR3s7ZiEYskFietNPfSb1eVHNoZi", "smMuh9QVkpQg93Gb54ucaVykbk9FgjZBN3D",
		"smNM44GrsbMWHQRhhayqieCadzURNDLkxkW", "smNhJLQs3LmHWtVscrnJmrLhhjPcDD3unJZ",
		"smPHxC1438rANivn1omntbRF5Nf2wSZfFhs", "smSAidYKoFY2fmi2efcoJPSeBpdVC2vyHvj",
		"smShCYXefsx8RcnW2b7duPKBcD5TXWY5K2A", "smTRxVMtveLrdzVb1B9rLKfDZ3Qp8kAna7r",
		"smTnar3ernxTG5voae2bUC185EicBdSKVux", "smUmPeP8VwuPsNTcJcB7YZY1b1HJJsJfkYp",
		"smVSGTzPP4dbj3HXRR84WoBFWw4EVuuyVi2", "smW8AA9LAKGMj4EXxNtfJQFLFaiuzTyGwYa",
		"smWAgHkGiQ1fZHF9ZBjYzKS7ZX8JtjvWbaU", "smX1HT3n9mtPGeK7qMBETCEGL5UG8eC8nmy",
		"smX3udkLyb3qZ2z2muEinbvNuSi5M2JiiE5", "smXEcB2QZaZgevkB7CS1Tz2BZNQ9cnNwXBj",
		"smXddMXWZvpRDq4FjuTGxLWYTtwbNwc36g5", "smXfPS6G7aiVECG8qFvZc9oFe1bzEvCKECG",
		"smXxQi63m9x2WfhdBYogWdKzavVpbnnGyJq", "smZ53EtRafyjGZyjiNDb1FiGbwXbtE3aqTB",
		"smZJPM9KsKAdfotD6Woh2nb8wLedvhf4Nw5", "smZyciv3CGZLAFU8d2yKff33FU8f2nek5yx",
		"smZzRpCLENnxN5JgMHaKtMruTCi7jsa7Tak", "smaWKSqvUJvajRquGbaHBdNbL78fDf6hdwE",
		"smazMQ9G7NLJXAzX4ZMKc8x6DigyeoEucgk", "smbTaZmsKNEVstoQVyZcJAMJExiytfnwaMU",
	}
}
