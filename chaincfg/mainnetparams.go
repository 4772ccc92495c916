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

// mainNetMagic is the message start of the main network, 24 e9 27 64 on the
// wire.
const mainNetMagic = 0x6427e924

// MainNetParams returns the network parameters for the main Ycash network.
// Every call returns a new, independently owned Params.
func MainNetParams() *Params {
	return &Params{
		Name:             "main",
		Network:          MainNet,
		Net:              mainNetMagic,
		DefaultPort:      "8833",
		PruneAfterHeight: 100000,
		DNSSeeds: []DNSSeed{
			{"ycash.xyz", "seed.ycash.xyz"},
		},
		AlertPubKey: parsePubKey("04ba73cc5c962a359005140276ae60106afbed9" +
			"78d3824d0ad8d77195357e0493dad248688e3f469f8183de9582d98418" +
			"3f94f9a2e59198ffe4c5376e4d720daec"),

		// Chain parameters
		GenesisBlock: mainNetGenesisBlock(),
		GenesisHash:  newHashFromStr("00040fe8ec8471911baa1db1266ea15dd06b4a8a5c453883c000b031973dce08"),

		Upgrades: UpgradeSchedule{
			BaseSprout:       {ProtocolVersion: 170002, Activation: AlwaysActive},
			UpgradeTestDummy: {ProtocolVersion: 170002, Activation: NeverActive},
			UpgradeOverwinter: {
				ProtocolVersion: 170005,
				Activation:      Height(347500),
				ExpectedHash:    newHashFromStr("0000000003761c0d0c3974b54bdb425613bbb1eaadd6e70b764de82f195ea243"),
			},
			UpgradeSapling: {
				ProtocolVersion: 170007,
				Activation:      Height(419200),
				ExpectedHash:    newHashFromStr("00000000025a57200d898ac7f21e26bf29028bbe96ec46e05b2c17cc9db9e4f3"),
			},
			UpgradeYcash: {
				ProtocolVersion: 270007,
				Activation:      Height(570000),
				ExpectedHash:    newHashFromStr("0000014fbc5917ba8bcacf3336faf588d86b32443aa3a490a587af5750c77ec5"),
			},
			UpgradeBlossom:   {ProtocolVersion: 270009, Activation: Height(1100000)},
			UpgradeHeartwood: {ProtocolVersion: 270011, Activation: Height(1100003)},
			UpgradeCanopy:    {ProtocolVersion: 270013, Activation: Height(1100006)},
			UpgradeNU5:       {ProtocolVersion: 270015, Activation: NeverActive},
			UpgradeZFuture:   {ProtocolVersion: 0x7fffffff, Activation: NeverActive},
		},

		Equihash:         EquihashParams{N: 200, K: 9},
		EquihashUpgrades: ycashEquihashUpgrades(),

		PowLimit:                    newBigFromHex("0007ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowAveragingWindow:          17,
		PowMaxAdjustDown:            32,
		PowMaxAdjustUp:              16,
		PreBlossomPowTargetSpacing:  preBlossomPowTargetSpacing,
		PostBlossomPowTargetSpacing: postBlossomPowTargetSpacing,
		ReduceMinDifficulty:         false,
		PowNoRetargeting:            false,
		MinDifficultyAtYcashFork:    false,
		ScaledDifficultyAtYcashFork: true,
		MinimumChainWork:            newBigFromHex("0152d608a8c7cab7"),

		FutureTimestampSoftForkHeight: NeverActive,

		// Subsidy parameters.
		SubsidySlowStartInterval:          20000,
		PreBlossomSubsidyHalvingInterval:  preBlossomHalvingInterval,
		PostBlossomSubsidyHalvingInterval: preBlossomHalvingInterval * 2,
		FundingPeriodLength:               preBlossomHalvingInterval * 2 / fundingPeriodsPerHalving,
		MajorityEnforceBlockUpgrade:       750,
		MajorityRejectBlockOutdated:       950,
		MajorityWindow:                    4000,
		CoinbaseMustBeShielded:            true,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("00040fe8ec8471911baa1db1266ea15dd06b4a8a5c453883c000b031973dce08")},
			{2500, newHashFromStr("00000006dc968f600be11a86cbfbf7feb61c7577f45caced2e82b6d261d19744")},
			{15000, newHashFromStr("00000000b6bc56656812a5b8dcad69d6ad4446dec23b5ec456c18641fb5381ba")},
			{67500, newHashFromStr("000000006b366d2c1649a6ebb4787ac2b39c422f451880bc922e3a6fbd723616")},
			{100000, newHashFromStr("000000001c5c82cd6baccfc0879e3830fd50d5ede17fa2c37a9a253c610eb285")},
			{133337, newHashFromStr("0000000002776ccfaf06cc19857accf3e20c01965282f916b8a886e3e4a05be9")},
			{180000, newHashFromStr("000000001205b742eac4a1b3959635bdf8aeada078d6a996df89740f7b54351d")},
			{222222, newHashFromStr("000000000cafb9e56445a6cabc8057b57ee6fcc709e7adbfa195e5c7fac61343")},
			{270000, newHashFromStr("00000000025c1cfa0258e33ab050aaa9338a3d4aaa3eb41defefc887779a9729")},
			{304600, newHashFromStr("00000000028324e022a45014c4a4dc51e95d41e6bceb6ad554c5b65d5cea3ea5")},
			{410100, newHashFromStr("0000000002c565958f783a24a4ac17cde898ff525e75ed9baf66861b0b9fcada")},
			{497000, newHashFromStr("0000000000abd333f0acca6ffdf78a167699686d6a7d25c33fca5f295061ffff")},
			{525000, newHashFromStr("0000000001a36c500378be8862d9bf1bea8f1616da6e155971b608139cc7e39b")},
			{572760, newHashFromStr("00000008db657f58222e38e354c18ccbb6c74cf525ef4f3a95f0f8a324a3166d")},
			{980000, newHashFromStr("00000510ccc6bae2ddb38b9313ffb9686397f6cd0dee243462baeaf8911d0791")},
			{1035353, newHashFromStr("00000543378a75f173914390c672838c9fbd9dc86ae647ffae18ed6b626edb30")},
		},
		CheckpointStats: CheckpointStats{
			Timestamp: time.Unix(1633786161, 0), // 2021-10-09 13:29:21 +0000 UTC
			TxCount:   6114050,
			TxPerDay:  3400,
		},

		SproutValuePool: ValuePoolCheckpoint{
			Height:  520633,
			Balance: 22145062442933,
			Hash:    newHashFromStr("0000000000c7b46b6bc04b4cbf87d8bb08722aebd51232619b214f7273f8460e"),
		},
		ZIP209Enabled: true,

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		MineBlocksOnDemand:       false,

		// Address encoding magics
		Prefixes: yecutil.NetPrefixes{
			PubKeyHashAddrID: [2]byte{0x1c, 0x28}, // starts with s1
			ScriptHashAddrID: [2]byte{0x1c, 0x2c},
		},
		LegacyPrefixes: yecutil.NetPrefixes{
			PubKeyHashAddrID: [2]byte{0x1c, 0xb8}, // starts with t1
			ScriptHashAddrID: [2]byte{0x1c, 0xbd}, // starts with t3
		},
		Keys: KeyPrefixes{
			PrivateKeyID:                     0x80,
			HDPublicKeyID:                    [4]byte{0x04, 0x88, 0xb2, 0x1e}, // xpub
			HDPrivateKeyID:                   [4]byte{0x04, 0x88, 0xad, 0xe4}, // xprv
			SproutPaymentAddressID:           [2]byte{0x16, 0x36},
			SproutViewingKeyID:               [3]byte{0xa8, 0xab, 0xd3},
			SproutSpendingKeyID:              [2]byte{0xab, 0x36},
			SaplingPaymentAddressHRP:         "ys",
			SaplingFullViewingKeyHRP:         "zviews",
			SaplingIncomingViewingKeyHRP:     "zivks",
			SaplingExtendedSpendingKeyHRP:    "secret-extended-key-main",
			SaplingExtendedFullViewingKeyHRP: "zxviews",
		},
		LegacyKeys: KeyPrefixes{
			PrivateKeyID:                     0x80,
			HDPublicKeyID:                    [4]byte{0x04, 0x88, 0xb2, 0x1e},
			HDPrivateKeyID:                   [4]byte{0x04, 0x88, 0xad, 0xe4},
			SproutPaymentAddressID:           [2]byte{0x16, 0x9a},
			SproutViewingKeyID:               [3]byte{0xa8, 0xab, 0xd3},
			SproutSpendingKeyID:              [2]byte{0xab, 0x36},
			SaplingPaymentAddressHRP:         "zs",
			SaplingFullViewingKeyHRP:         "zviews",
			SaplingIncomingViewingKeyHRP:     "zivks",
			SaplingExtendedSpendingKeyHRP:    "secret-extended-key-main",
			SaplingExtendedFullViewingKeyHRP: "zxviews",
		},
		CurrencyUnits: "YEC",

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		BIP44CoinType: 347,

		FoundersReward: FoundersReward{
			LegacyAddresses: []string{
				"t3Vz22vK5z2LcKEdg16Yv4FFneEL1zg9ojd", "t3cL9AucCajm3HXDhb5jBnJK2vapVoXsop3",
				"t3fqvkzrrNaMcamkQMwAyHRjfDdM2xQvDTR", "t3TgZ9ZT2CTSK44AnUPi6qeNaHa2eC7pUyF",
				"t3SpkcPQPfuRYHsP5vz3Pv86PgKo5m9KVmx", "t3Xt4oQMRPagwbpQqkgAViQgtST4VoSWR6S",
				"t3ayBkZ4w6kKXynwoHZFUSSgXRKtogTXNgb", "t3adJBQuaa21u7NxbR8YMzp3km3TbSZ4MGB",
				"t3K4aLYagSSBySdrfAGGeUd5H9z5Qvz88t2", "t3RYnsc5nhEvKiva3ZPhfRSk7eyh1CrA6Rk",
				"t3Ut4KUq2ZSMTPNE67pBU5LqYCi2q36KpXQ", "t3ZnCNAvgu6CSyHm1vWtrx3aiN98dSAGpnD",
				"t3fB9cB3eSYim64BS9xfwAHQUKLgQQroBDG", "t3cwZfKNNj2vXMAHBQeewm6pXhKFdhk18kD",
				"t3YcoujXfspWy7rbNUsGKxFEWZqNstGpeG4", "t3bLvCLigc6rbNrUTS5NwkgyVrZcZumTRa4",
				"t3VvHWa7r3oy67YtU4LZKGCWa2J6eGHvShi", "t3eF9X6X2dSo7MCvTjfZEzwWrVzquxRLNeY",
				"t3esCNwwmcyc8i9qQfyTbYhTqmYXZ9AwK3X", "t3M4jN7hYE2e27yLsuQPPjuVek81WV3VbBj",
				"t3gGWxdC67CYNoBbPjNvrrWLAWxPqZLxrVY", "t3LTWeoxeWPbmdkUD3NWBquk4WkazhFBmvU",
				"t3P5KKX97gXYFSaSjJPiruQEX84yF5z3Tjq", "t3f3T3nCWsEpzmD35VK62JgQfFig74dV8C9",
				"t3Rqonuzz7afkF7156ZA4vi4iimRSEn41hj", "t3fJZ5jYsyxDtvNrWBeoMbvJaQCj4JJgbgX",
				"t3Pnbg7XjP7FGPBUuz75H65aczphHgkpoJW", "t3WeKQDxCijL5X7rwFem1MTL9ZwVJkUFhpF",
				"t3Y9FNi26J7UtAUC4moaETLbMo8KS1Be6ME", "t3aNRLLsL2y8xcjPheZZwFy3Pcv7CsTwBec",
				"t3gQDEavk5VzAAHK8TrQu2BWDLxEiF1unBm", "t3Rbykhx1TUFrgXrmBYrAJe2STxRKFL7G9r",
				"t3aaW4aTdP7a8d1VTE1Bod2yhbeggHgMajR", "t3YEiAa6uEjXwFL2v5ztU1fn3yKgzMQqNyo",
				"t3g1yUUwt2PbmDvMDevTCPWUcbDatL2iQGP", "t3dPWnep6YqGPuY1CecgbeZrY9iUwH8Yd4z",
				"t3QRZXHDPh2hwU46iQs2776kRuuWfwFp4dV", "t3enhACRxi1ZD7e8ePomVGKn7wp7N9fFJ3r",
				"t3PkLgT71TnF112nSwBToXsD77yNbx2gJJY", "t3LQtHUDoe7ZhhvddRv4vnaoNAhCr2f4oFN",
				"t3fNcdBUbycvbCtsD2n9q3LuxG7jVPvFB8L", "t3dKojUU2EMjs28nHV84TvkVEUDu1M1FaEx",
				"t3aKH6NiWN1ofGd8c19rZiqgYpkJ3n679ME", "t3MEXDF9Wsi63KwpPuQdD6by32Mw2bNTbEa",
				"t3WDhPfik343yNmPTqtkZAoQZeqA83K7Y3f", "t3PSn5TbMMAEw7Eu36DYctFezRzpX1hzf3M",
				"t3R3Y5vnBLrEn8L6wFjPjBLnxSUQsKnmFpv", "t3Pcm737EsVkGTbhsu2NekKtJeG92mvYyoN",
			},
			Addresses: []string{
				"s1hfWJ4ej1H3s8XCUb7YnrU68K64AsGVUHE", "s1iZaRoYtafWspcieQxg6hhaU4DfZyAdGQf",
				"s1RSr6xec6Cc98emM4cdq45rkVekHMjRWbw", "s1RsqYeweoKVepivLPLsiajE8c6khu5UKhS",
				"s1MNmqMWyV4nMWE4oDb1nqJs7haJrv9QTKp", "s1RP95ESdcu33gMtU7deLW9TP6yDZncjRQ7",
				"s1h8W7xQbiU8Zxu21Zcg82NByjkWMcEbNtX", "s1PVcdfcrJrDCmXxgSTGuKGSNhwSYZ51XKJ",
				"s1PkV5nFkgQN4EGuTtEcmm4CxeBVx2L5HHv", "s1jiVSTfMaFUrWnf17BGc416oomHbut58Ue",
				"s1Zr2KdHtnK2zNSMQDrAVv3KU51mgDbqgwe", "s1QkY6tmBHPZacXPMPmsjP37Kxgs5mcgcAn",
				"s1Xu76ZmGDENdLFAiuj5iMdp1RA4hWSNieq", "s1bdiEnfBYaEgrt2TmnY3ZHmdhg5AEw9tjN",
				"s1asM9Ui4U13GjmLoAhvfK6J5QihemQR9Pk", "s1QhTSXYu4K1cTNomN27wiep9WC9HBZjrxJ",
				"s1j3Ef2qCNjwRAM18BgwsPAZFzZ475BWM5S", "s1QZibiN7iqVCfVBES9Gn7e3o5psxRKtpwE",
				"s1fdiDZHkzp8K8UajpVwYUdyFeb6jNVyoKv", "s1iMShbVRH1eCGxK2ZoLMDn5o9NcwXkNPVF",
				"s1YtUXAMt8m31gGeP5m3Y53B1wrMk3FFigJ", "s1gy9aqWUihGRjZa3vqc7136vqTGNAWyefF",
				"s1NNozrex18HZqcHCGpGoSRkj8hqHLEPaVC", "s1NYNDdqthMf7D7sZbnLGuecDtXb48Ne2bf",
				"s1P7UJ9Wp7jstJPUbvMSRVFjN8tfQueQSK3", "s1RDeyH7xg8y9veb9XfAmtKzrMTjFS14c4T",
				"s1NmH6MNXU19xoHjUfpQpb4dEMSy1Wbs9tC", "s1UnFL2yrZapMKmB5EqaBKpogZmnXLUgELB",
				"s1XT3W1sLFdgmGoecQbPdJbjUDMurW8CFA2", "s1gyVwgangQxLCAcm8VS4SWqXDqeohNg7hd",
				"s1k3eWbqnbVM1xtZEDc81UbFdwXgXNnbtdH", "s1Wr6eAh3gZWwBVRZcND9YCzdNfR9cARkD4",
				"s1dtjp2KHWZ6qF2LvgNiEwjJV2dA2c6y75V", "s1cjQf9kmjQdTmnn6mbBaesHMNLt2JqjyEV",
				"s1URQeusSoi7fkgyAwCshFzobUzmLGH4U3b", "s1Z9YqM2h48HUf8kcSHS89q4Z6Bg9xua3kA",
				"s1TLmZzMDsDhYfh4vpY7NpRB4kao2UEEqKu", "s1QEWvfC1uifDfi78NY7cArw9xLEja7QAZR",
				"s1b4kfW9WMUtd2H7X4C64KLzqPWdMPXRMtS", "s1cHTXzCXhKYAX7sY7D8YGcmopjN8Yngoju",
				"s1QKjMQDeF9FLVo2sL8m11VC4ZA18s61s2K", "s1gV8D561ZpmaZVxG176cQM1bMFMnHLvujE",
				"s1caQmLCYVDZegcMoBckHD2RXjBh7ikpj2j", "s1Y63AsWsJTk5t5nSZfaFcFWmtfnFUUAu2V",
				"s1Y2U4GsfZdP9LAbC97GAmSdihBX5FU9gQn", "s1bPYWZMXzyN2ML2vswDiCckmas775QFs2Q",
				"s1erG25RcWYCiBPbT7khTU4ULhzm8jJZ7pv", "s1kYEiPdFZ3oV389q2MmSYY932qPF1ygVtx",
			},
			AddressChangeInterval: ycashAddressChangeInterval,
		},
	}
}

// ycashEquihashUpgrades returns the per-epoch Equihash settings shared by the
// main and test networks.  The Ycash fork moved to 192,7 and every later
// epoch keeps it.
func ycashEquihashUpgrades() [NumUpgrades]EquihashSetting {
	var settings [NumUpgrades]EquihashSetting
	for idx := UpgradeYcash; idx < NumUpgrades; idx++ {
		settings[idx] = ExplicitEquihash(192, 7)
	}
	return settings
}
