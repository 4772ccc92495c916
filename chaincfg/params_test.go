// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// TestSelectNetwork tests network selection by name.
func TestSelectNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		network Network
		net     wire.BitcoinNet
		start   [4]byte
		port    string
	}{
		{"main", MainNet, mainNetMagic, [4]byte{0x24, 0xe9, 0x27, 0x64}, "8833"},
		{"test", TestNet, testNetMagic, [4]byte{0xfa, 0x1a, 0xf9, 0xbf}, "18833"},
		{"regtest", RegTest, regTestMagic, [4]byte{0xaa, 0xe8, 0x3f, 0x5f}, "18344"},
	}

	for _, test := range tests {
		params, err := SelectNetwork(test.name)
		require.NoError(t, err, test.name)
		require.Equal(t, test.name, params.Name)
		require.Equal(t, test.network, params.Network, test.name)
		require.Equal(t, test.name, params.Network.String())
		require.Equal(t, test.net, params.Net, test.name)
		require.Equal(t, test.start, params.MessageStart(), test.name)
		require.Equal(t, test.port, params.DefaultPort, test.name)
	}

	for _, name := range []string{"", "mainnet", "testnet3", "Main"} {
		_, err := SelectNetwork(name)
		require.True(t, IsErrorCode(err, ErrUnknownNetwork),
			"%q: got %v", name, err)
	}

	require.Equal(t, []string{"main", "regtest", "test"}, SupportedNetworks())
	require.Equal(t, "Unknown Network (7)", Network(7).String())
}

// TestSelectNetworkIndependent ensures each selection yields parameters that
// are not shared with any other.
func TestSelectNetworkIndependent(t *testing.T) {
	t.Parallel()

	first, err := SelectNetwork("regtest")
	require.NoError(t, err)
	second, err := SelectNetwork("regtest")
	require.NoError(t, err)

	first.SetActivationHeight(UpgradeOverwinter, Height(10))
	first.FoundersReward.Addresses[0] = "changed"
	first.PowLimit.SetInt64(1)

	require.True(t, second.Upgrades[UpgradeOverwinter].Activation.IsNever())
	require.NotEqual(t, "changed", second.FoundersReward.Addresses[0])
	require.NotEqual(t, int64(1), second.PowLimit.Int64())
}

// TestNetworkDetails spot checks the hard-coded parameters of each network.
func TestNetworkDetails(t *testing.T) {
	t.Parallel()

	mainNet := MainNetParams()
	require.NotNil(t, mainNet.AlertPubKey)
	require.Equal(t, "seed.ycash.xyz", mainNet.DNSSeeds[0].String())
	require.Equal(t, "YEC", mainNet.CurrencyUnits)
	require.Equal(t, "ys", mainNet.Keys.SaplingPaymentAddressHRP)
	require.Equal(t, "zs", mainNet.LegacyKeys.SaplingPaymentAddressHRP)
	require.Len(t, mainNet.FoundersReward.LegacyAddresses, 48)
	require.Len(t, mainNet.FoundersReward.Addresses, 48)
	require.True(t, mainNet.ZIP209Enabled)
	require.True(t, mainNet.CoinbaseMustBeShielded)

	testNet := TestNetParams()
	require.NotNil(t, testNet.AlertPubKey)
	require.False(t, testNet.AlertPubKey.IsEqual(mainNet.AlertPubKey))
	require.Len(t, testNet.FoundersReward.LegacyAddresses, 48)
	h, ok := testNet.FutureTimestampSoftForkHeight.Resolve()
	require.True(t, ok)
	require.Equal(t, int32(661610), h)

	regNet := RegressionNetParams()
	require.Nil(t, regNet.AlertPubKey)
	require.Empty(t, regNet.DNSSeeds)
	require.True(t, regNet.PowNoRetargeting)
	require.True(t, regNet.MineBlocksOnDemand)
	require.Len(t, regNet.FoundersReward.LegacyAddresses, 1)
	require.Equal(t, testNet.FoundersReward.Addresses,
		regNet.FoundersReward.Addresses)
}

// TestValidateBuiltins ensures every built-in network passes validation.
func TestValidateBuiltins(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, validateNetworks)
	for _, name := range SupportedNetworks() {
		require.NoError(t, networkConstructors[name]().Validate(), name)
	}
}

// TestHardcodedValuePanics ensures the helpers used to build the network
// tables panic on malformed input.
func TestHardcodedValuePanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func()
	}{
		{"hash", func() { newHashFromStr("banana") }},
		{"big int", func() { newBigFromHex("banana") }},
		{"hex", func() { hexDecode("banana") }},
		{"pubkey", func() { parsePubKey("0400") }},
	}

	for _, test := range tests {
		require.Panics(t, test.f, test.name)
	}
}
