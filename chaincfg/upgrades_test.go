// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestUpgradeIndexStringer tests the stringized output and parsing of the
// UpgradeIndex type.
func TestUpgradeIndexStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   UpgradeIndex
		want string
	}{
		{BaseSprout, "sprout"},
		{UpgradeTestDummy, "testdummy"},
		{UpgradeOverwinter, "overwinter"},
		{UpgradeSapling, "sapling"},
		{UpgradeYcash, "ycash"},
		{UpgradeBlossom, "blossom"},
		{UpgradeHeartwood, "heartwood"},
		{UpgradeCanopy, "canopy"},
		{UpgradeNU5, "nu5"},
		{UpgradeZFuture, "zfuture"},
		{0xffff, "Unknown UpgradeIndex (65535)"},
	}

	// Detect additional upgrades that don't have the stringer added.
	if len(tests)-1 != int(NumUpgrades) {
		t.Errorf("It appears an upgrade index was added without adding " +
			"an associated stringer test")
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
		if !test.in.valid() {
			continue
		}
		idx, err := ParseUpgradeIndex(test.want)
		require.NoError(t, err)
		require.Equal(t, test.in, idx)
	}

	idx, err := ParseUpgradeIndex(" Blossom ")
	require.NoError(t, err)
	require.Equal(t, UpgradeBlossom, idx)

	_, err = ParseUpgradeIndex("nu6")
	require.True(t, IsErrorCode(err, ErrInvalidSchedule), "got %v", err)
}

// TestActivationHeight exercises the three activation height variants.
func TestActivationHeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		activation ActivationHeight
		height     int32
		ok         bool
		str        string
	}{
		{"zero value", ActivationHeight{}, 0, false, "never"},
		{"never", NeverActive, 0, false, "never"},
		{"always", AlwaysActive, 0, true, "always"},
		{"height zero", Height(0), 0, true, "0"},
		{"height", Height(570000), 570000, true, "570000"},
	}

	for _, test := range tests {
		height, ok := test.activation.Resolve()
		require.Equal(t, test.height, height, test.name)
		require.Equal(t, test.ok, ok, test.name)
		require.Equal(t, !test.ok, test.activation.IsNever(), test.name)
		require.Equal(t, test.str, test.activation.String(), test.name)
	}

	// Always active and an explicit height of zero resolve alike but are
	// distinct values.
	require.NotEqual(t, AlwaysActive, Height(0))

	require.PanicsWithValue(t, AssertError("negative activation height -1"),
		func() { Height(-1) })
}

// TestUpgradeState ensures the state of an upgrade flips from pending to
// active exactly at its activation height.
func TestUpgradeState(t *testing.T) {
	t.Parallel()

	mainNet := MainNetParams()
	tests := []struct {
		height int32
		idx    UpgradeIndex
		want   UpgradeState
	}{
		{0, BaseSprout, UpgradeActive},
		{0, UpgradeTestDummy, UpgradeDisabled},
		{0, UpgradeOverwinter, UpgradePending},
		{347499, UpgradeOverwinter, UpgradePending},
		{347500, UpgradeOverwinter, UpgradeActive},
		{569999, UpgradeYcash, UpgradePending},
		{570000, UpgradeYcash, UpgradeActive},
		{1100005, UpgradeCanopy, UpgradePending},
		{1100006, UpgradeCanopy, UpgradeActive},
		{1 << 30, UpgradeNU5, UpgradeDisabled},
	}

	for i, test := range tests {
		got := mainNet.Upgrades.State(test.height, test.idx)
		if got != test.want {
			t.Errorf("State #%d (%v at %d): got %v, want %v", i,
				test.idx, test.height, got, test.want)
		}
		isActive := mainNet.Upgrades.IsActive(test.height, test.idx)
		require.Equal(t, test.want == UpgradeActive, isActive)
	}

	require.Equal(t, "Unknown UpgradeState (9)", UpgradeState(9).String())
	require.Panics(t, func() { mainNet.Upgrades.State(0, NumUpgrades) })
	require.Panics(t, func() { mainNet.Upgrades.State(0, -1) })
}

// TestCurrentEpoch tests epoch resolution against the built-in schedules.
func TestCurrentEpoch(t *testing.T) {
	t.Parallel()

	mainNet := MainNetParams()
	testNet := TestNetParams()
	regNet := RegressionNetParams()
	tests := []struct {
		name   string
		params *Params
		height int32
		want   UpgradeIndex
	}{
		{"main genesis", mainNet, 0, BaseSprout},
		{"main before overwinter", mainNet, 347499, BaseSprout},
		{"main overwinter", mainNet, 347500, UpgradeOverwinter},
		{"main sapling", mainNet, 419200, UpgradeSapling},
		{"main before fork", mainNet, 569999, UpgradeSapling},
		{"main fork", mainNet, 570000, UpgradeYcash},
		{"main blossom", mainNet, 1100000, UpgradeBlossom},
		{"main heartwood", mainNet, 1100004, UpgradeHeartwood},
		{"main canopy", mainNet, 1100006, UpgradeCanopy},
		{"main far future", mainNet, 1 << 30, UpgradeCanopy},
		{"test fork", testNet, 510248, UpgradeYcash},
		{"test canopy", testNet, 661634, UpgradeCanopy},
		{"regtest", regNet, 1 << 30, BaseSprout},
	}

	for _, test := range tests {
		got := CurrentEpoch(test.height, &test.params.Upgrades)
		require.Equal(t, test.want, got, test.name)
		require.Equal(t, test.params.Upgrades[test.want].ProtocolVersion,
			test.params.Upgrades.CurrentProtocolVersion(test.height),
			test.name)
	}
}

// TestActivationHeights tests activation height detection and the lookup of
// the next scheduled upgrade.
func TestActivationHeights(t *testing.T) {
	t.Parallel()

	s := &MainNetParams().Upgrades

	require.True(t, s.IsActivationHeight(570000, UpgradeYcash))
	require.False(t, s.IsActivationHeight(570001, UpgradeYcash))
	require.False(t, s.IsActivationHeight(0, BaseSprout))
	require.False(t, s.IsActivationHeight(-1, UpgradeOverwinter))
	require.False(t, s.IsActivationHeight(0, UpgradeNU5))
	require.Panics(t, func() { s.IsActivationHeight(0, NumUpgrades) })

	require.True(t, s.IsActivationHeightForAnyUpgrade(1100003))
	require.False(t, s.IsActivationHeightForAnyUpgrade(1100004))
	require.False(t, s.IsActivationHeightForAnyUpgrade(0))

	tests := []struct {
		height int32
		idx    UpgradeIndex
		next   int32
		ok     bool
	}{
		{0, UpgradeOverwinter, 347500, true},
		{347500, UpgradeSapling, 419200, true},
		{570000, UpgradeBlossom, 1100000, true},
		{1100005, UpgradeCanopy, 1100006, true},
		{1100006, 0, 0, false},
	}
	for _, test := range tests {
		idx, ok := s.NextEpoch(test.height)
		require.Equal(t, test.ok, ok, "height %d", test.height)
		require.Equal(t, test.idx, idx, "height %d", test.height)
		next, ok := s.NextActivationHeight(test.height)
		require.Equal(t, test.ok, ok, "height %d", test.height)
		require.Equal(t, test.next, next, "height %d", test.height)
	}
}

// TestCheckActivationHash ensures pinned activation blocks are enforced.
func TestCheckActivationHash(t *testing.T) {
	t.Parallel()

	s := &MainNetParams().Upgrades
	pinned := s[UpgradeYcash].ExpectedHash
	var other chainhash.Hash

	require.NoError(t, s.CheckActivationHash(570000, pinned))
	require.NoError(t, s.CheckActivationHash(570001, &other))
	require.NoError(t, s.CheckActivationHash(1100000, &other))

	err := s.CheckActivationHash(570000, &other)
	require.True(t, IsErrorCode(err, ErrActivationHashMismatch),
		"got %v", err)
}

// TestScheduleValidate ensures malformed schedules are rejected.
func TestScheduleValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(s *UpgradeSchedule)
		valid  bool
	}{
		{
			name:   "unmodified",
			modify: func(s *UpgradeSchedule) {},
			valid:  true,
		},
		{
			name: "base at height",
			modify: func(s *UpgradeSchedule) {
				s[BaseSprout].Activation = Height(0)
			},
		},
		{
			name: "base never",
			modify: func(s *UpgradeSchedule) {
				s[BaseSprout].Activation = NeverActive
			},
		},
		{
			name: "decreasing",
			modify: func(s *UpgradeSchedule) {
				s[UpgradeBlossom].Activation = Height(500000)
			},
		},
		{
			name: "equal heights",
			modify: func(s *UpgradeSchedule) {
				s[UpgradeHeartwood].Activation = Height(1100000)
				s[UpgradeCanopy].Activation = Height(1100000)
			},
			valid: true,
		},
		{
			name: "gap of never active upgrades",
			modify: func(s *UpgradeSchedule) {
				s[UpgradeBlossom].Activation = NeverActive
			},
			valid: true,
		},
	}

	for _, test := range tests {
		s := MainNetParams().Upgrades
		test.modify(&s)
		err := s.validate()
		if test.valid {
			require.NoError(t, err, test.name)
			continue
		}
		require.True(t, IsErrorCode(err, ErrInvalidSchedule),
			"%s: got %v", test.name, err)
	}
}

// randomSchedule draws a valid schedule with non-decreasing activation heights
// and randomly disabled upgrades.
func randomSchedule(t *rapid.T) *UpgradeSchedule {
	var s UpgradeSchedule
	s[BaseSprout].Activation = AlwaysActive
	height := int32(0)
	for idx := BaseSprout + 1; idx < NumUpgrades; idx++ {
		height += rapid.Int32Range(0, 1000).Draw(t, "step")
		if rapid.Bool().Draw(t, "never") {
			continue
		}
		s[idx].Activation = Height(height)
	}
	return &s
}

// TestCurrentEpochMonotonic checks that the current epoch never moves
// backwards as the height grows.
func TestCurrentEpochMonotonic(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		s := randomSchedule(t)
		require.NoError(t, s.validate())

		low := rapid.Int32Range(0, 12000).Draw(t, "low")
		high := rapid.Int32Range(low, 12000).Draw(t, "high")
		lowEpoch, highEpoch := s.CurrentEpoch(low), s.CurrentEpoch(high)
		if lowEpoch > highEpoch {
			t.Fatalf("epoch at %d is %v, above %v at %d", low,
				lowEpoch, highEpoch, high)
		}

		// The current epoch is active and no later one is.
		require.True(t, s.IsActive(high, highEpoch))
		for idx := highEpoch + 1; idx < NumUpgrades; idx++ {
			require.False(t, s.IsActive(high, idx))
		}
	})
}

// TestBuiltinGenesisEpoch ensures every built-in network starts in the base
// epoch.
func TestBuiltinGenesisEpoch(t *testing.T) {
	t.Parallel()

	for _, name := range SupportedNetworks() {
		params := networkConstructors[name]()
		require.Equal(t, BaseSprout, params.Upgrades.CurrentEpoch(0), name)
	}
}
