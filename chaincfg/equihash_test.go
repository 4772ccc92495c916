// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestEquihashParametersAcceptable tests the solver constraints.
func TestEquihashParametersAcceptable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, k uint32
		want bool
	}{
		{200, 9, true},
		{192, 7, true},
		{144, 5, true},
		{96, 5, true},
		{48, 5, true},
		{200, 0, false},   // k must be positive
		{200, 200, false}, // k must be below n
		{201, 2, false},   // n must be a multiple of 8
		{200, 8, false},   // n must be a multiple of k+1
		{192, 1, false},   // collision length too large
	}

	for _, test := range tests {
		got := EquihashParametersAcceptable(test.n, test.k)
		require.Equal(t, test.want, got, "%d,%d", test.n, test.k)
	}
}

// TestEquihashSetting ensures per-epoch settings inherit each parameter
// independently.
func TestEquihashSetting(t *testing.T) {
	t.Parallel()

	def := EquihashParams{N: 200, K: 9}
	tests := []struct {
		name    string
		setting EquihashSetting
		want    EquihashParams
		str     string
	}{
		{"inherit", InheritEquihash, def, "default,default"},
		{"explicit", ExplicitEquihash(192, 7), EquihashParams{192, 7}, "192,7"},
		{"n only", InheritEquihash.WithN(144), EquihashParams{144, 9}, "144,default"},
		{"k only", InheritEquihash.WithK(5), EquihashParams{200, 5}, "default,5"},
		{"both via with", InheritEquihash.WithN(96).WithK(5), EquihashParams{96, 5}, "96,5"},
	}

	for _, test := range tests {
		require.Equal(t, test.want, test.setting.Resolve(def), test.name)
		require.Equal(t, test.str, test.setting.String(), test.name)
	}
	require.Equal(t, "200,9", def.String())
}

// TestEquihashParamsAtHeight tests Equihash resolution on the built-in
// networks.
func TestEquihashParamsAtHeight(t *testing.T) {
	t.Parallel()

	mainNet := MainNetParams()
	testNet := TestNetParams()
	tests := []struct {
		name   string
		params *Params
		height int32
		want   EquihashParams
	}{
		{"main genesis", mainNet, 0, EquihashParams{200, 9}},
		{"main before fork", mainNet, 569999, EquihashParams{200, 9}},
		{"main fork", mainNet, 570000, EquihashParams{192, 7}},
		{"main canopy", mainNet, 1100006, EquihashParams{192, 7}},
		{"test before fork", testNet, 510247, EquihashParams{200, 9}},
		{"test fork", testNet, 510248, EquihashParams{192, 7}},
	}

	for _, test := range tests {
		got := test.params.EquihashParamsAtHeight(test.height)
		require.Equal(t, test.want, got, test.name)
	}
}

// TestRegtestEquihashConstant checks that the regression test network uses
// its default parameters at every height, whatever is scheduled.
func TestRegtestEquihashConstant(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		params := RegressionNetParams()
		fork := rapid.Int32Range(0, 1000).Draw(t, "fork")
		params.SetActivationHeight(UpgradeYcash, Height(fork))
		params.SetEquihashParams(UpgradeYcash, 96, 5)

		height := rapid.Int32Range(0, 2000).Draw(t, "height")
		got := params.EquihashParamsAtHeight(height)
		require.Equal(t, EquihashParams{N: 48, K: 5}, got)
	})
}

// TestSetEquihashParams tests overriding the parameters of an epoch.
func TestSetEquihashParams(t *testing.T) {
	t.Parallel()

	params := TestNetParams()
	params.SetEquihashParams(UpgradeCanopy, 144, 5)
	require.NoError(t, params.Validate())
	require.Equal(t, EquihashParams{192, 7}, params.EquihashParamsAtHeight(661633))
	require.Equal(t, EquihashParams{144, 5}, params.EquihashParamsAtHeight(661634))

	require.Panics(t, func() { params.SetEquihashParams(BaseSprout, 144, 5) })
	require.Panics(t, func() { params.SetEquihashParams(NumUpgrades, 144, 5) })
	require.Panics(t, func() { params.SetEquihashParams(UpgradeCanopy, 200, 8) })

	// Every constructor call hands out independent parameters.
	require.Equal(t, EquihashParams{192, 7},
		TestNetParams().EquihashParamsAtHeight(661634))
}

// TestValidateEquihash ensures unacceptable settings fail validation.
func TestValidateEquihash(t *testing.T) {
	t.Parallel()

	params := MainNetParams()
	params.Equihash = EquihashParams{N: 200, K: 8}
	err := params.Validate()
	require.True(t, IsErrorCode(err, ErrInvalidEquihash), "got %v", err)

	params = MainNetParams()
	params.EquihashUpgrades[UpgradeBlossom] = InheritEquihash.WithK(8)
	err = params.Validate()
	require.True(t, IsErrorCode(err, ErrInvalidEquihash), "got %v", err)
}
