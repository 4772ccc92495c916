// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRegtestOverrides tests the overrides available on the regression test
// network.
func TestRegtestOverrides(t *testing.T) {
	t.Parallel()

	params := RegressionNetParams()
	params.SetActivationHeight(UpgradeSapling, Height(5))
	params.SetActivationHeight(UpgradeYcash, AlwaysActive)
	require.Equal(t, UpgradeYcash, params.Upgrades.CurrentEpoch(0))

	// Sapling above Ycash breaks the upgrade order.
	err := params.Validate()
	require.True(t, IsErrorCode(err, ErrInvalidSchedule), "got %v", err)
	params.SetActivationHeight(UpgradeSapling, AlwaysActive)
	require.NoError(t, params.Validate())

	limit := big.NewInt(0x7fff)
	params.SetRegtestPow(32, 16, limit, false)
	limit.SetInt64(1)
	require.Equal(t, int64(32), params.PowMaxAdjustDown)
	require.Equal(t, int64(16), params.PowMaxAdjustUp)
	require.Equal(t, int64(0x7fff), params.PowLimit.Int64())
	require.False(t, params.PowNoRetargeting)

	params.SetZIP209Enabled()
	params.SetCoinbaseMustBeShielded()
	require.True(t, params.ZIP209Enabled)
	require.True(t, params.CoinbaseMustBeShielded)
}

// TestOverridePanics ensures the overrides refuse to change anything but the
// regression test network.
func TestOverridePanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(p *Params)
	}{
		{"activation height", func(p *Params) { p.SetActivationHeight(UpgradeNU5, Height(1)) }},
		{"pow", func(p *Params) { p.SetRegtestPow(0, 0, big.NewInt(1), true) }},
		{"zip 209", func(p *Params) { p.SetZIP209Enabled() }},
		{"shielded coinbase", func(p *Params) { p.SetCoinbaseMustBeShielded() }},
	}

	for _, test := range tests {
		for _, params := range []*Params{MainNetParams(), TestNetParams()} {
			params := params
			require.Panics(t, func() { test.f(params) }, "%s on %s",
				test.name, params.Name)
		}
	}

	params := RegressionNetParams()
	require.Panics(t, func() { params.SetActivationHeight(BaseSprout, Height(1)) })
	require.Panics(t, func() { params.SetActivationHeight(NumUpgrades, Height(1)) })

	defer func() {
		r := recover()
		if _, ok := r.(AssertError); !ok {
			t.Fatalf("expected an AssertError panic, got %v", r)
		}
	}()
	MainNetParams().SetZIP209Enabled()
}
