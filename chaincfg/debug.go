// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
)

// The methods in this file change consensus rules and only exist so that
// integration tests can shape the regression test network.  They panic on any
// other network and must only be called during single-threaded setup.

// assertRegTest panics unless p describes the regression test network.
func (p *Params) assertRegTest(op string) {
	if p.Network != RegTest {
		assertf("%s is only permitted on the regtest network, not %s",
			op, p.Name)
	}
}

// SetActivationHeight reschedules a network upgrade.  BaseSprout can not be
// rescheduled.
func (p *Params) SetActivationHeight(idx UpgradeIndex, activation ActivationHeight) {
	p.assertRegTest("SetActivationHeight")
	if idx <= BaseSprout || idx >= NumUpgrades {
		assertf("cannot reschedule upgrade %d", idx)
	}
	p.Upgrades[idx].Activation = activation
	log.Warnf("%s: %v activation height set to %v", p.Name, idx, activation)
}

// SetRegtestPow replaces the difficulty adjustment bounds, the proof of work
// limit and whether difficulty is retargeted at all.
func (p *Params) SetRegtestPow(maxAdjustDown, maxAdjustUp int64, powLimit *big.Int, noRetargeting bool) {
	p.assertRegTest("SetRegtestPow")
	p.PowMaxAdjustDown = maxAdjustDown
	p.PowMaxAdjustUp = maxAdjustUp
	p.PowLimit = new(big.Int).Set(powLimit)
	p.PowNoRetargeting = noRetargeting
	log.Warnf("%s: proof of work set to adjust down %d%%, up %d%%, "+
		"limit %064x, no retargeting %v", p.Name, maxAdjustDown,
		maxAdjustUp, powLimit, noRetargeting)
}

// SetZIP209Enabled enforces the shielded value pool turnstile so that
// violations can be debugged.
func (p *Params) SetZIP209Enabled() {
	p.assertRegTest("SetZIP209Enabled")
	p.ZIP209Enabled = true
	log.Warnf("%s: ZIP 209 enabled", p.Name)
}

// SetCoinbaseMustBeShielded requires coinbase outputs to be shielded.
func (p *Params) SetCoinbaseMustBeShielded() {
	p.assertRegTest("SetCoinbaseMustBeShielded")
	p.CoinbaseMustBeShielded = true
	log.Warnf("%s: coinbase must be shielded", p.Name)
}
