// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// EquihashParams is the (N, K) pair that sizes an Equihash proof-of-work
// instance.
type EquihashParams struct {
	N uint32
	K uint32
}

// String returns the pair in N,K form.
func (e EquihashParams) String() string {
	return fmt.Sprintf("%d,%d", e.N, e.K)
}

// EquihashParametersAcceptable returns whether the solver supports the passed
// parameters.
func EquihashParametersAcceptable(n, k uint32) bool {
	return k > 0 && k < n && n%8 == 0 && n%(k+1) == 0 && n/(k+1)+1 < 32
}

// EquihashSetting is the Equihash configuration of a single upgrade epoch.
// Each of N and K is either set explicitly or inherited from the network
// default, independently of the other.  The zero value inherits both.
type EquihashSetting struct {
	n, k       uint32
	hasN, hasK bool
}

// InheritEquihash is the setting of an epoch that uses the network default
// for both parameters.
var InheritEquihash = EquihashSetting{}

// ExplicitEquihash returns a setting that overrides both parameters.
func ExplicitEquihash(n, k uint32) EquihashSetting {
	return EquihashSetting{n: n, k: k, hasN: true, hasK: true}
}

// WithN returns a copy of the setting with N set explicitly.
func (s EquihashSetting) WithN(n uint32) EquihashSetting {
	s.n, s.hasN = n, true
	return s
}

// WithK returns a copy of the setting with K set explicitly.
func (s EquihashSetting) WithK(k uint32) EquihashSetting {
	s.k, s.hasK = k, true
	return s
}

// Resolve fills in the inherited parameters from def.
func (s EquihashSetting) Resolve(def EquihashParams) EquihashParams {
	params := def
	if s.hasN {
		params.N = s.n
	}
	if s.hasK {
		params.K = s.k
	}
	return params
}

// String returns the setting with inherited parameters shown as "default".
func (s EquihashSetting) String() string {
	n, k := "default", "default"
	if s.hasN {
		n = fmt.Sprintf("%d", s.n)
	}
	if s.hasK {
		k = fmt.Sprintf("%d", s.k)
	}
	return n + "," + k
}

// EquihashParamsAtHeight returns the Equihash parameters for a block at the
// given height.
//
// The regression test network always uses the network default so that blocks
// stay cheap to mine at every height.  Every other network resolves the epoch
// active at the height and applies its setting on top of the default.
func (p *Params) EquihashParamsAtHeight(height int32) EquihashParams {
	if p.Network == RegTest {
		return p.Equihash
	}
	epoch := p.Upgrades.CurrentEpoch(height)
	return p.EquihashUpgrades[epoch].Resolve(p.Equihash)
}

// SetEquihashParams overrides the Equihash parameters of an upgrade epoch.
// It exists for interoperability tooling and must only be called during
// single-threaded setup, before anything resolves parameters through p.
//
// It panics when idx is BaseSprout or out of range, or when the parameters
// are not acceptable to the solver.
func (p *Params) SetEquihashParams(idx UpgradeIndex, n, k uint32) {
	if idx <= BaseSprout || idx >= NumUpgrades {
		assertf("cannot override equihash parameters of upgrade %d", idx)
	}
	if !EquihashParametersAcceptable(n, k) {
		assertf("unacceptable equihash parameters %d,%d", n, k)
	}
	p.EquihashUpgrades[idx] = ExplicitEquihash(n, k)
	log.Warnf("%s: equihash parameters for %v set to %d,%d", p.Name, idx,
		n, k)
}

// validateEquihash checks the network default and every explicit per-epoch
// setting against the solver constraints.
func (p *Params) validateEquihash() error {
	if !EquihashParametersAcceptable(p.Equihash.N, p.Equihash.K) {
		str := fmt.Sprintf("unacceptable default equihash parameters %v",
			p.Equihash)
		return paramsError(ErrInvalidEquihash, str)
	}
	for idx := BaseSprout; idx < NumUpgrades; idx++ {
		resolved := p.EquihashUpgrades[idx].Resolve(p.Equihash)
		if !EquihashParametersAcceptable(resolved.N, resolved.K) {
			str := fmt.Sprintf("unacceptable equihash parameters %v "+
				"for %v", resolved, idx)
			return paramsError(ErrInvalidEquihash, str)
		}
	}
	return nil
}
