// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/nultinator/ycash/yecutil"
)

// ycashAddressChangeInterval is the number of blocks each post-fork founders
// reward address is paid for.  It is roughly one month of blocks.
const ycashAddressChangeInterval = 17917

// FoundersReward configures the founders reward address rotation of a
// network.
//
// Before the Ycash fork the reward rotates once through LegacyAddresses, a
// list of 2-of-3 multisig addresses inherited from Zcash and stored in the
// legacy encoding.  From the fork on it rotates through Addresses, wrapping
// around every len(Addresses)*AddressChangeInterval blocks.
type FoundersReward struct {
	LegacyAddresses       []string
	Addresses             []string
	AddressChangeInterval int32
}

// legacyRewardHeight maps a pre-fork height onto the height the legacy list
// was sized for.  Once Blossom is active blocks come faster than the list
// assumed, so the blocks after Blossom activation are scaled down by the
// spacing ratio.
func (p *Params) legacyRewardHeight(height int32) int32 {
	if !p.Upgrades.IsActive(height, UpgradeBlossom) {
		return height
	}
	blossom, _ := p.Upgrades[UpgradeBlossom].Activation.Resolve()
	return blossom + (height-blossom)/p.BlossomPowTargetSpacingRatio()
}

// legacyRewardIndex returns the index into the legacy address list paid at
// the given pre-fork height.
func (p *Params) legacyRewardIndex(height int32) int {
	maxHeight := p.LastLegacyRewardHeight(0)
	adjusted := p.legacyRewardHeight(height)
	if adjusted <= 0 || adjusted > maxHeight {
		assertf("height %d (adjusted %d) is outside the legacy founders "+
			"reward period (0, %d]", height, adjusted, maxHeight)
	}

	numAddrs := int32(len(p.FoundersReward.LegacyAddresses))
	if numAddrs == 0 {
		assertf("%s has no legacy founders reward addresses", p.Name)
	}
	interval := (maxHeight + numAddrs - 1) / numAddrs
	idx := adjusted / interval
	if idx >= numAddrs {
		idx = numAddrs - 1
	}
	return int(idx)
}

// rewardIndex returns the index into the post-fork address list paid at the
// given height.
func (p *Params) rewardIndex(height int32) int {
	fork, _ := p.Upgrades[UpgradeYcash].Activation.Resolve()
	numAddrs := len(p.FoundersReward.Addresses)
	if numAddrs == 0 {
		assertf("%s has no founders reward addresses", p.Name)
	}
	period := int((height - fork) / p.FoundersReward.AddressChangeInterval)
	return period % numAddrs
}

// HasFoundersReward returns whether a block at the given height pays a founders
// reward.  RewardAddressAtHeight and RewardScriptAtHeight only accept heights
// for which it returns true.
func (p *Params) HasFoundersReward(height int32) bool {
	if height <= 0 {
		return false
	}
	if p.Upgrades.IsActive(height, UpgradeYcash) {
		return len(p.FoundersReward.Addresses) > 0
	}
	return height <= p.LastLegacyRewardHeight(height)
}

// RewardAddressAtHeight returns the founders reward address, in the current
// encoding, for a block at the given height.  Height must be positive and,
// before the Ycash fork, within the legacy reward period.  Violations panic.
func (p *Params) RewardAddressAtHeight(height int32) string {
	if height <= 0 {
		assertf("founders reward height %d is not positive", height)
	}
	if !p.Upgrades.IsActive(height, UpgradeYcash) {
		return p.LegacyRewardAddressAtIndex(p.legacyRewardIndex(height))
	}
	return p.RewardAddressAtIndex(p.rewardIndex(height))
}

// RewardScriptAtHeight returns the locking script paying the founders reward
// address for a block at the given height.
//
// Before the Ycash fork the address must be a pay-to-script-hash address.
// Afterwards pay-to-pubkey-hash addresses are accepted too.
func (p *Params) RewardScriptAtHeight(height int32) []byte {
	preFork := !p.Upgrades.IsActive(height, UpgradeYcash)
	if preFork && (height <= 0 || height > p.LastLegacyRewardHeight(height)) {
		assertf("height %d is outside the legacy founders reward period",
			height)
	}

	encoded := p.RewardAddressAtHeight(height)
	addr, err := yecutil.DecodeAddress(encoded, p.Prefixes)
	if err != nil {
		assertf("founders reward address %s: %v", encoded, err)
	}
	if _, ok := addr.(*yecutil.AddressScriptHash); preFork && !ok {
		assertf("legacy founders reward address %s is not a script hash",
			encoded)
	}

	script, err := yecutil.PayToAddrScript(addr)
	if err != nil {
		assertf("founders reward address %s: %v", encoded, err)
	}
	return script
}

// LegacyRewardAddressAtIndex returns entry i of the legacy founders reward
// list re-encoded with the current address prefixes.
func (p *Params) LegacyRewardAddressAtIndex(i int) string {
	if i < 0 || i >= len(p.FoundersReward.LegacyAddresses) {
		assertf("legacy founders reward index %d out of range", i)
	}
	addr, err := yecutil.TranslateAddress(p.FoundersReward.LegacyAddresses[i],
		p.LegacyPrefixes, p.Prefixes)
	if err != nil {
		assertf("legacy founders reward address %s: %v",
			p.FoundersReward.LegacyAddresses[i], err)
	}
	return addr
}

// RewardAddressAtIndex returns entry i of the post-fork founders reward list.
func (p *Params) RewardAddressAtIndex(i int) string {
	if i < 0 || i >= len(p.FoundersReward.Addresses) {
		assertf("founders reward index %d out of range", i)
	}
	return p.FoundersReward.Addresses[i]
}

// validateFoundersReward checks that both address lists decode to the
// destination kinds their rotation pays to and that the legacy list fits in
// the legacy reward period.
func (p *Params) validateFoundersReward() error {
	fr := &p.FoundersReward

	maxHeight := p.LastLegacyRewardHeight(0)
	if len(fr.LegacyAddresses) == 0 || int64(len(fr.LegacyAddresses)) > int64(maxHeight) {
		str := fmt.Sprintf("%d legacy founders reward addresses do not fit "+
			"a reward period ending at height %d", len(fr.LegacyAddresses),
			maxHeight)
		return paramsError(ErrInvalidRewardList, str)
	}
	for i, encoded := range fr.LegacyAddresses {
		addr, err := yecutil.DecodeAddress(encoded, p.LegacyPrefixes)
		if err != nil {
			str := fmt.Sprintf("legacy founders reward address %d (%s): %v",
				i, encoded, err)
			return paramsError(ErrInvalidRewardAddress, str)
		}
		if _, ok := addr.(*yecutil.AddressScriptHash); !ok {
			str := fmt.Sprintf("legacy founders reward address %d (%s) "+
				"is not a script hash", i, encoded)
			return paramsError(ErrInvalidRewardAddress, str)
		}
	}

	if p.Upgrades[UpgradeYcash].Activation.IsNever() && len(fr.Addresses) == 0 {
		return nil
	}
	if len(fr.Addresses) == 0 || fr.AddressChangeInterval <= 0 {
		str := fmt.Sprintf("%d founders reward addresses with change "+
			"interval %d", len(fr.Addresses), fr.AddressChangeInterval)
		return paramsError(ErrInvalidRewardList, str)
	}
	for i, encoded := range fr.Addresses {
		if _, err := yecutil.DecodeAddress(encoded, p.Prefixes); err != nil {
			str := fmt.Sprintf("founders reward address %d (%s): %v", i,
				encoded, err)
			return paramsError(ErrInvalidRewardAddress, str)
		}
	}
	return nil
}
