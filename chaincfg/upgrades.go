// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// UpgradeIndex identifies a network upgrade.  The numeric order of the
// indices is the order in which the upgrades are deployed.
type UpgradeIndex int

// These constants define the known network upgrades.
const (
	// BaseSprout is the rule set the chain launched with.  It is always
	// active and can never be rescheduled.
	BaseSprout UpgradeIndex = iota

	// UpgradeTestDummy is reserved for exercising upgrade machinery in
	// tests and is never scheduled on a public network.
	UpgradeTestDummy

	UpgradeOverwinter
	UpgradeSapling

	// UpgradeYcash is the fork away from the Zcash chain.  It switches
	// the founders reward from the legacy multisig rotation to the
	// Ycash address rotation.
	UpgradeYcash

	// UpgradeBlossom halves the target block spacing.
	UpgradeBlossom

	UpgradeHeartwood
	UpgradeCanopy
	UpgradeNU5

	// UpgradeZFuture is reserved for upgrades that are still being
	// designed.
	UpgradeZFuture

	// NumUpgrades is the number of defined network upgrades.  It is not
	// itself a valid upgrade.
	NumUpgrades
)

// Map of UpgradeIndex values back to their names.  The names match the ones
// accepted on the command line.
var upgradeIndexStrings = map[UpgradeIndex]string{
	BaseSprout:        "sprout",
	UpgradeTestDummy:  "testdummy",
	UpgradeOverwinter: "overwinter",
	UpgradeSapling:    "sapling",
	UpgradeYcash:      "ycash",
	UpgradeBlossom:    "blossom",
	UpgradeHeartwood:  "heartwood",
	UpgradeCanopy:     "canopy",
	UpgradeNU5:        "nu5",
	UpgradeZFuture:    "zfuture",
}

// String returns the UpgradeIndex as a human-readable name.
func (u UpgradeIndex) String() string {
	if s := upgradeIndexStrings[u]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown UpgradeIndex (%d)", int(u))
}

// valid returns whether the index identifies a defined upgrade.
func (u UpgradeIndex) valid() bool {
	return u >= BaseSprout && u < NumUpgrades
}

// ParseUpgradeIndex returns the upgrade with the passed name.  The match is
// case insensitive.
func ParseUpgradeIndex(name string) (UpgradeIndex, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for idx := BaseSprout; idx < NumUpgrades; idx++ {
		if upgradeIndexStrings[idx] == name {
			return idx, nil
		}
	}
	str := fmt.Sprintf("unknown network upgrade %q", name)
	return 0, paramsError(ErrInvalidSchedule, str)
}

// activationKind tags the variants of ActivationHeight.
type activationKind uint8

const (
	activationNever activationKind = iota
	activationAlways
	activationAtHeight
)

// ActivationHeight is the height at which a network upgrade takes effect.  It
// is either a concrete block height, AlwaysActive or NeverActive.  The zero
// value is NeverActive.
type ActivationHeight struct {
	kind   activationKind
	height int32
}

var (
	// AlwaysActive marks an upgrade that is active from the genesis block.
	// It resolves to height zero.
	AlwaysActive = ActivationHeight{kind: activationAlways}

	// NeverActive marks an upgrade that does not activate at any height.
	NeverActive = ActivationHeight{kind: activationNever}
)

// Height returns an ActivationHeight for the passed block height.  Negative
// heights are a programming error and panic.
func Height(height int32) ActivationHeight {
	if height < 0 {
		assertf("negative activation height %d", height)
	}
	return ActivationHeight{kind: activationAtHeight, height: height}
}

// Resolve returns the block height the upgrade activates at.  The boolean is
// false when the upgrade never activates.
func (a ActivationHeight) Resolve() (int32, bool) {
	switch a.kind {
	case activationAlways:
		return 0, true
	case activationAtHeight:
		return a.height, true
	}
	return 0, false
}

// IsNever returns whether the activation height is NeverActive.
func (a ActivationHeight) IsNever() bool {
	return a.kind == activationNever
}

// String returns the activation height in a human-readable form.
func (a ActivationHeight) String() string {
	switch a.kind {
	case activationAlways:
		return "always"
	case activationAtHeight:
		return fmt.Sprintf("%d", a.height)
	}
	return "never"
}

// UpgradeEntry describes a single network upgrade on one network.
type UpgradeEntry struct {
	// ProtocolVersion is the minimum peer protocol version that
	// understands the upgrade.
	ProtocolVersion uint32

	// Activation is the first height the upgrade's rules apply to.
	Activation ActivationHeight

	// ExpectedHash, when set, pins the hash of the block at the
	// activation height.
	ExpectedHash *chainhash.Hash
}

// UpgradeState describes the status of an upgrade at a given height.
type UpgradeState int

// These constants define the possible upgrade states.
const (
	// UpgradeDisabled indicates the upgrade is not scheduled.
	UpgradeDisabled UpgradeState = iota

	// UpgradePending indicates the upgrade is scheduled at a later height.
	UpgradePending

	// UpgradeActive indicates the upgrade rules apply.
	UpgradeActive
)

var upgradeStateStrings = map[UpgradeState]string{
	UpgradeDisabled: "disabled",
	UpgradePending:  "pending",
	UpgradeActive:   "active",
}

// String returns the UpgradeState as a human-readable name.
func (s UpgradeState) String() string {
	if str := upgradeStateStrings[s]; str != "" {
		return str
	}
	return fmt.Sprintf("Unknown UpgradeState (%d)", int(s))
}

// UpgradeSchedule holds one entry per network upgrade, indexed by
// UpgradeIndex.
//
// The schedule is a value type so every Params owns an independent copy.  All
// query methods are safe for concurrent use as long as nothing mutates the
// schedule at the same time.
type UpgradeSchedule [NumUpgrades]UpgradeEntry

// State returns the state of the upgrade at the given block height.
func (s *UpgradeSchedule) State(height int32, idx UpgradeIndex) UpgradeState {
	if !idx.valid() {
		assertf("upgrade index %d out of range", idx)
	}
	activation, ok := s[idx].Activation.Resolve()
	switch {
	case !ok:
		return UpgradeDisabled
	case height >= activation:
		return UpgradeActive
	default:
		return UpgradePending
	}
}

// IsActive returns whether the upgrade rules apply at the given height.
func (s *UpgradeSchedule) IsActive(height int32, idx UpgradeIndex) bool {
	return s.State(height, idx) == UpgradeActive
}

// CurrentEpoch returns the most recent upgrade active at the given height.
// BaseSprout is returned when no later upgrade is active.
func (s *UpgradeSchedule) CurrentEpoch(height int32) UpgradeIndex {
	for idx := NumUpgrades - 1; idx > BaseSprout; idx-- {
		if s.IsActive(height, idx) {
			return idx
		}
	}
	return BaseSprout
}

// CurrentEpoch returns the most recent upgrade of the schedule that is active
// at the given height.
func CurrentEpoch(height int32, schedule *UpgradeSchedule) UpgradeIndex {
	return schedule.CurrentEpoch(height)
}

// IsActivationHeight returns whether height is the activation height of the
// upgrade.  BaseSprout has no activation height.
func (s *UpgradeSchedule) IsActivationHeight(height int32, idx UpgradeIndex) bool {
	if !idx.valid() {
		assertf("upgrade index %d out of range", idx)
	}
	if idx == BaseSprout || height < 0 {
		return false
	}
	activation, ok := s[idx].Activation.Resolve()
	return ok && activation == height
}

// IsActivationHeightForAnyUpgrade returns whether any upgrade activates at
// the given height.
func (s *UpgradeSchedule) IsActivationHeightForAnyUpgrade(height int32) bool {
	for idx := BaseSprout + 1; idx < NumUpgrades; idx++ {
		if s.IsActivationHeight(height, idx) {
			return true
		}
	}
	return false
}

// NextEpoch returns the first upgrade that is scheduled above the given
// height.  The boolean is false when no upgrade is pending.
func (s *UpgradeSchedule) NextEpoch(height int32) (UpgradeIndex, bool) {
	for idx := BaseSprout + 1; idx < NumUpgrades; idx++ {
		if s.State(height, idx) == UpgradePending {
			return idx, true
		}
	}
	return 0, false
}

// NextActivationHeight returns the activation height of the next pending
// upgrade.  The boolean is false when no upgrade is pending.
func (s *UpgradeSchedule) NextActivationHeight(height int32) (int32, bool) {
	idx, ok := s.NextEpoch(height)
	if !ok {
		return 0, false
	}
	return s[idx].Activation.Resolve()
}

// CurrentProtocolVersion returns the protocol version of the epoch active at
// the given height.
func (s *UpgradeSchedule) CurrentProtocolVersion(height int32) uint32 {
	return s[s.CurrentEpoch(height)].ProtocolVersion
}

// CheckActivationHash returns an error when height is the activation height of
// an upgrade that pins its activation block and hash is not that block.
func (s *UpgradeSchedule) CheckActivationHash(height int32, hash *chainhash.Hash) error {
	for idx := BaseSprout + 1; idx < NumUpgrades; idx++ {
		entry := &s[idx]
		if entry.ExpectedHash == nil || !s.IsActivationHeight(height, idx) {
			continue
		}
		if !entry.ExpectedHash.IsEqual(hash) {
			str := fmt.Sprintf("block %v at height %d does not match "+
				"the %v activation block %v", hash, height, idx,
				entry.ExpectedHash)
			return paramsError(ErrActivationHashMismatch, str)
		}
	}
	return nil
}

// validate checks that the base upgrade is always active and that the
// scheduled activation heights do not decrease in upgrade order.
func (s *UpgradeSchedule) validate() error {
	if s[BaseSprout].Activation != AlwaysActive {
		str := fmt.Sprintf("%v must always be active, got %v", BaseSprout,
			s[BaseSprout].Activation)
		return paramsError(ErrInvalidSchedule, str)
	}

	last, lastIdx := int32(0), BaseSprout
	for idx := BaseSprout + 1; idx < NumUpgrades; idx++ {
		height, ok := s[idx].Activation.Resolve()
		if !ok {
			continue
		}
		if height < last {
			str := fmt.Sprintf("%v activates at %d, below %v at %d",
				idx, height, lastIdx, last)
			return paramsError(ErrInvalidSchedule, str)
		}
		last, lastIdx = height, idx
	}
	return nil
}
