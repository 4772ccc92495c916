// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"
)

// These constants define the block cadence before and after Blossom.
const (
	preBlossomPowTargetSpacing  = 150 * time.Second
	postBlossomPowTargetSpacing = 75 * time.Second

	// preBlossomHalvingInterval is the number of blocks between subsidy
	// halvings under the pre-Blossom block spacing.
	preBlossomHalvingInterval = 840000

	// preBlossomRegtestHalvingInterval is the regression test network
	// counterpart of preBlossomHalvingInterval.
	preBlossomRegtestHalvingInterval = 144

	// fundingPeriodsPerHalving is the number of funding periods in one
	// post-Blossom halving interval.
	fundingPeriodsPerHalving = 48
)

// BlossomPowTargetSpacingRatio returns how many post-Blossom blocks fit in the
// time of one pre-Blossom block.
func (p *Params) BlossomPowTargetSpacingRatio() int32 {
	return int32(p.PreBlossomPowTargetSpacing / p.PostBlossomPowTargetSpacing)
}

// PoWTargetSpacing returns the target time between the block at the given
// height and its parent.
func (p *Params) PoWTargetSpacing(height int32) time.Duration {
	if p.Upgrades.IsActive(height, UpgradeBlossom) {
		return p.PostBlossomPowTargetSpacing
	}
	return p.PreBlossomPowTargetSpacing
}

// AveragingWindowTimespan returns the expected duration of the difficulty
// averaging window ending at the given height.
func (p *Params) AveragingWindowTimespan(height int32) time.Duration {
	return time.Duration(p.PowAveragingWindow) * p.PoWTargetSpacing(height)
}

// MinActualTimespan returns the shortest averaging window timespan the
// difficulty adjustment will act on.
func (p *Params) MinActualTimespan(height int32) time.Duration {
	return p.AveragingWindowTimespan(height) * time.Duration(100-p.PowMaxAdjustUp) / 100
}

// MaxActualTimespan returns the longest averaging window timespan the
// difficulty adjustment will act on.
func (p *Params) MaxActualTimespan(height int32) time.Duration {
	return p.AveragingWindowTimespan(height) * time.Duration(100+p.PowMaxAdjustDown) / 100
}

// PowAllowMinDifficultyBlocks returns whether a block at the given height may
// be mined at the minimum difficulty.
func (p *Params) PowAllowMinDifficultyBlocks(height int32) bool {
	return p.ReduceMinDifficulty && height > p.MinDifficultyAfterHeight
}

// SubsidySlowStartShift returns the number of blocks the subsidy schedule is
// shifted by due to the slow start.
func (p *Params) SubsidySlowStartShift() int32 {
	return p.SubsidySlowStartInterval / 2
}

// HalvingHeight returns the height of the first block after the first subsidy
// halving, as seen from a block at the given height.  Blossom stretches the
// remaining part of the halving interval by the spacing ratio.
func (p *Params) HalvingHeight(height int32) int32 {
	shift := p.SubsidySlowStartShift()
	if !p.Upgrades.IsActive(height, UpgradeBlossom) {
		return p.PreBlossomSubsidyHalvingInterval + shift
	}
	blossom, _ := p.Upgrades[UpgradeBlossom].Activation.Resolve()
	remaining := p.PreBlossomSubsidyHalvingInterval + shift - blossom
	return blossom + remaining*p.BlossomPowTargetSpacingRatio()
}

// LastLegacyRewardHeight returns the last height that pays the legacy
// founders reward, as seen from a block at the given height.
func (p *Params) LastLegacyRewardHeight(height int32) int32 {
	return p.HalvingHeight(height) - 1
}

// LatestCheckpointHeight is the height of the latest checkpoint block in the
// parameters.
func (p *Params) LatestCheckpointHeight() int32 {
	if len(p.Checkpoints) == 0 {
		return 0
	}
	return p.Checkpoints[len(p.Checkpoints)-1].Height
}

// validateSpacing checks that the pre-Blossom spacing is a whole multiple of
// the post-Blossom one.
func (p *Params) validateSpacing() error {
	pre, post := p.PreBlossomPowTargetSpacing, p.PostBlossomPowTargetSpacing
	if post <= 0 || pre < post || pre%post != 0 {
		str := fmt.Sprintf("target spacing %v is not a whole multiple of %v",
			pre, post)
		return paramsError(ErrInvalidSpacing, str)
	}
	if p.PowAveragingWindow <= 0 {
		str := fmt.Sprintf("averaging window of %d blocks",
			p.PowAveragingWindow)
		return paramsError(ErrInvalidSpacing, str)
	}
	return nil
}
