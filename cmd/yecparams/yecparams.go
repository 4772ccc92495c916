// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/nultinator/ycash/chaincfg"
	"github.com/nultinator/ycash/internal/log"
)

// showNetwork writes the height independent parameters of the network.
func showNetwork(w io.Writer, params *chaincfg.Params) {
	start := params.MessageStart()
	fmt.Fprintf(w, "Network:          %s\n", params.Name)
	fmt.Fprintf(w, "Message start:    %x\n", start[:])
	fmt.Fprintf(w, "Default port:     %s\n", params.DefaultPort)
	fmt.Fprintf(w, "Genesis hash:     %v\n", params.GenesisHash)
	fmt.Fprintf(w, "Equihash default: %v\n", params.Equihash)
	fmt.Fprintf(w, "Last checkpoint:  %d\n", params.LatestCheckpointHeight())
	fmt.Fprintf(w, "Legacy rewards:   1-%d\n", params.LastLegacyRewardHeight(0))
	fmt.Fprintln(w, "Upgrades:")
	for idx := chaincfg.BaseSprout; idx < chaincfg.NumUpgrades; idx++ {
		entry := &params.Upgrades[idx]
		fmt.Fprintf(w, "  %-10v protocol %-10d activation %v\n", idx,
			entry.ProtocolVersion, entry.Activation)
	}
	for id := chaincfg.FirstFundingStream; id < chaincfg.NumFundingStreams; id++ {
		if fs, ok := params.FundingStream(id); ok {
			fmt.Fprintf(w, "Funding stream %v: [%d, %d) to %x\n", id,
				fs.StartHeight, fs.EndHeight, fs.Script)
		}
	}
}

// showHeight writes the parameters resolved for a block at the given height.
func showHeight(w io.Writer, params *chaincfg.Params, height int32) {
	epoch := params.Upgrades.CurrentEpoch(height)
	fmt.Fprintf(w, "Height %d:\n", height)
	fmt.Fprintf(w, "  epoch            %v (protocol %d)\n", epoch,
		params.Upgrades.CurrentProtocolVersion(height))
	if next, ok := params.Upgrades.NextEpoch(height); ok {
		at, _ := params.Upgrades[next].Activation.Resolve()
		fmt.Fprintf(w, "  next upgrade     %v at %d\n", next, at)
	}
	fmt.Fprintf(w, "  equihash         %v\n", params.EquihashParamsAtHeight(height))
	fmt.Fprintf(w, "  target spacing   %v\n", params.PoWTargetSpacing(height))
	fmt.Fprintf(w, "  timespan bounds  %v-%v\n", params.MinActualTimespan(height),
		params.MaxActualTimespan(height))
	fmt.Fprintf(w, "  min difficulty   %v\n", params.PowAllowMinDifficultyBlocks(height))

	if params.HasFoundersReward(height) {
		fmt.Fprintf(w, "  founders reward  %s\n", params.RewardAddressAtHeight(height))
		fmt.Fprintf(w, "  reward script    %s\n",
			hex.EncodeToString(params.RewardScriptAtHeight(height)))
	} else {
		fmt.Fprintln(w, "  founders reward  none")
	}

	active := params.ActiveFundingStreams(height)
	if len(active) > 0 {
		names := make([]string, 0, len(active))
		for _, id := range active {
			names = append(names, id.String())
		}
		fmt.Fprintf(w, "  funding streams  %s\n", strings.Join(names, ", "))
	}
}

// yecparamsMain is the real main function for yecparams.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func yecparamsMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if err := log.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		return err
	}
	defer log.LogRotator.Close()

	log.YecpLog.Infof("Resolving %d %s on %s", len(cfg.Heights),
		log.PickNoun(uint64(len(cfg.Heights)), "height", "heights"),
		cfg.params.Name)

	showNetwork(os.Stdout, cfg.params)
	for _, height := range cfg.Heights {
		showHeight(os.Stdout, cfg.params, height)
	}
	return nil
}

func main() {
	err := yecparamsMain()
	if err == nil {
		return
	}

	// The flags parser already reported its own errors.
	if e, ok := err.(*flags.Error); ok {
		if e.Type == flags.ErrHelp {
			return
		}
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
