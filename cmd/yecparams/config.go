// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/nultinator/ycash/chaincfg"
	"github.com/nultinator/ycash/internal/log"
	"github.com/nultinator/ycash/internal/version"
	"github.com/pkg/errors"
)

const (
	defaultLogFilename = "yecparams.log"
	defaultLogLevel    = "info"

	// maxHeights caps the number of heights a single --range may expand to.
	maxHeights = 10000
)

var defaultLogDir = filepath.Join(os.TempDir(), "yecparams", "logs")

// config defines the configuration options for yecparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool     `short:"V" long:"version" description:"Display version information and exit"`
	TestNet     bool     `long:"testnet" description:"Use the test network"`
	RegTest     bool     `long:"regtest" description:"Use the regression test network"`
	Heights     []int32  `short:"H" long:"height" description:"Block height to resolve parameters for (may be repeated)"`
	Range       string   `long:"range" description:"Resolve parameters for every height in START:END, or every STEP-th one with START:END:STEP"`
	NUParams    []string `long:"nuparams" description:"Set the activation height of a network upgrade as UPGRADE:HEIGHT, regtest only (may be repeated)"`
	Equihash    []string `long:"equihashparams" description:"Override the Equihash parameters of an upgrade epoch as UPGRADE:N,K (may be repeated)"`
	Streams     []string `long:"fundingstream" description:"Configure a funding stream as ID:START:END:SCRIPTHEX, regtest only (may be repeated)"`
	RegTestPow  string   `long:"regtestpow" description:"Set the difficulty adjustment as DOWN:UP:NORETARGET, regtest only"`
	ShieldCB    bool     `long:"regtestshieldcoinbase" description:"Require shielded coinbase outputs, regtest only"`
	ZIP209      bool     `long:"regtestzip209" description:"Enforce the shielded value pool turnstile, regtest only"`
	LogDir      string   `long:"logdir" description:"Directory to log output"`
	DebugLevel  string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	// params holds the selected network with every override applied.
	params *chaincfg.Params
}

// networkName returns the name of the network selected by the flags.
func (cfg *config) networkName() (string, error) {
	switch {
	case cfg.TestNet && cfg.RegTest:
		return "", errors.New("the testnet and regtest params can't be " +
			"used together -- choose one of the two")
	case cfg.TestNet:
		return "test", nil
	case cfg.RegTest:
		return "regtest", nil
	}
	return "main", nil
}

// regTestOnly returns the name of the first regtest only flag that was set.
func (cfg *config) regTestOnly() string {
	switch {
	case len(cfg.NUParams) > 0:
		return "--nuparams"
	case len(cfg.Streams) > 0:
		return "--fundingstream"
	case cfg.RegTestPow != "":
		return "--regtestpow"
	case cfg.ShieldCB:
		return "--regtestshieldcoinbase"
	case cfg.ZIP209:
		return "--regtestzip209"
	}
	return ""
}

// parseHeight parses a non-negative block height.
func parseHeight(s string) (int32, error) {
	height, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid height %q", s)
	}
	if height < 0 {
		return 0, errors.Errorf("height %d is negative", height)
	}
	return int32(height), nil
}

// parseRange expands a START:END[:STEP] range into the heights it covers.
// END is exclusive.
func parseRange(s string) ([]int32, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return nil, errors.Errorf("range %q is not START:END[:STEP]", s)
	}
	start, err := parseHeight(fields[0])
	if err != nil {
		return nil, errors.Wrap(err, "range start")
	}
	end, err := parseHeight(fields[1])
	if err != nil {
		return nil, errors.Wrap(err, "range end")
	}
	step := int32(1)
	if len(fields) == 3 {
		step, err = parseHeight(fields[2])
		if err != nil {
			return nil, errors.Wrap(err, "range step")
		}
		if step == 0 {
			return nil, errors.New("range step must be positive")
		}
	}
	if end <= start {
		return nil, errors.Errorf("range %q is empty", s)
	}
	if (int64(end)-int64(start)+int64(step)-1)/int64(step) > maxHeights {
		return nil, errors.Errorf("range %q covers more than %d heights",
			s, maxHeights)
	}

	var heights []int32
	for h := int64(start); h < int64(end); h += int64(step) {
		heights = append(heights, int32(h))
	}
	return heights, nil
}

// parseUpgrade parses an upgrade name, or its index, that may be overridden.
func parseUpgrade(s string) (chaincfg.UpgradeIndex, error) {
	if n, err := strconv.Atoi(s); err == nil {
		idx := chaincfg.UpgradeIndex(n)
		if idx <= chaincfg.BaseSprout || idx >= chaincfg.NumUpgrades {
			return 0, errors.Errorf("upgrade index %d can not be "+
				"overridden", n)
		}
		return idx, nil
	}
	idx, err := chaincfg.ParseUpgradeIndex(s)
	if err != nil {
		return 0, err
	}
	if idx == chaincfg.BaseSprout {
		return 0, errors.Errorf("%v can not be overridden", idx)
	}
	return idx, nil
}

// nuParams is a parsed --nuparams value.
type nuParams struct {
	idx        chaincfg.UpgradeIndex
	activation chaincfg.ActivationHeight
}

// parseNUParams parses an UPGRADE:HEIGHT pair.  The height may also be
// "always" or "never".
func parseNUParams(s string) (nuParams, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 {
		return nuParams{}, errors.Errorf("%q is not UPGRADE:HEIGHT", s)
	}
	idx, err := parseUpgrade(fields[0])
	if err != nil {
		return nuParams{}, err
	}

	var activation chaincfg.ActivationHeight
	switch fields[1] {
	case "always":
		activation = chaincfg.AlwaysActive
	case "never":
		activation = chaincfg.NeverActive
	default:
		height, err := parseHeight(fields[1])
		if err != nil {
			return nuParams{}, err
		}
		activation = chaincfg.Height(height)
	}
	return nuParams{idx: idx, activation: activation}, nil
}

// equihashOverride is a parsed --equihashparams value.
type equihashOverride struct {
	idx  chaincfg.UpgradeIndex
	n, k uint32
}

// parseEquihash parses an UPGRADE:N,K override.
func parseEquihash(s string) (equihashOverride, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 {
		return equihashOverride{}, errors.Errorf("%q is not UPGRADE:N,K", s)
	}
	idx, err := parseUpgrade(fields[0])
	if err != nil {
		return equihashOverride{}, err
	}
	nk := strings.Split(fields[1], ",")
	if len(nk) != 2 {
		return equihashOverride{}, errors.Errorf("%q is not N,K", fields[1])
	}
	n, err := strconv.ParseUint(nk[0], 10, 32)
	if err != nil {
		return equihashOverride{}, errors.Wrap(err, "invalid N")
	}
	k, err := strconv.ParseUint(nk[1], 10, 32)
	if err != nil {
		return equihashOverride{}, errors.Wrap(err, "invalid K")
	}
	if !chaincfg.EquihashParametersAcceptable(uint32(n), uint32(k)) {
		return equihashOverride{}, errors.Errorf("equihash parameters "+
			"%d,%d are not acceptable", n, k)
	}
	return equihashOverride{idx: idx, n: uint32(n), k: uint32(k)}, nil
}

// streamOverride is a parsed --fundingstream value.
type streamOverride struct {
	id     chaincfg.FundingStreamID
	start  int32
	end    int32
	script []byte
}

// parseFundingStream parses an ID:START:END:SCRIPTHEX funding stream.
func parseFundingStream(s string) (streamOverride, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 4 {
		return streamOverride{}, errors.Errorf("%q is not "+
			"ID:START:END:SCRIPTHEX", s)
	}
	id, err := chaincfg.ParseFundingStreamID(fields[0])
	if err != nil {
		return streamOverride{}, err
	}
	start, err := parseHeight(fields[1])
	if err != nil {
		return streamOverride{}, errors.Wrap(err, "funding stream start")
	}
	end, err := parseHeight(fields[2])
	if err != nil {
		return streamOverride{}, errors.Wrap(err, "funding stream end")
	}
	script, err := hex.DecodeString(fields[3])
	if err != nil {
		return streamOverride{}, errors.Wrap(err, "funding stream script")
	}
	return streamOverride{id: id, start: start, end: end, script: script}, nil
}

// powOverride is a parsed --regtestpow value.
type powOverride struct {
	down, up      int64
	noRetargeting bool
}

// parseRegTestPow parses a DOWN:UP:NORETARGET difficulty setting.
func parseRegTestPow(s string) (powOverride, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return powOverride{}, errors.Errorf("%q is not DOWN:UP:NORETARGET", s)
	}
	down, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || down < 0 || down > 100 {
		return powOverride{}, errors.Errorf("invalid adjust down percentage %q",
			fields[0])
	}
	up, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || up < 0 || up > 100 {
		return powOverride{}, errors.Errorf("invalid adjust up percentage %q",
			fields[1])
	}
	noRetargeting, err := strconv.ParseBool(fields[2])
	if err != nil {
		return powOverride{}, errors.Wrap(err, "invalid no retargeting flag")
	}
	return powOverride{down: down, up: up, noRetargeting: noRetargeting}, nil
}

// applyOverrides selects the network and applies every override requested by
// the flags to it.
func (cfg *config) applyOverrides() error {
	name, err := cfg.networkName()
	if err != nil {
		return err
	}
	if flag := cfg.regTestOnly(); flag != "" && !cfg.RegTest {
		return errors.Errorf("%s is only permitted with --regtest", flag)
	}

	params, err := chaincfg.SelectNetwork(name)
	if err != nil {
		return err
	}

	for _, s := range cfg.NUParams {
		nu, err := parseNUParams(s)
		if err != nil {
			return errors.Wrap(err, "--nuparams")
		}
		params.SetActivationHeight(nu.idx, nu.activation)
	}
	if cfg.RegTestPow != "" {
		pow, err := parseRegTestPow(cfg.RegTestPow)
		if err != nil {
			return errors.Wrap(err, "--regtestpow")
		}
		params.SetRegtestPow(pow.down, pow.up, params.PowLimit,
			pow.noRetargeting)
	}
	if cfg.ShieldCB {
		params.SetCoinbaseMustBeShielded()
	}
	if cfg.ZIP209 {
		params.SetZIP209Enabled()
	}
	for _, s := range cfg.Equihash {
		eh, err := parseEquihash(s)
		if err != nil {
			return errors.Wrap(err, "--equihashparams")
		}
		params.SetEquihashParams(eh.idx, eh.n, eh.k)
	}

	// Funding streams are checked against the final schedule, so they are
	// applied after every activation height override.
	for _, s := range cfg.Streams {
		so, err := parseFundingStream(s)
		if err != nil {
			return errors.Wrap(err, "--fundingstream")
		}
		fs, err := chaincfg.NewFundingStream(&params.Upgrades, so.start,
			so.end, so.script)
		if err != nil {
			return errors.Wrapf(err, "--fundingstream %v", so.id)
		}
		params.SetFundingStream(so.id, fs)
	}

	if err := params.Validate(); err != nil {
		return errors.Wrap(err, "invalid parameters after overrides")
	}
	cfg.params = params
	return nil
}

// loadConfig initializes and parses the config using command line options.
func loadConfig(args []string) (*config, error) {
	// Default config.
	cfg := config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}
	if len(remainingArgs) > 0 {
		return nil, errors.Errorf("unexpected arguments %v", remainingArgs)
	}

	if cfg.ShowVersion {
		fmt.Println("yecparams version", version.String())
		os.Exit(0)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		os.Exit(0)
	}

	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, errors.Wrap(err, "loadConfig")
	}

	if cfg.Range != "" {
		heights, err := parseRange(cfg.Range)
		if err != nil {
			return nil, errors.Wrap(err, "--range")
		}
		cfg.Heights = append(cfg.Heights, heights...)
	}
	for _, height := range cfg.Heights {
		if height < 0 {
			return nil, errors.Errorf("height %d is negative", height)
		}
	}

	if err := cfg.applyOverrides(); err != nil {
		return nil, errors.Wrap(err, "loadConfig")
	}

	// Namespace the log directory per network.
	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.params.Name)
	return &cfg, nil
}
