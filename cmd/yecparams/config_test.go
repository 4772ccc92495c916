// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nultinator/ycash/chaincfg"
	"github.com/stretchr/testify/require"
)

// TestParseRange tests the expansion of height ranges.
func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    []int32
		wantErr bool
	}{
		{in: "10:13", want: []int32{10, 11, 12}},
		{in: "0:10:5", want: []int32{0, 5}},
		{in: "0:11:5", want: []int32{0, 5, 10}},
		{in: "5:5", wantErr: true},
		{in: "7:5", wantErr: true},
		{in: "1", wantErr: true},
		{in: "a:2", wantErr: true},
		{in: "-1:2", wantErr: true},
		{in: "0:10:0", wantErr: true},
		{in: "0:100000", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
	}

	for _, test := range tests {
		got, err := parseRange(test.in)
		if test.wantErr {
			require.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		require.Equal(t, test.want, got, test.in)
	}
}

// TestParseOverrides tests parsing of the parameter override flags.
func TestParseOverrides(t *testing.T) {
	t.Parallel()

	nu, err := parseNUParams("blossom:100")
	require.NoError(t, err)
	require.Equal(t, chaincfg.UpgradeBlossom, nu.idx)
	require.Equal(t, chaincfg.Height(100), nu.activation)

	nu, err = parseNUParams("7:never")
	require.NoError(t, err)
	require.Equal(t, chaincfg.UpgradeCanopy, nu.idx)
	require.Equal(t, chaincfg.NeverActive, nu.activation)

	nu, err = parseNUParams("sapling:always")
	require.NoError(t, err)
	require.Equal(t, chaincfg.AlwaysActive, nu.activation)

	for _, bad := range []string{"sprout:1", "0:1", "10:5", "nu6:5", "ycash:-1", "ycash", "ycash:soon"} {
		_, err := parseNUParams(bad)
		require.Error(t, err, bad)
	}

	eh, err := parseEquihash("ycash:96,5")
	require.NoError(t, err)
	require.Equal(t, equihashOverride{chaincfg.UpgradeYcash, 96, 5}, eh)
	for _, bad := range []string{"ycash:200,8", "ycash:96", "sprout:96,5", "ycash:x,5"} {
		_, err := parseEquihash(bad)
		require.Error(t, err, bad)
	}

	so, err := parseFundingStream("foundation:200:300:51")
	require.NoError(t, err)
	require.Equal(t, streamOverride{chaincfg.FundingStreamFoundation, 200, 300, []byte{0x51}}, so)
	for _, bad := range []string{"treasury:200:300:51", "1:200:300:5", "1:200:300", "1:x:300:51"} {
		_, err := parseFundingStream(bad)
		require.Error(t, err, bad)
	}

	pow, err := parseRegTestPow("32:16:false")
	require.NoError(t, err)
	require.Equal(t, powOverride{32, 16, false}, pow)
	for _, bad := range []string{"101:0:true", "0:-1:true", "0:0:maybe", "0:0"} {
		_, err := parseRegTestPow(bad)
		require.Error(t, err, bad)
	}
}

// TestLoadConfig tests network selection and the application of overrides.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig([]string{
		"--regtest",
		"--nuparams=canopy:200",
		"--fundingstream=foundation:200:300:51",
		"--regtestpow=32:16:false",
		"--regtestzip209",
		"--height=250",
		"--range=1:3",
	})
	require.NoError(t, err)
	require.Equal(t, chaincfg.RegTest, cfg.params.Network)
	require.Equal(t, []int32{250, 1, 2}, cfg.Heights)
	require.Equal(t, []chaincfg.FundingStreamID{chaincfg.FundingStreamFoundation},
		cfg.params.ActiveFundingStreams(250))
	require.Equal(t, int64(32), cfg.params.PowMaxAdjustDown)
	require.False(t, cfg.params.PowNoRetargeting)
	require.True(t, cfg.params.ZIP209Enabled)
	require.Equal(t, "regtest", filepath.Base(cfg.LogDir))

	cfg, err = loadConfig([]string{"--testnet", "--equihashparams=canopy:144,5"})
	require.NoError(t, err)
	require.Equal(t, chaincfg.EquihashParams{N: 144, K: 5},
		cfg.params.EquihashParamsAtHeight(661634))

	cfg, err = loadConfig(nil)
	require.NoError(t, err)
	require.Equal(t, chaincfg.MainNet, cfg.params.Network)
	require.Empty(t, cfg.Heights)
}

// TestLoadConfigErrors ensures invalid flag combinations are rejected.
func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"--testnet", "--regtest"},
		{"--nuparams=canopy:200"},
		{"--testnet", "--regtestzip209"},
		{"--regtestshieldcoinbase"},
		{"--regtest", "--fundingstream=foundation:200:300:51"},
		{"--regtest", "--nuparams=canopy:200", "--fundingstream=foundation:100:300:51"},
		{"--regtest", "--nuparams=sapling:5", "--nuparams=ycash:1"},
		{"--height=-1"},
		{"--debuglevel=loud"},
		{"extra"},
	}

	for _, args := range tests {
		_, err := loadConfig(args)
		require.Error(t, err, strings.Join(args, " "))
	}
}

// TestShowHeight tests the rendering of resolved parameters.
func TestShowHeight(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	params := chaincfg.MainNetParams()
	showHeight(&buf, params, 570000)
	out := buf.String()
	require.Contains(t, out, "Height 570000:")
	require.Contains(t, out, "epoch            ycash (protocol 270007)")
	require.Contains(t, out, "next upgrade     blossom at 1100000")
	require.Contains(t, out, "equihash         192,7")
	require.Contains(t, out, "founders reward  s1hfWJ4ej1H3s8XCUb7YnrU68K64AsGVUHE")

	buf.Reset()
	showHeight(&buf, chaincfg.RegressionNetParams(), 144)
	require.Contains(t, buf.String(), "founders reward  none")
	require.Contains(t, buf.String(), "equihash         48,5")

	buf.Reset()
	showNetwork(&buf, params)
	require.Contains(t, buf.String(), "Message start:    24e92764")
	require.Contains(t, buf.String(), "Legacy rewards:   1-849999")
}
