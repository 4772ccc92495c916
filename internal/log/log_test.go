// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestParseAndSetDebugLevels tests parsing of the debug level flag.
func TestParseAndSetDebugLevels(t *testing.T) {
	tests := []struct {
		in      string
		cfg     btclog.Level
		yecp    btclog.Level
		wantErr bool
	}{
		{in: "info", cfg: btclog.LevelInfo, yecp: btclog.LevelInfo},
		{in: "CFG=trace", cfg: btclog.LevelTrace, yecp: btclog.LevelInfo},
		{in: "CFG=warn,YECP=debug", cfg: btclog.LevelWarn, yecp: btclog.LevelDebug},
		{in: "loud", wantErr: true},
		{in: "CFG=loud", wantErr: true},
		{in: "NOPE=info", wantErr: true},
		{in: "CFG=info,debug", wantErr: true},
	}

	for _, test := range tests {
		// Reset to a known state since the loggers are shared.
		SetLogLevels("info")

		err := ParseAndSetDebugLevels(test.in)
		if test.wantErr {
			require.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		require.Equal(t, test.cfg, cfgLog.Level(), test.in)
		require.Equal(t, test.yecp, YecpLog.Level(), test.in)
	}
	require.Equal(t, []string{"CFG", "YECP"}, SupportedSubsystems())
}

func TestPickNoun(t *testing.T) {
	require.Equal(t, "height", PickNoun(1, "height", "heights"))
	require.Equal(t, "heights", PickNoun(0, "height", "heights"))
	require.Equal(t, "heights", PickNoun(3, "height", "heights"))
}
