// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/nultinator/ycash/chaincfg"
)

// logWriter implements an io.Writer that outputs to both standard output and
// the write-end pipe of an initialized log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if LogRotator != nil {
		LogRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// SubsystemLoggers map.
//
// Until InitLogRotator is called the loggers only write to standard output.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = btclog.NewBackend(logWriter{})

	// LogRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	LogRotator *rotator.Rotator

	cfgLog  = backendLog.Logger("CFG")
	YecpLog = backendLog.Logger("YECP")
)

// Initialize package-global logger variables.
func init() {
	chaincfg.UseLogger(cfgLog)
}

// SubsystemLoggers maps each subsystem identifier to its associated logger.
var SubsystemLoggers = map[string]btclog.Logger{
	"CFG":  cfgLog,
	"YECP": YecpLog,
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	subsystems := make([]string, 0, len(SubsystemLoggers))
	for subsysID := range SubsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	LogRotator = r
	return nil
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// SetLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := SubsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid.
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) {
	for subsystemID := range SubsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// ParseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
//
// The level is either a single level applied to every subsystem or a comma
// separated list of subsystem=level pairs.
func ParseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				debugLevel)
		}
		SetLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.SplitN(logLevelPair, "=", 2)
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := SubsystemLoggers[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem [%v] is invalid "+
				"-- supported subsystems %v", subsysID,
				SupportedSubsystems())
		}
		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%v] is "+
				"invalid", logLevel)
		}

		SetLogLevel(subsysID, logLevel)
	}
	return nil
}

// PickNoun returns the singular or plural form of a noun depending
// on the count n.
func PickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
