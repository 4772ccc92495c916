// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// AssertError identifies an error that indicates an internal code consistency
// issue or a caller violating a documented contract.  It is only ever used as
// a panic value and should be treated as a critical and unrecoverable error.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// assertf panics with an AssertError built from the format specifier.
func assertf(format string, args ...interface{}) {
	panic(AssertError(fmt.Sprintf(format, args...)))
}

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific ParamsError.
const (
	// ErrUnknownNetwork indicates a network name that does not identify
	// any of the supported networks was passed to SelectNetwork.
	ErrUnknownNetwork ErrorCode = iota

	// ErrInvalidSchedule indicates the network upgrade schedule is
	// malformed, for example because the base upgrade is not always
	// active or activation heights decrease in upgrade order.
	ErrInvalidSchedule

	// ErrInvalidEquihash indicates a network-wide or per-upgrade Equihash
	// parameter pair that the solver does not support.
	ErrInvalidEquihash

	// ErrInvalidSpacing indicates the block target spacings do not form
	// an integer ratio or are otherwise unusable.
	ErrInvalidSpacing

	// ErrInvalidRewardAddress indicates a founders reward address that
	// does not decode, or decodes to a destination kind the reward scheme
	// it belongs to does not allow.
	ErrInvalidRewardAddress

	// ErrInvalidRewardList indicates a founders reward address list that
	// is too long or too short for the reward period it has to cover.
	ErrInvalidRewardList

	// ErrInvalidFundingStream indicates a funding stream whose height
	// range or recipient is not acceptable for the network.
	ErrInvalidFundingStream

	// ErrActivationHashMismatch indicates the block at an upgrade's
	// activation height is not the block the upgrade pins.
	ErrActivationHashMismatch

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnknownNetwork:         "ErrUnknownNetwork",
	ErrInvalidSchedule:        "ErrInvalidSchedule",
	ErrInvalidEquihash:        "ErrInvalidEquihash",
	ErrInvalidSpacing:         "ErrInvalidSpacing",
	ErrInvalidRewardAddress:   "ErrInvalidRewardAddress",
	ErrInvalidRewardList:      "ErrInvalidRewardList",
	ErrInvalidFundingStream:   "ErrInvalidFundingStream",
	ErrActivationHashMismatch: "ErrActivationHashMismatch",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ParamsError identifies a configuration problem found while selecting or
// validating network parameters.  The caller can use type assertions to
// determine if an error is a ParamsError and access the ErrorCode field to
// ascertain the specific reason for the failure.
type ParamsError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e ParamsError) Error() string {
	return e.Description
}

// paramsError creates a ParamsError given a set of arguments.
func paramsError(c ErrorCode, desc string) ParamsError {
	return ParamsError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a ParamsError with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	e, ok := err.(ParamsError)
	return ok && e.ErrorCode == c
}
