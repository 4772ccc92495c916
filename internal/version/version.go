// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the utilities provided in this repository.
package version

import (
	"fmt"
	"strings"
)

const (
	// semanticAlphabet defines the allowed characters for the pre-release
	// portion of a semantic version string.
	semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	// semanticBuildAlphabet additionally allows dots in build metadata.
	semanticBuildAlphabet = semanticAlphabet + "."
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 3
	Patch uint = 0
)

var (
	// PreRelease may be overridden at build time with
	// '-ldflags "-X github.com/nultinator/ycash/internal/version.PreRelease=foo"'.
	PreRelease = "beta"

	// BuildMetadata may be overridden at build time in the same way.
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec.  Characters not allowed in the pre-release
// or build metadata portions are dropped.
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", Major, Minor, Patch)
	if pre := normalize(PreRelease, semanticAlphabet); pre != "" {
		b.WriteString("-" + pre)
	}
	if build := normalize(BuildMetadata, semanticBuildAlphabet); build != "" {
		b.WriteString("+" + build)
	}
	return b.String()
}

// normalize strips every character not in alphabet from str.
func normalize(str, alphabet string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) {
			return r
		}
		return -1
	}, str)
}
