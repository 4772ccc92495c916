// Copyright (c) 2017 The Decred developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// validateNetworks panics when the hard-coded parameters of any supported
// network are inconsistent.
func validateNetworks() {
	for _, name := range SupportedNetworks() {
		params := networkConstructors[name]()
		if err := params.Validate(); err != nil {
			e := fmt.Sprintf("invalid %v network parameters: %v",
				params.Name, err)
			panic(e)
		}
	}
}

func init() {
	validateNetworks()
}
