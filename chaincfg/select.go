// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sort"
)

// networkConstructors maps the name of every supported network to the
// function building its parameters.
var networkConstructors = map[string]func() *Params{
	MainNet.String(): MainNetParams,
	TestNet.String(): TestNetParams,
	RegTest.String(): RegressionNetParams,
}

// SupportedNetworks returns the names accepted by SelectNetwork in sorted
// order.
func SupportedNetworks() []string {
	names := make([]string, 0, len(networkConstructors))
	for name := range networkConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectNetwork returns validated parameters for the named network.  Valid
// names are "main", "test" and "regtest".
//
// The returned Params belongs to the caller, who is expected to select a
// network once during startup and pass the result to everything that needs
// it.  Every call returns a new Params, so overrides applied to one never
// leak into another.
func SelectNetwork(name string) (*Params, error) {
	newParams, ok := networkConstructors[name]
	if !ok {
		str := fmt.Sprintf("unknown network %q", name)
		return nil, paramsError(ErrUnknownNetwork, str)
	}

	params := newParams()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	log.Infof("Selected %s network", params.Name)
	return params, nil
}
