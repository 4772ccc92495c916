// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines the consensus parameters of the Ycash networks and
resolves the height dependent rules derived from them.

Ycash forked from Zcash at a fixed height.  Several rules therefore depend on
which side of the fork, and of the network upgrades scheduled around it, a
block lies: the Equihash parameters, the target block spacing and the founders
reward address all change with the height.  This package owns those rules so
that validation, mining and wallet code resolve them identically.

Selecting a network

Parameters are built fresh for every caller.  A daemon selects its network
once during startup and hands the result to every subsystem:

	params, err := chaincfg.SelectNetwork("main")
	if err != nil {
		return err
	}
	epoch := params.Upgrades.CurrentEpoch(height)
	eh := params.EquihashParamsAtHeight(height)
	script := params.RewardScriptAtHeight(height)

The resolution methods do not modify the parameters and are safe for
concurrent use.  The Set methods exist for integration tests.  Apart from
SetEquihashParams they only work on the regression test network, and all of
them must be called before the parameters are shared.

Errors

Problems with the parameters themselves are reported as a ParamsError whose
ErrorCode identifies the kind of problem.  Callers violating a documented
precondition, such as asking for the founders reward of a height outside every
reward period, get a panic with an AssertError.
*/
package chaincfg
