// Copyright (c) 2019-2024 The Ycash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strconv"
)

// FundingStreamID identifies a development funding stream.
type FundingStreamID int

// These constants define the known funding streams.
const (
	FundingStreamBootstrap FundingStreamID = iota
	FundingStreamFoundation
	FundingStreamMajorGrants

	// NumFundingStreams is the number of defined funding streams.
	NumFundingStreams

	// FirstFundingStream is the lowest valid funding stream id.
	FirstFundingStream = FundingStreamBootstrap
)

var fundingStreamIDStrings = map[FundingStreamID]string{
	FundingStreamBootstrap:   "bootstrap",
	FundingStreamFoundation:  "foundation",
	FundingStreamMajorGrants: "majorgrants",
}

// String returns the FundingStreamID as a human-readable name.
func (id FundingStreamID) String() string {
	if s := fundingStreamIDStrings[id]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown FundingStreamID (%d)", int(id))
}

// ParseFundingStreamID returns the funding stream with the passed name or
// decimal id.
func ParseFundingStreamID(name string) (FundingStreamID, error) {
	for id := FirstFundingStream; id < NumFundingStreams; id++ {
		if fundingStreamIDStrings[id] == name ||
			strconv.Itoa(int(id)) == name {

			return id, nil
		}
	}
	str := fmt.Sprintf("unknown funding stream %q", name)
	return 0, paramsError(ErrInvalidFundingStream, str)
}

// FundingStream pays part of the block subsidy to a fixed locking script for
// every block in [StartHeight, EndHeight).
type FundingStream struct {
	StartHeight int32
	EndHeight   int32

	// Script is the recipient locking script.  It must not be modified.
	Script []byte
}

// IsActive returns whether the stream pays out at the given height.
func (fs *FundingStream) IsActive(height int32) bool {
	return height >= fs.StartHeight && height < fs.EndHeight
}

// NewFundingStream returns a funding stream after checking it against the
// upgrade schedule it will be used with.  Funding streams only exist from
// Canopy on, so Canopy must be scheduled and the stream must not start before
// it.
func NewFundingStream(schedule *UpgradeSchedule, start, end int32, script []byte) (FundingStream, error) {
	canopy, ok := schedule[UpgradeCanopy].Activation.Resolve()
	switch {
	case !ok:
		str := "funding streams require a scheduled canopy upgrade"
		return FundingStream{}, paramsError(ErrInvalidFundingStream, str)

	case start < canopy:
		str := fmt.Sprintf("funding stream starts at %d, before canopy "+
			"activation at %d", start, canopy)
		return FundingStream{}, paramsError(ErrInvalidFundingStream, str)

	case end <= start:
		str := fmt.Sprintf("funding stream range [%d, %d) is empty",
			start, end)
		return FundingStream{}, paramsError(ErrInvalidFundingStream, str)

	case len(script) == 0:
		str := "funding stream has no recipient script"
		return FundingStream{}, paramsError(ErrInvalidFundingStream, str)
	}

	return FundingStream{
		StartHeight: start,
		EndHeight:   end,
		Script:      append([]byte(nil), script...),
	}, nil
}

// FundingStream returns the funding stream with the passed id.  The boolean
// is false when the stream is not configured.
func (p *Params) FundingStream(id FundingStreamID) (FundingStream, bool) {
	if id < FirstFundingStream || id >= NumFundingStreams {
		return FundingStream{}, false
	}
	fs := p.FundingStreams[id]
	if fs == nil {
		return FundingStream{}, false
	}
	return *fs, true
}

// ActiveFundingStreams returns the ids of the streams paying out at the given
// height in id order.
func (p *Params) ActiveFundingStreams(height int32) []FundingStreamID {
	var active []FundingStreamID
	for id := FirstFundingStream; id < NumFundingStreams; id++ {
		if fs := p.FundingStreams[id]; fs != nil && fs.IsActive(height) {
			active = append(active, id)
		}
	}
	return active
}

// SetFundingStream replaces a funding stream.  It is only permitted on the
// regression test network, must only be called during single-threaded setup
// and panics when id is out of range.
func (p *Params) SetFundingStream(id FundingStreamID, fs FundingStream) {
	p.assertRegTest("SetFundingStream")
	if id < FirstFundingStream || id >= NumFundingStreams {
		assertf("funding stream id %d out of range", id)
	}
	p.FundingStreams[id] = &fs
	log.Warnf("%s: funding stream %v set to [%d, %d)", p.Name, id,
		fs.StartHeight, fs.EndHeight)
}

// validateFundingStreams checks every configured stream against the upgrade
// schedule.
func (p *Params) validateFundingStreams() error {
	for id := FirstFundingStream; id < NumFundingStreams; id++ {
		fs := p.FundingStreams[id]
		if fs == nil {
			continue
		}
		_, err := NewFundingStream(&p.Upgrades, fs.StartHeight,
			fs.EndHeight, fs.Script)
		if err != nil {
			str := fmt.Sprintf("funding stream %v: %v", id, err)
			return paramsError(ErrInvalidFundingStream, str)
		}
	}
	return nil
}
