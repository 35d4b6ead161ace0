package modplay

import (
	"fmt"

	"github.com/quasilyte/modplay/internal/ptdb"
)

// PlayerInfo describes a replayer variant.
type PlayerInfo struct {
	// ID is the LoadModuleConfig.Player value that selects this variant.
	ID string

	Name string

	Description string
}

// DefaultPlayer is the replayer used when no player is requested.
const DefaultPlayer = "pt21a"

// sequencer is a replayer variant.
// It's selected once by LoadModule and never changes during the playback.
type sequencer interface {
	// nextTick reads the row events at the row boundary and
	// then updates every channel for the current tick.
	nextTick(s *Stream)

	// reset prepares the variant state for the song start.
	reset(s *Stream)
}

type playerListEntry struct {
	info PlayerInfo
	new  func() sequencer
}

var playerList = []playerListEntry{
	{
		info: PlayerInfo{
			ID:          "pt21a",
			Name:        "ProTracker 2.1A",
			Description: "A replayer with the complete ProTracker effect set",
		},
		new: func() sequencer { return &protrackerPlayer{} },
	},
	{
		info: PlayerInfo{
			ID:          "nt11",
			Name:        "NoiseTracker 1.1",
			Description: "A replayer with the NoiseTracker effect set: no extended commands except the filter",
		},
		new: func() sequencer { return &noisetrackerPlayer{} },
	},
}

// Players returns the available replayer variants.
// The first one is the default.
func Players() []PlayerInfo {
	list := make([]PlayerInfo, len(playerList))
	for i, p := range playerList {
		list[i] = p.info
	}
	return list
}

func newPlayer(id string) (sequencer, error) {
	if id == "" {
		id = DefaultPlayer
	}
	for _, p := range playerList {
		if p.info.ID == id {
			return p.new(), nil
		}
	}
	return nil, fmt.Errorf("unknown player %q", id)
}

type protrackerPlayer struct{}

func (p *protrackerPlayer) nextTick(s *Stream) {
	if s.advanceTick() {
		s.playRow(nil)
	}
	s.updateChannels()
}

func (p *protrackerPlayer) reset(s *Stream) {
	s.vibratoShift = 7
}

// noisetrackerPlayer differs from the ProTracker replayer in a few ways:
//   - only E0x (filter) is recognized among the extended commands
//   - 5xy, 6xy, 7xy and 9xx are ignored
//   - Dxx always breaks to the first row
//   - Fxx sets the speed from the low 5 bits, there is no tempo
//   - the vibrato is twice as deep
type noisetrackerPlayer struct{}

func (p *noisetrackerPlayer) nextTick(s *Stream) {
	if s.advanceTick() {
		s.playRow(noisetrackerEffect)
	}
	s.updateChannels()
}

func (p *noisetrackerPlayer) reset(s *Stream) {
	s.vibratoShift = 6
}

func noisetrackerEffect(e ptdb.Effect) ptdb.Effect {
	switch e.Op {
	case ptdb.EffectArpeggio, ptdb.EffectPortamentoUp, ptdb.EffectPortamentoDown,
		ptdb.EffectTonePortamento, ptdb.EffectVibrato, ptdb.EffectVolumeSlide,
		ptdb.EffectPositionJump, ptdb.EffectSetVolume, ptdb.EffectSetFilter,
		ptdb.EffectSetSpeed:
		return e
	case ptdb.EffectPatternBreak:
		return ptdb.Effect{Op: ptdb.EffectPatternBreak}
	case ptdb.EffectSetTempo:
		if speed := e.Arg & 0x1f; speed != 0 {
			return ptdb.Effect{Op: ptdb.EffectSetSpeed, Arg: speed}
		}
	}
	return ptdb.Effect{}
}
