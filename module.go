package modplay

import (
	"github.com/quasilyte/modplay/internal/ptdb"
)

type module struct {
	name string

	numChannels int

	instruments []instrument

	patterns     []pattern
	patternOrder []*pattern

	// orderPatterns maps order positions to the pattern indices (for reporting).
	orderPatterns []int

	restartPosition int

	speed int
	tempo int

	// logicFaults counts the pattern references that were
	// replaced by no-ops during the compilation.
	logicFaults int
}

type moduleConfig struct {
	speed uint
	tempo uint
}

type pattern struct {
	numRows int
	events  []patternEvent
}

type patternEvent struct {
	// note is 0 or a valid note number.
	note uint8

	// inst is 0 or a valid 1-based instrument index.
	inst uint8

	volume ptdb.Effect
	effect ptdb.Effect
}

func (e *patternEvent) IsEmpty() bool {
	return *e == patternEvent{}
}

type instrument struct {
	id int

	volume   int
	finetune int

	// periodScale adjusts the period for the sample rate, .12 fixed point.
	periodScale int

	samples []instrumentSample
}

type instrumentSample struct {
	// data is a private sample copy that can be modified during the playback.
	data []int8

	// source is the original sample data used to undo the modifications.
	source []int8

	loopStart  int
	loopLength int
}

func (s *instrumentSample) HasLoop() bool {
	return s.loopLength > 2
}

func (m *module) restoreSamples() {
	for i := range m.instruments {
		for j := range m.instruments[i].samples {
			s := &m.instruments[i].samples[j]
			copy(s.data, s.source)
		}
	}
}
