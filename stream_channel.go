package modplay

import (
	"github.com/quasilyte/modplay/internal/ptdb"
)

// streamChannel is a per-channel effect memory.
// It survives across rows and is only cleared by a stream reset.
type streamChannel struct {
	id int

	// Note-related data.
	inst     *instrument
	note     uint8
	period   int
	finetune int
	volume   int
	effect   ptdb.Effect

	// noteTriggered is set when the current row started a new note.
	noteTriggered bool

	// Output values computed during the last tick.
	outPeriod int
	outVolume int

	tonePortamentoTarget int
	tonePortamentoSpeed  int
	glissando            bool

	vibratoPhase int
	vibratoRate  int
	vibratoDepth int
	vibratoWave  uint8

	tremoloPhase int
	tremoloRate  int
	tremoloDepth int
	tremoloWave  uint8

	sampleOffset int

	// Pattern loop (E6x) state.
	loopRow   int
	loopCount int

	// Note delay (EDx) state.
	delayedNote uint8

	// Invert loop (EFx) state.
	funkSpeed    int
	funkOffset   int
	funkPosition int
}

func (ch *streamChannel) Reset(id int) {
	*ch = streamChannel{id: id}
}

// waveform bits of E4x/E7x.
const (
	waveKindMask    = 0b011
	waveNoRetrigger = 0b100
)

func (ch *streamChannel) retriggerWaveforms() {
	if ch.vibratoWave&waveNoRetrigger == 0 {
		ch.vibratoPhase = 0
	}
	if ch.tremoloWave&waveNoRetrigger == 0 {
		ch.tremoloPhase = 0
	}
}
