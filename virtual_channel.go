package modplay

import (
	"github.com/quasilyte/modplay/internal/paula"
)

// voiceChip is the set of chip registers the virtual channels drive.
//
// *paula.Chip implements it.
type voiceChip interface {
	Trigger(ch int, data []int8, loopStart, loopLength int)
	SetPosition(ch, offset int)
	SetPeriod(ch, period int)
	SetVolume(ch, volume int)
	SetFilter(f paula.Filter)
}

// ChannelState describes the values that were last written to the chip channel.
type ChannelState struct {
	// Instrument is a 1-based instrument index, 0 means "none".
	Instrument int

	Sample int

	// Note is the last triggered note (see modfile.NoteName).
	Note int

	Period int

	// Volume is in [0, 64] range.
	Volume int
}

// virtualChannels decouples the sequencer from the chip.
//
// Register writes are latched and only forwarded when the value changes.
// A patch change is a key-on event, so it's forwarded unconditionally.
type virtualChannels struct {
	chip voiceChip

	instruments []instrument

	regs   []ChannelState
	filter paula.Filter
}

func (v *virtualChannels) Init(chip voiceChip, instruments []instrument, numChannels int, filter paula.Filter) {
	v.chip = chip
	v.instruments = instruments
	v.filter = filter
	if cap(v.regs) < numChannels {
		v.regs = make([]ChannelState, numChannels)
	}
	v.regs = v.regs[:numChannels]
	for i := range v.regs {
		v.regs[i] = ChannelState{}
	}
}

// SetPatch starts playing the instrument sample from its beginning.
func (v *virtualChannels) SetPatch(ch, inst, smp, note int) {
	r := &v.regs[ch]
	r.Instrument = inst
	r.Sample = smp
	r.Note = note

	s := v.lookupSample(inst, smp)
	if s == nil {
		// An instrument without sample data silences the channel.
		v.chip.Trigger(ch, nil, 0, 0)
		return
	}
	loopStart, loopLength := 0, 0
	if s.HasLoop() {
		loopStart, loopLength = s.loopStart, s.loopLength
	}
	v.chip.Trigger(ch, s.data, loopStart, loopLength)
}

func (v *virtualChannels) lookupSample(inst, smp int) *instrumentSample {
	if inst < 1 || inst > len(v.instruments) {
		return nil
	}
	samples := v.instruments[inst-1].samples
	if smp < 0 || smp >= len(samples) {
		return nil
	}
	return &samples[smp]
}

// SetPosition moves the playing sample to the byte offset.
func (v *virtualChannels) SetPosition(ch, offset int) {
	v.chip.SetPosition(ch, offset)
}

func (v *virtualChannels) SetVolume(ch, volume int) {
	volume = clamp(volume, 0, 64)
	if v.regs[ch].Volume == volume {
		return
	}
	v.regs[ch].Volume = volume
	v.chip.SetVolume(ch, volume)
}

func (v *virtualChannels) SetPeriod(ch, period int) {
	if period <= 0 || v.regs[ch].Period == period {
		return
	}
	v.regs[ch].Period = period
	v.chip.SetPeriod(ch, period)
}

func (v *virtualChannels) SetFilter(f paula.Filter) {
	if v.filter == f {
		return
	}
	v.filter = f
	v.chip.SetFilter(f)
}

func (v *virtualChannels) Registers(ch int) ChannelState {
	return v.regs[ch]
}
