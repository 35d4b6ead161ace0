package modplay

import (
	"math"

	"github.com/quasilyte/modplay/internal/paula"
	"github.com/quasilyte/modplay/internal/ptdb"
)

func (s *Stream) playChannelRow(ch *streamChannel, e *patternEvent) {
	ch.effect = e.effect
	ch.noteTriggered = false
	ch.delayedNote = 0

	op := e.effect.Op
	porta := op == ptdb.EffectTonePortamento || op == ptdb.EffectTonePortamentoVolumeSlide
	glide := porta && ch.period != 0

	// A glide keeps the sounding instrument.
	if e.inst != 0 && !glide {
		ch.inst = &s.module.instruments[e.inst-1]
		ch.volume = ch.inst.volume
		ch.finetune = ch.inst.finetune
	}
	if op == ptdb.EffectSetFinetune {
		ch.finetune = ptdb.FinetuneFromNibble(e.effect.Arg)
	}

	note := e.note
	if note == 0 && e.inst != 0 && !porta {
		// A lone instrument restarts the current note.
		note = ch.note
	}
	switch {
	case note == 0:
		// Nothing to play.
	case glide:
		ch.tonePortamentoTarget = ptdb.NotePeriod(int(note), ch.finetune)
		ch.note = note
	case op == ptdb.EffectNoteDelay && e.effect.Arg != 0:
		ch.delayedNote = note
	default:
		s.triggerNote(ch, note)
	}

	if e.volume.Op == ptdb.EffectSetVolume {
		ch.volume = clamp(int(e.volume.Arg), 0, 64)
	}
	if op != ptdb.EffectNone {
		s.applyRowEffect(ch, e.effect)
	}

	if s.settings.eventHandler != nil && !e.IsEmpty() {
		instID := 255 // It's a sentinel value that fits 8 bits
		if ch.inst != nil {
			instID = ch.inst.id
		}
		vol := float32(ch.volume) / 64
		value := uint64(e.note) | uint64(instID<<8) | (uint64(math.Float32bits(vol)) << 16)
		s.settings.eventHandler(StreamEvent{
			Kind:    EventNote,
			Channel: ch.id,
			Time:    s.t,
			value:   value,
		})
	}
}

func (s *Stream) triggerNote(ch *streamChannel, note uint8) {
	period := ptdb.NotePeriod(int(note), ch.finetune)
	if period == 0 {
		return
	}
	ch.note = note
	ch.period = period
	ch.noteTriggered = true
	ch.retriggerWaveforms()
	s.retrigger(ch)
}

func (s *Stream) retrigger(ch *streamChannel) {
	instID := 0
	if ch.inst != nil {
		instID = ch.inst.id
	}
	s.virt.SetPatch(ch.id, instID, 0, int(ch.note))
}

// applyRowEffect handles the effect parts that are resolved at the row boundary.
func (s *Stream) applyRowEffect(ch *streamChannel, e ptdb.Effect) {
	arg := int(e.Arg)

	switch e.Op {
	case ptdb.EffectTonePortamento:
		if arg != 0 {
			ch.tonePortamentoSpeed = arg
		}

	case ptdb.EffectVibrato:
		if x := arg >> 4; x != 0 {
			ch.vibratoRate = x
		}
		if y := arg & 0xf; y != 0 {
			ch.vibratoDepth = y
		}

	case ptdb.EffectTremolo:
		if x := arg >> 4; x != 0 {
			ch.tremoloRate = x
		}
		if y := arg & 0xf; y != 0 {
			ch.tremoloDepth = y
		}

	case ptdb.EffectSampleOffset:
		if arg != 0 {
			ch.sampleOffset = arg * 256
		}
		if ch.noteTriggered {
			s.virt.SetPosition(ch.id, ch.sampleOffset)
		}

	case ptdb.EffectPositionJump:
		s.rowJump |= jumpPosition
		s.jumpPos = arg

	case ptdb.EffectSetVolume:
		ch.volume = clamp(arg, 0, 64)

	case ptdb.EffectPatternBreak:
		s.rowJump |= jumpBreak
		s.jumpRow = arg

	case ptdb.EffectSetFilter:
		if arg&1 == 0 {
			s.virt.SetFilter(paula.FilterOn)
		} else {
			s.virt.SetFilter(paula.FilterOff)
		}

	case ptdb.EffectFinePortamentoUp:
		s.slidePeriod(ch, -arg)

	case ptdb.EffectFinePortamentoDown:
		s.slidePeriod(ch, arg)

	case ptdb.EffectGlissando:
		ch.glissando = arg != 0

	case ptdb.EffectVibratoWaveform:
		ch.vibratoWave = uint8(arg) & (waveKindMask | waveNoRetrigger)

	case ptdb.EffectTremoloWaveform:
		ch.tremoloWave = uint8(arg) & (waveKindMask | waveNoRetrigger)

	case ptdb.EffectPatternLoop:
		s.patternLoop(ch, arg)

	case ptdb.EffectFineVolumeSlideUp:
		ch.volume = clampMax(ch.volume+arg, 64)

	case ptdb.EffectFineVolumeSlideDown:
		ch.volume = clampMin(ch.volume-arg, 0)

	case ptdb.EffectPatternDelay:
		if s.delay == 0 {
			s.delay = arg
		}

	case ptdb.EffectInvertLoop:
		ch.funkSpeed = arg
		if arg != 0 {
			s.updateFunk(ch)
		}

	case ptdb.EffectSetSpeed:
		if arg == 0 {
			s.softFault("F00 effect ignored")
			break
		}
		s.speed = arg

	case ptdb.EffectSetTempo:
		s.setTempo(arg)
	}
}

func (s *Stream) patternLoop(ch *streamChannel, arg int) {
	if arg == 0 {
		ch.loopRow = s.row
		return
	}
	if ch.loopCount == 0 {
		ch.loopCount = arg
	} else {
		ch.loopCount--
		if ch.loopCount == 0 {
			return
		}
	}
	s.rowJump |= jumpLoop
	s.loopTarget = ch.loopRow
}

// applyTickEffect computes the channel output values for the current tick.
func (s *Stream) applyTickEffect(ch *streamChannel) {
	ch.outPeriod = ch.period
	ch.outVolume = ch.volume

	if s.tick != 0 {
		s.updateFunk(ch)
	}
	if ch.effect.Op.IsTrigger() {
		// Already resolved by applyRowEffect.
		return
	}

	// Slides are not applied on the first tick of a freshly read row.
	fresh := s.tick == 0 && !s.rowRepeat
	arg := int(ch.effect.Arg)

	switch ch.effect.Op {
	case ptdb.EffectArpeggio:
		var semitones int
		switch s.tick % 3 {
		case 1:
			semitones = arg >> 4
		case 2:
			semitones = arg & 0xf
		}
		if semitones != 0 && ch.period != 0 {
			ch.outPeriod = arpeggioPeriod(ch.period, ch.finetune, semitones)
		}

	case ptdb.EffectPortamentoUp:
		if !fresh {
			s.slidePeriod(ch, -arg)
			ch.outPeriod = ch.period
		}

	case ptdb.EffectPortamentoDown:
		if !fresh {
			s.slidePeriod(ch, arg)
			ch.outPeriod = ch.period
		}

	case ptdb.EffectTonePortamento:
		if !fresh {
			s.tonePortamento(ch)
		}

	case ptdb.EffectTonePortamentoVolumeSlide:
		if !fresh {
			s.tonePortamento(ch)
			s.volumeSlide(ch, arg)
		}

	case ptdb.EffectVibrato:
		if !fresh {
			s.vibrato(ch)
		}

	case ptdb.EffectVibratoVolumeSlide:
		if !fresh {
			s.vibrato(ch)
			s.volumeSlide(ch, arg)
		}

	case ptdb.EffectTremolo:
		if !fresh {
			s.tremolo(ch)
		}

	case ptdb.EffectVolumeSlide:
		if !fresh {
			s.volumeSlide(ch, arg)
		}

	case ptdb.EffectRetrigger:
		if arg == 0 || s.tick%arg != 0 || ch.note == 0 {
			break
		}
		if fresh && ch.noteTriggered {
			// The note was just triggered by this row.
			break
		}
		s.retrigger(ch)

	case ptdb.EffectNoteCut:
		if s.tick == arg {
			ch.volume = 0
			ch.outVolume = 0
		}

	case ptdb.EffectNoteDelay:
		if ch.delayedNote != 0 && s.tick == arg {
			s.triggerNote(ch, ch.delayedNote)
			ch.delayedNote = 0
			ch.outPeriod = ch.period
		}
	}
}

func arpeggioPeriod(period, finetune, semitones int) int {
	base := ptdb.SemitoneNote(period, finetune)
	return ptdb.NotePeriod(clampMax(base+semitones, ptdb.MaxNote), finetune)
}

// slidePeriod moves the channel period by delta, keeping it
// inside the range of playable notes.
func (s *Stream) slidePeriod(ch *streamChannel, delta int) {
	if ch.period == 0 {
		return
	}
	lo, hi := ptdb.PeriodRange(ch.finetune)
	ch.period = clamp(ch.period+delta, lo, hi)
}

func (s *Stream) tonePortamento(ch *streamChannel) {
	target := ch.tonePortamentoTarget
	if target == 0 || ch.period == 0 {
		return
	}
	if ch.period != target {
		ch.period = slideTowards(ch.period, target, ch.tonePortamentoSpeed)
	}
	ch.outPeriod = ch.period
	if ch.glissando {
		ch.outPeriod = ptdb.SemitonePeriod(ch.period, ch.finetune)
	}
}

func (s *Stream) vibrato(ch *streamChannel) {
	wave := ptdb.Waveform(ch.vibratoWave & waveKindMask)
	delta := (ptdb.WaveValue(wave, ch.vibratoPhase) * ch.vibratoDepth) >> s.vibratoShift
	ch.outPeriod = ch.period + delta
	ch.vibratoPhase = (ch.vibratoPhase + ch.vibratoRate) & (ptdb.WaveformPeriod - 1)
}

func (s *Stream) tremolo(ch *streamChannel) {
	wave := ptdb.Waveform(ch.tremoloWave & waveKindMask)
	delta := (ptdb.WaveValue(wave, ch.tremoloPhase) * ch.tremoloDepth) >> 6
	ch.outVolume = clamp(ch.volume+delta, 0, 64)
	ch.tremoloPhase = (ch.tremoloPhase + ch.tremoloRate) & (ptdb.WaveformPeriod - 1)
}

func (s *Stream) volumeSlide(ch *streamChannel, arg int) {
	if x := arg >> 4; x != 0 {
		ch.volume = clampMax(ch.volume+x, 64)
	} else {
		ch.volume = clampMin(ch.volume-(arg&0xf), 0)
	}
	ch.outVolume = ch.volume
}

// updateFunk advances the invert loop, flipping one byte of the
// sample loop every time the accumulator overflows.
//
// The sample data is a private copy, see module.restoreSamples.
func (s *Stream) updateFunk(ch *streamChannel) {
	if ch.funkSpeed == 0 || ch.inst == nil || len(ch.inst.samples) == 0 {
		return
	}
	ch.funkOffset += ptdb.FunkStep(ch.funkSpeed)
	if ch.funkOffset < 128 {
		return
	}
	ch.funkOffset = 0

	smp := &ch.inst.samples[0]
	if !smp.HasLoop() {
		return
	}
	ch.funkPosition++
	if ch.funkPosition >= smp.loopLength {
		ch.funkPosition = 0
	}
	i := smp.loopStart + ch.funkPosition
	smp.data[i] = -1 - smp.data[i]
}
