package ptdb

type Effect struct {
	Op  EffectOp
	Arg uint8
}

type EffectOp int

const (
	EffectNone EffectOp = iota

	// Encoding: effect=0x0 (with non-zero parameter)
	// Arg: semitone offsets (x=first, y=second)
	EffectArpeggio

	// Encoding: effect=0x1
	// Arg: period decrement per tick (no memory, 0 does nothing)
	EffectPortamentoUp

	// Encoding: effect=0x2
	// Arg: period increment per tick (no memory, 0 does nothing)
	EffectPortamentoDown

	// Encoding: effect=0x3
	// Arg: slide speed (0 - use the last value)
	EffectTonePortamento

	// Encoding: effect=0x4
	// Arg: rate (x) and depth (y)
	EffectVibrato

	// Encoding: effect=0x5
	// Arg: volume slide parameter, the tone portamento continues
	EffectTonePortamentoVolumeSlide

	// Encoding: effect=0x6
	// Arg: volume slide parameter, the vibrato continues
	EffectVibratoVolumeSlide

	// Encoding: effect=0x7
	// Arg: rate (x) and depth (y)
	EffectTremolo

	// Encoding: effect=0x9
	// Arg: sample offset in 256-byte units
	EffectSampleOffset

	// Encoding: effect=0xA
	// Arg: slide up (x) or down (y) speed
	EffectVolumeSlide

	// Encoding: effect=0xB
	// Arg: order list position
	EffectPositionJump

	// Encoding: effect=0xC [or] volume byte
	// Arg: volume level
	EffectSetVolume

	// Encoding: effect=0xD
	// Arg: row number (already converted from the decimal encoding)
	EffectPatternBreak

	// Encoding: effect=0xE0
	// Arg: 0 - filter on, 1 - filter off
	EffectSetFilter

	// Encoding: effect=0xE1
	// Arg: period decrement
	EffectFinePortamentoUp

	// Encoding: effect=0xE2
	// Arg: period increment
	EffectFinePortamentoDown

	// Encoding: effect=0xE3
	// Arg: 0 - off, 1 - on
	EffectGlissando

	// Encoding: effect=0xE4
	// Arg: waveform (bits 0-1) and no-retrigger flag (bit 2)
	EffectVibratoWaveform

	// Encoding: effect=0xE5
	// Arg: finetune nibble
	EffectSetFinetune

	// Encoding: effect=0xE6
	// Arg: 0 - set loop start, N - loop N times
	EffectPatternLoop

	// Encoding: effect=0xE7
	// Arg: waveform (bits 0-1) and no-retrigger flag (bit 2)
	EffectTremoloWaveform

	// Encoding: effect=0xE9
	// Arg: retrigger interval in ticks
	EffectRetrigger

	// Encoding: effect=0xEA
	// Arg: volume increment
	EffectFineVolumeSlideUp

	// Encoding: effect=0xEB
	// Arg: volume decrement
	EffectFineVolumeSlideDown

	// Encoding: effect=0xEC
	// Arg: tick number
	EffectNoteCut

	// Encoding: effect=0xED
	// Arg: tick number
	EffectNoteDelay

	// Encoding: effect=0xEE
	// Arg: number of rows to repeat
	EffectPatternDelay

	// Encoding: effect=0xEF
	// Arg: funk speed
	EffectInvertLoop

	// Encoding: effect=0xF (parameter < 0x20)
	// Arg: ticks per row
	EffectSetSpeed

	// Encoding: effect=0xF (parameter >= 0x20)
	// Arg: tempo
	EffectSetTempo
)

// SpeedTempoThreshold is the first Fxx parameter that is treated as a tempo.
const SpeedTempoThreshold = 0x20

func ConvertEffect(kind, param uint8) Effect {
	e := Effect{Arg: param}

	switch kind {
	case 0x0:
		if param != 0 {
			e.Op = EffectArpeggio
		}
	case 0x1:
		e.Op = EffectPortamentoUp
	case 0x2:
		e.Op = EffectPortamentoDown
	case 0x3:
		e.Op = EffectTonePortamento
	case 0x4:
		e.Op = EffectVibrato
	case 0x5:
		e.Op = EffectTonePortamentoVolumeSlide
	case 0x6:
		e.Op = EffectVibratoVolumeSlide
	case 0x7:
		e.Op = EffectTremolo
	case 0x9:
		e.Op = EffectSampleOffset
	case 0xA:
		e.Op = EffectVolumeSlide
	case 0xB:
		e.Op = EffectPositionJump
	case 0xC:
		e.Op = EffectSetVolume
	case 0xD:
		e.Op = EffectPatternBreak
		e.Arg = (param>>4)*10 + (param & 0xf)
	case 0xE:
		e = convertExtendedEffect(param)
	case 0xF:
		e.Op = EffectSetSpeed
		if param >= SpeedTempoThreshold {
			e.Op = EffectSetTempo
		}
	}

	return e
}

var extendedEffects = [16]EffectOp{
	0x0: EffectSetFilter,
	0x1: EffectFinePortamentoUp,
	0x2: EffectFinePortamentoDown,
	0x3: EffectGlissando,
	0x4: EffectVibratoWaveform,
	0x5: EffectSetFinetune,
	0x6: EffectPatternLoop,
	0x7: EffectTremoloWaveform,
	0x8: EffectNone,
	0x9: EffectRetrigger,
	0xA: EffectFineVolumeSlideUp,
	0xB: EffectFineVolumeSlideDown,
	0xC: EffectNoteCut,
	0xD: EffectNoteDelay,
	0xE: EffectPatternDelay,
	0xF: EffectInvertLoop,
}

func convertExtendedEffect(param uint8) Effect {
	return Effect{
		Op:  extendedEffects[param>>4],
		Arg: param & 0xf,
	}
}

func EffectFromVolumeByte(v uint8) Effect {
	var e Effect

	switch {
	case v <= 0x0F:
		// Do nothing.

	case v <= 0x50:
		// Set volume effect.
		e.Op = EffectSetVolume
		e.Arg = v - 0x10
	}

	return e
}

// IsTrigger reports whether the effect is fully resolved at the row boundary.
func (op EffectOp) IsTrigger() bool {
	switch op {
	case EffectSampleOffset, EffectPositionJump, EffectSetVolume, EffectPatternBreak,
		EffectSetFilter, EffectFinePortamentoUp, EffectFinePortamentoDown,
		EffectGlissando, EffectVibratoWaveform, EffectSetFinetune, EffectPatternLoop,
		EffectTremoloWaveform, EffectFineVolumeSlideUp, EffectFineVolumeSlideDown,
		EffectPatternDelay, EffectSetSpeed, EffectSetTempo:
		return true
	default:
		return false
	}
}

var funkTable = [16]int{0, 5, 6, 7, 8, 10, 11, 13, 16, 19, 22, 26, 32, 43, 64, 128}

// FunkStep returns the invert loop accumulator increment for the EFx speed.
// The accumulator overflows at 128.
func FunkStep(speed int) int {
	return funkTable[speed&0xf]
}
