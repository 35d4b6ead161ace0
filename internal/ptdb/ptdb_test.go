package ptdb

import (
	"testing"
)

func TestNotePeriod(t *testing.T) {
	tests := []struct {
		note     int
		finetune int
		want     int
	}{
		{NoteC1, 0, 856},
		{NoteC1 + 12, 0, 428},
		{NoteC1 + 24, 0, 214},
		{NoteC1 + 28, 0, 170},
		{NoteC1 + 35, 0, 113},
		{NoteC1 - 12, 0, 1712},
		{NoteC1 + 36, 0, 107},
		{NoteC1, -8, 906},
		{NoteC1, 7, 813},
		{0, 0, 0},
		{MaxNote + 1, 0, 0},
	}
	for _, test := range tests {
		have := NotePeriod(test.note, test.finetune)
		if have != test.want {
			t.Errorf("NotePeriod(%d, %d): have %d, want %d", test.note, test.finetune, have, test.want)
		}
	}
}

func TestPeriodToNote(t *testing.T) {
	for i, p := range periodTable {
		if have := PeriodToNote(p); int(have) != NoteC1+i {
			t.Errorf("PeriodToNote(%d): have %d, want %d", p, have, NoteC1+i)
		}
	}
	if have := PeriodToNote(0); have != 0 {
		t.Errorf("PeriodToNote(0): have %d, want 0", have)
	}
	if have := PeriodToNote(855); have != NoteC1 {
		t.Errorf("PeriodToNote(855): have %d, want %d", have, NoteC1)
	}
}

func TestSemitonePeriod(t *testing.T) {
	tests := []struct {
		period int
		want   int
	}{
		{856, 856},
		{900, 856},
		{830, 808},
		{214, 214},
		{215, 214},
		{100, 95},
		{1800, 1712},
		{52, 50},
	}
	for _, test := range tests {
		if have := SemitonePeriod(test.period, 0); have != test.want {
			t.Errorf("SemitonePeriod(%d): have %d, want %d", test.period, have, test.want)
		}
	}
}

func TestFinetuneFromNibble(t *testing.T) {
	tests := map[uint8]int{0: 0, 7: 7, 8: -8, 0xf: -1, 0x1f: -1}
	for v, want := range tests {
		if have := FinetuneFromNibble(v); have != want {
			t.Errorf("FinetuneFromNibble(%d): have %d, want %d", v, have, want)
		}
	}
}

func TestConvertEffect(t *testing.T) {
	tests := []struct {
		kind  uint8
		param uint8
		want  Effect
	}{
		{0x0, 0x00, Effect{Op: EffectNone}},
		{0x0, 0x47, Effect{Op: EffectArpeggio, Arg: 0x47}},
		{0x3, 0x10, Effect{Op: EffectTonePortamento, Arg: 0x10}},
		{0x8, 0x80, Effect{Op: EffectNone, Arg: 0x80}},
		{0xD, 0x10, Effect{Op: EffectPatternBreak, Arg: 10}},
		{0xD, 0x32, Effect{Op: EffectPatternBreak, Arg: 32}},
		{0xE, 0x01, Effect{Op: EffectSetFilter, Arg: 1}},
		{0xE, 0x63, Effect{Op: EffectPatternLoop, Arg: 3}},
		{0xE, 0xD2, Effect{Op: EffectNoteDelay, Arg: 2}},
		{0xE, 0xE4, Effect{Op: EffectPatternDelay, Arg: 4}},
		{0xF, 0x06, Effect{Op: EffectSetSpeed, Arg: 6}},
		{0xF, 0x1F, Effect{Op: EffectSetSpeed, Arg: 0x1F}},
		{0xF, 0x20, Effect{Op: EffectSetTempo, Arg: 0x20}},
		{0xF, 0x7D, Effect{Op: EffectSetTempo, Arg: 125}},
	}
	for _, test := range tests {
		have := ConvertEffect(test.kind, test.param)
		if have != test.want {
			t.Errorf("ConvertEffect(%X, %02X): have %+v, want %+v", test.kind, test.param, have, test.want)
		}
	}
}

func TestEffectFromVolumeByte(t *testing.T) {
	if e := EffectFromVolumeByte(0); e.Op != EffectNone {
		t.Errorf("0x00: have %+v", e)
	}
	if e := EffectFromVolumeByte(0x10 + 64); e.Op != EffectSetVolume || e.Arg != 64 {
		t.Errorf("0x50: have %+v", e)
	}
	if e := EffectFromVolumeByte(0x60); e.Op != EffectNone {
		t.Errorf("0x60: have %+v", e)
	}
}

func TestWaveValue(t *testing.T) {
	tests := []struct {
		wave  Waveform
		phase int
		want  int
	}{
		{WaveSine, 0, 0},
		{WaveSine, 16, 255},
		{WaveSine, 48, -255},
		{WaveSine, 64 + 16, 255},
		{WaveRampDown, 1, 8},
		{WaveRampDown, 32, -255},
		{WaveRampDown, 63, -7},
		{WaveSquare, 0, 255},
		{WaveSquare, 40, -255},
		{WaveRandom, 16, 255},
	}
	for _, test := range tests {
		if have := WaveValue(test.wave, test.phase); have != test.want {
			t.Errorf("WaveValue(%d, %d): have %d, want %d", test.wave, test.phase, have, test.want)
		}
	}
}

func TestSemitoneNote(t *testing.T) {
	tests := []struct {
		period int
		want   int
	}{
		{856, NoteC1},
		{900, NoteC1},
		{1712, 1},
		{5000, 1},
		{214, NoteC1 + 24},
		{200, NoteC1 + 26},
		{113, NoteC1 + 35},
		{110, NoteC1 + 36},
		{53, NoteC1 + 48},
		{42, NoteC1 + 52},
		{1, MaxNote},
	}
	for _, test := range tests {
		if have := SemitoneNote(test.period, 0); have != test.want {
			t.Errorf("SemitoneNote(%d): have %d, want %d", test.period, have, test.want)
		}
	}
}

func TestPeriodRange(t *testing.T) {
	for ft := -8; ft <= 7; ft++ {
		lo, hi := PeriodRange(ft)
		for note := 1; note <= MaxNote; note++ {
			p := NotePeriod(note, ft)
			if p < lo || p > hi {
				t.Fatalf("finetune %d: note %d period %d is outside of [%d, %d]", ft, note, p, lo, hi)
			}
			if note > 1 && p > NotePeriod(note-1, ft) {
				t.Fatalf("finetune %d: note %d period %d is above the previous note", ft, note, p)
			}
		}
	}
	if lo, hi := PeriodRange(0); lo != 7 || hi != 1712 {
		t.Fatalf("PeriodRange(0): have [%d, %d], want [7, 1712]", lo, hi)
	}
}

func TestFunkStep(t *testing.T) {
	if FunkStep(0) != 0 {
		t.Fatalf("zero speed must not advance")
	}
	if FunkStep(15) != 128 {
		t.Fatalf("the max speed must overflow every tick")
	}
	for speed := 1; speed < 16; speed++ {
		if FunkStep(speed) <= FunkStep(speed-1) {
			t.Fatalf("FunkStep(%d) is not increasing", speed)
		}
	}
}

func TestIsTrigger(t *testing.T) {
	triggers := []EffectOp{
		EffectSetVolume, EffectFinePortamentoUp, EffectFineVolumeSlideDown,
		EffectPatternBreak, EffectSetSpeed, EffectSetFinetune,
	}
	for _, op := range triggers {
		if !op.IsTrigger() {
			t.Errorf("%d: expected a trigger effect", op)
		}
	}
	ticking := []EffectOp{
		EffectNone, EffectArpeggio, EffectPortamentoUp, EffectTonePortamento,
		EffectVibrato, EffectTremolo, EffectVolumeSlide, EffectRetrigger,
		EffectNoteCut, EffectNoteDelay, EffectInvertLoop,
	}
	for _, op := range ticking {
		if op.IsTrigger() {
			t.Errorf("%d: expected a per-tick effect", op)
		}
	}
}
