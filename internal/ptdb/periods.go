package ptdb

const (
	// NoteC1 is the note number of the first entry of the period table.
	NoteC1 = 13

	// MaxNote is B-7.
	MaxNote = 96
)

// Amiga periods for finetune 0.
var periodTable = [36]int{
	// C-1, C#1, D-1, ..., B-1
	856, 808, 762, 720, 678, 640, 604, 570, 538, 508, 480, 453,
	// C-2, C#2, D-2, ..., B-2
	428, 404, 381, 360, 339, 320, 302, 285, 269, 254, 240, 226,
	// C-3, C#3, D-3, ..., B-3
	214, 202, 190, 180, 170, 160, 151, 143, 135, 127, 120, 113,
}

// Period scales for finetune -8..7 in .12 fixed point.
// Index 8 is finetune 0; finetune -8 is the next lower semitone.
var fineTuning = [16]int{
	4340, 4308, 4277, 4247, 4216, 4186, 4156, 4126,
	4096, 4067, 4037, 4008, 3979, 3951, 3922, 3894,
}

// NotePeriod returns the period for the note (1 is C-0) and finetune (-8..7).
// It returns 0 for notes outside of the [1, MaxNote] range.
//
// Octaves 1-3 come straight from the table, the others are
// derived from the nearest table octave.
func NotePeriod(note, finetune int) int {
	if note < 1 || note > MaxNote {
		return 0
	}
	semitone := (note - 1) % 12
	octave := (note - 1) / 12
	var p int
	switch {
	case octave == 0:
		p = periodTable[semitone] * 2
	case octave <= 3:
		p = periodTable[(octave-1)*12+semitone]
	default:
		p = periodTable[24+semitone] >> (octave - 3)
	}
	return (p * fineTuning[clampFinetune(finetune)+8]) >> 12
}

// PeriodToNote maps the finetune 0 period to the closest note.
// A zero period maps to 0 (no note).
func PeriodToNote(period int) uint8 {
	if period <= 0 {
		return 0
	}
	best := 0
	bestDist := 1 << 30
	for note := 1; note <= MaxNote; note++ {
		d := NotePeriod(note, 0) - period
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best = note
			bestDist = d
		}
	}
	return uint8(best)
}

// PeriodRange returns the slide limits for the finetune:
// the periods of B-7 and C-0.
func PeriodRange(finetune int) (lo, hi int) {
	return NotePeriod(MaxNote, finetune), NotePeriod(1, finetune)
}

// SemitoneNote returns the first note whose period is not greater than p.
// Periods above C-0 map to C-0 and periods below B-7 map to B-7.
func SemitoneNote(p, finetune int) int {
	for note := 1; note < MaxNote; note++ {
		if NotePeriod(note, finetune) <= p {
			return note
		}
	}
	return MaxNote
}

// SemitonePeriod rounds the period to a semitone of the given finetune,
// as the glissando mode does it.
func SemitonePeriod(p, finetune int) int {
	return NotePeriod(SemitoneNote(p, finetune), finetune)
}

// FinetuneFromNibble converts the signed 4-bit finetune encoding.
func FinetuneFromNibble(v uint8) int {
	v &= 0xf
	if v >= 8 {
		return int(v) - 16
	}
	return int(v)
}

func clampFinetune(v int) int {
	if v < -8 {
		return -8
	}
	if v > 7 {
		return 7
	}
	return v
}
