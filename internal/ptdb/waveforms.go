package ptdb

type Waveform int

const (
	WaveSine Waveform = iota
	WaveRampDown
	WaveSquare
	// WaveRandom is played as a sine.
	WaveRandom
)

// WaveformPeriod is the phase length of the vibrato and tremolo waves.
const WaveformPeriod = 64

// ProTracker sine table, the first half of the period.
var sineTable = [32]int{
	0, 24, 49, 74, 97, 120, 141, 161, 180, 197, 212, 224, 235, 244, 250, 253,
	255, 253, 250, 244, 235, 224, 212, 197, 180, 161, 141, 120, 97, 74, 49, 24,
}

// WaveValue returns the signed waveform value for the phase,
// in [-255, 255] range.
func WaveValue(w Waveform, phase int) int {
	phase &= WaveformPeriod - 1
	var v int
	switch w {
	case WaveRampDown:
		v = (phase & 31) * 8
		if phase >= 32 {
			v = 255 - v
		}
	case WaveSquare:
		v = 255
	default:
		v = sineTable[phase&31]
	}
	if phase >= 32 {
		return -v
	}
	return v
}
