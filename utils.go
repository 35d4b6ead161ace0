package modplay

import (
	"math"

	"github.com/quasilyte/modplay/modfile"
)

type numeric interface {
	uint8 | int | float64
}

func clampMin[T numeric](v, min T) T {
	if v < min {
		return min
	}
	return v
}

func clampMax[T numeric](v, max T) T {
	if v > max {
		return max
	}
	return v
}

func clamp[T numeric](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func slideTowards(v, goal, delta int) int {
	if v > goal {
		return clampMin(v-delta, goal)
	}
	if v < goal {
		return clampMax(v+delta, goal)
	}
	return v
}

func saturate16(v int64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// calcSamplesPerTick returns a fractional number of output samples per tick.
// A tick lasts 2.5/tempo seconds (125 is 50Hz).
func calcSamplesPerTick(sampleRate, tempo int) float64 {
	if tempo == 0 {
		return 0
	}
	return float64(sampleRate) * 2.5 / float64(tempo)
}

// calcPeriodScale returns a .12 fixed point multiplier that makes
// the sample recorded at the given rate play at the right pitch.
func calcPeriodScale(rate float64) int {
	if rate <= 0 {
		return 1 << 12
	}
	return int(math.Round(4096 * modfile.DefaultSampleRate / rate))
}
