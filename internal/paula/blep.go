package paula

// Filter selects one of the output stage step responses.
type Filter int

const (
	// FilterOff models an A500 with the LED filter disabled.
	FilterOff Filter = iota
	// FilterOn models an A500 with the LED filter enabled.
	FilterOn

	numFilters
)

func (f Filter) String() string {
	switch f {
	case FilterOff:
		return "a500"
	case FilterOn:
		return "a500+led"
	default:
		return "unknown"
	}
}

const (
	blepScale = 17
	blepSize  = 2048

	// MinimumInterval is the granularity (in chip cycles) at which the
	// voice levels are sampled.
	MinimumInterval = 16

	// MaxBleps is the capacity of a correction list.
	MaxBleps = blepSize / MinimumInterval
)

type blep struct {
	// level is the signed size of the step.
	level int32
	// age is the number of chip cycles since the step happened.
	age int32
}

// stepList is a band-limited step synthesizer for a single output.
//
// Every level change is recorded as a correction that slowly fades
// out as it ages; the rendered sample is the held level minus
// the still-active corrections.
type stepList struct {
	level  int32
	active int
	bleps  [MaxBleps]blep

	// overflows counts how many times the oldest correction
	// had to be dropped to make room for a new one.
	overflows int
}

// CommitLevel records the output level from now on.
// It reports false when the list was full and the oldest correction was discarded.
func (l *stepList) CommitLevel(level int16) bool {
	v := int32(level)
	if v == l.level {
		return true
	}

	ok := true
	if l.active > MaxBleps-1 {
		l.active = MaxBleps - 1
		l.overflows++
		ok = false
	}

	// Newest correction always lives at index 0.
	copy(l.bleps[1:l.active+1], l.bleps[:l.active])
	l.active++
	l.bleps[0] = blep{level: v - l.level, age: 0}
	l.level = v

	return ok
}

// AdvanceClock ages all active corrections by the given number of chip cycles.
// Corrections that reach the end of the step response are retired.
func (l *stepList) AdvanceClock(cycles int) {
	if cycles <= 0 {
		return
	}
	delta := int32(cycles)
	for i := 0; i < l.active; i++ {
		l.bleps[i].age += delta
		if l.bleps[i].age >= blepSize {
			// The list is ordered by age, everything after i is even older.
			l.active = i
			break
		}
	}
}

// RenderSample returns the current band-limited output value.
// It does not mutate the list.
func (l *stepList) RenderSample(f Filter) int16 {
	table := &stepResponse[f]
	output := int64(l.level) << blepScale
	for i := 0; i < l.active; i++ {
		b := &l.bleps[i]
		output -= int64(table[b.age]) * int64(b.level)
	}
	output >>= blepScale
	return int16(clamp(output, -32768, 32767))
}

// Active returns the number of corrections that still affect the output.
func (l *stepList) Active() int { return l.active }
