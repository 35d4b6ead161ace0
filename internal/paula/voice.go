package paula

// Voice is a model of a single audio DMA channel.
//
// The sample pointer advances by one byte every period chip cycles.
// When the played region ends, the voice continues from the loop
// region (if there is one) or goes silent.
type Voice struct {
	data []int8

	pos int
	end int

	loopStart int
	loopEnd   int

	// phase counts chip cycles since the last pointer advance.
	phase  int
	period int
	volume int

	active bool
}

// Trigger restarts the voice with new sample data.
// A loopLength of 0 (or 2 and less, as in MOD files) means no loop.
// Empty data silences the voice.
func (v *Voice) Trigger(data []int8, loopStart, loopLength, offset int) {
	v.data = data
	v.loopStart = 0
	v.loopEnd = 0
	if loopLength > 2 && loopStart >= 0 && loopStart+loopLength <= len(data) {
		v.loopStart = loopStart
		v.loopEnd = loopStart + loopLength
	}
	v.phase = 0
	v.active = len(data) != 0
	v.end = len(data)
	v.SetPosition(offset)
}

// SetPosition moves the sample pointer to the given byte offset.
// Offsets past the sample end continue from the loop or stop the voice.
func (v *Voice) SetPosition(offset int) {
	if v.data == nil {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset < v.end {
		v.pos = offset
		return
	}
	v.wrap()
}

func (v *Voice) SetPeriod(period int) { v.period = period }

func (v *Voice) SetVolume(volume int) { v.volume = clamp(volume, 0, 64) }

func (v *Voice) Active() bool { return v.active }

// Level returns the current voice output level.
func (v *Voice) Level() int16 {
	if !v.active {
		return 0
	}
	return int16(int(v.data[v.pos]) * v.volume * 2)
}

// Clock advances the voice by the given number of chip cycles.
func (v *Voice) Clock(cycles int) {
	if !v.active || v.period <= 0 {
		return
	}
	v.phase += cycles
	for v.phase >= v.period {
		v.phase -= v.period
		v.pos++
		if v.pos >= v.end {
			v.wrap()
			if !v.active {
				return
			}
		}
	}
}

func (v *Voice) wrap() {
	if v.loopEnd == 0 {
		v.active = false
		v.pos = 0
		return
	}
	v.pos = v.loopStart
	v.end = v.loopEnd
}
