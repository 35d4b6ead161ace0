package modplay

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/quasilyte/modplay/internal/paula"
	"github.com/quasilyte/modplay/internal/ptdb"
	"github.com/quasilyte/modplay/modfile"
)

// testRows returns n pattern rows with the given cells filled.
func testRows(n int, cells map[int]string) []string {
	rows := make([]string, n)
	for i, cell := range cells {
		rows[i] = cell
	}
	return rows
}

func newTestModule(t *testing.T, numChannels, speed int, patterns ...[]string) *modfile.Module {
	t.Helper()

	flat := make([]int8, 8000)
	for i := range flat {
		flat[i] = 100
	}
	square := make([]int8, 32)
	for i := range square {
		square[i] = 64
		if i >= 16 {
			square[i] = -64
		}
	}

	m := &modfile.Module{
		Name:         "test",
		NumChannels:  numChannels,
		InitialSpeed: speed,
		InitialTempo: modfile.DefaultTempo,
		Instruments: []modfile.Instrument{
			{
				Name:    "flat",
				Volume:  64,
				Samples: []modfile.Sample{{Data: flat, Rate: modfile.DefaultSampleRate}},
			},
			{
				Name:   "square",
				Volume: 64,
				Samples: []modfile.Sample{
					{Data: square, LoopLength: len(square), Rate: modfile.DefaultSampleRate},
				},
			},
		},
	}
	for i, rows := range patterns {
		pat := modfile.Pattern{
			NumRows: len(rows),
			Events:  make([]modfile.Event, len(rows)*numChannels),
		}
		for row, s := range rows {
			for ch, cell := range strings.Split(s, "|") {
				e, err := modfile.ParseEvent(cell)
				if err != nil {
					t.Fatalf("pattern %d row %d: %v", i, row, err)
				}
				pat.Events[row*numChannels+ch] = e
			}
		}
		m.Patterns = append(m.Patterns, pat)
		m.Orders = append(m.Orders, uint8(i))
	}
	return m
}

func newTestStream(t *testing.T, m *modfile.Module, config LoadModuleConfig) *Stream {
	t.Helper()
	s := NewStream()
	if err := s.LoadModule(m, config); err != nil {
		t.Fatalf("load module: %v", err)
	}
	return s
}

type chipRecorder struct {
	triggers  int
	positions []int
	periods   []int
	volumes   []int
	filters   []paula.Filter
}

func (r *chipRecorder) Trigger(ch int, data []int8, loopStart, loopLength int) { r.triggers++ }
func (r *chipRecorder) SetPosition(ch, offset int) { r.positions = append(r.positions, offset) }
func (r *chipRecorder) SetPeriod(ch, period int) { r.periods = append(r.periods, period) }
func (r *chipRecorder) SetVolume(ch, volume int) { r.volumes = append(r.volumes, volume) }
func (r *chipRecorder) SetFilter(f paula.Filter) { r.filters = append(r.filters, f) }

func TestTickDuration(t *testing.T) {
	const rate = 100000
	prevRow := 0.0
	for tempo := modfile.MaxTempo; tempo >= modfile.MinTempo; tempo-- {
		tickMillis := calcSamplesPerTick(rate, tempo) * 1000 / rate
		want := 2500 / float64(tempo)
		if diff := tickMillis - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("tempo=%d: tick duration %f, want %f", tempo, tickMillis, want)
		}
		rowMillis := 6 * tickMillis
		if rowMillis <= prevRow {
			t.Fatalf("tempo=%d: row duration %f is not greater than %f", tempo, rowMillis, prevRow)
		}
		prevRow = rowMillis
	}
}

func TestFrameLength(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01"})
	s := newTestStream(t, m, LoadModuleConfig{SampleRate: 44100})

	total := 0
	for i := 0; i < 6; i++ {
		total += len(s.PlayFrame())
	}
	// 44100 * 2.5 / 125 = 882 samples per tick, two outputs.
	if want := 6 * 882 * 2; total != want {
		t.Fatalf("6 ticks produced %d samples, want %d", total, want)
	}

	tests := []struct {
		rate uint
		want []int
	}{
		// 11025 * 2.5 / 125 = 220.5
		{11025, []int{220, 221, 220, 221}},
		{8000, []int{160, 160, 160, 160}},
	}
	for _, test := range tests {
		s := newTestStream(t, m, LoadModuleConfig{SampleRate: test.rate, Mono: true})
		for i, want := range test.want {
			if have := len(s.PlayFrame()); have != want {
				t.Errorf("rate=%d frame %d: have %d samples, want %d", test.rate, i, have, want)
			}
		}
	}
}

func TestEndToEndSingleNote(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01"})
	s := newTestStream(t, m, LoadModuleConfig{SampleRate: 44100})

	var left, right []int16
	for i := 0; i < 6; i++ {
		frame := s.PlayFrame()
		for j := 0; j < len(frame); j += 2 {
			left = append(left, frame[j])
			right = append(right, frame[j+1])
		}
	}
	if len(left) != 6*882 {
		t.Fatalf("rendered %d samples, want %d", len(left), 6*882)
	}

	// 100 * 64 * 2, the first channel is panned hard left.
	const level = 12800
	if left[0] >= level {
		t.Fatalf("the first sample %d is already at the level", left[0])
	}
	for i := 40; i < len(left); i++ {
		if left[i] != level {
			t.Fatalf("left[%d]=%d, want steady %d", i, left[i], level)
		}
	}
	for i, v := range right {
		if v != 0 {
			t.Fatalf("right[%d]=%d, want silence", i, v)
		}
	}
}

func TestStereoSeparation(t *testing.T) {
	tests := []struct {
		separation int
		main       int32
		other      int32
	}{
		{100, 256, 0},
		{50, 192, 64},
		{1, 129, 127},
	}
	for _, test := range tests {
		gains := calcPanGains(nil, 8, test.separation)
		for i, g := range gains {
			wantLeft, wantRight := test.other, test.main
			if i%4 == 0 || i%4 == 3 {
				wantLeft, wantRight = test.main, test.other
			}
			if g.left != wantLeft || g.right != wantRight {
				t.Errorf("sep=%d ch=%d: have (%d, %d), want (%d, %d)",
					test.separation, i, g.left, g.right, wantLeft, wantRight)
			}
		}
	}
}

func TestArpeggio(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01 .. 047"})
	s := newTestStream(t, m, LoadModuleConfig{})

	// C-3, E-3, G-3.
	want := []int{214, 170, 143, 214, 170, 143}
	for tick, period := range want {
		s.PlayFrame()
		if have := s.ChannelState(0).Period; have != period {
			t.Errorf("tick %d: period %d, want %d", tick, have, period)
		}
	}
}

func TestPatternBreak(t *testing.T) {
	m := newTestModule(t, 1, 1,
		testRows(16, map[int]string{5: "... .. .. D10"}),
		testRows(16, nil))
	s := newTestStream(t, m, LoadModuleConfig{})

	type transport struct{ pos, row int }
	var have []transport
	for i := 0; i < 8; i++ {
		s.PlayFrame()
		have = append(have, transport{s.Position(), s.Row()})
	}
	want := []transport{
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 10}, {1, 11},
	}
	for i := range want {
		if have[i] != want[i] {
			t.Fatalf("step %d: have %v, want %v", i, have[i], want[i])
		}
	}
}

func TestPositionJump(t *testing.T) {
	m := newTestModule(t, 2, 1,
		testRows(4, map[int]string{1: "... .. .. B02"}),
		testRows(4, nil),
		testRows(4, map[int]string{1: "... .. .. B02|... .. .. D03"}))
	s := newTestStream(t, m, LoadModuleConfig{})
	events := 0
	s.SetEventHandler(func(e StreamEvent) {
		if e.Kind == EventLoop {
			events++
		}
	})

	type transport struct{ pos, row, loops int }
	var have []transport
	for i := 0; i < 5; i++ {
		s.PlayFrame()
		have = append(have, transport{s.Position(), s.Row(), s.Snapshot().Loops})
	}
	// B02+D03 on the same row: position and break row are combined.
	want := []transport{
		{0, 0, 0}, {0, 1, 0}, {2, 0, 0}, {2, 1, 0}, {2, 3, 1},
	}
	for i := range want {
		if have[i] != want[i] {
			t.Fatalf("step %d: have %v, want %v", i, have[i], want[i])
		}
	}
	if events != 1 {
		t.Fatalf("have %d loop events, want 1", events)
	}
}

func TestPatternDelay(t *testing.T) {
	m := newTestModule(t, 1, 2, testRows(4, map[int]string{1: "... .. .. EE2"}))
	s := newTestStream(t, m, LoadModuleConfig{})

	want := []int{0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 3}
	for i, row := range want {
		s.PlayFrame()
		if s.Row() != row {
			t.Fatalf("step %d: row %d, want %d", i, s.Row(), row)
		}
	}
}

func TestPatternDelaySlides(t *testing.T) {
	// The volume slide runs on the tick 0 of the repeated rows.
	m := newTestModule(t, 2, 2, testRows(2, map[int]string{
		0: "C-3 01 0A",
		1: "... .. .. A01|... .. .. EE1",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})

	want := []int{10, 10, 10, 9, 8, 7}
	for i, volume := range want {
		s.PlayFrame()
		if have := s.ChannelState(0).Volume; have != volume {
			t.Fatalf("step %d: volume %d, want %d", i, have, volume)
		}
	}
}

func TestPatternLoop(t *testing.T) {
	m := newTestModule(t, 1, 1, testRows(6, map[int]string{
		1: "... .. .. E60",
		3: "... .. .. E62",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})

	want := []int{0, 1, 2, 3, 1, 2, 3, 1, 2, 3, 4, 5}
	for i, row := range want {
		s.PlayFrame()
		if s.Row() != row {
			t.Fatalf("step %d: row %d, want %d", i, s.Row(), row)
		}
	}
}

func TestSpeedTempo(t *testing.T) {
	m := newTestModule(t, 1, 6, testRows(3, map[int]string{
		0: "... .. .. F03",
		1: "... .. .. F20",
		2: "... .. .. F00",
	}))
	var logs bytes.Buffer
	s := newTestStream(t, m, LoadModuleConfig{
		Logger: log.New(&logs, "", 0),
	})

	s.PlayFrame()
	if info := s.Snapshot(); info.Speed != 3 || info.Tempo != 125 {
		t.Fatalf("after F03: speed=%d tempo=%d", info.Speed, info.Tempo)
	}
	for i := 0; i < 3; i++ {
		s.PlayFrame()
	}
	if info := s.Snapshot(); info.Row != 1 || info.Speed != 3 || info.Tempo != 32 {
		t.Fatalf("after F20: row=%d speed=%d tempo=%d", info.Row, info.Speed, info.Tempo)
	}
	for i := 0; i < 3; i++ {
		s.PlayFrame()
	}
	if info := s.Snapshot(); info.Row != 2 || info.Speed != 3 {
		t.Fatalf("after F00: row=%d speed=%d", info.Row, info.Speed)
	}
	if !strings.Contains(logs.String(), "F00") {
		t.Fatalf("F00 was not reported, log: %q", logs.String())
	}
}

func TestTonePortamento(t *testing.T) {
	m := newTestModule(t, 1, 6, testRows(2, map[int]string{
		0: "C-3 01",
		1: "C-2 .. .. 308",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})
	rec := &chipRecorder{}

	for i := 0; i < 6; i++ {
		s.PlayFrame()
	}
	s.virt.chip = rec

	want := []int{214, 222, 230, 238, 246, 254}
	for tick, period := range want {
		s.PlayFrame()
		if have := s.ChannelState(0).Period; have != period {
			t.Errorf("tick %d: period %d, want %d", tick, have, period)
		}
	}
	if rec.triggers != 0 {
		t.Fatalf("tone portamento retriggered the note %d times", rec.triggers)
	}
}

func TestTonePortamentoTarget(t *testing.T) {
	// The slide stops exactly at the target.
	m := newTestModule(t, 1, 6, testRows(2, map[int]string{
		0: "C-3 01",
		1: "D-3 .. .. 3FF",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})
	for i := 0; i < 12; i++ {
		s.PlayFrame()
	}
	if have := s.ChannelState(0).Period; have != 190 {
		t.Fatalf("period %d, want 190", have)
	}
}

func TestTonePortamentoKeepsInstrument(t *testing.T) {
	m := newTestModule(t, 1, 6, testRows(2, map[int]string{
		0: "C-3 01 20",
		1: "D-3 01 .. 301",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})
	for i := 0; i < 6; i++ {
		s.PlayFrame()
	}
	rec := &chipRecorder{}
	s.virt.chip = rec

	s.PlayFrame()
	if have := s.ChannelState(0).Volume; have != 0x20 {
		t.Fatalf("volume %d, want 32", have)
	}
	if rec.triggers != 0 {
		t.Fatalf("the glide retriggered the note %d times", rec.triggers)
	}
}

func TestPortamentoClamp(t *testing.T) {
	m := newTestModule(t, 1, 6, testRows(2, map[int]string{
		0: "C-3 01 .. 1FF",
		1: "C-1 01 .. 2FF",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})
	lo, hi := ptdb.PeriodRange(0)
	for i := 0; i < 6; i++ {
		s.PlayFrame()
	}
	if have := s.ChannelState(0).Period; have != lo {
		t.Fatalf("porta up: period %d, want %d", have, lo)
	}
	for i := 0; i < 6; i++ {
		s.PlayFrame()
	}
	if have := s.ChannelState(0).Period; have != hi {
		t.Fatalf("porta down: period %d, want %d", have, hi)
	}
}

// runPeriodTests plays a single row per test and checks the period
// of every tick.
func runPeriodTests(t *testing.T, tests []struct {
	row  string
	want []int
}) {
	t.Helper()
	for _, test := range tests {
		m := newTestModule(t, 1, len(test.want), []string{test.row})
		s := newTestStream(t, m, LoadModuleConfig{})
		for tick, period := range test.want {
			s.PlayFrame()
			if have := s.ChannelState(0).Period; have != period {
				t.Errorf("%q: tick %d: period %d, want %d", test.row, tick, have, period)
			}
		}
	}
}

func TestOuterOctaveSlides(t *testing.T) {
	runPeriodTests(t, []struct {
		row  string
		want []int
	}{
		// C-5 keeps going up instead of snapping to B-3.
		{"C-5 01 .. 101", []int{53, 52, 51, 50}},
		// C-0 is the lowest note, the period stays there.
		{"C-0 01 .. 201", []int{1712, 1712, 1712, 1712}},
		{"D-0 01 .. 210", []int{1524, 1540, 1556, 1572}},
		{"B-7 01 .. 1FF", []int{7, 7, 7, 7}},
	})
}

func TestOuterOctaveArpeggio(t *testing.T) {
	runPeriodTests(t, []struct {
		row  string
		want []int
	}{
		{"C-5 01 .. 047", []int{53, 42, 35, 53}},
		{"C-0 01 .. 047", []int{1712, 1356, 1140, 1712}},
		// Semitones above B-7 are capped.
		{"G-7 01 .. 047", []int{8, 7, 7, 8}},
	})
}

func TestVibrato(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01 .. 48F"})
	s := newTestStream(t, m, LoadModuleConfig{})

	// Phase advances by 8 after every non-zero tick,
	// the offset is sine*15>>7.
	want := []int{214, 214, 214 + (180*15)>>7, 214 + (255*15)>>7, 214 + (180*15)>>7, 214}
	for tick, period := range want {
		s.PlayFrame()
		if have := s.ChannelState(0).Period; have != period {
			t.Errorf("tick %d: period %d, want %d", tick, have, period)
		}
	}
}

// channelTrace plays the rows and returns the period and volume of every tick.
func channelTrace(t *testing.T, speed int, rows []string) (periods, volumes []int) {
	t.Helper()
	m := newTestModule(t, 1, speed, rows)
	s := newTestStream(t, m, LoadModuleConfig{})
	for i := 0; i < speed*len(rows); i++ {
		s.PlayFrame()
		state := s.ChannelState(0)
		periods = append(periods, state.Period)
		volumes = append(volumes, state.Volume)
	}
	return periods, volumes
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTickEffects(t *testing.T) {
	tests := []struct {
		name    string
		speed   int
		rows    []string
		periods []int
		volumes []int
	}{
		{
			// Depth is scaled by >>6, the result is clamped to [0, 64].
			name:    "tremolo",
			speed:   6,
			rows:    []string{"C-3 01 0A 78F", "... .. .. 700"},
			volumes: []int{10, 10, 52, 64, 52, 10, 10, 0, 0, 0, 10, 52},
		},
		{
			// The output period is rounded to the next semitone.
			name:    "glissando",
			speed:   6,
			rows:    []string{"C-3 01 .. E31", "D-3 .. .. 308"},
			periods: []int{214, 214, 214, 214, 214, 214, 214, 202, 190, 190, 190, 190},
		},
		{
			// 1xx has no parameter memory.
			name:    "portamento without memory",
			speed:   3,
			rows:    []string{"C-3 01 .. 102", "... .. .. 100"},
			periods: []int{214, 212, 210, 210, 210, 210},
		},
		{
			name:    "fine portamento",
			speed:   3,
			rows:    []string{"C-3 01 .. E14", "... .. .. E14", "... .. .. E2F"},
			periods: []int{210, 210, 210, 206, 206, 206, 221, 221, 221},
		},
		{
			name:    "fine volume slide",
			speed:   2,
			rows:    []string{"C-3 01 3C EA8", "... .. .. EB5", "... .. .. EBF"},
			volumes: []int{64, 64, 59, 59, 44, 44},
		},
		{
			// E5x is applied before the note is triggered.
			name:    "finetune",
			speed:   2,
			rows:    []string{"C-3 01 .. E57", "C-3 01 .. E58", "C-3 01"},
			periods: []int{203, 203, 226, 226, 214, 214},
		},
		{
			// 5xy continues the slide with the memorized speed.
			name:    "tone portamento and volume slide",
			speed:   3,
			rows:    []string{"C-3 01 20", "C-2 .. .. 308", "... .. .. 502"},
			periods: []int{214, 214, 214, 214, 222, 230, 230, 238, 246},
			volumes: []int{32, 32, 32, 32, 32, 32, 32, 30, 28},
		},
		{
			// 6xy continues the vibrato with the memorized parameters.
			name:    "vibrato and volume slide",
			speed:   3,
			rows:    []string{"C-3 01 20 48F", "... .. .. 620"},
			periods: []int{214, 214, 235, 214, 243, 235},
			volumes: []int{32, 32, 32, 32, 34, 36},
		},
		{
			name:    "vibrato retrigger",
			speed:   3,
			rows:    []string{"C-3 01 .. 48F", "C-3 01 .. 48F"},
			periods: []int{214, 214, 235, 214, 214, 235},
		},
		{
			// E4x bit 2 keeps the phase on a new note.
			name:    "vibrato no retrigger",
			speed:   3,
			rows:    []string{"... .. .. E44", "C-3 01 .. 48F", "C-3 01 .. 48F"},
			periods: []int{0, 0, 0, 214, 214, 235, 214, 243, 235},
		},
		{
			name:    "tremolo retrigger",
			speed:   3,
			rows:    []string{"C-3 01 0A 784", "C-3 01 0A 784"},
			volumes: []int{10, 10, 21, 10, 10, 21},
		},
		{
			// E7x bit 2 keeps the phase on a new note.
			name:    "tremolo no retrigger",
			speed:   3,
			rows:    []string{"... .. .. E74", "C-3 01 0A 784", "C-3 01 0A 784"},
			volumes: []int{0, 0, 0, 10, 10, 21, 10, 25, 21},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			periods, volumes := channelTrace(t, test.speed, test.rows)
			if test.periods != nil && !equalInts(periods, test.periods) {
				t.Errorf("periods:\nhave %v\nwant %v", periods, test.periods)
			}
			if test.volumes != nil && !equalInts(volumes, test.volumes) {
				t.Errorf("volumes:\nhave %v\nwant %v", volumes, test.volumes)
			}
		})
	}
}

func TestNoteCut(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01 .. EC2"})
	s := newTestStream(t, m, LoadModuleConfig{})

	want := []int{64, 64, 0, 0, 0, 0}
	for tick, volume := range want {
		s.PlayFrame()
		if have := s.ChannelState(0).Volume; have != volume {
			t.Errorf("tick %d: volume %d, want %d", tick, have, volume)
		}
	}
}

func TestNoteDelay(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01 .. ED3"})
	s := newTestStream(t, m, LoadModuleConfig{})

	for tick := 0; tick < 6; tick++ {
		s.PlayFrame()
		state := s.ChannelState(0)
		if tick < 3 && state.Period != 0 {
			t.Fatalf("tick %d: the note is played too early", tick)
		}
		if tick >= 3 && (state.Period != 214 || state.Note != 37) {
			t.Fatalf("tick %d: have period=%d note=%d", tick, state.Period, state.Note)
		}
	}
}

func TestRetrigger(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01 .. E93"})
	s := newTestStream(t, m, LoadModuleConfig{})
	rec := &chipRecorder{}
	s.virt.chip = rec

	for i := 0; i < 6; i++ {
		s.PlayFrame()
	}
	// The note itself at tick 0 and the retrigger at tick 3.
	if rec.triggers != 2 {
		t.Fatalf("have %d triggers, want 2", rec.triggers)
	}
}

func TestRetriggerPatternDelay(t *testing.T) {
	m := newTestModule(t, 2, 3, []string{"C-3 01 .. E93|... .. .. EE1"})
	s := newTestStream(t, m, LoadModuleConfig{})
	rec := &chipRecorder{}
	s.virt.chip = rec

	for i := 0; i < 6; i++ {
		s.PlayFrame()
	}
	// The note itself and the tick 0 of the repeated row.
	if rec.triggers != 2 {
		t.Fatalf("have %d triggers, want 2", rec.triggers)
	}
}

func TestSampleOffset(t *testing.T) {
	m := newTestModule(t, 1, 1, testRows(3, map[int]string{
		0: "C-3 01 .. 904",
		1: "C-3 01 .. 900",
		2: "... .. .. 908",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})
	rec := &chipRecorder{}
	s.virt.chip = rec

	for i := 0; i < 3; i++ {
		s.PlayFrame()
	}
	// 900 reuses the last offset, no note means no position change.
	want := []int{0x400, 0x400}
	if len(rec.positions) != len(want) {
		t.Fatalf("have positions %v, want %v", rec.positions, want)
	}
	for i := range want {
		if rec.positions[i] != want[i] {
			t.Fatalf("have positions %v, want %v", rec.positions, want)
		}
	}
}

func TestVolumeColumn(t *testing.T) {
	m := newTestModule(t, 1, 1, testRows(2, map[int]string{
		0: "C-3 01 20",
		1: "C-3 01 20 C30",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})

	s.PlayFrame()
	if have := s.ChannelState(0).Volume; have != 0x20 {
		t.Fatalf("volume column: %d, want 32", have)
	}
	s.PlayFrame()
	if have := s.ChannelState(0).Volume; have != 0x30 {
		t.Fatalf("effect after the volume column: %d, want 48", have)
	}
}

func TestFilterEffect(t *testing.T) {
	m := newTestModule(t, 1, 1, testRows(2, map[int]string{
		0: "... .. .. E00",
		1: "... .. .. E01",
	}))
	s := newTestStream(t, m, LoadModuleConfig{})

	s.PlayFrame()
	if s.chip.Filter() != paula.FilterOn {
		t.Fatalf("E00 did not enable the filter")
	}
	s.PlayFrame()
	if s.chip.Filter() != paula.FilterOff {
		t.Fatalf("E01 did not disable the filter")
	}
	s.Reset()
	if s.chip.Filter() != paula.FilterOff {
		t.Fatalf("Reset did not restore the filter")
	}
}

func TestInvertLoop(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 02 .. EFF"})
	s := newTestStream(t, m, LoadModuleConfig{})
	data := s.module.instruments[1].samples[0].data

	s.PlayFrame()
	if data[1] != -1-64 {
		t.Fatalf("data[1]=%d, want it inverted", data[1])
	}
	s.PlayFrame()
	if data[2] != -1-64 {
		t.Fatalf("data[2]=%d, want it inverted", data[2])
	}

	s.Reset()
	for i, v := range data {
		if v != m.Instruments[1].Samples[0].Data[i] {
			t.Fatalf("data[%d]=%d was not restored", i, v)
		}
	}
}

func TestLogicFaults(t *testing.T) {
	m := newTestModule(t, 2, 6, []string{"C-3 09|C-3 01"})
	var logs bytes.Buffer
	s := newTestStream(t, m, LoadModuleConfig{Logger: log.New(&logs, "", 0)})

	if info := s.GetInfo(); info.LogicFaults != 1 || info.Overflows != 0 {
		t.Fatalf("have %d logic faults and %d overflows, want 1 and 0", info.LogicFaults, info.Overflows)
	}
	if !strings.Contains(logs.String(), "invalid pattern references") {
		t.Fatalf("unexpected log: %q", logs.String())
	}
	s.PlayFrame()
	if have := s.ChannelState(1).Period; have != 214 {
		t.Fatalf("the valid channel is not playing")
	}
}

func TestLoadModuleErrors(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01"})
	tests := []struct {
		config LoadModuleConfig
		err    string
	}{
		{LoadModuleConfig{SampleRate: 3000}, "sample rate"},
		{LoadModuleConfig{SampleRate: 200000}, "sample rate"},
		{LoadModuleConfig{StereoSeparation: 101}, "stereo separation"},
		{LoadModuleConfig{Speed: 40}, "speed"},
		{LoadModuleConfig{Tempo: 10}, "tempo"},
	}
	for _, test := range tests {
		err := NewStream().LoadModule(m, test.config)
		if err == nil || !strings.Contains(err.Error(), test.err) {
			t.Errorf("%+v: have %v, want %q error", test.config, err, test.err)
		}
	}
}

func TestReadEOF(t *testing.T) {
	m := newTestModule(t, 1, 1, []string{"C-3 01"})
	s := newTestStream(t, m, LoadModuleConfig{SampleRate: 8000})

	// 160 samples per tick, 2 outputs, 2 bytes per sample.
	const tickBytes = 640

	buf := make([]byte, 100)
	n, err := s.Read(buf)
	if n != 100 || err != nil {
		t.Fatalf("partial read: n=%d err=%v", n, err)
	}
	buf = make([]byte, 4096)
	n, err = s.Read(buf)
	if n != tickBytes-100 || err != io.EOF {
		t.Fatalf("final read: n=%d err=%v", n, err)
	}
	if pos, _ := s.Seek(0, io.SeekCurrent); pos != tickBytes {
		t.Fatalf("byte pos %d, want %d", pos, tickBytes)
	}
	if n, err := s.Read(buf); n != 0 || err != io.EOF {
		t.Fatalf("read after EOF: n=%d err=%v", n, err)
	}

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != tickBytes {
		t.Fatalf("read %d bytes after rewind, want %d", len(data), tickBytes)
	}

	if _, err := s.Seek(10, io.SeekStart); err == nil {
		t.Fatalf("unsupported seek succeeded")
	}
}

func TestReadLooping(t *testing.T) {
	m := newTestModule(t, 1, 1, []string{"C-3 01"})
	s := newTestStream(t, m, LoadModuleConfig{SampleRate: 8000, Mono: true})
	s.SetLooping(true)
	loops := 0
	s.SetEventHandler(func(e StreamEvent) {
		if e.Kind == EventLoop {
			loops = e.LoopEventData()
		}
	})

	buf := make([]byte, 4000)
	n, err := s.Read(buf)
	if n != len(buf) || err != nil {
		t.Fatalf("n=%d err=%v", n, err)
	}
	// 320 bytes per mono tick, 4000 bytes touch 13 ticks.
	if loops != 12 {
		t.Fatalf("have %d loops, want 12", loops)
	}
}

func TestNoteEvents(t *testing.T) {
	m := newTestModule(t, 2, 1, []string{"C-3 01 20|... .. .. A01"})
	s := newTestStream(t, m, LoadModuleConfig{})

	var events []StreamEvent
	s.SetEventHandler(func(e StreamEvent) {
		events = append(events, e)
	})
	s.Start()
	s.PlayFrame()

	if len(events) != 3 || events[0].Kind != EventSync {
		t.Fatalf("unexpected events: %+v", events)
	}
	note, inst, vol := events[1].NoteEventData()
	if events[1].Channel != 0 || note != 37 || inst != 1 || vol != 0.5 {
		t.Fatalf("note event: note=%d inst=%d vol=%f", note, inst, vol)
	}
	note, inst, _ = events[2].NoteEventData()
	if events[2].Channel != 1 || note != 0 || inst != -1 {
		t.Fatalf("effect-only event: note=%d inst=%d", note, inst)
	}
}

func TestResetKeepsChip(t *testing.T) {
	m := newTestModule(t, 1, 6, []string{"C-3 01"})
	s := newTestStream(t, m, LoadModuleConfig{})
	chip := s.chip

	for i := 0; i < 3; i++ {
		s.PlayFrame()
	}
	s.Reset()
	if s.chip != chip {
		t.Fatalf("Reset replaced the chip")
	}
	if info := s.Snapshot(); info.Position != 0 || info.Row != 0 || info.Tick != 5 {
		t.Fatalf("unexpected transport after reset: %+v", info)
	}
	if s.ChannelState(0).Period != 214 {
		t.Fatalf("Reset touched the chip registers")
	}
}
