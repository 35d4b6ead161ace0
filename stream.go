package modplay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/quasilyte/modplay/internal/paula"
	"github.com/quasilyte/modplay/internal/ptdb"
	"github.com/quasilyte/modplay/modfile"
)

// Stream plays a compiled tracker module through the chip emulator.
//
// There are two ways to consume the audio:
//   - PlayFrame() returns the PCM samples of exactly one tick
//   - Read() produces 16-bit little endian PCM bytes
//
// The Read() output is what ebiten/audio package expects.
// Use Stream as an io.Reader argument for audio.NewPlayer().
type Stream struct {
	module module

	chip   *paula.Chip
	virt   virtualChannels
	player sequencer

	// vibratoShift scales the vibrato depth, it depends on the player.
	vibratoShift int

	pattern *pattern
	pos     int
	row     int
	tick    int
	speed   int // Ticks per row
	tempo   int // A tick is 2.5/tempo seconds long
	loops   int

	// firstRow is set until the very first row is played.
	firstRow bool

	// Row-end deferred actions.
	rowJump    jumpKind
	jumpPos    int
	jumpRow    int
	loopTarget int

	// Pattern delay state.
	delay        int
	delayRepeats int
	rowRepeat    bool

	settings streamSettings

	samplesPerTick  float64
	sampleRemainder float64

	bytePos int // Used to report the current pos via Seek()
	t       float64
	ended   bool

	// pending is a part of the last frame that wasn't consumed by Read().
	pending []int16

	channels []streamChannel

	// channelBuf holds the chip output, maxFrameSamples per channel.
	channelBuf []int16
	frameBuf   []int16
	panGains   []panGain

	maxFrameSamples int
}

type streamSettings struct {
	volumeScaling float64
	loop          bool
	eventHandler  func(e StreamEvent)
	logger        *log.Logger

	sampleRate   int
	numOutputs   int
	separation   int
	filter       paula.Filter
	masterVolume int64
}

type jumpKind uint8

const (
	jumpPosition jumpKind = 1 << iota
	jumpBreak
	jumpLoop
)

type panGain struct {
	left  int32
	right int32
}

// StreamInfo contains a compiled module stream information like bytes per tick, etc.
type StreamInfo struct {
	// BytesPerTick tells how much bytes a single tick takes at the current tempo.
	// It's an upper bound: the fractional part of the tick length is carried
	// over to the next tick, so some ticks are one sample shorter.
	BytesPerTick uint

	// MemoryUsage approximates the compiled module size in bytes.
	MemoryUsage uint

	// LogicFaults is a number of invalid module references that
	// were replaced with no-ops during the module compilation.
	LogicFaults uint

	// Overflows is a number of band-limited steps dropped by the chip
	// since the module was loaded. Non-zero values mean audible distortion.
	Overflows uint
}

// FrameInfo is a transport snapshot.
type FrameInfo struct {
	// Position is an order list index.
	Position int

	// Pattern is a pattern index at this position.
	Pattern int

	Row  int
	Tick int

	Speed int
	Tempo int

	// Song is always 0, multi-song formats are not supported.
	Song int

	// Loops is a number of times the song reached its end.
	Loops int
}

// LoadModuleConfig configures the module loading.
//
// These settings can't be changed after a module is loaded.
//
// Some extra configurations are available via Stream methods:
//   - Stream.SetVolume()
//   - Stream.SetLooping()
//
// These extra configuration methods can be used even after a module is loaded.
type LoadModuleConfig struct {
	// The sound device sample rate.
	// If you're using Ebitengine, it's the same value that
	// was used to create an audio context.
	//
	// A zero value will assume a sample rate of 44100.
	// The supported range is [4000, 96000].
	SampleRate uint

	// Mono makes the stream produce one output channel instead of two.
	Mono bool

	// StereoSeparation is a percentage of the hard Amiga panning, [1, 100].
	// Lower values bleed the channels into the opposite side.
	//
	// A zero value means 100.
	StereoSeparation uint

	// LEDFilter enables the low-pass filter response at the start.
	// The module can toggle it with E0x effect anyway.
	LEDFilter bool

	// Speed overrides the initial module speed (ticks per row).
	//
	// A zero value will use the module default.
	Speed uint

	// Tempo overrides the initial module tempo.
	//
	// A zero value will use the module default.
	Tempo uint

	// Logger receives the warnings about the module problems.
	//
	// A nil value discards the messages.
	Logger *log.Logger

	// Player selects the replayer variant by its ID, see Players().
	//
	// An empty value will use DefaultPlayer.
	Player string
}

// NewStream allocates a player that can load and play modules.
// Use LoadModule method to finish the initialization.
func NewStream() *Stream {
	return &Stream{
		settings: streamSettings{
			volumeScaling: 1.0,
			logger:        log.New(io.Discard, "", 0),
		},
	}
}

// SetEventHandler installs an event listener to the stream.
//
// f is called on every stream event.
//
// Events are produced when the module is being played.
// Therefore, calling Read() may produce multiple events.
func (s *Stream) SetEventHandler(f func(e StreamEvent)) {
	s.settings.eventHandler = f
}

// SetVolume adjusts the global volume scaling for the stream.
// The default value is 1; a value of 0 disables the sound.
// The value is clamped in [0, 1].
func (s *Stream) SetVolume(v float64) {
	s.settings.volumeScaling = clamp(v, 0, 1)
	s.settings.masterVolume = int64(math.Round(s.settings.volumeScaling * 256))
}

// SetLooping makes the stream continue from the module restart position
// after the song end instead of reporting io.EOF.
func (s *Stream) SetLooping(loop bool) {
	s.settings.loop = loop
}

// LoadModule assigns a new module to this stream.
//
// Loading a module involves its compilation and the chip allocation.
// You want to load modules as rarely as possible and then play them
// via streams without ever releasing the memory.
func (s *Stream) LoadModule(m *modfile.Module, config LoadModuleConfig) error {
	s.applyConfigDefaults(&config)

	if config.StereoSeparation > 100 {
		return fmt.Errorf("invalid stereo separation %d (want [0, 100])", config.StereoSeparation)
	}
	player, err := newPlayer(config.Player)
	if err != nil {
		return err
	}

	filter := paula.FilterOff
	if config.LEDFilter {
		filter = paula.FilterOn
	}
	chip, err := paula.New(paula.Config{
		SampleRate:  int(config.SampleRate),
		NumChannels: m.NumChannels,
		Filter:      filter,
	})
	if err != nil {
		return err
	}

	compiled, err := compileModule(m, moduleConfig{
		speed: config.Speed,
		tempo: config.Tempo,
	}, config.Logger)
	if err != nil {
		return err
	}

	s.settings.logger = config.Logger
	s.settings.sampleRate = int(config.SampleRate)
	s.settings.separation = int(config.StereoSeparation)
	s.settings.filter = filter
	s.settings.numOutputs = 2
	if config.Mono {
		s.settings.numOutputs = 1
	}
	s.SetVolume(s.settings.volumeScaling)

	s.module = compiled
	s.chip = chip
	s.player = player
	s.chip.OverflowHandler = s.onOverflow
	s.virt.Init(chip, s.module.instruments, m.NumChannels, filter)

	// The slowest tick needs the most space.
	s.maxFrameSamples = int(math.Ceil(float64(config.SampleRate)*2.5/modfile.MinTempo)) + 1
	s.channelBuf = make([]int16, s.maxFrameSamples*m.NumChannels)
	s.frameBuf = make([]int16, s.maxFrameSamples*s.settings.numOutputs)

	if cap(s.channels) < m.NumChannels {
		s.channels = make([]streamChannel, m.NumChannels)
	}
	s.channels = s.channels[:m.NumChannels]
	s.panGains = calcPanGains(s.panGains[:0], m.NumChannels, s.settings.separation)

	// Call a Reset() that won't trigger a Sync event.
	s.Reset()

	return nil
}

func (s *Stream) applyConfigDefaults(config *LoadModuleConfig) {
	if config.SampleRate == 0 {
		config.SampleRate = 44100
	}
	if config.StereoSeparation == 0 {
		config.StereoSeparation = 100
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard, "", 0)
	}
}

// calcPanGains assigns the channels to the sides in Amiga order (L R R L).
// The gains are in 1/256 units.
func calcPanGains(dst []panGain, numChannels, separation int) []panGain {
	main := int32(128 + separation*128/100)
	other := int32(128 - separation*128/100)
	for i := 0; i < numChannels; i++ {
		switch i % 4 {
		case 0, 3:
			dst = append(dst, panGain{left: main, right: other})
		default:
			dst = append(dst, panGain{left: other, right: main})
		}
	}
	return dst
}

// Seek partially implements io.Seeker.
//
// You can use it for two things:
//  1. (0, SeekStart) for rewind
//  2. (0, SeekCurrent) to get the byte pos inside the stream
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		if offset == 0 {
			s.Start()
			return 0, nil
		}

	case io.SeekCurrent:
		if offset == 0 {
			return int64(s.bytePos), nil
		}
	}

	return 0, errors.New("unsupported Seek call")
}

// Read puts next PCM bytes into provided slice.
//
// The samples are 16-bit little endian, interleaved (left, right)
// unless the stream is mono. A frame that doesn't fit into b is
// kept until the next call, only whole samples are written.
//
// When the song ends and the looping is disabled, io.EOF is returned.
// The frame that would start the song over is discarded.
func (s *Stream) Read(b []byte) (int, error) {
	if s.ended {
		return 0, io.EOF
	}

	written := 0
	for len(b) >= 2 {
		if len(s.pending) == 0 {
			loops := s.loops
			frame := s.PlayFrame()
			if s.loops != loops && !s.settings.loop {
				s.ended = true
				break
			}
			s.pending = frame
		}
		n := len(b) / 2
		if n > len(s.pending) {
			n = len(s.pending)
		}
		for i, v := range s.pending[:n] {
			binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
		}
		s.pending = s.pending[n:]
		b = b[n*2:]
		written += n * 2
	}

	s.bytePos += written

	if s.ended {
		return written, io.EOF
	}
	return written, nil
}

// Start prepares the stream to play the module right from the start.
// It's like Reset, but it also sends a Sync event.
func (s *Stream) Start() {
	if s.settings.eventHandler != nil {
		s.settings.eventHandler(StreamEvent{
			Kind:  EventSync,
			Time:  s.t,
			value: math.Float64bits(0),
		})
	}
	s.Reset()
}

// Reset moves the transport to the first order position and
// clears all channel effect memory.
//
// The chip is not reset: the voices fade out through the
// regular register writes instead of clicking.
func (s *Stream) Reset() {
	// Make all fields zero-initialized just to be safe.
	*s = Stream{
		module:          s.module,
		chip:            s.chip,
		virt:            s.virt,
		player:          s.player,
		settings:        s.settings,
		channels:        s.channels,
		channelBuf:      s.channelBuf,
		frameBuf:        s.frameBuf,
		panGains:        s.panGains,
		maxFrameSamples: s.maxFrameSamples,
	}

	for i := range s.channels {
		s.channels[i].Reset(i)
	}
	s.module.restoreSamples()
	if s.chip != nil {
		s.virt.SetFilter(s.settings.filter)
	}

	s.speed = s.module.speed
	s.setTempo(s.module.tempo)
	if len(s.module.patternOrder) != 0 {
		s.pattern = s.module.patternOrder[0]
	}

	// The first tick is a row boundary.
	s.tick = s.speed - 1
	s.firstRow = true

	if s.player != nil {
		s.player.reset(s)
	}
}

func (s *Stream) setTempo(tempo int) {
	s.tempo = tempo
	s.samplesPerTick = calcSamplesPerTick(s.settings.sampleRate, tempo)
}

// GetInfo returns stream-related info.
// See StreamInfo for more details.
func (s *Stream) GetInfo() StreamInfo {
	return StreamInfo{
		BytesPerTick: uint(math.Ceil(s.samplesPerTick)) * uint(s.settings.numOutputs) * 2,
		MemoryUsage:  moduleSize(&s.module),
		LogicFaults:  uint(s.module.logicFaults),
		Overflows:    s.chipOverflows(),
	}
}

func (s *Stream) chipOverflows() uint {
	if s.chip == nil {
		return 0
	}
	total := 0
	for ch := 0; ch < s.chip.NumChannels(); ch++ {
		total += s.chip.Overflows(ch)
	}
	return uint(total)
}

// Snapshot returns the transport state after the last played tick.
func (s *Stream) Snapshot() FrameInfo {
	info := FrameInfo{
		Position: s.pos,
		Row:      s.row,
		Tick:     s.tick,
		Speed:    s.speed,
		Tempo:    s.tempo,
		Loops:    s.loops,
	}
	if s.pos < len(s.module.orderPatterns) {
		info.Pattern = s.module.orderPatterns[s.pos]
	}
	return info
}

// Position returns the current order list position.
func (s *Stream) Position() int { return s.pos }

// Row returns the current pattern row.
func (s *Stream) Row() int { return s.row }

// Tick returns the current tick within the row, counting from 0.
func (s *Stream) Tick() int { return s.tick }

// ChannelState returns the chip registers of the given module channel.
func (s *Stream) ChannelState(ch int) ChannelState {
	return s.virt.Registers(ch)
}

// PlayFrame advances the stream by one tick and returns its samples.
//
// The returned slice is only valid until the next PlayFrame or Read call.
// PlayFrame never fails: the song end is reported via Snapshot().Loops
// and EventLoop, the playback continues from the restart position.
func (s *Stream) PlayFrame() []int16 {
	s.player.nextTick(s)

	s.sampleRemainder += s.samplesPerTick
	n := int(s.sampleRemainder)
	s.sampleRemainder -= float64(n)
	if n > s.maxFrameSamples {
		n = s.maxFrameSamples
	}

	for ch := range s.channels {
		offset := ch * s.maxFrameSamples
		s.chip.Render(ch, s.channelBuf[offset:offset+n])
	}

	return s.mix(n)
}

func (s *Stream) mix(n int) []int16 {
	// This loop dominates the rendering time.
	// Keep it free of function calls and allocations.

	master := s.settings.masterVolume
	numChannels := len(s.channels)
	stride := s.maxFrameSamples

	if s.settings.numOutputs == 1 {
		out := s.frameBuf[:n]
		for i := range out {
			acc := int64(0)
			for ch := 0; ch < numChannels; ch++ {
				acc += int64(s.channelBuf[ch*stride+i]) * 128
			}
			out[i] = saturate16((acc * master) >> 16)
		}
		return out
	}

	out := s.frameBuf[:n*2]
	for i := 0; i < n; i++ {
		left := int64(0)
		right := int64(0)
		for ch := 0; ch < numChannels; ch++ {
			v := int64(s.channelBuf[ch*stride+i])
			g := s.panGains[ch]
			left += v * int64(g.left)
			right += v * int64(g.right)
		}
		out[i*2+0] = saturate16((left * master) >> 16)
		out[i*2+1] = saturate16((right * master) >> 16)
	}
	return out
}

// advanceTick moves the transport by one tick.
// It reports whether the current row events have to be read.
func (s *Stream) advanceTick() bool {
	s.tick++
	if s.tick < s.speed {
		return false
	}
	s.tick = 0
	if s.delayRepeats > 0 {
		// Replay the row without reading its events again.
		s.delayRepeats--
		s.rowRepeat = true
		return false
	}
	if !s.firstRow {
		s.advanceRow()
	}
	s.firstRow = false
	s.rowRepeat = false
	return true
}

// updateChannels runs the per-tick effects and writes the chip registers.
func (s *Stream) updateChannels() {
	for i := range s.channels {
		ch := &s.channels[i]
		s.applyTickEffect(ch)
		s.updateOutput(ch)
	}

	s.t += 2.5 / float64(s.tempo)
}

// advanceRow selects the next row, applying the deferred jumps.
func (s *Stream) advanceRow() {
	switch {
	case s.rowJump&(jumpPosition|jumpBreak) != 0:
		pos := s.pos + 1
		if s.rowJump&jumpPosition != 0 {
			pos = s.jumpPos
			if pos <= s.pos && pos < len(s.module.patternOrder) {
				// Jumping backwards is the usual way to loop the song.
				s.songLoop()
			}
		}
		row := 0
		if s.rowJump&jumpBreak != 0 {
			row = s.jumpRow
		}
		s.setPosition(pos, row)

	case s.rowJump&jumpLoop != 0:
		s.row = s.loopTarget

	default:
		s.row++
		if s.row >= s.pattern.numRows {
			s.setPosition(s.pos+1, 0)
		}
	}

	s.rowJump = 0
}

func (s *Stream) setPosition(pos, row int) {
	if pos >= len(s.module.patternOrder) {
		pos = s.module.restartPosition
		s.songLoop()
	}
	s.pos = pos
	s.pattern = s.module.patternOrder[pos]
	if row >= s.pattern.numRows {
		row = 0
	}
	s.row = row

	for i := range s.channels {
		s.channels[i].loopRow = 0
	}
}

func (s *Stream) songLoop() {
	s.loops++
	if s.settings.eventHandler != nil {
		s.settings.eventHandler(StreamEvent{
			Kind:  EventLoop,
			Time:  s.t,
			value: uint64(s.loops),
		})
	}
}

// playRow latches the current row events.
// A non-nil convert rewrites the effects before they are applied.
func (s *Stream) playRow(convert func(ptdb.Effect) ptdb.Effect) {
	numChannels := len(s.channels)
	offset := s.row * numChannels
	events := s.pattern.events[offset : offset+numChannels]
	for i := range s.channels {
		e := &events[i]
		if convert != nil {
			converted := *e
			converted.effect = convert(e.effect)
			e = &converted
		}
		s.playChannelRow(&s.channels[i], e)
	}

	s.delayRepeats = s.delay
	s.delay = 0
}

func (s *Stream) updateOutput(ch *streamChannel) {
	period := ch.outPeriod
	if ch.inst != nil && period > 0 {
		period = (period * ch.inst.periodScale) >> 12
	}
	s.virt.SetPeriod(ch.id, period)
	s.virt.SetVolume(ch.id, ch.outVolume)
}

func (s *Stream) onOverflow(channel, dropped int) {
	s.settings.logger.Printf("warning: channel %d: %d band-limited steps dropped", channel, dropped)
	if s.settings.eventHandler != nil {
		s.settings.eventHandler(StreamEvent{
			Kind:    EventOverflow,
			Channel: channel,
			Time:    s.t,
			value:   uint64(dropped),
		})
	}
}

func (s *Stream) softFault(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.settings.logger.Printf("warning: position %d row %d: %s", s.pos, s.row, msg)
}
