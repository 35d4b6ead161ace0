package modplay

import (
	"fmt"

	"github.com/quasilyte/modplay/internal/ptdb"
	"github.com/quasilyte/modplay/modfile"
)

// Synthesizer can be used to play individual module notes.
//
// It is more efficient and convenient to use for this
// use case than a stream with a constant module re-loading.
//
// Experimental: synthesizer API may change in the near future.
type Synthesizer struct {
	stream *Stream

	numChannels int
}

type SynthesizerConfig struct {
	// NumChannels is a max number of notes played at once.
	// A zero value means 4.
	NumChannels int
}

func NewSynthesizer(config SynthesizerConfig) *Synthesizer {
	if config.NumChannels == 0 {
		config.NumChannels = 4
	}
	return &Synthesizer{
		stream:      NewStream(),
		numChannels: config.NumChannels,
	}
}

// SetVolume adjusts the global volume scaling for the underlying stream.
func (s *Synthesizer) SetVolume(v float64) {
	s.stream.SetVolume(v)
}

// LoadInstruments prepares the instruments from the module
// for further use.
//
// Loading instruments involves module compilation,
// so it should not be called on a hot path repeatedly.
//
// The patterns don't really matter as this method
// is only interested in instruments (and samples).
func (s *Synthesizer) LoadInstruments(m *modfile.Module, config LoadModuleConfig) error {
	// The notes are played from a single-row pattern
	// that is rewritten by every PlayNote call.
	instOnly := modfile.Module{
		Name:         m.Name,
		Format:       m.Format,
		NumChannels:  s.numChannels,
		InitialSpeed: m.InitialSpeed,
		InitialTempo: m.InitialTempo,
		Orders:       []uint8{0},
		Patterns: []modfile.Pattern{
			{NumRows: 1, Events: make([]modfile.Event, s.numChannels)},
		},
		Instruments: m.Instruments,
	}
	if err := s.stream.LoadModule(&instOnly, config); err != nil {
		return err
	}
	s.stream.SetLooping(false)
	return nil
}

// PlayNote plays one or more notes up to the specified duration (in seconds).
// Using 0 for the duration will play it for the longest row possible.
//
// The notes are assigned to the channels in order, the extra notes are ignored.
// The stream is rewound, so the next Read() starts with these notes.
func (s *Synthesizer) PlayNote(duration float64, notes ...modfile.Event) error {
	stream := s.stream
	if stream.chip == nil {
		return fmt.Errorf("no instruments loaded")
	}

	events := stream.module.patterns[0].events
	for i := range events {
		events[i] = patternEvent{}
		if i >= len(notes) {
			continue
		}
		e := notes[i]
		if int(e.Note) > ptdb.MaxNote {
			return fmt.Errorf("note[%d]: invalid note %d", i, e.Note)
		}
		if int(e.Instrument) > len(stream.module.instruments) {
			return fmt.Errorf("note[%d]: invalid instrument %d", i, e.Instrument)
		}
		events[i] = patternEvent{
			note:   e.Note,
			inst:   e.Instrument,
			volume: ptdb.EffectFromVolumeByte(e.Volume),
			effect: ptdb.ConvertEffect(e.EffectType, e.EffectParameter),
		}
	}

	// The row length is the only way to control the duration.
	speed := ptdb.SpeedTempoThreshold - 1
	if duration != 0 {
		tickDuration := 2.5 / float64(stream.module.tempo)
		speed = clamp(1+int(duration/tickDuration), 1, ptdb.SpeedTempoThreshold-1)
	}
	stream.module.speed = speed
	stream.Reset()

	return nil
}

func (s *Synthesizer) Read(b []byte) (int, error) {
	return s.stream.Read(b)
}

// Rewind restarts the last played notes.
func (s *Synthesizer) Rewind() {
	s.stream.Start()
}

func (s *Synthesizer) Seek(offset int64, whence int) (int64, error) {
	return s.stream.Seek(offset, whence)
}
