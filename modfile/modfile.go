package modfile

import (
	"errors"
	"fmt"

	"github.com/quasilyte/modplay/internal/ptdb"
)

const (
	MaxChannels = 64
	MaxRows     = 256
	MaxVolume   = 64

	// DefaultSampleRate is the C-2 playback rate of a PAL Amiga.
	DefaultSampleRate = 8287

	DefaultSpeed = 6
	DefaultTempo = 125
	MinTempo     = 32
	MaxTempo     = 255
)

// Module is a format-independent song description.
//
// Loaders produce it and the player treats it as read-only.
type Module struct {
	Name string

	// Format is a name of the loader that produced this module.
	Format string

	NumChannels int

	InitialSpeed int
	InitialTempo int

	// RestartPosition is an order list index the song continues from
	// after the last position.
	RestartPosition int

	// Orders is a list of pattern indices.
	Orders []uint8

	Patterns []Pattern

	// Instruments are referenced by 1-based event instrument numbers.
	Instruments []Instrument
}

type Pattern struct {
	NumRows int

	// Events holds NumRows*NumChannels events, row-major.
	Events []Event
}

// Event is a single pattern cell.
type Event struct {
	// Note is 0 for "no note", 1 is C-0 (see NoteName).
	Note uint8

	// Instrument is 0 for "no instrument".
	Instrument uint8

	// Volume is a volume column byte: 0x10-0x50 set the volume to 0-64.
	Volume uint8

	EffectType      uint8
	EffectParameter uint8
}

func (e Event) IsEmpty() bool {
	return e == Event{}
}

type Instrument struct {
	Name string

	// Volume is a default volume [0, 64].
	Volume int

	// Finetune is a signed value in [-8, 7] range.
	Finetune int

	Samples []Sample
}

type Sample struct {
	Data []int8

	// LoopStart and LoopLength are expressed in bytes.
	// A LoopLength of 0 means there is no loop.
	LoopStart  int
	LoopLength int

	// Rate is a native playback rate of the sample.
	Rate float64
}

func (s *Sample) HasLoop() bool {
	return s.LoopLength > 2
}

// Event returns the pattern cell.
// Out-of-range coordinates produce an empty event.
func (m *Module) Event(pattern, row, channel int) Event {
	if pattern < 0 || pattern >= len(m.Patterns) {
		return Event{}
	}
	p := &m.Patterns[pattern]
	if row < 0 || row >= p.NumRows || channel < 0 || channel >= m.NumChannels {
		return Event{}
	}
	return p.Events[row*m.NumChannels+channel]
}

var (
	ErrNoOrders   = errors.New("empty order list")
	ErrNoChannels = errors.New("invalid number of channels")
)

// Validate checks the structural module invariants that loaders must enforce.
func (m *Module) Validate() error {
	if m.NumChannels < 1 || m.NumChannels > MaxChannels {
		return fmt.Errorf("%w: %d", ErrNoChannels, m.NumChannels)
	}
	if len(m.Orders) == 0 {
		return ErrNoOrders
	}
	if m.RestartPosition < 0 || m.RestartPosition >= len(m.Orders) {
		return fmt.Errorf("restart position %d is out of range", m.RestartPosition)
	}
	if m.InitialSpeed < 1 || m.InitialSpeed >= ptdb.SpeedTempoThreshold {
		return fmt.Errorf("invalid initial speed %d", m.InitialSpeed)
	}
	if m.InitialTempo < MinTempo || m.InitialTempo > MaxTempo {
		return fmt.Errorf("invalid initial tempo %d", m.InitialTempo)
	}
	for i, order := range m.Orders {
		if int(order) >= len(m.Patterns) {
			return fmt.Errorf("order[%d]: pattern %d does not exist", i, order)
		}
	}
	for i := range m.Patterns {
		p := &m.Patterns[i]
		if p.NumRows < 1 || p.NumRows > MaxRows {
			return fmt.Errorf("pattern[%d]: invalid number of rows %d", i, p.NumRows)
		}
		if len(p.Events) != p.NumRows*m.NumChannels {
			return fmt.Errorf("pattern[%d]: expected %d events, found %d",
				i, p.NumRows*m.NumChannels, len(p.Events))
		}
	}
	for i := range m.Instruments {
		inst := &m.Instruments[i]
		if inst.Volume < 0 || inst.Volume > MaxVolume {
			return fmt.Errorf("instrument[%d]: invalid volume %d", i, inst.Volume)
		}
		if inst.Finetune < -8 || inst.Finetune > 7 {
			return fmt.Errorf("instrument[%d]: invalid finetune %d", i, inst.Finetune)
		}
		for j := range inst.Samples {
			s := &inst.Samples[j]
			if s.LoopStart < 0 || s.LoopLength < 0 || s.LoopStart+s.LoopLength > len(s.Data) {
				return fmt.Errorf("instrument[%d].sample[%d]: loop [%d, %d) exceeds %d bytes",
					i, j, s.LoopStart, s.LoopStart+s.LoopLength, len(s.Data))
			}
		}
	}
	return nil
}
