package modplay

import (
	"math"
)

// StreamEventKind tells the events apart, see StreamEvent.
type StreamEventKind int

const (
	// EventUnknown is a sentinel value, it's never sent.
	EventUnknown StreamEventKind = iota

	// EventNote is sent for every non-empty pattern cell of a played row.
	// The cell may have no note (an effect-only cell), the handler
	// decides what is interesting.
	//
	// Use StreamEvent.NoteEventData to get the event data.
	EventNote

	// EventSync asks the application to set its time counter
	// to the event value once the counter reaches the event Time.
	// It's sent by Stream.Start().
	//
	// Use StreamEvent.SyncEventData to get the event data.
	EventSync

	// EventLoop is sent when the song reaches its end and
	// continues from the restart position, or when a
	// position jump goes backwards.
	//
	// Use StreamEvent.LoopEventData to get the event data.
	EventLoop

	// EventOverflow reports that the chip emulator dropped some
	// band-limited step corrections of the channel.
	//
	// Use StreamEvent.OverflowEventData to get the event data.
	EventOverflow
)

// StreamEvent is an argument of the Stream event handler.
//
// Check the Kind before calling any of the data getters.
//
// Time is the playback offset in seconds, counted from the stream
// start by summing the tick durations. The application has to
// schedule its reaction to the event by itself.
type StreamEvent struct {
	Kind StreamEventKind

	// Channel is a module channel index.
	// It's 0 for the channel-independent events.
	Channel int

	Time float64

	value uint64
}

// NoteEventData returns the event data if e.Kind=EventNote.
// The return values are: note, instrument (id), volume in [0, 1].
// The note is 0 when the cell has no note.
// If there is no instrument, -1 is returned.
func (e StreamEvent) NoteEventData() (note, instrument int, vol float32) {
	noteBits := e.value & 0xff
	instrumentBits := (e.value >> 8) & 0xff
	volBits := e.value >> 16
	instrumentID := int(instrumentBits)
	if instrumentID == 255 {
		instrumentID = -1
	}
	return int(noteBits), instrumentID, math.Float32frombits(uint32(volBits))
}

// SyncEventData returns the event data if e.Kind=EventSync.
func (e StreamEvent) SyncEventData() (t float64) {
	return math.Float64frombits(e.value)
}

// LoopEventData returns the event data if e.Kind=EventLoop.
// The return value is the number of song loops so far.
func (e StreamEvent) LoopEventData() (loops int) {
	return int(e.value)
}

// OverflowEventData returns the event data if e.Kind=EventOverflow.
// The return value is the number of dropped corrections.
func (e StreamEvent) OverflowEventData() (dropped int) {
	return int(e.value)
}
