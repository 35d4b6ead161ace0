package modplay

import (
	"io"
	"testing"

	"github.com/quasilyte/modplay/modfile"
)

func TestSynthesizerPlayNote(t *testing.T) {
	m := newTestModule(t, 4, 6, []string{""})
	synth := NewSynthesizer(SynthesizerConfig{NumChannels: 2})
	if err := synth.LoadInstruments(m, LoadModuleConfig{}); err != nil {
		t.Fatal(err)
	}

	// 0.11s is 5.5 ticks at tempo 125, the row is 6 ticks long.
	err := synth.PlayNote(0.11, modfile.Event{Note: 37, Instrument: 2})
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(synth)
	if err != nil {
		t.Fatal(err)
	}
	if want := 6 * 882 * 4; len(data) != want {
		t.Fatalf("read %d bytes, want %d", len(data), want)
	}
	silent := true
	for _, b := range data {
		if b != 0 {
			silent = false
			break
		}
	}
	if silent {
		t.Fatalf("the note is silent")
	}

	synth.Rewind()
	data2, err := io.ReadAll(synth)
	if err != nil {
		t.Fatal(err)
	}
	if len(data2) != len(data) {
		t.Fatalf("read %d bytes after rewind, want %d", len(data2), len(data))
	}
}

func TestSynthesizerErrors(t *testing.T) {
	synth := NewSynthesizer(SynthesizerConfig{})
	if err := synth.PlayNote(0, modfile.Event{Note: 37}); err == nil {
		t.Fatalf("PlayNote without instruments succeeded")
	}

	m := newTestModule(t, 4, 6, []string{""})
	if err := synth.LoadInstruments(m, LoadModuleConfig{}); err != nil {
		t.Fatal(err)
	}
	if err := synth.PlayNote(0, modfile.Event{Note: 37, Instrument: 3}); err == nil {
		t.Fatalf("invalid instrument was accepted")
	}
	if err := synth.PlayNote(0, modfile.Event{Note: 200, Instrument: 1}); err == nil {
		t.Fatalf("invalid note was accepted")
	}
}
