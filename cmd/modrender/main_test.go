package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

const testSong = `format: modplay/song
name: render test
channels: 4
speed: 3
orders: [0]
instruments:
  - name: square
    wave: square
    length: 32
    loop: true
patterns:
  - rows:
      - "C-3 01 40 ... | E-3 01 30"
      - ""
      - "G-3 01"
      - "... .. .. C00"
`

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path   string
		outDir string
		want   string
	}{
		{"songs/a.mod", "", "songs/a.wav"},
		{"songs/a.mod", "out", "out/a.wav"},
		{"b.song.yaml", "", "b.song.wav"},
	}
	for _, test := range tests {
		have := outputPath(test.path, test.outDir)
		if have != filepath.FromSlash(test.want) {
			t.Errorf("outputPath(%q, %q): have %q, want %q", test.path, test.outDir, have, test.want)
		}
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	songPath := filepath.Join(dir, "song.yaml")
	if err := os.WriteFile(songPath, []byte(testSong), 0o644); err != nil {
		t.Fatal(err)
	}

	config := &renderConfig{
		outDir:     dir,
		sampleRate: 8000,
		separation: 100,
		maxSeconds: 60,
	}
	if err := renderFile(context.Background(), songPath, config); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "song.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if dec.SampleRate != 8000 || dec.NumChans != 2 || dec.BitDepth != 16 {
		t.Fatalf("unexpected format: rate=%d chans=%d depth=%d", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	// 4 rows of 3 ticks, 160 samples per tick at tempo 125.
	if want := 4 * 3 * 160 * 2; len(buf.Data) != want {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), want)
	}
}

func TestRenderFileErrors(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.mod")
	if err := os.WriteFile(badPath, []byte("not a module"), 0o644); err != nil {
		t.Fatal(err)
	}
	config := &renderConfig{sampleRate: 44100, separation: 100, maxSeconds: 1}
	if err := renderFile(context.Background(), badPath, config); err == nil {
		t.Fatalf("an unknown format was rendered")
	}
	if err := renderFile(context.Background(), filepath.Join(dir, "missing.mod"), config); err == nil {
		t.Fatalf("a missing file was rendered")
	}
}
