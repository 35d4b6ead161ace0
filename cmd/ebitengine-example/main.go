package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/modplay"
	"github.com/quasilyte/modplay/modfile"
)

// This simple CLI tool plays the specified module using Ebitengine audio player.
//
// SPACE toggles the playback, F toggles the looping,
// keys 1-8 play a C-3 note of the instrument with that number.

const sampleRate = 44100

func main() {
	flag.Usage = func() {
		fmt.Printf("usage: go run ./cmd/ebitengine-example path/to/music.mod\n")
		flag.PrintDefaults()
	}
	ledFilter := flag.Bool("led", false, "start with the LED filter enabled")
	flag.Parse()
	if len(flag.Args()) < 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Args()[0]

	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("open module: %v", err)
	}
	m, err := modfile.Load(f)
	f.Close()
	if err != nil {
		log.Fatalf("load module: %v", err)
	}

	config := modplay.LoadModuleConfig{
		SampleRate: sampleRate,
		LEDFilter:  *ledFilter,
		Logger:     log.Default(),
	}
	stream := modplay.NewStream()
	if err := stream.LoadModule(m, config); err != nil {
		log.Fatalf("compile module: %v", err)
	}

	// Create a sound player using the Ebitengine audio context.
	// You can have multiple players, but only one audio context.
	audioContext := audio.NewContext(sampleRate)
	player, err := audioContext.NewPlayer(stream)
	if err != nil {
		log.Fatal(err)
	}

	g := &game{
		stream:   stream,
		player:   player,
		filename: filename,
		paused:   true,
	}

	g.synth = modplay.NewSynthesizer(modplay.SynthesizerConfig{
		NumChannels: 1,
	})
	if err := g.synth.LoadInstruments(m, config); err != nil {
		log.Fatal(err)
	}
	g.synthPlayer, err = audioContext.NewPlayer(g.synth)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	stream *modplay.Stream
	player *audio.Player

	synth       *modplay.Synthesizer
	synthPlayer *audio.Player

	filename string
	paused   bool
	looping  bool
}

var instrumentKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8,
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if g.player.IsPlaying() {
			g.player.Pause()
		} else {
			g.player.Play()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.looping = !g.looping
		g.stream.SetLooping(g.looping)
	}

	for i, key := range instrumentKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		err := g.synth.PlayNote(0.5, modfile.Event{
			Note:       37, // C-3
			Instrument: uint8(i + 1),
		})
		if err != nil {
			log.Printf("play note: %v", err)
			continue
		}
		g.synthPlayer.Rewind()
		g.synthPlayer.Play()
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.paused {
		ebitenutil.DebugPrint(screen, "Paused... press SPACE")
		return
	}
	// The stream is owned by the audio player goroutine,
	// so its transport state is not displayed here.
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Playing %s... (looping=%v)", g.filename, g.looping))
}

func (g *game) Layout(_, _ int) (int, int) {
	return 640, 480
}
