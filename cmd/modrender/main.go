package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/quasilyte/modplay"
	"github.com/quasilyte/modplay/modfile"
)

// This CLI tool renders tracker modules into 16-bit WAV files.
//
//	modrender -o ~/renders song1.mod song2.yaml

type renderConfig struct {
	outDir     string
	sampleRate uint
	mono       bool
	separation uint
	ledFilter  bool
	loops      int
	maxSeconds float64
	verbose    bool
	progress   bool
	player     string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("modrender: ")

	var config renderConfig
	flag.StringVar(&config.outDir, "o", "",
		"output directory; the WAV files are written next to the modules by default")
	flag.UintVar(&config.sampleRate, "rate", 44100,
		"output sample rate")
	flag.BoolVar(&config.mono, "mono", false,
		"render a single output channel")
	flag.UintVar(&config.separation, "sep", 100,
		"stereo separation percentage, [1, 100]")
	flag.BoolVar(&config.ledFilter, "led", false,
		"start with the LED low-pass filter enabled")
	flag.IntVar(&config.loops, "loops", 0,
		"how many times to repeat the song after its end")
	flag.Float64Var(&config.maxSeconds, "max-seconds", 20*60,
		"stop rendering after this many seconds of audio")
	flag.BoolVar(&config.verbose, "v", false,
		"print the transport state of every played row")
	flag.StringVar(&config.player, "player", modplay.DefaultPlayer,
		"replayer variant ID: "+playerIDs())
	jobs := flag.Int("j", runtime.NumCPU(),
		"the max number of modules rendered in parallel")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: modrender [flags] files...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *jobs < 1 {
		log.Fatalf("invalid -j value %d", *jobs)
	}

	// Progress lines are only readable when there is one render at a time.
	config.progress = !config.verbose &&
		(flag.NArg() == 1 || *jobs == 1) &&
		term.IsTerminal(int(os.Stderr.Fd()))

	if config.outDir != "" {
		dir, err := expandPath(config.outDir)
		if err != nil {
			log.Fatalf("output directory: %v", err)
		}
		config.outDir = dir
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*jobs)
	for _, arg := range flag.Args() {
		filename := arg
		g.Go(func() error {
			if err := renderFile(ctx, filename, &config); err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func expandPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return os.ExpandEnv(p), nil
}

func renderFile(ctx context.Context, filename string, config *renderConfig) error {
	path, err := expandPath(filename)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	m, err := modfile.Load(f)
	f.Close()
	if err != nil {
		return err
	}

	stream := modplay.NewStream()
	err = stream.LoadModule(m, modplay.LoadModuleConfig{
		SampleRate:       config.sampleRate,
		Mono:             config.mono,
		StereoSeparation: config.separation,
		LEDFilter:        config.ledFilter,
		Player:           config.player,
		Logger:           log.New(os.Stderr, "modrender: "+filepath.Base(path)+": ", 0),
	})
	if err != nil {
		return err
	}

	numOutputs := 2
	if config.mono {
		numOutputs = 1
	}
	log.Printf("%s: %q, %d channels, %d positions (%s)",
		filepath.Base(path), m.Name, m.NumChannels, len(m.Orders), m.Format)

	samples, err := renderSamples(ctx, stream, config, len(m.Orders))
	if err != nil {
		return err
	}

	outPath := outputPath(path, config.outDir)
	if err := writeWAV(outPath, samples, int(config.sampleRate), numOutputs); err != nil {
		return err
	}
	seconds := float64(len(samples)/numOutputs) / float64(config.sampleRate)
	log.Printf("%s: wrote %s (%.1fs)", filepath.Base(path), outPath, seconds)
	return nil
}

func renderSamples(ctx context.Context, stream *modplay.Stream, config *renderConfig, numPositions int) ([]int, error) {
	maxSamples := int(config.maxSeconds * float64(config.sampleRate))
	numOutputs := 2
	if config.mono {
		numOutputs = 1
	}

	var samples []int
	lastRow := -1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame := stream.PlayFrame()
		info := stream.Snapshot()
		if info.Loops > config.loops {
			break
		}
		for _, v := range frame {
			samples = append(samples, int(v))
		}

		if info.Row != lastRow && info.Tick == 0 {
			lastRow = info.Row
			switch {
			case config.verbose:
				fmt.Printf("pos:%3d/%3d pat:%3d row:%3d speed:%2d tempo:%3d\n",
					info.Position, numPositions, info.Pattern, info.Row, info.Speed, info.Tempo)
			case config.progress:
				fmt.Fprintf(os.Stderr, "\rpos:%3d/%3d row:%3d", info.Position, numPositions, info.Row)
			}
		}

		if len(samples)/numOutputs >= maxSamples {
			log.Printf("stopped after %.0f seconds", config.maxSeconds)
			break
		}
	}
	if config.progress {
		fmt.Fprint(os.Stderr, "\r"+strings.Repeat(" ", 32)+"\r")
	}
	if len(samples) == 0 {
		return nil, errors.New("the module produced no audio")
	}
	return samples, nil
}

func outputPath(path, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".wav"
	if outDir == "" {
		return filepath.Join(filepath.Dir(path), base)
	}
	return filepath.Join(outDir, base)
}

func writeWAV(path string, samples []int, sampleRate, numChannels int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, numChannels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}

func playerIDs() string {
	var ids []string
	for _, p := range modplay.Players() {
		ids = append(ids, p.ID)
	}
	return strings.Join(ids, ", ")
}
