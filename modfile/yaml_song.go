package modfile

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFormatTag is the expected value of the "format" document key.
const YAMLFormatTag = "modplay/song"

// yamlSong is a text song document.
//
//	format: modplay/song
//	name: demo
//	channels: 4
//	speed: 6
//	tempo: 125
//	orders: [0, 0, 1]
//	instruments:
//	  - name: square
//	    volume: 64
//	    wave: square
//	    length: 32
//	    loop: true
//	patterns:
//	  - rows:
//	      - "C-3 01 .. ... | --- .. .. ..."
//	      - "D-3 01 20 A01"
//
// A row cell is "note instrument volume effect", trailing fields can be omitted.
type yamlSong struct {
	Format      string           `yaml:"format"`
	Name        string           `yaml:"name"`
	Channels    int              `yaml:"channels"`
	Speed       int              `yaml:"speed"`
	Tempo       int              `yaml:"tempo"`
	Restart     int              `yaml:"restart"`
	Orders      []int            `yaml:"orders"`
	Instruments []yamlInstrument `yaml:"instruments"`
	Patterns    []yamlPattern    `yaml:"patterns"`
}

type yamlInstrument struct {
	Name     string  `yaml:"name"`
	Volume   *int    `yaml:"volume"`
	Finetune int     `yaml:"finetune"`
	Rate     float64 `yaml:"rate"`

	// Either Data or Wave+Length describe the sample.
	Data   []int  `yaml:"data"`
	Wave   string `yaml:"wave"`
	Length int    `yaml:"length"`

	// Loop=true loops the whole sample unless LoopLength is set.
	Loop       bool `yaml:"loop"`
	LoopStart  int  `yaml:"loopStart"`
	LoopLength int  `yaml:"loopLength"`
}

type yamlPattern struct {
	// Length pads the pattern with empty rows.
	Length int      `yaml:"length"`
	Rows   []string `yaml:"rows"`
}

// ParseYAML reads a text song document.
func ParseYAML(r io.Reader) (*Module, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (*Module, error) {
	var doc yamlSong
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Format != YAMLFormatTag {
		return nil, fmt.Errorf("unexpected format tag %q (want %q)", doc.Format, YAMLFormatTag)
	}
	m, err := doc.toModule()
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (doc *yamlSong) toModule() (*Module, error) {
	m := &Module{
		Name:            doc.Name,
		Format:          "yaml",
		NumChannels:     doc.Channels,
		InitialSpeed:    doc.Speed,
		InitialTempo:    doc.Tempo,
		RestartPosition: doc.Restart,
	}
	if m.InitialSpeed == 0 {
		m.InitialSpeed = DefaultSpeed
	}
	if m.InitialTempo == 0 {
		m.InitialTempo = DefaultTempo
	}
	if m.NumChannels < 1 || m.NumChannels > MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrNoChannels, m.NumChannels)
	}

	m.Orders = make([]uint8, len(doc.Orders))
	for i, order := range doc.Orders {
		if order < 0 || order > 255 {
			return nil, fmt.Errorf("order[%d]: invalid pattern index %d", i, order)
		}
		m.Orders[i] = uint8(order)
	}

	m.Instruments = make([]Instrument, len(doc.Instruments))
	for i := range doc.Instruments {
		inst, err := doc.Instruments[i].toInstrument()
		if err != nil {
			return nil, fmt.Errorf("instrument[%d]: %w", i, err)
		}
		m.Instruments[i] = inst
	}

	m.Patterns = make([]Pattern, len(doc.Patterns))
	for i := range doc.Patterns {
		pat, err := doc.Patterns[i].toPattern(m.NumChannels)
		if err != nil {
			return nil, fmt.Errorf("pattern[%d]: %w", i, err)
		}
		m.Patterns[i] = pat
	}

	return m, nil
}

func (y *yamlInstrument) toInstrument() (Instrument, error) {
	inst := Instrument{
		Name:     y.Name,
		Volume:   MaxVolume,
		Finetune: y.Finetune,
	}
	if y.Volume != nil {
		inst.Volume = *y.Volume
	}

	s := Sample{Rate: y.Rate}
	if s.Rate == 0 {
		s.Rate = DefaultSampleRate
	}
	switch {
	case len(y.Data) != 0 && y.Wave != "":
		return inst, fmt.Errorf("data and wave are mutually exclusive")
	case len(y.Data) != 0:
		s.Data = make([]int8, len(y.Data))
		for i, v := range y.Data {
			if v < math.MinInt8 || v > math.MaxInt8 {
				return inst, fmt.Errorf("data[%d]: value %d overflows int8", i, v)
			}
			s.Data[i] = int8(v)
		}
	case y.Wave != "":
		data, err := generateWave(y.Wave, y.Length)
		if err != nil {
			return inst, err
		}
		s.Data = data
	}

	if y.Loop {
		s.LoopStart = y.LoopStart
		s.LoopLength = y.LoopLength
		if s.LoopLength == 0 {
			s.LoopLength = len(s.Data) - s.LoopStart
		}
	}

	inst.Samples = []Sample{s}
	return inst, nil
}

func generateWave(kind string, length int) ([]int8, error) {
	if length < 2 || length > 0x20000 {
		return nil, fmt.Errorf("invalid %s wave length %d", kind, length)
	}
	data := make([]int8, length)
	switch kind {
	case "square":
		for i := range data {
			data[i] = 127
			if i >= length/2 {
				data[i] = -128
			}
		}
	case "saw":
		for i := range data {
			data[i] = int8(-128 + (255*i)/(length-1))
		}
	case "triangle":
		for i := range data {
			v := (4 * 127 * i) / length
			switch {
			case v > 3*127:
				v = v - 4*127
			case v > 127:
				v = 2*127 - v
			}
			data[i] = int8(v)
		}
	case "sine":
		for i := range data {
			data[i] = int8(math.Round(127 * math.Sin(2*math.Pi*float64(i)/float64(length))))
		}
	case "noise":
		// A fixed LCG keeps the output reproducible.
		seed := uint32(0x1234567)
		for i := range data {
			seed = seed*1664525 + 1013904223
			data[i] = int8(seed >> 24)
		}
	default:
		return nil, fmt.Errorf("unknown wave kind %q", kind)
	}
	return data, nil
}

func (y *yamlPattern) toPattern(numChannels int) (Pattern, error) {
	numRows := len(y.Rows)
	if y.Length > numRows {
		numRows = y.Length
	}
	if numRows < 1 || numRows > MaxRows {
		return Pattern{}, fmt.Errorf("invalid number of rows %d", numRows)
	}
	pat := Pattern{
		NumRows: numRows,
		Events:  make([]Event, numRows*numChannels),
	}
	for i, row := range y.Rows {
		cells := strings.Split(row, "|")
		if len(cells) > numChannels {
			return pat, fmt.Errorf("row %d: %d cells for %d channels", i, len(cells), numChannels)
		}
		for j, cell := range cells {
			e, err := ParseEvent(cell)
			if err != nil {
				return pat, fmt.Errorf("row %d channel %d: %w", i, j, err)
			}
			pat.Events[i*numChannels+j] = e
		}
	}
	return pat, nil
}

// ParseEvent decodes a textual cell like "C-3 01 40 A0F".
//
// Empty fields are written as dots or dashes.
func ParseEvent(s string) (Event, error) {
	var e Event
	fields := strings.Fields(s)
	if len(fields) > 4 {
		return e, fmt.Errorf("too many fields in %q", s)
	}
	var err error
	if len(fields) > 0 {
		e.Note, err = ParseNote(fields[0])
		if err != nil {
			return e, err
		}
	}
	if len(fields) > 1 && !isEmptyField(fields[1]) {
		v, err := strconv.ParseUint(fields[1], 16, 8)
		if err != nil {
			return e, fmt.Errorf("invalid instrument %q", fields[1])
		}
		e.Instrument = uint8(v)
	}
	if len(fields) > 2 && !isEmptyField(fields[2]) {
		v, err := strconv.ParseUint(fields[2], 16, 8)
		if err != nil || v > MaxVolume {
			return e, fmt.Errorf("invalid volume %q", fields[2])
		}
		e.Volume = 0x10 + uint8(v)
	}
	if len(fields) > 3 && !isEmptyField(fields[3]) {
		if len(fields[3]) != 3 {
			return e, fmt.Errorf("invalid effect %q", fields[3])
		}
		v, err := strconv.ParseUint(fields[3], 16, 16)
		if err != nil {
			return e, fmt.Errorf("invalid effect %q", fields[3])
		}
		e.EffectType = uint8(v >> 8)
		e.EffectParameter = uint8(v)
	}
	return e, nil
}

func isEmptyField(s string) bool {
	return strings.Trim(s, ".-") == ""
}

// FormatEvent is the inverse of ParseEvent.
func FormatEvent(e Event) string {
	var b strings.Builder
	b.Grow(14)
	b.WriteString(NoteName(e.Note))
	if e.Instrument != 0 {
		fmt.Fprintf(&b, " %02X", e.Instrument)
	} else {
		b.WriteString(" ..")
	}
	if e.Volume >= 0x10 && e.Volume <= 0x10+MaxVolume {
		fmt.Fprintf(&b, " %02X", e.Volume-0x10)
	} else {
		b.WriteString(" ..")
	}
	if e.EffectType != 0 || e.EffectParameter != 0 {
		fmt.Fprintf(&b, " %X%02X", e.EffectType, e.EffectParameter)
	} else {
		b.WriteString(" ...")
	}
	return b.String()
}
