package modfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

type xmBuilder struct {
	buf bytes.Buffer
}

func (b *xmBuilder) str(s string, l int) {
	data := make([]byte, l)
	copy(data, s)
	b.buf.Write(data)
}

func (b *xmBuilder) u8(v uint8) { b.buf.WriteByte(v) }

func (b *xmBuilder) u16(v uint16) { binary.Write(&b.buf, binary.LittleEndian, v) }

func (b *xmBuilder) u32(v uint32) { binary.Write(&b.buf, binary.LittleEndian, v) }

func (b *xmBuilder) header(numChannels, numPatterns, numInstruments int, orders []uint8) {
	b.str("Extended Module: ", 17)
	b.str("xm song", 20)
	b.u8(0x1a)
	b.str("test tracker", 20)
	b.u16(0x0104)
	b.u32(276)
	b.u16(uint16(len(orders)))
	b.u16(0)
	b.u16(uint16(numChannels))
	b.u16(uint16(numPatterns))
	b.u16(uint16(numInstruments))
	b.u16(1)
	b.u16(3)
	b.u16(140)
	orderTable := make([]byte, 256)
	copy(orderTable, orders)
	b.buf.Write(orderTable)
}

func (b *xmBuilder) pattern(numRows int, packed []byte) {
	b.u32(9)
	b.u8(0)
	b.u16(uint16(numRows))
	b.u16(uint16(len(packed)))
	b.buf.Write(packed)
}

type testXMSample struct {
	data         []byte
	loopStart    int
	loopLength   int
	volume       uint8
	finetune     int8
	flags        uint8
	relativeNote int8
}

func (b *xmBuilder) instrument(name string, keymapC4 uint8, samples []testXMSample) {
	if len(samples) == 0 {
		b.u32(29)
		b.str(name, 22)
		b.u8(0)
		b.u16(0)
		return
	}
	b.u32(263)
	b.str(name, 22)
	b.u8(0)
	b.u16(uint16(len(samples)))
	b.u32(xmSampleHeaderLen)
	keymap := make([]byte, 96)
	keymap[48] = keymapC4
	b.buf.Write(keymap)
	b.buf.Write(make([]byte, 263-29-4-96))
	for _, s := range samples {
		b.u32(uint32(len(s.data)))
		b.u32(uint32(s.loopStart))
		b.u32(uint32(s.loopLength))
		b.u8(s.volume)
		b.u8(uint8(s.finetune))
		b.u8(s.flags)
		b.u8(0x80)
		b.u8(uint8(s.relativeNote))
		b.u8(0)
		b.str("", 22)
	}
	for _, s := range samples {
		b.buf.Write(s.data)
	}
}

func delta16(values ...int16) []byte {
	var data []byte
	var prev int16
	for _, v := range values {
		data = binary.LittleEndian.AppendUint16(data, uint16(v-prev))
		prev = v
	}
	return data
}

func buildTestXM() []byte {
	var b xmBuilder
	b.header(2, 1, 2, []uint8{0, 3})

	packed := []byte{
		// Row 0: a full cell and an empty one.
		49, 1, 0x30, 0x0C, 0x20,
		0x80,
		// Row 1: a key-off and a low note with an XM-only effect.
		0x81, xmKeyOff,
		0x89, 13, 0x10,
		// Rows 2-3.
		0x80, 0x80,
		0x80, 0x80,
	}
	b.pattern(4, packed)

	b.instrument("lead", 1, []testXMSample{
		{data: []byte{1, 1, 1, 1}, volume: 10},
		{
			data:         delta16(256, 768, 512, -256, 0),
			loopStart:    2,
			loopLength:   6,
			volume:       40,
			finetune:     -32,
			flags:        1 | (1 << 4),
			relativeNote: 12,
		},
	})
	b.instrument("empty", 0, nil)
	return b.buf.Bytes()
}

func TestParseXM(t *testing.T) {
	m, err := ParseXM(bytes.NewReader(buildTestXM()))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "xm song" || m.Format != "xm" {
		t.Fatalf("header: name=%q format=%q", m.Name, m.Format)
	}
	if m.NumChannels != 2 || m.InitialSpeed != 3 || m.InitialTempo != 140 {
		t.Fatalf("header: channels=%d speed=%d tempo=%d", m.NumChannels, m.InitialSpeed, m.InitialTempo)
	}
	if len(m.Patterns) != 2 || len(m.Orders) != 2 || m.Orders[1] != 1 {
		t.Fatalf("missing pattern is not redirected: patterns=%d orders=%v", len(m.Patterns), m.Orders)
	}
	if extra := m.Patterns[1]; extra.NumRows != 64 || !extra.Events[0].IsEmpty() {
		t.Fatalf("extra pattern: rows=%d", extra.NumRows)
	}

	events := []struct {
		row, channel int
		want         Event
	}{
		{0, 0, Event{Note: 25, Instrument: 1, Volume: 0x30, EffectType: 0xC, EffectParameter: 0x20}},
		{0, 1, Event{}},
		{1, 0, Event{Volume: 0x10}},
		{1, 1, Event{Note: 1}},
		{3, 1, Event{}},
	}
	for _, test := range events {
		have := m.Event(0, test.row, test.channel)
		if have != test.want {
			t.Errorf("event(%d, %d): have %+v, want %+v", test.row, test.channel, have, test.want)
		}
	}

	if len(m.Instruments) != 2 {
		t.Fatalf("instruments: %d", len(m.Instruments))
	}
	lead := m.Instruments[0]
	if lead.Name != "lead" || lead.Volume != 40 || lead.Finetune != -2 || len(lead.Samples) != 1 {
		t.Fatalf("lead: name=%q volume=%d finetune=%d samples=%d",
			lead.Name, lead.Volume, lead.Finetune, len(lead.Samples))
	}
	s := lead.Samples[0]
	wantData := []int8{1, 3, 2, -1, 0}
	if len(s.Data) != len(wantData) {
		t.Fatalf("sample data: have %v, want %v", s.Data, wantData)
	}
	for i := range wantData {
		if s.Data[i] != wantData[i] {
			t.Fatalf("sample data: have %v, want %v", s.Data, wantData)
		}
	}
	if s.LoopStart != 1 || s.LoopLength != 3 {
		t.Errorf("sample loop: start=%d length=%d", s.LoopStart, s.LoopLength)
	}
	if math.Abs(s.Rate-2*xmC4Rate) > 0.001 {
		t.Errorf("sample rate: have %f, want %d", s.Rate, 2*xmC4Rate)
	}

	empty := m.Instruments[1]
	if empty.Name != "empty" || len(empty.Samples) != 0 {
		t.Errorf("empty instrument: %+v", empty)
	}
}

func TestDecodeXMSample8bit(t *testing.T) {
	h := &xmSampleHeader{
		flags:      1,
		loopStart:  2,
		loopLength: 100,
	}
	s := decodeXMSample(h, []byte{10, 0xff, 0xff, 120, 10})
	want := []int8{10, 9, 8, -128, -118}
	for i := range want {
		if s.Data[i] != want[i] {
			t.Fatalf("have %v, want %v", s.Data, want)
		}
	}
	if s.LoopStart != 2 || s.LoopLength != 3 {
		t.Fatalf("loop is not truncated: start=%d length=%d", s.LoopStart, s.LoopLength)
	}
	if s.Rate != xmC4Rate {
		t.Fatalf("rate: %f", s.Rate)
	}
}

func TestParseXMErrors(t *testing.T) {
	valid := buildTestXM()

	tests := []struct {
		name string
		data func() []byte
	}{
		{
			name: "bad magic byte",
			data: func() []byte {
				data := bytes.Clone(valid)
				data[37] = 0
				return data
			},
		},
		{
			name: "zero channels",
			data: func() []byte {
				data := bytes.Clone(valid)
				binary.LittleEndian.PutUint16(data[68:], 0)
				return data
			},
		},
		{
			name: "truncated",
			data: func() []byte {
				return valid[:len(valid)-3]
			},
		},
	}
	for _, test := range tests {
		_, err := ParseXM(bytes.NewReader(test.data()))
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("%s: expected a ParseError, got %v", test.name, err)
		}
	}
}

func TestDetectXM(t *testing.T) {
	f, err := Detect(buildTestXM())
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "xm" {
		t.Fatalf("detected %s", f.Name())
	}
	if _, err := Detect([]byte("Extended Module: ")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("a short header was detected: %v", err)
	}
}
