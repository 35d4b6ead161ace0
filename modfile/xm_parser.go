package modfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/quasilyte/modplay/internal/ptdb"
)

const (
	xmIDText          = "extended module: "
	xmHeaderSize      = 60
	xmMaxChannels     = 32
	xmKeyOff          = 97
	xmSampleHeaderLen = 40
	xmEmptyPatternLen = 64

	// xmC4Rate is a playback rate of the C-4 note with no relative note.
	xmC4Rate = 8363

	// XM C-4 is played like our C-2.
	xmNoteShift = 24
)

// ParseXM reads a FastTracker II extended module.
//
// Only the PT-compatible subset is kept. Every instrument plays
// the sample mapped to C-4 and volume column bytes other than
// set-volume are ignored, as are the effects above F.
// Envelopes and panning are dropped.
//
// A non-nil error is usually a *ParseError object.
func ParseXM(r io.Reader) (*Module, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return parseXM(data)
}

func parseXM(data []byte) (*Module, error) {
	p := newXMParser(data)
	if err := p.parse(); err != nil {
		return nil, err
	}
	if err := p.module.Validate(); err != nil {
		return nil, err
	}
	return &p.module, nil
}

func isXM(data []byte) bool {
	return len(data) >= xmHeaderSize && strings.EqualFold(string(data[:len(xmIDText)]), xmIDText)
}

type xmSampleHeader struct {
	length       int
	loopStart    int
	loopLength   int
	volume       int
	finetune     int
	flags        uint8
	relativeNote int
	adpcm        bool
}

func (h *xmSampleHeader) is16bit() bool { return h.flags&(1<<4) != 0 }

func (h *xmSampleHeader) hasLoop() bool { return h.flags&0b11 != 0 }

type xmParser struct {
	data []byte

	offset int

	module Module

	numPatterns    int
	numInstruments int

	eventPool objectPool[Event]

	// These fields below are needed for better error reporting.
	stage         string
	stageIndex    int
	subStage      string
	subStageIndex int
}

func newXMParser(data []byte) *xmParser {
	p := &xmParser{data: data}
	initObjectPool(&p.eventPool, xmEmptyPatternLen*8*16, 8)
	return p
}

func (p *xmParser) startStage(name string) {
	p.stage = name
	p.stageIndex = -1
	p.subStage = ""
	p.subStageIndex = -1
}

func (p *xmParser) startSubStage(name string) {
	p.subStage = name
	p.subStageIndex = -1
}

func (p *xmParser) formatStage() string {
	var b strings.Builder
	b.WriteString(p.stage)
	if p.stageIndex >= 0 {
		fmt.Fprintf(&b, "[%d]", p.stageIndex)
	}
	if p.subStage != "" {
		b.WriteByte('.')
		b.WriteString(p.subStage)
		if p.subStageIndex >= 0 {
			fmt.Fprintf(&b, "[%d]", p.subStageIndex)
		}
	}
	return b.String()
}

func (p *xmParser) errorf(format string, args ...any) *ParseError {
	text := fmt.Sprintf(format, args...)
	if tag := p.formatStage(); tag != "" {
		text = tag + ": " + text
	}
	return &ParseError{
		Message: text,
		Offset:  p.offset,
	}
}

func (p *xmParser) dataBytesRemaining() int {
	return len(p.data) - p.offset
}

func (p *xmParser) read(l int, what string) []byte {
	if l < 0 || p.dataBytesRemaining() < l {
		panic(p.errorf("unexpected EOF while reading %s", what))
	}
	b := p.data[p.offset : p.offset+l]
	p.offset += l
	return b
}

func (p *xmParser) skip(l int, what string) {
	p.read(l, what)
}

func (p *xmParser) readString(l int, what string) string {
	return convertCstring(p.read(l, what))
}

// XM files are little-endian.
func (p *xmParser) readDword(what string) uint32 {
	return binary.LittleEndian.Uint32(p.read(4, what))
}

func (p *xmParser) readWord(what string) uint16 {
	return binary.LittleEndian.Uint16(p.read(2, what))
}

func (p *xmParser) readByte(what string) uint8 {
	return p.read(1, what)[0]
}

// seek moves to the end of a block that started at start.
func (p *xmParser) seek(start, size int, what string) {
	end := start + size
	if end < p.offset {
		panic(p.errorf("%s: consumed %d extra bytes", what, p.offset-end))
	}
	if end > len(p.data) {
		panic(p.errorf("%s: invalid size %d", what, size))
	}
	p.offset = end
}

func (p *xmParser) parse() (err error) {
	defer func() {
		rv := recover()
		if rv != nil {
			if panicErr, ok := rv.(*ParseError); ok {
				err = panicErr
			} else {
				panic(rv)
			}
		}
	}()

	p.parseModule()

	return err // See the deferred call above
}

func (p *xmParser) parseModule() {
	p.module.Format = "xm"

	p.startStage("header")
	p.parseHeader()

	p.startStage("pattern")
	p.module.Patterns = make([]Pattern, 0, p.numPatterns+1)
	for i := 0; i < p.numPatterns; i++ {
		p.stageIndex = i
		p.module.Patterns = append(p.module.Patterns, p.parsePattern())
	}
	p.fixOrders()

	p.startStage("instrument")
	p.module.Instruments = make([]Instrument, p.numInstruments)
	for i := range p.module.Instruments {
		p.stageIndex = i
		p.module.Instruments[i] = p.parseInstrument()
	}
}

func (p *xmParser) parseHeader() {
	idText := p.readString(len(xmIDText), "id text")
	if !strings.EqualFold(idText, xmIDText) {
		panic(p.errorf("unexpected ID text: %q", idText))
	}

	p.module.Name = strings.TrimSpace(p.readString(20, "module name"))

	if b := p.readByte("magic byte"); b != 0x1a {
		panic(p.errorf("expected 0x1a, found 0x%02x", b))
	}

	p.skip(20, "tracker name")
	p.skip(2, "version")

	headerStart := p.offset
	headerSize := int(p.readDword("header size"))

	songLength := int(p.readWord("song length"))
	if songLength <= 0 || songLength > 256 {
		panic(p.errorf("invalid song length value: %d", songLength))
	}
	restart := int(p.readWord("restart position"))
	if restart >= songLength {
		restart = 0
	}
	p.module.RestartPosition = restart

	numChannels := int(p.readWord("number of channels"))
	if numChannels <= 0 || numChannels > xmMaxChannels {
		panic(p.errorf("invalid number of channels: %d", numChannels))
	}
	p.module.NumChannels = numChannels

	p.numPatterns = int(p.readWord("number of patterns"))
	if p.numPatterns > 256 {
		panic(p.errorf("invalid number of patterns: %d", p.numPatterns))
	}
	p.numInstruments = int(p.readWord("number of instruments"))
	if p.numInstruments > 128 {
		panic(p.errorf("invalid number of instruments: %d", p.numInstruments))
	}

	// Linear frequency tables are played with Amiga periods.
	p.skip(2, "flags")

	speed := int(p.readWord("default tempo"))
	if speed == 0 || speed >= ptdb.SpeedTempoThreshold {
		speed = DefaultSpeed
	}
	p.module.InitialSpeed = speed
	p.module.InitialTempo = clamp(int(p.readWord("default bpm")), MinTempo, MaxTempo)

	orders := p.read(songLength, "pattern order table")
	p.module.Orders = make([]uint8, songLength)
	copy(p.module.Orders, orders)

	p.seek(headerStart, headerSize, "header")
}

// fixOrders redirects the orders that refer to missing patterns
// to an extra empty pattern.
func (p *xmParser) fixOrders() {
	missing := -1
	for i, order := range p.module.Orders {
		if int(order) < p.numPatterns {
			continue
		}
		if missing == -1 {
			missing = len(p.module.Patterns)
			p.module.Patterns = append(p.module.Patterns, p.emptyPattern())
		}
		p.module.Orders[i] = uint8(missing)
	}
}

func (p *xmParser) emptyPattern() Pattern {
	return Pattern{
		NumRows: xmEmptyPatternLen,
		Events:  p.eventPool.MakeSlice(xmEmptyPatternLen * p.module.NumChannels),
	}
}

func (p *xmParser) parsePattern() Pattern {
	headerStart := p.offset
	headerSize := int(p.readDword("pattern header length"))
	if headerSize < 9 {
		panic(p.errorf("invalid pattern header length: %d", headerSize))
	}
	p.skip(1, "packing type")
	numRows := int(p.readWord("number of rows"))
	if numRows <= 0 || numRows > MaxRows {
		panic(p.errorf("invalid number of rows: %d", numRows))
	}
	packedSize := int(p.readWord("packed pattern data size"))
	p.seek(headerStart, headerSize, "pattern header")

	if packedSize == 0 {
		return p.emptyPattern()
	}
	if p.dataBytesRemaining() < packedSize {
		panic(p.errorf("incomplete packed pattern data"))
	}
	end := p.offset + packedSize

	numChannels := p.module.NumChannels
	pat := Pattern{
		NumRows: numRows,
		Events:  p.eventPool.MakeSlice(numRows * numChannels),
	}
	for i := range pat.Events {
		pat.Events[i] = p.parsePatternEvent()
	}

	if p.offset < end {
		panic(p.errorf("found %d redundant bytes in the pattern data", end-p.offset))
	}
	if p.offset > end {
		panic(p.errorf("consumed %d extra bytes of the pattern data", p.offset-end))
	}
	return pat
}

func (p *xmParser) parsePatternEvent() Event {
	var note, inst, volume, fx, param uint8
	b := p.readByte("first note byte")
	if b&0b10000000 != 0 {
		// When MSB is set, the missing bytes default to 0.
		if b&(1<<0) != 0 {
			note = p.readByte("pattern note")
		}
		if b&(1<<1) != 0 {
			inst = p.readByte("pattern instrument")
		}
		if b&(1<<2) != 0 {
			volume = p.readByte("pattern volume")
		}
		if b&(1<<3) != 0 {
			fx = p.readByte("effect type")
		}
		if b&(1<<4) != 0 {
			param = p.readByte("effect type parameter")
		}
	} else {
		note = b
		inst = p.readByte("pattern instrument")
		volume = p.readByte("pattern volume")
		fx = p.readByte("effect type")
		param = p.readByte("effect type parameter")
	}
	return convertXMEvent(note, inst, volume, fx, param)
}

func convertXMEvent(note, inst, volume, fx, param uint8) Event {
	e := Event{
		Instrument:      inst,
		Volume:          volume,
		EffectType:      fx,
		EffectParameter: param,
	}
	switch {
	case note == xmKeyOff:
		// Without envelopes a key-off is a cut.
		if volume < 0x10 || volume > 0x50 {
			e.Volume = 0x10
		}
	case note != 0 && note < xmKeyOff:
		n := int(note) - xmNoteShift
		for n < 1 {
			n += 12
		}
		e.Note = uint8(n)
	}
	if fx > 0xF {
		e.EffectType = 0
		e.EffectParameter = 0
	}
	return e
}

func (p *xmParser) parseInstrument() Instrument {
	var inst Instrument

	headerStart := p.offset
	headerSize := int(p.readDword("instrument header size"))
	inst.Name = strings.TrimSpace(p.readString(22, "instrument name"))
	p.skip(1, "instrument type")
	numSamples := int(p.readWord("number of samples"))
	if numSamples == 0 {
		p.seek(headerStart, headerSize, "instrument header")
		return inst
	}

	if size := p.readDword("sample header size"); size != xmSampleHeaderLen {
		panic(p.errorf("unexpected sample header size: %d", size))
	}
	keymap := p.read(96, "keymap assignments")
	p.skip(48, "volume envelope")
	p.skip(48, "panning envelope")
	p.skip(2, "number of envelope points")
	p.skip(6, "envelope sustain and loop points")
	p.skip(2, "envelope types")
	p.skip(4, "instrument vibrato")
	p.skip(2, "volume fadeout")
	p.seek(headerStart, headerSize, "instrument header")

	headers := make([]xmSampleHeader, numSamples)
	p.startSubStage("sample")
	for i := range headers {
		p.subStageIndex = i
		p.parseSampleHeader(&headers[i])
	}

	// The sample mapped to C-4 is the one played for every note.
	selected := 0
	if k := int(keymap[48]); k < numSamples {
		selected = k
	}

	p.startSubStage("sampledata")
	for i := range headers {
		p.subStageIndex = i
		h := &headers[i]
		if h.adpcm {
			panic(p.errorf("ADPCM samples are not supported"))
		}
		raw := p.read(h.length, "sample data")
		if i != selected {
			continue
		}
		inst.Volume = h.volume
		inst.Finetune = h.finetune
		inst.Samples = []Sample{decodeXMSample(h, raw)}
	}
	p.subStage = ""

	return inst
}

func (p *xmParser) parseSampleHeader(h *xmSampleHeader) {
	h.length = int(p.readDword("sample length"))
	h.loopStart = int(p.readDword("sample loop start"))
	h.loopLength = int(p.readDword("sample loop length"))
	h.volume = clamp(int(p.readByte("sample volume")), 0, MaxVolume)
	// 1/128 of a semitone, the modules store 1/8.
	h.finetune = int(int8(p.readByte("sample finetune"))) / 16
	h.flags = p.readByte("sample type")
	p.skip(1, "sample panning")
	h.relativeNote = int(int8(p.readByte("sample relative note number")))

	switch format := p.readByte("sample encoding"); format {
	case 0:
	case 0xAD:
		h.adpcm = true
	default:
		panic(p.errorf("unknown sample encoding scheme (%#02x)", format))
	}

	p.skip(22, "sample name")

	if h.length < 0 {
		panic(p.errorf("invalid sample length: %d", h.length))
	}
}

// decodeXMSample undoes the delta encoding.
// 16-bit samples are reduced to their high bytes.
func decodeXMSample(h *xmSampleHeader, raw []byte) Sample {
	s := Sample{
		Rate: xmC4Rate * math.Pow(2, float64(h.relativeNote)/12),
	}
	loopStart, loopLength := h.loopStart, h.loopLength
	if h.is16bit() {
		s.Data = make([]int8, len(raw)/2)
		var acc int16
		for i := range s.Data {
			acc += int16(binary.LittleEndian.Uint16(raw[i*2:]))
			s.Data[i] = int8(acc >> 8)
		}
		loopStart /= 2
		loopLength /= 2
	} else {
		s.Data = make([]int8, len(raw))
		var acc int8
		for i, b := range raw {
			acc += int8(b)
			s.Data[i] = acc
		}
	}

	if !h.hasLoop() || loopStart < 0 || loopStart >= len(s.Data) {
		return s
	}
	if loopStart+loopLength > len(s.Data) {
		loopLength = len(s.Data) - loopStart
	}
	// Ping-pong loops are played forward.
	if loopLength > 2 {
		s.LoopStart = loopStart
		s.LoopLength = loopLength
	}
	return s
}
