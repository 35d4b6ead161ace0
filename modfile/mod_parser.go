package modfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/quasilyte/modplay/internal/ptdb"
)

const (
	modNumSamples     = 31
	modNumOrders      = 128
	modRowsPerPattern = 64
	modMagicOffset    = 1080
	modHeaderSize     = modMagicOffset + 4
)

// ParseMOD reads a ProTracker-compatible MOD file.
//
// A non-nil error is usually a *ParseError object.
func ParseMOD(r io.Reader) (*Module, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return parseMOD(data)
}

func parseMOD(data []byte) (*Module, error) {
	p := newModParser(data)
	if err := p.parse(); err != nil {
		return nil, err
	}
	if err := p.module.Validate(); err != nil {
		return nil, err
	}
	return &p.module, nil
}

// modChannelsByMagic returns the number of channels for the signature at 1080.
// It returns 0 for unknown signatures.
func modChannelsByMagic(magic []byte) int {
	switch string(magic) {
	case "M.K.", "M!K!", "FLT4", "4CHN":
		return 4
	case "6CHN":
		return 6
	case "8CHN", "FLT8", "OKTA", "OCTA", "CD81":
		return 8
	}
	// "xxCH" with a decimal channel count.
	if magic[2] == 'C' && magic[3] == 'H' && isDigit(magic[0]) && isDigit(magic[1]) {
		n := int(magic[0]-'0')*10 + int(magic[1]-'0')
		if n >= 1 && n <= 32 {
			return n
		}
	}
	return 0
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

type modSampleHeader struct {
	length     int
	loopStart  int
	loopLength int
}

type modParser struct {
	data []byte

	offset int

	module Module

	eventPool objectPool[Event]

	sampleHeaders [modNumSamples]modSampleHeader

	// These fields below are needed for better error reporting.
	stage      string
	stageIndex int
}

func newModParser(data []byte) *modParser {
	p := &modParser{data: data}
	initObjectPool(&p.eventPool, modRowsPerPattern*4*16, 8)
	return p
}

func (p *modParser) startStage(name string) {
	p.stage = name
	p.stageIndex = -1
}

func (p *modParser) errorf(format string, args ...any) *ParseError {
	text := fmt.Sprintf(format, args...)
	if p.stage != "" {
		tag := p.stage
		if p.stageIndex >= 0 {
			tag = fmt.Sprintf("%s[%d]", p.stage, p.stageIndex)
		}
		text = tag + ": " + text
	}
	return &ParseError{
		Message: text,
		Offset:  p.offset,
	}
}

func (p *modParser) dataBytesRemaining() int {
	return len(p.data) - p.offset
}

func (p *modParser) read(l int, what string) []byte {
	if p.dataBytesRemaining() < l {
		panic(p.errorf("unexpected EOF while reading %s", what))
	}
	b := p.data[p.offset : p.offset+l]
	p.offset += l
	return b
}

func (p *modParser) readString(l int, what string) string {
	return convertCstring(p.read(l, what))
}

// MOD files are big-endian.
func (p *modParser) readWord(what string) uint16 {
	return binary.BigEndian.Uint16(p.read(2, what))
}

func (p *modParser) readByte(what string) uint8 {
	return p.read(1, what)[0]
}

func (p *modParser) parse() (err error) {
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

func (p *modParser) parseModule() {
	if len(p.data) < modHeaderSize {
		panic(p.errorf("file is too small to be a MOD (%d bytes)", len(p.data)))
	}
	numChannels := modChannelsByMagic(p.data[modMagicOffset:modHeaderSize])
	if numChannels == 0 {
		p.offset = modMagicOffset
		panic(p.errorf("unsupported signature %q", p.data[modMagicOffset:modHeaderSize]))
	}

	p.module.Format = "mod"
	p.module.NumChannels = numChannels
	p.module.InitialSpeed = DefaultSpeed
	p.module.InitialTempo = DefaultTempo

	p.startStage("header")
	p.module.Name = strings.TrimSpace(p.readString(20, "module name"))

	p.startStage("sample header")
	p.module.Instruments = make([]Instrument, modNumSamples)
	for i := range p.module.Instruments {
		p.stageIndex = i
		p.module.Instruments[i] = p.parseSampleHeader(&p.sampleHeaders[i])
	}

	p.startStage("order list")
	numPatterns := p.parseOrders()
	p.offset += 4 // Magic was already checked

	p.startStage("pattern")
	p.module.Patterns = make([]Pattern, numPatterns)
	for i := range p.module.Patterns {
		p.stageIndex = i
		p.module.Patterns[i] = p.parsePattern()
	}

	p.startStage("sample data")
	for i := range p.module.Instruments {
		p.stageIndex = i
		p.parseSampleData(&p.module.Instruments[i], &p.sampleHeaders[i])
	}
}

func (p *modParser) parseSampleHeader(h *modSampleHeader) Instrument {
	var inst Instrument
	inst.Name = strings.TrimSpace(p.readString(22, "sample name"))
	h.length = int(p.readWord("sample length")) * 2
	inst.Finetune = ptdb.FinetuneFromNibble(p.readByte("finetune"))
	inst.Volume = int(p.readByte("volume"))
	if inst.Volume > MaxVolume {
		inst.Volume = MaxVolume
	}
	h.loopStart = int(p.readWord("loop start")) * 2
	h.loopLength = int(p.readWord("loop length")) * 2
	return inst
}

func (p *modParser) parseOrders() int {
	songLength := int(p.readByte("song length"))
	if songLength < 1 || songLength > modNumOrders {
		panic(p.errorf("invalid song length value: %d", songLength))
	}
	restart := int(p.readByte("restart position"))
	if restart >= songLength {
		// Most trackers store 127 (or 0x78) here.
		restart = 0
	}
	p.module.RestartPosition = restart

	orders := p.read(modNumOrders, "orders")
	numPatterns := 0
	for _, order := range orders {
		// All 128 entries count, even the ones past the song end.
		if int(order)+1 > numPatterns {
			numPatterns = int(order) + 1
		}
	}
	p.module.Orders = make([]uint8, songLength)
	copy(p.module.Orders, orders)
	return numPatterns
}

func (p *modParser) parsePattern() Pattern {
	numChannels := p.module.NumChannels
	pat := Pattern{
		NumRows: modRowsPerPattern,
		Events:  p.eventPool.MakeSlice(modRowsPerPattern * numChannels),
	}
	data := p.read(modRowsPerPattern*numChannels*4, "pattern data")
	for i := range pat.Events {
		pat.Events[i] = decodeModEvent(data[i*4 : i*4+4])
	}
	return pat
}

func decodeModEvent(b []byte) Event {
	period := int(b[0]&0x0f)<<8 | int(b[1])
	return Event{
		Note:            ptdb.PeriodToNote(period),
		Instrument:      (b[0] & 0xf0) | (b[2] >> 4),
		EffectType:      b[2] & 0x0f,
		EffectParameter: b[3],
	}
}

func (p *modParser) parseSampleData(inst *Instrument, h *modSampleHeader) {
	length := h.length
	if length > p.dataBytesRemaining() {
		// Truncated files are common, play what we have.
		length = p.dataBytesRemaining()
	}
	raw := p.read(length, "sample data")
	s := Sample{
		Data: make([]int8, length),
		Rate: DefaultSampleRate,
	}
	for i, b := range raw {
		s.Data[i] = int8(b)
	}

	loopStart, loopLength := h.loopStart, h.loopLength
	if loopStart+loopLength > length && (loopStart/2)+loopLength <= length {
		// Some trackers wrote the loop start in bytes.
		loopStart /= 2
	}
	if loopStart+loopLength > length {
		loopLength = length - loopStart
	}
	if loopLength > 2 && loopStart >= 0 {
		s.LoopStart = loopStart
		s.LoopLength = loopLength
	}

	inst.Samples = []Sample{s}
}
