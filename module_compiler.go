package modplay

import (
	"fmt"
	"log"

	"github.com/quasilyte/modplay/internal/ptdb"
	"github.com/quasilyte/modplay/modfile"
)

type moduleCompiler struct {
	result module
	logger *log.Logger
}

func compileModule(m *modfile.Module, config moduleConfig, logger *log.Logger) (module, error) {
	c := &moduleCompiler{logger: logger}
	err := c.compile(m, config)
	return c.result, err
}

func (c *moduleCompiler) compile(m *modfile.Module, config moduleConfig) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid module: %w", err)
	}

	c.result = module{
		name:            m.Name,
		numChannels:     m.NumChannels,
		restartPosition: m.RestartPosition,
		speed:           m.InitialSpeed,
		tempo:           m.InitialTempo,
	}
	if config.speed != 0 {
		if config.speed >= ptdb.SpeedTempoThreshold {
			return fmt.Errorf("invalid speed %d (want [1, %d])", config.speed, ptdb.SpeedTempoThreshold-1)
		}
		c.result.speed = int(config.speed)
	}
	if config.tempo != 0 {
		if config.tempo < modfile.MinTempo || config.tempo > modfile.MaxTempo {
			return fmt.Errorf("invalid tempo %d (want [%d, %d])", config.tempo, modfile.MinTempo, modfile.MaxTempo)
		}
		c.result.tempo = int(config.tempo)
	}

	c.compileInstruments(m)
	c.compilePatterns(m)

	if c.result.logicFaults != 0 {
		c.logger.Printf("warning: %d invalid pattern references replaced with no-ops", c.result.logicFaults)
	}

	return nil
}

func (c *moduleCompiler) compileInstruments(m *modfile.Module) {
	c.result.instruments = make([]instrument, len(m.Instruments))
	for i := range m.Instruments {
		inst := &m.Instruments[i]
		dstInst := instrument{
			id:       i + 1,
			volume:   inst.Volume,
			finetune: inst.Finetune,
			samples:  make([]instrumentSample, 0, len(inst.Samples)),
		}
		dstInst.periodScale = calcPeriodScale(modfile.DefaultSampleRate)
		if len(inst.Samples) != 0 {
			dstInst.periodScale = calcPeriodScale(inst.Samples[0].Rate)
		}
		for _, sample := range inst.Samples {
			if len(sample.Data) == 0 {
				continue
			}
			data := make([]int8, len(sample.Data))
			copy(data, sample.Data)
			dstInst.samples = append(dstInst.samples, instrumentSample{
				data:       data,
				source:     sample.Data,
				loopStart:  sample.LoopStart,
				loopLength: sample.LoopLength,
			})
		}
		c.result.instruments[i] = dstInst
	}
}

func (c *moduleCompiler) compilePatterns(m *modfile.Module) {
	c.result.patterns = make([]pattern, len(m.Patterns))
	c.result.patternOrder = make([]*pattern, len(m.Orders))
	c.result.orderPatterns = make([]int, len(m.Orders))

	// Bind pattern order to the actual patterns.
	for i, patternIndex := range m.Orders {
		c.result.patternOrder[i] = &c.result.patterns[patternIndex]
		c.result.orderPatterns[i] = int(patternIndex)
	}

	for i := range m.Patterns {
		rawPat := &m.Patterns[i]
		pat := &c.result.patterns[i]
		pat.numRows = rawPat.NumRows
		pat.events = make([]patternEvent, len(rawPat.Events))
		for j, rawEvent := range rawPat.Events {
			pat.events[j] = c.compileEvent(rawEvent)
		}
	}
}

func (c *moduleCompiler) compileEvent(e modfile.Event) patternEvent {
	var n patternEvent

	if e.Note != 0 {
		if int(e.Note) > ptdb.MaxNote {
			c.result.logicFaults++
		} else {
			n.note = e.Note
		}
	}

	if e.Instrument != 0 {
		if int(e.Instrument) > len(c.result.instruments) {
			c.result.logicFaults++
		} else {
			n.inst = e.Instrument
		}
	}

	n.volume = ptdb.EffectFromVolumeByte(e.Volume)
	n.effect = ptdb.ConvertEffect(e.EffectType, e.EffectParameter)

	return n
}
