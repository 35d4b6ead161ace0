// Package paula emulates an Amiga-style sample playback chip
// with band-limited step synthesis at an arbitrary output rate.
package paula

import (
	"fmt"
)

const (
	// ClockHz is the PAL chip clock.
	ClockHz = 3546895.0

	MinSampleRate = 4000
	MaxSampleRate = 96000

	MaxChannels = 64
)

// Config describes the chip output stage.
type Config struct {
	// SampleRate is the output rate in Hz, [MinSampleRate, MaxSampleRate].
	SampleRate int

	// NumChannels is the number of independent voices, [1, MaxChannels].
	NumChannels int

	// Filter is the initial output filter, see Chip.SetFilter.
	Filter Filter
}

// Channel is a voice combined with its band-limited output stage.
type Channel struct {
	voice Voice
	steps stepList

	// remainder is the number of chip cycles owed to this channel
	// that were not consumed yet.
	remainder float64
}

func (c *Channel) render(dst []int16, fdiv float64, f Filter) int {
	overflows := 0
	for i := range dst {
		for c.remainder >= MinimumInterval {
			if !c.steps.CommitLevel(c.voice.Level()) {
				overflows++
			}
			c.steps.AdvanceClock(MinimumInterval)
			c.voice.Clock(MinimumInterval)
			c.remainder -= MinimumInterval
		}
		dst[i] = c.steps.RenderSample(f)
		c.remainder += fdiv
	}
	return overflows
}

type Chip struct {
	channels []Channel

	// fdiv is the number of chip cycles per output sample.
	fdiv float64

	filter Filter

	// OverflowHandler is called when a channel correction list overflows.
	// It's called at most once per Render call.
	OverflowHandler func(channel, dropped int)
}

func New(config Config) (*Chip, error) {
	if config.SampleRate < MinSampleRate || config.SampleRate > MaxSampleRate {
		return nil, fmt.Errorf("unsupported sample rate %d (want [%d, %d])",
			config.SampleRate, MinSampleRate, MaxSampleRate)
	}
	if config.NumChannels < 1 || config.NumChannels > MaxChannels {
		return nil, fmt.Errorf("unsupported number of channels %d (want [1, %d])",
			config.NumChannels, MaxChannels)
	}
	if config.Filter < 0 || config.Filter >= numFilters {
		return nil, fmt.Errorf("unknown filter %d", config.Filter)
	}

	fdiv := ClockHz / float64(config.SampleRate)
	c := &Chip{
		channels: make([]Channel, config.NumChannels),
		fdiv:     fdiv,
		filter:   config.Filter,
	}
	for i := range c.channels {
		c.channels[i].remainder = fdiv
	}
	return c, nil
}

// NumChannels returns the number of chip voices.
func (c *Chip) NumChannels() int { return len(c.channels) }

// Filter returns the current output filter.
func (c *Chip) Filter() Filter { return c.filter }

func (c *Chip) SetFilter(f Filter) { c.filter = f }

func (c *Chip) Trigger(ch int, data []int8, loopStart, loopLength int) {
	c.channels[ch].voice.Trigger(data, loopStart, loopLength, 0)
}

func (c *Chip) SetPosition(ch, offset int) {
	c.channels[ch].voice.SetPosition(offset)
}

func (c *Chip) SetPeriod(ch, period int) {
	c.channels[ch].voice.SetPeriod(period)
}

func (c *Chip) SetVolume(ch, volume int) {
	c.channels[ch].voice.SetVolume(volume)
}

// Overflows returns the total number of dropped corrections for the channel.
func (c *Chip) Overflows(ch int) int {
	return c.channels[ch].steps.overflows
}

// Render fills dst with the band-limited output of the given channel.
func (c *Chip) Render(ch int, dst []int16) {
	dropped := c.channels[ch].render(dst, c.fdiv, c.filter)
	if dropped != 0 && c.OverflowHandler != nil {
		c.OverflowHandler(ch, dropped)
	}
}
