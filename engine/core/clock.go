package core

import (
	"fmt"
	"time"
)

// TickSource returns a monotonic tick counter.
type TickSource func() uint64

/**
 * @brief Frame timer driven by an external tick source.
 *
 * StartFrame computes DeltaTime from the ticks elapsed since the previous
 * frame start. EndFrame accumulates the frame's own duration and, once a full
 * second worth of ticks has been gathered, refreshes the averages.
 */
type Clock struct {
	ticks          TickSource
	ticksPerSecond uint64

	secondsPerTick      float64
	millisecondsPerTick float64
	microsecondsPerTick float64

	ticksBefore uint64
	ticksAfter  uint64
	ticksDiff   uint64

	accumulatedTicks  uint64
	accumulatedFrames uint64

	// DeltaTime is the time in seconds between the last two frame starts.
	DeltaTime float32

	AverageFramesPerSecond      uint32
	AverageMillisecondsPerFrame uint32
	AverageMicrosecondsPerFrame uint32
}

func NewClock(source TickSource, ticksPerSecond uint64) (*Clock, error) {
	if source == nil {
		return nil, fmt.Errorf("func NewClock - tick source is required: %w", ErrInvalidConfig)
	}
	if ticksPerSecond == 0 {
		return nil, fmt.Errorf("func NewClock: %w", ErrInvalidTickRate)
	}
	tps := float64(ticksPerSecond)
	return &Clock{
		ticks:               source,
		ticksPerSecond:      ticksPerSecond,
		secondsPerTick:      1 / tps,
		millisecondsPerTick: 1000 / tps,
		microsecondsPerTick: 1000000 / tps,
	}, nil
}

// NewSystemClock counts nanoseconds on the monotonic wall clock.
func NewSystemClock() *Clock {
	origin := time.Now()
	c, _ := NewClock(func() uint64 {
		return uint64(time.Since(origin).Nanoseconds())
	}, uint64(time.Second))
	return c
}

// Start resets the clock. Call once before the first frame.
func (c *Clock) Start() {
	c.ticksBefore = c.ticks()
	c.ticksAfter = c.ticksBefore
	c.accumulatedTicks = 0
	c.accumulatedFrames = 0
	c.DeltaTime = 0
}

func (c *Clock) StartFrame() {
	c.ticksAfter = c.ticksBefore
	c.ticksBefore = c.ticks()
	c.ticksDiff = c.ticksBefore - c.ticksAfter
	c.DeltaTime = float32(float64(c.ticksDiff) * c.secondsPerTick)
}

func (c *Clock) EndFrame() {
	c.ticksAfter = c.ticks()
	c.ticksDiff = c.ticksAfter - c.ticksBefore
	c.accumulatedTicks += c.ticksDiff
	c.accumulatedFrames++
	if c.accumulatedTicks >= c.ticksPerSecond {
		c.average()
	}
}

// FrameSeconds returns the duration of the last measured frame.
func (c *Clock) FrameSeconds() float64 {
	return float64(c.ticksDiff) * c.secondsPerTick
}

func (c *Clock) average() {
	framesPerTick := float64(c.accumulatedFrames) / float64(c.accumulatedTicks)
	ticksPerFrame := float64(c.accumulatedTicks) / float64(c.accumulatedFrames)
	c.AverageFramesPerSecond = uint32(framesPerTick * float64(c.ticksPerSecond))
	c.AverageMillisecondsPerFrame = uint32(ticksPerFrame * c.millisecondsPerTick)
	c.AverageMicrosecondsPerFrame = uint32(ticksPerFrame * c.microsecondsPerTick)
	c.accumulatedTicks = 0
	c.accumulatedFrames = 0
}
