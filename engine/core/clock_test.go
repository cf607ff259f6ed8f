package core

import (
	"errors"
	"testing"
)

type fakeTicks struct {
	now uint64
}

func (f *fakeTicks) source() uint64 {
	return f.now
}

func TestNewClockValidation(t *testing.T) {
	if _, err := NewClock(nil, 1000); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewClock(nil) error = %v, want ErrInvalidConfig", err)
	}
	f := &fakeTicks{}
	if _, err := NewClock(f.source, 0); !errors.Is(err, ErrInvalidTickRate) {
		t.Errorf("NewClock(0 tps) error = %v, want ErrInvalidTickRate", err)
	}
}

func TestClockDeltaTimeAndAverages(t *testing.T) {
	f := &fakeTicks{}
	c, err := NewClock(f.source, 1000)
	if err != nil {
		t.Fatal(err)
	}
	c.Start()

	// 100 frames, 10 ticks apart, each taking 4 ticks of work.
	for i := 0; i < 100; i++ {
		f.now += 6
		c.StartFrame()
		if i > 0 && c.DeltaTime != 0.01 {
			t.Fatalf("frame %d DeltaTime = %v, want 0.01", i, c.DeltaTime)
		}
		f.now += 4
		c.EndFrame()
	}

	if c.FrameSeconds() != 0.004 {
		t.Errorf("FrameSeconds() = %v, want 0.004", c.FrameSeconds())
	}
	// 400 ticks of work accumulated across 100 frames: 250 frames per second
	// are only reported once a full second of ticks has been gathered.
	if c.AverageFramesPerSecond != 0 {
		t.Errorf("AverageFramesPerSecond = %d before a full second", c.AverageFramesPerSecond)
	}
	for i := 0; i < 150; i++ {
		f.now += 6
		c.StartFrame()
		f.now += 4
		c.EndFrame()
	}
	if c.AverageFramesPerSecond != 250 {
		t.Errorf("AverageFramesPerSecond = %d, want 250", c.AverageFramesPerSecond)
	}
	if c.AverageMillisecondsPerFrame != 4 {
		t.Errorf("AverageMillisecondsPerFrame = %d, want 4", c.AverageMillisecondsPerFrame)
	}
	if c.AverageMicrosecondsPerFrame != 4000 {
		t.Errorf("AverageMicrosecondsPerFrame = %d, want 4000", c.AverageMicrosecondsPerFrame)
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	if m.FrameTime() != 0 {
		t.Errorf("FrameTime() = %v on empty metrics", m.FrameTime())
	}
	for i := 0; i < AVG_COUNT; i++ {
		m.Update(0.010)
	}
	for i := 0; i < 2*AVG_COUNT; i++ {
		m.Update(0.020)
	}
	if ft := m.FrameTime(); ft < 19.999 || ft > 20.001 {
		t.Errorf("FrameTime() = %v, want 20 once old samples rolled out", ft)
	}
	if m.FPS() == 0 {
		t.Errorf("FPS() = 0 after more than a second of frames")
	}
}
