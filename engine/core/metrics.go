package core

import "github.com/spaghettifunk/slim/engine/containers"

const AVG_COUNT int = 30

/**
 * @brief Rolling frame statistics: the average frame time over the last
 * AVG_COUNT frames and the number of frames rendered in the last second.
 */
type Metrics struct {
	samples            *containers.RingQueue[float64]
	sum                float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		samples: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

func (m *Metrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	if m.samples.IsFull() {
		oldest, _ := m.samples.Dequeue()
		m.sum -= oldest
	}
	_ = m.samples.Enqueue(frameMS)
	m.sum += frameMS

	// Calculate Frames per second.
	m.accumulatedFrameMS += frameMS
	m.frames++
	if m.accumulatedFrameMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

func (m *Metrics) FrameTime() float64 {
	if m.samples.IsEmpty() {
		return 0
	}
	return m.sum / float64(m.samples.Len())
}
