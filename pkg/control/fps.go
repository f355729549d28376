package control

import "time"

// FPSCounter measures frames per second, refreshing its reading once a
// second.
type FPSCounter struct {
	now    func() time.Time
	start  time.Time
	frames int
	rate   float64
}

// NewFPSCounter creates a counter using the wall clock.
func NewFPSCounter() *FPSCounter {
	return newFPSCounter(time.Now)
}

func newFPSCounter(now func() time.Time) *FPSCounter {
	return &FPSCounter{now: now, start: now()}
}

// Tick records a frame and returns the latest rate.
func (f *FPSCounter) Tick() float64 {
	f.frames++
	elapsed := f.now().Sub(f.start)
	if elapsed >= time.Second {
		f.rate = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.start = f.start.Add(elapsed)
	}
	return f.rate
}

// Rate returns the most recent reading.
func (f *FPSCounter) Rate() float64 {
	return f.rate
}
