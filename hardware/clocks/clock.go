package clocks

import (
	"sync"
	"time"
)

// Clock is the time source of the machine. The VGA raster and the BIOS delay
// service are both driven by it
type Clock interface {
	// Elapsed returns the time since the machine was switched on. It never
	// goes backwards
	Elapsed() time.Duration

	// Sleep blocks for the duration
	Sleep(d time.Duration)
}

// Monotonic is a Clock that follows the host's monotonic clock
type Monotonic struct {
	start time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) Elapsed() time.Duration {
	return time.Since(m.start)
}

func (m *Monotonic) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Stepped is a Clock that advances by a fixed step each time it is read and
// by the full duration when slept on. It never blocks, which makes a machine
// driven by it run as fast as the host allows while still being
// deterministic
type Stepped struct {
	crit    sync.Mutex
	step    time.Duration
	elapsed time.Duration
}

func NewStepped(step time.Duration) *Stepped {
	return &Stepped{step: step}
}

func (s *Stepped) Elapsed() time.Duration {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.elapsed += s.step
	return s.elapsed
}

func (s *Stepped) Sleep(d time.Duration) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.elapsed += d
}
