package hal

import (
	"sync"
	"time"
)

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)

// RealClock waits on the wall clock.
type RealClock struct {
	start time.Time
}

// NewRealClock creates a clock whose counter starts at zero now.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

func (c *RealClock) NowMs() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}

func (c *RealClock) WaitMs(n uint32) {
	time.Sleep(time.Duration(n) * time.Millisecond)
}

func (c *RealClock) WaitUs(n uint32) {
	time.Sleep(time.Duration(n) * time.Microsecond)
}

// MockClock is a virtual clock: waits return immediately and advance time.
type MockClock struct {
	mu  sync.Mutex
	now time.Duration

	// OnAdvance, when set, is called after every wait with the new time.
	OnAdvance func(now time.Duration)
}

// NewMockClock creates a virtual clock at time zero.
func NewMockClock() *MockClock {
	return &MockClock{}
}

// Now returns the virtual time elapsed since creation.
func (c *MockClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) NowMs() uint32 {
	return uint32(c.Now() / time.Millisecond)
}

func (c *MockClock) WaitMs(n uint32) {
	c.Advance(time.Duration(n) * time.Millisecond)
}

func (c *MockClock) WaitUs(n uint32) {
	c.Advance(time.Duration(n) * time.Microsecond)
}

// Advance moves the virtual time forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	now := c.now
	cb := c.OnAdvance
	c.mu.Unlock()

	if cb != nil {
		cb(now)
	}
}
