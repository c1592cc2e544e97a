// Package window keeps the short rolling history of samples shown on the graph.
package window

import "github.com/itohio/senselog/pkg/sensor"

// Capacity is the number of samples a window holds.
const Capacity = 13

// Step is the horizontal distance in pixels between two graph points.
const Step = 8

// Window is a fixed-capacity FIFO of normalized samples.
// Index 0 is the oldest sample, index Len()-1 the newest.
type Window struct {
	buf [Capacity]int
	n   int
}

// Push appends s, evicting the oldest sample when the window is full.
func (w *Window) Push(s int) {
	if w.n >= Capacity {
		copy(w.buf[:], w.buf[1:])
		w.n = Capacity - 1
	}
	w.buf[w.n] = s
	w.n++
}

// Len returns the number of samples held.
func (w *Window) Len() int {
	return w.n
}

// At returns sample i. It panics if i is out of range like a slice would.
func (w *Window) At(i int) int {
	return w.buf[:w.n][i]
}

// Samples returns the held samples ordered oldest first.
// The returned slice aliases the window and is valid until the next Push.
func (w *Window) Samples() []int {
	return w.buf[:w.n]
}

// Reset drops every sample.
func (w *Window) Reset() {
	w.n = 0
}

// Set holds one independent window per channel.
type Set [len(sensor.Channels)]Window

// For returns the window owned by channel c.
func (s *Set) For(c sensor.Channel) *Window {
	return &s[c]
}

// Reset clears every channel's window.
func (s *Set) Reset() {
	for i := range s {
		s[i].Reset()
	}
}
