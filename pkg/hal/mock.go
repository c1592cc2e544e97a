package hal

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/chewxy/math32"

	"github.com/itohio/senselog/pkg/sensor"
)

var (
	_ Sensors  = (*MockSensors)(nil)
	_ Display  = (*MockDisplay)(nil)
	_ Bargraph = (*MockBargraph)(nil)
	_ Digit    = (*MockDigit)(nil)
	_ Storage  = (*MemoryStorage)(nil)
	_ Buttons  = (*ScriptButtons)(nil)
	_ Pin      = (*MockPin)(nil)
)

// MockSensors produces readings from per-channel functions of time.
type MockSensors struct {
	clock Clock
	fns   [len(sensor.Channels)]func(now time.Duration) int

	// Err, when set, is returned by every Read.
	Err error
	// Reads counts reads per channel.
	Reads [len(sensor.Channels)]int
}

// NewMockSensors creates sensors that read the time from clock.
// Unset channels read zero.
func NewMockSensors(clock Clock) *MockSensors {
	return &MockSensors{clock: clock}
}

// Set installs the reading function of channel c.
func (m *MockSensors) Set(c sensor.Channel, fn func(now time.Duration) int) *MockSensors {
	m.fns[c] = fn
	return m
}

// Constant makes channel c always read v.
func (m *MockSensors) Constant(c sensor.Channel, v int) *MockSensors {
	return m.Set(c, func(time.Duration) int { return v })
}

// Wave makes channel c follow a sine of the given period around base.
func (m *MockSensors) Wave(c sensor.Channel, base, amplitude int, period time.Duration) *MockSensors {
	return m.Set(c, func(now time.Duration) int {
		if period <= 0 {
			return base
		}
		phase := 2 * math32.Pi * float32(now%period) / float32(period)
		return base + int(math32.Round(float32(amplitude)*math32.Sin(phase)))
	})
}

func (m *MockSensors) Read(c sensor.Channel) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if !c.Valid() {
		return 0, fmt.Errorf("read %v: invalid channel", c)
	}
	m.Reads[c]++
	fn := m.fns[c]
	if fn == nil {
		return 0, nil
	}
	return fn(time.Duration(m.clock.NowMs()) * time.Millisecond), nil
}

// Frame is one screen drawn on a MockDisplay.
type Frame struct {
	Kind    string // "graph", "menu" or "message"
	Title   string
	Samples []int
	Items   []string
	Cursor  int
	Text    string
}

// MockDisplay records every frame drawn.
type MockDisplay struct {
	mu     sync.Mutex
	Frames []Frame
}

func (d *MockDisplay) Graph(samples []int, title string) {
	d.add(Frame{Kind: "graph", Title: title, Samples: append([]int(nil), samples...)})
}

func (d *MockDisplay) Menu(title string, items []string, cursor int) {
	d.add(Frame{Kind: "menu", Title: title, Items: append([]string(nil), items...), Cursor: cursor})
}

func (d *MockDisplay) Message(title, text string) {
	d.add(Frame{Kind: "message", Title: title, Text: text})
}

func (d *MockDisplay) add(f Frame) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Frames = append(d.Frames, f)
}

// Last returns the most recent frame.
func (d *MockDisplay) Last() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Frames) == 0 {
		return Frame{}
	}
	return d.Frames[len(d.Frames)-1]
}

// Graphs returns every graph frame.
func (d *MockDisplay) Graphs() []Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Frame
	for _, f := range d.Frames {
		if f.Kind == "graph" {
			out = append(out, f)
		}
	}
	return out
}

// MockBargraph keeps the LED state and a history of masks written.
type MockBargraph struct {
	State  uint16
	Writes []uint16
}

func (b *MockBargraph) SetMask(mask, enable uint16) {
	b.State = b.State&^enable | mask&enable
	b.Writes = append(b.Writes, mask)
}

// MockDigit keeps the 7-segment state.
type MockDigit struct {
	Char   byte
	Blink  bool
	Writes int
}

func (d *MockDigit) SetDigit(c byte, blink bool) {
	d.Char = c
	d.Blink = blink
	d.Writes++
}

// MockPin counts speaker edges.
type MockPin struct {
	Level bool
	Rises int
	Falls int
}

func (p *MockPin) High() {
	p.Level = true
	p.Rises++
}

func (p *MockPin) Low() {
	p.Level = false
	p.Falls++
}

// MemoryStorage is a fixed-size byte array behaving like an erased EEPROM.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte

	// Err, when set, is returned by every access.
	Err error
}

// NewMemoryStorage creates size bytes of erased (0xFF) memory.
func NewMemoryStorage(size int) *MemoryStorage {
	data := make([]byte, size)
	for i := range data {
		data[i] = 0xFF
	}
	return &MemoryStorage{data: data}
}

// Bytes returns a copy of the memory contents.
func (m *MemoryStorage) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

func (m *MemoryStorage) ReadAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	if off < 0 || off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *MemoryStorage) WriteAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	if off < 0 || off+int64(len(p)) > int64(len(m.data)) {
		return 0, fmt.Errorf("write %d bytes at %d: beyond %d byte memory", len(p), off, len(m.data))
	}
	return copy(m.data[off:], p), nil
}

// Press is a span of virtual time during which a button is held.
type Press struct {
	Button Button
	At     time.Duration
	For    time.Duration
}

// ScriptButtons reports button levels from a script of presses against a clock.
type ScriptButtons struct {
	clock   *MockClock
	presses []Press
}

// NewScriptButtons creates buttons following presses on clock.
func NewScriptButtons(clock *MockClock, presses ...Press) *ScriptButtons {
	return &ScriptButtons{clock: clock, presses: presses}
}

// Add appends presses to the script.
func (s *ScriptButtons) Add(presses ...Press) {
	s.presses = append(s.presses, presses...)
}

func (s *ScriptButtons) Level(b Button) bool {
	now := s.clock.Now()
	for _, p := range s.presses {
		if p.Button == b && now >= p.At && now < p.At+p.For {
			return false
		}
	}
	return true
}

// Mock bundles a complete set of mocked collaborators sharing one virtual clock.
type Mock struct {
	Clock    *MockClock
	Sensors  *MockSensors
	Display  *MockDisplay
	Bargraph *MockBargraph
	Digit    *MockDigit
	Storage  *MemoryStorage
	Buttons  *ScriptButtons
	Speaker  *MockPin
}

// NewMock creates mocked collaborators with storage of the given size.
func NewMock(storageSize int) *Mock {
	clock := NewMockClock()
	return &Mock{
		Clock:    clock,
		Sensors:  NewMockSensors(clock),
		Display:  &MockDisplay{},
		Bargraph: &MockBargraph{},
		Digit:    &MockDigit{},
		Storage:  NewMemoryStorage(storageSize),
		Buttons:  NewScriptButtons(clock),
		Speaker:  &MockPin{},
	}
}

// Board returns the mocks as a Board.
func (m *Mock) Board() Board {
	return Board{
		Sensors:  m.Sensors,
		Display:  m.Display,
		Bargraph: m.Bargraph,
		Digit:    m.Digit,
		Storage:  m.Storage,
		Clock:    m.Clock,
		Buttons:  m.Buttons,
		Speaker:  m.Speaker,
	}
}
