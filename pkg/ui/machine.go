// Package ui is the two button menu that selects what the appliance does.
//
// The cycle button moves the cursor through the current menu, the select
// button enters the highlighted entry:
//
//	Real-Time  -> channel menu -> live graph until cycle is pressed
//	Save       -> duration code prompt -> capture a full run
//	Show Saved -> channel menu -> replay the stored run until cycle is pressed
//
// Pressing select while holding cycle returns from a channel menu or the
// code prompt to the mode menu.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/itohio/senselog/pkg/acquire"
	"github.com/itohio/senselog/pkg/config"
	"github.com/itohio/senselog/pkg/hal"
	"github.com/itohio/senselog/pkg/window"
)

// Machine is the mode/selection state machine. It runs on a single goroutine
// and blocks only through the board clock.
type Machine struct {
	cfg   *config.Config
	board hal.Board
	acq   *acquire.Acquirer
	input *Input

	state State
	level Level
	code  int

	// live history per channel, kept while Real-Time is entered
	windows window.Set

	// Idle, when set, runs on every menu poll.
	Idle func()
}

// New creates a Machine showing the mode menu.
func New(cfg *config.Config, board hal.Board) *Machine {
	return &Machine{
		cfg:   cfg,
		board: board,
		acq:   acquire.New(cfg, board),
		input: NewInput(board.Buttons),
	}
}

// State returns the current selection.
func (m *Machine) State() State {
	return m.state
}

// Level returns the menu currently shown.
func (m *Machine) Level() Level {
	return m.level
}

// Acquirer returns the sessions runner, giving access to the stored run.
func (m *Machine) Acquirer() *acquire.Acquirer {
	return m.acq
}

// Run polls the buttons until ctx is done or a collaborator fails.
// Collaborator failures are not recoverable and are returned as is.
func (m *Machine) Run(ctx context.Context) error {
	m.draw()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.Idle != nil {
			m.Idle()
		}
		if err := m.Step(ctx); err != nil {
			return err
		}
		m.wait(m.cfg.Sampling.PollInterval)
	}
}

// Step handles one button poll.
func (m *Machine) Step(ctx context.Context) error {
	switch m.input.Poll() {
	case CyclePress:
		m.cycle()
		m.draw()
		m.wait(m.cfg.Sampling.Debounce)
	case SelectPress:
		return m.enter(ctx)
	case Back:
		if m.level != LevelModes {
			m.toModes()
		}
	case None:
	}
	return nil
}

func (m *Machine) cycle() {
	switch m.level {
	case LevelModes:
		m.state.Mode = m.state.Mode.Next()
	case LevelOptions:
		m.state.Option = m.state.Option.Next()
	case LevelCode:
		m.code = (m.code + 1) % (acquire.MaxCode + 1)
	}
}

func (m *Machine) enter(ctx context.Context) error {
	switch m.level {
	case LevelModes:
		return m.enterMode()
	case LevelOptions:
		return m.enterOption(ctx)
	case LevelCode:
		return m.startCapture(ctx)
	default:
		return fmt.Errorf("unknown menu level %d", m.level)
	}
}

func (m *Machine) enterMode() error {
	switch m.state.Mode {
	case RealTime:
		m.windows.Reset()
		m.level = LevelOptions
	case ShowSaved:
		m.level = LevelOptions
	case Save:
		m.code = 0
		m.level = LevelCode
	default:
		return fmt.Errorf("unknown mode %d", m.state.Mode)
	}
	m.draw()
	return nil
}

func (m *Machine) enterOption(ctx context.Context) error {
	c := m.state.Option
	switch m.state.Mode {
	case RealTime:
		if err := m.acq.Live(ctx, c, m.windows.For(c)); err != nil {
			return err
		}
		// back to the channel menu, history kept
		m.input.Reset()
		m.draw()
	case ShowSaved:
		var win window.Window
		if _, err := m.acq.Replay(ctx, c, &win); err != nil {
			return err
		}
		if err := m.holdUntilCycle(ctx); err != nil {
			return err
		}
		m.toModes()
	case Save:
		m.toModes()
	default:
		return fmt.Errorf("unknown mode %d", m.state.Mode)
	}
	return nil
}

func (m *Machine) startCapture(ctx context.Context) error {
	m.board.Digit.SetDigit(codeChar(m.code), false)
	if _, err := m.acq.Capture(ctx, m.code); err != nil {
		return err
	}
	m.toModes()
	return nil
}

// holdUntilCycle keeps the current screen until the cycle line goes low.
func (m *Machine) holdUntilCycle(ctx context.Context) error {
	for m.board.Buttons.Level(hal.Cycle) {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.wait(m.cfg.Sampling.PollInterval)
	}
	return nil
}

func (m *Machine) toModes() {
	if m.state.Mode == RealTime {
		m.windows.Reset()
	}
	m.level = LevelModes
	m.input.Reset()
	m.draw()
}

func (m *Machine) draw() {
	switch m.level {
	case LevelModes:
		m.board.Display.Menu("Mode", modeItems(), int(m.state.Mode))
	case LevelOptions:
		m.board.Display.Menu(m.state.Mode.String(), optionItems(), int(m.state.Option))
	case LevelCode:
		m.board.Display.Message("Save", fmt.Sprintf("Duration code %d", m.code))
		m.board.Digit.SetDigit(codeChar(m.code), true)
	}
}

func (m *Machine) wait(d time.Duration) {
	if d > 0 {
		m.board.Clock.WaitMs(uint32(d / time.Millisecond))
	}
}

func codeChar(code int) byte {
	return byte('0' + code)
}
