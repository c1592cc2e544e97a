// Package acquire runs the sampling sessions started from the menu: live
// viewing, capturing a run to storage and replaying a stored run.
package acquire

import (
	"time"

	"github.com/itohio/senselog/pkg/config"
	"github.com/itohio/senselog/pkg/hal"
	"github.com/itohio/senselog/pkg/record"
	"github.com/itohio/senselog/pkg/tone"
)

// Acquirer owns the collaborators shared by every session.
type Acquirer struct {
	cfg   *config.Config
	board hal.Board
	store *record.Store
	alert *tone.Player
}

// New creates an Acquirer. The stored run lives in board.Storage at the
// configured base offset.
func New(cfg *config.Config, board hal.Board) *Acquirer {
	return &Acquirer{
		cfg:   cfg,
		board: board,
		store: record.NewStore(board.Storage, cfg.Capture.BaseOffset, cfg.Capture.Slots),
		alert: tone.NewPlayer(board.Speaker, board.Clock),
	}
}

// Store returns the stored run.
func (a *Acquirer) Store() *record.Store {
	return a.store
}

// released reports whether the cycle button line is high.
func (a *Acquirer) released() bool {
	return a.board.Buttons.Level(hal.Cycle)
}

func (a *Acquirer) waitMs(d time.Duration) {
	if d > 0 {
		a.board.Clock.WaitMs(uint32(d / time.Millisecond))
	}
}
