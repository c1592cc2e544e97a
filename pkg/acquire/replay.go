package acquire

import (
	"context"
	"fmt"

	"github.com/itohio/senselog/pkg/record"
	"github.com/itohio/senselog/pkg/sensor"
	"github.com/itohio/senselog/pkg/window"
)

// Replay pushes channel c of every stored slot into win and redraws after
// each one, as fast as storage allows. Records that cannot be decoded are
// skipped. It returns the number of samples replayed.
func (a *Acquirer) Replay(ctx context.Context, c sensor.Channel, win *window.Window) (int, error) {
	title := c.String() + " saved"
	replayed := 0

	for slot := 0; slot < a.store.Capacity(); slot++ {
		if err := ctx.Err(); err != nil {
			return replayed, err
		}

		rec, err := a.store.Read(a.store.Clamp(slot))
		if err != nil {
			return replayed, fmt.Errorf("replay %v: %w", c, err)
		}

		v, err := record.ReplayValue(rec, c)
		if err != nil {
			continue
		}

		win.Push(v)
		a.board.Display.Graph(win.Samples(), title)
		replayed++
	}

	return replayed, nil
}
