package arena

import (
	"context"
	"time"
)

// Run steps w until ticks is reached (0 means no limit), every tank is dead,
// or ctx is done. A positive delay paces the steps; onFrame sees every
// post-step snapshot.
func Run(ctx context.Context, w *World, ticks int, delay time.Duration, onFrame func(Frame)) error {
	var pace <-chan time.Time
	if delay > 0 {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
		pace = ticker.C
	}
	for ticks == 0 || w.Tick < ticks {
		if w.Finished() {
			return nil
		}
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		w.Step()
		if onFrame != nil {
			onFrame(w.Snapshot())
		}
	}
	return nil
}
