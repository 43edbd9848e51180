package lgp

import (
	"time"

	"github.com/niceyeti/channerics"
)

// Watch periodically samples a running Iterator's latest snapshot and
// reports Stats over its fitness values, without blocking the generation
// loop. report is called from a background goroutine on every tick until
// done is closed, except ticks where there is no snapshot yet or the
// snapshot holds no Valid score; it follows the niceyeti-tabular pattern of ranging over
// channerics.NewTicker(done, interval) instead of a raw time.Ticker so the
// loop exits cleanly on cancellation.
func Watch[O Fit](done <-chan struct{}, latest func() *Population[O], interval time.Duration, report func(Stats)) {
	go func() {
		for range channerics.NewTicker(done, interval) {
			pop := latest()
			if pop == nil || pop.Len() == 0 {
				continue
			}
			var s Stats
			for _, m := range pop.Members {
				s = s.InsertScore(m.Fitness())
			}
			if s.Len() > 0 {
				report(s)
			}
		}
	}()
}
