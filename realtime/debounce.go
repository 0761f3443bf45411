package realtime

import "time"

// DebounceWindow coalesces bursts of history and expense change events so a
// batch completion triggers one refetch, not one per row.
const DebounceWindow = 500 * time.Millisecond

// Debounce forwards the last event of each burst once the input has been
// quiet for d. The output closes after the input closes, flushing any
// pending event first.
func Debounce(in <-chan Event, d time.Duration) <-chan Event {
	out := make(chan Event, 1)

	go func() {
		defer close(out)

		var pending Event
		var waiting bool
		timer := time.NewTimer(d)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case ev, ok := <-in:
				if !ok {
					if waiting {
						out <- pending
					}
					return
				}
				pending = ev
				if waiting {
					if !timer.Stop() {
						<-timer.C
					}
				}
				waiting = true
				timer.Reset(d)
			case <-timer.C:
				if waiting {
					out <- pending
					waiting = false
				}
			}
		}
	}()

	return out
}
