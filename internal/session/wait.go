package session

import "time"

// Waiter is the single retry-with-timeout primitive every fixed delay in
// the restore path goes through. There is no event signaling "the shell has
// finished opening that window", so waits are duration-based; tests inject
// a no-op Sleep and still exercise the timeout logic, because elapsed time
// is counted logically rather than read from the clock.
type Waiter struct {
	Timeout  time.Duration
	Interval time.Duration
	Sleep    func(time.Duration)
}

// Await polls find until it reports a hit or the timeout elapses.
func (w Waiter) Await(find func() (Handle, bool)) (Handle, bool) {
	interval := w.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	for elapsed := time.Duration(0); ; elapsed += interval {
		if h, ok := find(); ok {
			return h, true
		}
		if elapsed+interval > w.Timeout {
			return 0, false
		}
		w.sleep(interval)
	}
}

func (w Waiter) sleep(d time.Duration) {
	if w.Sleep != nil {
		w.Sleep(d)
		return
	}
	time.Sleep(d)
}
