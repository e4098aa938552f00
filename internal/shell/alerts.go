package shell

import (
	"sync"
	"time"
)

// DefaultAlertDuration is how long transient notices stay visible.
const DefaultAlertDuration = 3 * time.Second

// alertCenter holds the single transient notice the shell displays. Showing
// a new alert supersedes the previous one and cancels its expiry timer.
type alertCenter struct {
	mu      sync.Mutex
	message string
	timer   *time.Timer
}

func newAlertCenter() *alertCenter {
	return &alertCenter{}
}

// Show replaces the current alert and schedules its dismissal.
func (a *alertCenter) Show(message string, d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
	}
	a.message = message
	a.timer = time.AfterFunc(d, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.message == message {
			a.message = ""
		}
	})
}

// Current returns the active alert, or "" when none is showing.
func (a *alertCenter) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

// Dismiss clears the alert immediately.
func (a *alertCenter) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.message = ""
}
