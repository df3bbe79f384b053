package sysinfo

import (
	"fmt"
	"time"
)

// Uptime is the time elapsed since the process started serving.
type Uptime struct {
	Seconds int64
	Human   string
}

// Clock owns the process start instant. It is set once in NewClock and only
// read afterwards, so a single Clock is safe to share between requests.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock records the start instant. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{start: now().UTC(), now: now}
}

func (c *Clock) Started() time.Time { return c.start }

func (c *Clock) Now() time.Time { return c.now().UTC() }

func (c *Clock) Uptime() Uptime {
	secs := int64(c.Now().Sub(c.start) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return Uptime{Seconds: secs, Human: FormatUptime(secs)}
}

// FormatUptime renders whole seconds as "<hours> hours, <minutes> minutes".
func FormatUptime(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%d hours, %d minutes", hours, minutes)
}
