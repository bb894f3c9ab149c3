package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Session tracks session gate activity for the admin dashboard.
// A nil *Session is valid and records nothing.
type Session struct {
	Loads          Counter
	Logins         Counter
	Logouts        Counter
	CorruptRecords Counter
}

// Snapshot is a point-in-time copy of the session counters.
type Snapshot struct {
	Loads          uint64
	Logins         uint64
	Logouts        uint64
	CorruptRecords uint64
}

func (s *Session) Load() {
	if s != nil {
		s.Loads.Inc()
	}
}

func (s *Session) Login() {
	if s != nil {
		s.Logins.Inc()
	}
}

func (s *Session) Logout() {
	if s != nil {
		s.Logouts.Inc()
	}
}

func (s *Session) Corrupt() {
	if s != nil {
		s.CorruptRecords.Inc()
	}
}

func (s *Session) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Loads:          s.Loads.Load(),
		Logins:         s.Logins.Load(),
		Logouts:        s.Logouts.Load(),
		CorruptRecords: s.CorruptRecords.Load(),
	}
}
