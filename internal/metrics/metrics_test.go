package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	assert.Zero(t, c.Load())
	c.Inc()
	c.Inc()
	assert.Equal(t, uint64(2), c.Load())
}

func TestCounter_Concurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(50), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), time.Millisecond)
}

func TestSession(t *testing.T) {
	t.Run("Records", func(t *testing.T) {
		s := &Session{}
		s.Load()
		s.Load()
		s.Login()
		s.Logout()
		s.Corrupt()

		assert.Equal(t, Snapshot{Loads: 2, Logins: 1, Logouts: 1, CorruptRecords: 1}, s.Snapshot())
	})

	t.Run("Nil is a no-op", func(t *testing.T) {
		var s *Session
		assert.NotPanics(t, func() {
			s.Load()
			s.Login()
			s.Logout()
			s.Corrupt()
		})
		assert.Equal(t, Snapshot{}, s.Snapshot())
	})
}
