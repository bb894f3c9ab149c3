package storage

import (
	"context"
	"net/http"
	"sync"

	"donorlink-web/internal/session"
)

// Memory keeps every client's storage in process memory, keyed by device id.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]string)}
}

func (m *Memory) For(w http.ResponseWriter, r *http.Request) session.Store {
	return m.Device(DeviceID(w, r))
}

// Device returns the storage of one device.
func (m *Memory) Device(deviceID string) session.Store {
	return &memoryStore{parent: m, device: deviceID}
}

type memoryStore struct {
	parent *Memory
	device string
}

func (s *memoryStore) Load(_ context.Context, key string) (string, bool, error) {
	s.parent.mu.RLock()
	defer s.parent.mu.RUnlock()

	v, ok := s.parent.data[s.device][key]
	return v, ok, nil
}

func (s *memoryStore) Save(_ context.Context, key, value string) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()

	bucket, ok := s.parent.data[s.device]
	if !ok {
		bucket = make(map[string]string)
		s.parent.data[s.device] = bucket
	}
	bucket[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()

	delete(s.parent.data[s.device], key)
	return nil
}
