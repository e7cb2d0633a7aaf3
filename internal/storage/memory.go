package storage

import (
	"context"
	"sync"
)

// Memory keeps the blob in process memory. It backs tests and ephemeral
// runs, and can be armed to fail saves for failure-path testing.
type Memory struct {
	mu      sync.Mutex
	blob    []byte
	saveErr error
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.blob == nil {
		return nil, nil
	}
	out := make([]byte, len(m.blob))
	copy(out, m.blob)
	return out, nil
}

func (m *Memory) Save(ctx context.Context, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	m.blob = make([]byte, len(blob))
	copy(m.blob, blob)
	return nil
}

// FailSavesWith makes every subsequent Save return err. Pass nil to restore
// normal operation.
func (m *Memory) FailSavesWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Bytes returns a copy of the currently stored blob (nil if none was saved).
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.blob == nil {
		return nil
	}
	out := make([]byte, len(m.blob))
	copy(out, m.blob)
	return out
}
