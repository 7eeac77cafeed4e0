package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Manager keys private stores by session ID so one browser session never
// sees another's records. Idle sessions are swept on a cron schedule to
// bound memory in a process that outlives any single session.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
	ttl    time.Duration
	cron   *cron.Cron
	logger *zap.Logger
}

// NewManager builds a manager sweeping sessions idle longer than ttl.
// sweepSpec is a cron expression ("@every 10m"); empty disables the sweep,
// which tests use.
func NewManager(ttl time.Duration, sweepSpec string, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		stores: make(map[string]*Store),
		ttl:    ttl,
		logger: logger,
	}
	if sweepSpec != "" {
		m.cron = cron.New()
		if _, err := m.cron.AddFunc(sweepSpec, m.Sweep); err != nil {
			return nil, fmt.Errorf("invalid sweep schedule %q: %w", sweepSpec, err)
		}
		m.cron.Start()
	}
	return m, nil
}

// NewID issues a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Get returns the store for id, creating it on first sight, and marks the
// session as active.
func (m *Manager) Get(id string) *Store {
	m.mu.Lock()
	st, ok := m.stores[id]
	if !ok {
		st = NewStore()
		m.stores[id] = st
	}
	m.mu.Unlock()
	st.touch(time.Now())
	return st
}

// Sweep drops sessions not seen within the TTL.
func (m *Manager) Sweep() {
	cutoff := time.Now().Add(-m.ttl)
	m.mu.Lock()
	removed := 0
	for id, st := range m.stores {
		if st.seen().Before(cutoff) {
			delete(m.stores, id)
			removed++
		}
	}
	remaining := len(m.stores)
	m.mu.Unlock()
	if removed > 0 {
		m.logger.Info("swept idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", remaining))
	}
}

// Stop halts the background sweep.
func (m *Manager) Stop() {
	if m.cron != nil {
		m.cron.Stop()
	}
}
