package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"cftracker/internal/domain/model"
	"cftracker/internal/domain/ports"
)

// MemoryCache is an in-process SubmissionCache used when Redis is not configured.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	submissions []model.Submission
	expiresAt   time.Time
}

var _ ports.SubmissionCache = (*MemoryCache)(nil)

// NewMemory creates a MemoryCache. A non-positive ttl keeps entries forever.
func NewMemory(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, handle string) ([]model.Submission, bool, error) {
	key := strings.ToLower(handle)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.submissions, true, nil
}

func (c *MemoryCache) Set(_ context.Context, handle string, submissions []model.Submission) error {
	e := memoryEntry{submissions: submissions}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[strings.ToLower(handle)] = e
	c.mu.Unlock()
	return nil
}
