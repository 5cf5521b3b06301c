package mech

import (
	"fmt"
	"os"
	"time"

	"github.com/kinetics-io/mech2ck/internal/cache"
	"github.com/kinetics-io/mech2ck/internal/model"
)

// Loader loads mechanisms, optionally through a cache keyed by path and file
// metadata. With a nil cache every Load parses from disk.
type Loader struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewLoader creates a loader backed by the given cache
func NewLoader(c cache.Cache, ttl time.Duration) *Loader {
	return &Loader{cache: c, ttl: ttl}
}

// Load returns the mechanism stored at path. Repeated loads of an unchanged
// file return the cached parse.
func (l *Loader) Load(path string) (*model.Mechanism, error) {
	if l == nil || l.cache == nil {
		return Load(path)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat mechanism: %w", err)
	}

	key := cache.Key(path, fi)
	if v, ok := l.cache.Get(key); ok {
		if m, ok := v.(*model.Mechanism); ok {
			return m, nil
		}
	}

	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.cache.Set(key, m, l.ttl)
	return m, nil
}
