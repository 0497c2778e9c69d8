package sdkgen

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Mohsinsiddi/w3sdk/internal/log"
	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes Generate by request content. Concurrent callers asking for
// the same key share one computation. Cached results are shared and must be
// treated as read-only.
type Cache struct {
	mu      sync.Mutex
	results map[string]*Result
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{results: make(map[string]*Result)}
}

// Key returns the keccak-256 hex digest of the normalized request.
func Key(req Request) (string, error) {
	req = req.Normalize()
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Generate returns the cached result for req, computing it at most once.
func (c *Cache) Generate(ctx context.Context, req Request) (*Result, error) {
	key, err := Key(req)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	res, ok := c.results[key]
	c.mu.Unlock()
	if ok {
		log.L(ctx).WithField("key", key[:12]).Debug("sdk cache hit")
		return res, nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		c.mu.Lock()
		res, ok := c.results[key]
		c.mu.Unlock()
		if ok {
			return res, nil
		}
		res, err := Generate(req)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.results[key] = res
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	log.L(ctx).WithField("key", key[:12]).WithField("shared", shared).Debug("sdk generated")
	return v.(*Result), nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}
