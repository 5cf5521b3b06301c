package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// Cache defines the interface for caching parsed mechanisms
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key generates a cache key from a mechanism path and its file metadata, so
// an edited file never serves a stale parse.
func Key(path string, fi os.FileInfo) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", path, fi.Size(), fi.ModTime().UnixNano())))
	return "mech2ck:v1:" + hex.EncodeToString(h[:])
}
