package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
    "time"
)

// Store is the byte-level cache the remote generators read through. A miss is
// reported as ok=false with a nil error; errors are reserved for a broken
// backend and callers treat them as a miss.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
}

// LLMCache stores model responses on disk keyed by a normalized prompt digest
// and model name.
type LLMCache struct {
    Dir         string
    // StrictPerms, when true, enforces 0700 on cache directories and 0600 on
    // files.
    StrictPerms bool
}

var _ Store = (*LLMCache)(nil)

func (c *LLMCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
    perm := os.FileMode(0o755)
    if c.StrictPerms {
        perm = 0o700
    }
    if err := os.MkdirAll(c.Dir, perm); err != nil {
        return err
    }
    if c.StrictPerms {
        if info, err := os.Stat(c.Dir); err == nil && info.Mode()&0o777 != 0o700 {
            _ = os.Chmod(c.Dir, 0o700)
        }
    }
    return nil
}

// KeyFrom builds a cache key from model and prompt digest.
func KeyFrom(model string, prompt string) string {
	h := sha256.Sum256([]byte(model + "\n\n" + prompt))
	return hex.EncodeToString(h[:])
}

func (c *LLMCache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".json")
}

// Get returns cached bytes if present. A hit refreshes the file mtime so
// EnforceLLMCacheLimits evicts least recently used entries first.
func (c *LLMCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := c.ensureDir(); err != nil {
		return nil, false, err
	}
	p := c.pathFor(key)
    b, err := os.ReadFile(p)
    if errors.Is(err, fs.ErrNotExist) {
        return nil, false, nil
    }
    if err != nil {
        return nil, false, err
    }
    now := time.Now()
    _ = os.Chtimes(p, now, now)
	return b, true, nil
}

// Save writes bytes through a temp file and rename so concurrent readers
// never see a partial entry.
func (c *LLMCache) Save(_ context.Context, key string, data []byte) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
    mode := os.FileMode(0o644)
    if c.StrictPerms {
        mode = 0o600
    }
    tmp, err := os.CreateTemp(c.Dir, key+".*.tmp")
    if err != nil {
        return err
    }
    name := tmp.Name()
    _, werr := tmp.Write(data)
    cerr := tmp.Close()
    if err := errors.Join(werr, cerr, os.Chmod(name, mode)); err != nil {
        _ = os.Remove(name)
        return err
    }
    if err := os.Rename(name, c.pathFor(key)); err != nil {
        _ = os.Remove(name)
        return err
    }
    return nil
}
