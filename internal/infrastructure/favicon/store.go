// Package favicon stores page favicons on disk for history entries.
package favicon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	domainurl "github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	// File permissions for favicon cache.
	diskCacheDirPerm  = 0750
	diskCacheFilePerm = 0600
)

// Store implements port.FaviconStore with one file per domain.
type Store struct {
	dir string

	// memCache holds the bytes last written per domain to skip identical writes.
	memCache map[string][]byte
	mu       sync.Mutex
}

var _ port.FaviconStore = (*Store)(nil)

// NewStore creates a favicon store rooted at dir.
// If dir is empty, Save returns the favicon's own URL and nothing is written.
func NewStore(dir string) *Store {
	return &Store{dir: dir, memCache: make(map[string][]byte)}
}

// DiskPath returns the file holding the favicon of domain.
func (s *Store) DiskPath(domain string) string {
	if s.dir == "" || domain == "" {
		return ""
	}
	return filepath.Join(s.dir, domainurl.FaviconFileName(domain))
}

// Save writes favicon for the domain of pageURL and returns its file URL.
// Favicons without data keep their remote URL.
func (s *Store) Save(ctx context.Context, pageURL string, favicon port.Favicon) (string, error) {
	domain := domainurl.ExtractDomain(pageURL)
	path := s.DiskPath(domain)
	if path == "" || len(favicon.Data) == 0 {
		return favicon.URL, nil
	}
	fileURL := (&url.URL{Scheme: "file", Path: path}).String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.memCache[domain]; ok && bytes.Equal(cached, favicon.Data) {
		// Refresh mtime so Prune keeps favicons still in use.
		now := time.Now()
		if err := os.Chtimes(path, now, now); err == nil {
			return fileURL, nil
		}
	}
	if err := writeAtomic(path, favicon.Data); err != nil {
		return "", fmt.Errorf("failed to save favicon of %s: %w", domain, err)
	}
	s.memCache[domain] = bytes.Clone(favicon.Data)

	logging.FromContext(ctx).Debug().Str("domain", domain).Int("bytes", len(favicon.Data)).Msg("favicon saved")
	return fileURL, nil
}

// Prune removes favicon files last written before the given time.
func (s *Store) Prune(ctx context.Context, before time.Time) (int, error) {
	if s.dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list favicon cache: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".ico") {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(before) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logging.FromContext(ctx).Warn().Err(err).Str("file", e.Name()).Msg("failed to prune favicon")
			continue
		}
		removed++
	}
	// Entries are cheap to rebuild; drop them so pruned domains are rewritten.
	clear(s.memCache)
	return removed, nil
}

// writeAtomic writes data to a temp file and renames it over path.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), diskCacheDirPerm); err != nil {
		return err
	}
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, diskCacheFilePerm); err != nil {
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return err
	}
	return nil
}
