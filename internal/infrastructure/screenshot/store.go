// Package screenshot stores tab thumbnails as files named after the tab id.
package screenshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	filePrefix = "tab_"
	fileSuffix = ".jpg"

	dirPerm  = 0750
	filePerm = 0600
)

// Store implements port.ScreenshotStore on a directory.
type Store struct {
	dir string
}

var _ port.ScreenshotStore = (*Store)(nil)

// NewStore creates a screenshot store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns dir/tab_<id>.jpg.
func (s *Store) Path(tabID entity.TabID) string {
	return filepath.Join(s.dir, filePrefix+string(tabID)+fileSuffix)
}

// Save replaces the thumbnail of tabID.
func (s *Store) Save(ctx context.Context, tabID entity.TabID, img []byte) error {
	if len(img) == 0 {
		return nil
	}
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create screenshot dir: %w", err)
	}
	path := s.Path(tabID)
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, img, filePerm); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to store screenshot: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("tab_id", string(tabID)).Int("bytes", len(img)).Msg("screenshot saved")
	return nil
}

// Delete removes the thumbnail of tabID. A missing file is not an error.
func (s *Store) Delete(_ context.Context, tabID entity.TabID) error {
	if err := os.Remove(s.Path(tabID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete screenshot: %w", err)
	}
	return nil
}

// CleanOrphans removes thumbnails whose tab is not in live.
func (s *Store) CleanOrphans(ctx context.Context, live []entity.TabID) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list screenshots: %w", err)
	}

	keep := make(map[entity.TabID]struct{}, len(live))
	for _, id := range live {
		keep[id] = struct{}{}
	}

	removed := 0
	for _, e := range entries {
		id, ok := tabIDFromName(e.Name())
		if e.IsDir() || !ok {
			continue
		}
		if _, live := keep[id]; live {
			continue
		}
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logging.FromContext(ctx).Warn().Err(err).Str("file", e.Name()).Msg("failed to remove orphan screenshot")
			continue
		}
		removed++
	}
	if removed > 0 {
		logging.FromContext(ctx).Info().Int("count", removed).Msg("removed orphan screenshots")
	}
	return removed, nil
}

func tabIDFromName(name string) (entity.TabID, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	return entity.TabID(id), id != ""
}
