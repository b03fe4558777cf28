package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMapFile is a JSON object on disk decoded into a map. The map is
// reloaded whenever the file modification time changes, so operators can
// edit the file while the server runs. Writes go through a temporary file
// and a rename.
type jsonMapFile[T any] struct {
	path string

	mu      sync.RWMutex
	modTime time.Time
	size    int64
	data    map[string]T
}

func newJSONMapFile[T any](path string) *jsonMapFile[T] {
	return &jsonMapFile[T]{path: path, data: map[string]T{}}
}

// get returns the entry for key after refreshing the cache.
func (f *jsonMapFile[T]) get(key string) (T, bool, error) {
	if err := f.refresh(); err != nil {
		var zero T
		return zero, false, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.data[key]
	return v, ok, nil
}

// put stores value under key and persists the whole map.
func (f *jsonMapFile[T]) put(key string, value T) error {
	if err := f.refresh(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = value
	return f.persistLocked()
}

func (f *jsonMapFile[T]) refresh() error {
	info, err := os.Stat(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	f.mu.RLock()
	fresh := info.ModTime().Equal(f.modTime) && info.Size() == f.size
	f.mu.RUnlock()
	if fresh {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadLocked()
}

func (f *jsonMapFile[T]) loadLocked() error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	data := map[string]T{}
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDecodingRecord, f.path, err)
		}
	}

	info, err := os.Stat(f.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	f.data = data
	f.modTime = info.ModTime()
	f.size = info.Size()
	return nil
}

func (f *jsonMapFile[T]) persistLocked() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	info, err := os.Stat(f.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	f.modTime = info.ModTime()
	f.size = info.Size()
	return nil
}
