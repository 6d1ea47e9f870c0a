package storage

import (
	"fmt"
	json "github.com/goccy/go-json"
	"lifedash/internal/providers"
	"lifedash/internal/storage/interfaces"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const fileFormatVersion = 1

// fileEnvelope is the on-disk format, zstd-compressed.
type fileEnvelope struct {
	Version int               `json:"version"`
	Items   map[string]string `json:"items"`
}

// FileStore keeps every entry in memory and rewrites the whole file on each change.
type FileStore struct {
	mu         sync.RWMutex
	path       string
	quota      int
	data       map[string]string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	closed     bool
}

func NewFileStore(path string, quota int, compressor interfaces.CompressorInterface, logger providers.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create store dir: %w", err)
	}
	fs := &FileStore{
		path:       path,
		quota:      quota,
		data:       make(map[string]string),
		compressor: compressor,
		logger:     logger,
	}
	data, err := fs.readFile()
	if err != nil {
		return nil, err
	}
	fs.data = data
	return fs, nil
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return "", false, ErrClosed
	}
	val, ok := f.data[key]
	return val, ok, nil
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if !fitsQuota(f.data, f.quota, key, value) {
		return ErrQuotaExceeded
	}

	old, existed := f.data[key]
	f.data[key] = value
	if err := f.persistLocked(); err != nil {
		// keep memory in line with what is on disk
		if existed {
			f.data[key] = old
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	old, existed := f.data[key]
	if !existed {
		return nil
	}
	delete(f.data, key)
	if err := f.persistLocked(); err != nil {
		f.data[key] = old
		return err
	}
	return nil
}

func (f *FileStore) Keys() ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return nil, ErrClosed
	}
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Reload re-reads the file and reports whether its content differs from memory.
func (f *FileStore) Reload() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false, ErrClosed
	}
	data, err := f.readFile()
	if err != nil {
		return false, err
	}
	if maps.Equal(data, f.data) {
		return false, nil
	}
	f.data = data
	return true, nil
}

func (f *FileStore) persistLocked() error {
	jsonData, err := json.Marshal(fileEnvelope{Version: fileFormatVersion, Items: f.data})
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}
	return WriteFileAtomic(f.path, data)
}

func (f *FileStore) readFile() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return make(map[string]string), nil
	}

	if IsCompressed(raw) {
		decompressed, err := f.compressor.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", f.path, err)
		}
		var env fileEnvelope
		if err := json.Unmarshal(decompressed, &env); err != nil {
			return nil, fmt.Errorf("decode %s: %w", f.path, err)
		}
		if env.Items == nil {
			env.Items = make(map[string]string)
		}
		return env.Items, nil
	}

	// Plain JSON object of key -> value, as written by a localStorage dump.
	f.logger.Warnf(providers.TypeApp, "Store file %s is not compressed, reading it as a plain JSON dump", f.path)
	var items map[string]string
	if err := json.Unmarshal(raw, &items); err != nil {
		f.logger.Warnf(providers.TypeApp, "Store file %s could not be migrated", f.path)
		return nil, err
	}
	if items == nil {
		items = make(map[string]string)
	}
	return items, nil
}

// WriteFileAtomic writes to a temp file, syncs it and renames it over fileName.
func WriteFileAtomic(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
