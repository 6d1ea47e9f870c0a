package backup

import (
	"fmt"
	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/services"
	"lifedash/internal/storage"
	"lifedash/internal/storage/interfaces"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileManager writes snapshots to backup files and reads them back.
// Files ending in .zst are zstd-compressed.
type FileManager struct {
	service    services.SnapshotServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.SnapshotServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

// SaveToFile takes a fresh snapshot and writes it to fileName.
func (f *FileManager) SaveToFile(fileName string) error {
	return f.Save(fileName, f.service.GetSnapshot())
}

func (f *FileManager) Save(fileName string, snap *models.AppSnapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if strings.HasSuffix(fileName, ".zst") {
		data, err = f.compressor.Compress(data)
		if err != nil {
			return err
		}
	}
	return storage.WriteFileAtomic(fileName, data)
}

// Load reads a backup file, decompressing it when it carries a zstd header.
func (f *FileManager) Load(fileName string) (models.Candidate, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	if storage.IsCompressed(data) {
		data, err = f.compressor.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
	}
	return ParseUpload(data)
}

// Prune deletes the oldest scheduled backups in dir so that at most keep remain.
func (f *FileManager) Prune(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isArchiveFileName(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
		f.logger.Debugf(providers.TypeApp, "Removed old backup %s", name)
	}
	return nil
}
