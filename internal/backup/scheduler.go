package backup

import (
	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
	"lifedash/internal/backup/interfaces"
	"lifedash/internal/providers"
	"lifedash/internal/structures"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Scheduler writes a compressed snapshot to the backup directory on a fixed interval
// and keeps only the newest backup.keep files.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
	running     atomic.Bool
	lastBackup  atomic.String
	now         func() time.Time
}

func (s *Scheduler) Init() {
	if !s.config.Backup.Enabled {
		s.logger.Infof(providers.TypeApp, "Scheduled backups disabled")
		return
	}
	if !s.running.CompareAndSwap(false, true) {
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Backup.Interval), func() {
		// failures are logged by Persist
		_ = s.Persist()
	})
	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Scheduled backups every %s to %s", s.config.Backup.Interval, s.config.Backup.Dir)
}

func (s *Scheduler) Stop() {
	if s.running.CompareAndSwap(true, false) && s.cron != nil {
		s.cron.Stop()
	}
}

// Persist writes one backup now. It is a no-op when backups are disabled.
func (s *Scheduler) Persist() error {
	if !s.config.Backup.Enabled {
		return nil
	}

	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	dir := s.config.Backup.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while creating backup dir %s: %s", dir, err)
		return err
	}

	path := filepath.Join(dir, archiveFileName(s.now()))
	if err := s.fileManager.SaveToFile(path); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while writing backup: %s", err)
		return err
	}
	s.lastBackup.Store(path)
	s.logger.Infof(providers.TypeApp, "Backup written to %s", path)

	if err := s.fileManager.Prune(dir, s.config.Backup.Keep); err != nil {
		s.logger.Warnf(providers.TypeApp, "Error while pruning old backups: %s", err)
	}
	return nil
}

// LastBackup is the path of the most recent scheduled backup, or "".
func (s *Scheduler) LastBackup() string {
	return s.lastBackup.Load()
}

func NewScheduler(config *structures.Config, logger providers.Logger, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		fileManager: fileManager,
		now:         time.Now,
	}
}
