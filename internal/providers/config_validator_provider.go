package providers

import (
	"errors"
	"lifedash/internal/structures"

	"github.com/gookit/validate"
)

var (
	ErrStoragePathRequired = errors.New("storage.path is required for file and sqlite drivers")
	ErrBackupConfig        = errors.New("backup.dir and a positive backup.interval are required when backups are enabled")
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	if !v.Validate() {
		return v.Errors
	}
	if c.conf.Storage.Driver != structures.StorageMemory && c.conf.Storage.Path == "" {
		return ErrStoragePathRequired
	}
	if c.conf.Backup.Enabled && (c.conf.Backup.Dir == "" || c.conf.Backup.Interval <= 0) {
		return ErrBackupConfig
	}
	return nil
}
