package backup

import (
	"fmt"
	json "github.com/goccy/go-json"
	"lifedash/internal/models"
	"strings"
	"time"
)

const fileNamePrefix = "life-dashboard-backup-"

// EncodeSnapshot renders a snapshot the way it is offered for download.
func EncodeSnapshot(snap *models.AppSnapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// ParseUpload parses an uploaded backup document. Valid JSON that is not an object
// yields a nil Candidate and no error; validation rejects it later.
func ParseUpload(data []byte) (models.Candidate, error) {
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	if models.KindOf(data) != models.KindObject {
		return nil, nil
	}
	var candidate models.Candidate
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if candidate == nil {
		candidate = models.Candidate{}
	}
	return candidate, nil
}

// DefaultFileName is the name offered for a download made at t.
func DefaultFileName(t time.Time) string {
	return fileNamePrefix + t.Format("2006-01-02") + ".json"
}

// archiveFileName names scheduled backups; the timestamp keeps them sortable.
func archiveFileName(t time.Time) string {
	return fileNamePrefix + t.UTC().Format("20060102T150405Z") + ".json.zst"
}

func isArchiveFileName(name string) bool {
	return strings.HasPrefix(name, fileNamePrefix) && strings.HasSuffix(name, ".json.zst")
}
