package controllers

import (
	"errors"
	"io"
	"lifedash/internal/backup"
	"lifedash/internal/providers"
	"lifedash/internal/services"
	"net/http"
	"time"
)

type DataController struct {
	logger  providers.Logger
	service services.SnapshotServiceInterface
	metrics providers.MetricsProviderInterface
	now     func() time.Time
}

func NewDataController(logger providers.Logger, service services.SnapshotServiceInterface, metrics providers.MetricsProviderInterface) *DataController {
	return &DataController{
		logger:  logger,
		service: service,
		metrics: metrics,
		now:     time.Now,
	}
}

func (dc *DataController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := backup.EncodeSnapshot(dc.service.GetSnapshot())
	if err != nil {
		dc.logger.Errorf(providers.TypeApp, "Failed to encode snapshot: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+backup.DefaultFileName(dc.now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (dc *DataController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	candidate, err := backup.ParseUpload(body)
	if err != nil {
		dc.metrics.IncSnapshotOperations("import", providers.ResultRejected)
		http.Error(w, "Invalid JSON file", http.StatusBadRequest)
		return
	}

	if !dc.service.ValidateSnapshot(candidate) {
		dc.logger.Warnf(providers.TypeApp, "Rejected backup with unexpected structure")
		dc.metrics.IncSnapshotOperations("import", providers.ResultRejected)
		http.Error(w, "Invalid backup file format", http.StatusUnprocessableEntity)
		return
	}

	if err = dc.service.RestoreSnapshot(candidate); err != nil {
		http.Error(w, "Data restoration failed. Please check the file format.", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (dc *DataController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := dc.service.ClearAll(); err != nil {
		http.Error(w, "Data deletion failed.", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
