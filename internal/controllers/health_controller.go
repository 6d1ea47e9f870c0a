package controllers

import (
	"fmt"
	"lifedash/internal/backup/interfaces"
	"lifedash/internal/services"
	"net/http"
	"time"
)

// StoreInfo names the active store driver.
type StoreInfo interface {
	Driver() string
}

type HealthController struct {
	store     StoreInfo
	reloader  services.ReloaderInterface
	scheduler interfaces.SchedulerInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	StoreDriver   string  `json:"store_driver"`
	Reloads       int64   `json:"reloads"`
	LastBackup    string  `json:"last_backup,omitempty"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		StoreDriver:   hc.store.Driver(),
		Reloads:       hc.reloader.Count(),
		LastBackup:    hc.scheduler.LastBackup(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(store StoreInfo, reloader services.ReloaderInterface, scheduler interfaces.SchedulerInterface) *HealthController {
	return &HealthController{
		store:     store,
		reloader:  reloader,
		scheduler: scheduler,
		startTime: time.Now(),
	}
}
