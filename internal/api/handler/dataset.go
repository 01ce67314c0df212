package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mmisra/sales-dashboard-api/internal/scheduler"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/mmisra/sales-dashboard-api/pkg/log"
)

// GetDatasetStatus reports the cached dataset and the refresh scheduler.
func GetDatasetStatus(service dashboarding.Dashboarder, refreshService *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status, err := service.DatasetStatus(r.Context())
		if err != nil {
			logger.WithError(err).Error("dataset: failed to read status")
			writeDatasetError(w, err)
			return
		}

		response := map[string]any{
			"dataset": status,
		}
		if refreshService != nil {
			response["refresh"] = refreshService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dataset: failed to encode status")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ReloadDataset drops the cache and re-reads the source file.
func ReloadDataset(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset: manual reload requested")

		status, err := service.ReloadDataset(r.Context())
		if err != nil {
			logger.WithError(err).Error("dataset: reload failed")
			writeDatasetError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"rows": status.Rows,
		}).Info("dataset: reload finished")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("dataset: failed to encode reload response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
