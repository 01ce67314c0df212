package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/presetting"
	"github.com/mmisra/sales-dashboard-api/pkg/apiErrors"
	"github.com/mmisra/sales-dashboard-api/pkg/log"
)

type createPresetRequest struct {
	Name    string             `json:"name"`
	Filters *domain.FilterSpec `json:"filters"`
}

// CreatePreset saves the current filter spec under a name.
func CreatePreset(service presetting.PresetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req createPresetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		preset, err := service.Create(req.Name, req.Filters)
		if err != nil {
			if errors.Is(err, presetting.ErrMissingName) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("presets: failed to create preset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"preset_id":   preset.ID,
			"preset_name": preset.Name,
		}).Info("presets: preset created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(preset); err != nil {
			logger.WithError(err).Error("presets: failed to encode response")
		}
	})
}

// ListPresets returns all saved presets in creation order.
func ListPresets(service presetting.PresetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.List()); err != nil {
			logger.WithError(err).Error("presets: failed to encode list")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetPreset returns one preset by ID.
func GetPreset(service presetting.PresetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		preset, err := service.Get(id)
		if err != nil {
			if errors.Is(err, presetting.ErrPresetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrPresetNotFound, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("presets: failed to get preset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(preset); err != nil {
			logger.WithError(err).Error("presets: failed to encode preset")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// DeletePreset removes one preset by ID.
func DeletePreset(service presetting.PresetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(id); err != nil {
			if errors.Is(err, presetting.ErrPresetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrPresetNotFound, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("presets: failed to delete preset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithField("preset_id", id).Info("presets: preset deleted")
		w.WriteHeader(http.StatusNoContent)
	})
}
