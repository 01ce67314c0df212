package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mmisra/sales-dashboard-api/infrastructure/dataset"
	"github.com/mmisra/sales-dashboard-api/internal/domain"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/mmisra/sales-dashboard-api/pkg/apiErrors"
	"github.com/mmisra/sales-dashboard-api/pkg/log"
	"github.com/mmisra/sales-dashboard-api/pkg/utils"
)

const exportFilename = "filtered_sales_data.csv"

// parseFilterSpec reads the sidebar state from the query string:
// start_date/end_date as yyyy-mm-dd, the multi-selects comma-separated.
func parseFilterSpec(r *http.Request) (*domain.FilterSpec, error) {
	query := r.URL.Query()

	dateFrom, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, err
	}

	dateTo, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, err
	}

	return &domain.FilterSpec{
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Categories: utils.ParseCSVList(query.Get("categories")),
		Regions:    utils.ParseCSVList(query.Get("regions")),
		Segments:   utils.ParseCSVList(query.Get("segments")),
	}, nil
}

// writeDatasetError maps pipeline failures to API error codes.
func writeDatasetError(w http.ResponseWriter, err error) {
	if dataset.IsLoadError(err) {
		apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

// GetDashboard runs a full recompute pass for the requested filters and
// returns the view model.
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilterSpec(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("dashboard: invalid filter parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		viewModel, err := service.Recompute(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: recompute failed")
			writeDatasetError(w, err)
			return
		}

		if viewModel.Empty {
			logger.Info("dashboard: filters excluded all rows")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(viewModel); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExportDashboard streams the full filtered subset as a CSV attachment.
func ExportDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilterSpec(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("dashboard: invalid export parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		data, err := service.ExportCSV(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: export failed")
			if dataset.IsLoadError(err) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrDatasetExport, err.Error(), nil)
			}
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
		if _, err := w.Write(data); err != nil {
			logger.WithError(err).Error("dashboard: failed to write export")
		}
	})
}

// GetFilterOptions returns the sidebar options derived from the dataset.
func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.FilterOptions(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute filter options")
			writeDatasetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode options")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
