package dashboarding

import (
	"context"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
)

// DatasetProvider supplies the cached sales table and its cache controls.
type DatasetProvider interface {
	// Table returns the in-memory table, reloading it when the source file changed
	Table(ctx context.Context) (*domain.SalesTable, error)

	// Invalidate drops the cached table
	Invalidate()

	// Status describes the cached dataset
	Status() *domain.DatasetStatus
}

// Dashboarder is the presentation boundary of the core pipeline: one full
// pull-based recompute per call, no state between calls.
type Dashboarder interface {
	// Recompute runs filter → aggregate over the cached table and builds the view model
	Recompute(ctx context.Context, filters *domain.FilterSpec) (*domain.DashboardViewModel, error)

	// ExportCSV serializes the full filtered subset with the input column schema
	ExportCSV(ctx context.Context, filters *domain.FilterSpec) ([]byte, error)

	// FilterOptions derives the sidebar options from the full dataset
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)

	// DatasetStatus reports the cached dataset, loading it first if needed
	DatasetStatus(ctx context.Context) (*domain.DatasetStatus, error)

	// ReloadDataset forces a re-read of the source file
	ReloadDataset(ctx context.Context) (*domain.DatasetStatus, error)
}
