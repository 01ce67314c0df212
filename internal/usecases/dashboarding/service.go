package dashboarding

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mmisra/sales-dashboard-api/infrastructure/dataset"
	"github.com/mmisra/sales-dashboard-api/internal/domain"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/filtering"
)

const (
	// tableRowLimit caps the rows returned for display; the CSV export
	// always carries the full filtered subset
	tableRowLimit = 100

	topProductsLimit = 10
)

type Service struct {
	dataset DatasetProvider
}

func NewService(datasetProvider DatasetProvider) Dashboarder {
	return &Service{
		dataset: datasetProvider,
	}
}

// Recompute runs one full synchronous pass: load cached table, filter,
// aggregate, build the view model.
func (s *Service) Recompute(ctx context.Context, filters *domain.FilterSpec) (*domain.DashboardViewModel, error) {
	table, err := s.dataset.Table(ctx)
	if err != nil {
		return nil, err
	}

	rows := filtering.Apply(table, filters)

	logrus.WithFields(logrus.Fields{
		"table_rows":    table.Len(),
		"filtered_rows": len(rows),
	}).Debug("dashboard: recompute pass")

	viewModel := &domain.DashboardViewModel{
		KPIs: aggregating.Summarize(rows),
		RevenueByCategory: domain.ChartData{
			Title:  "Revenue by Category",
			Kind:   domain.ChartKindBar,
			Points: aggregating.RevenueByCategory(rows),
		},
		MonthlyTrend: domain.ChartData{
			Title:  "Monthly Sales Trend",
			Kind:   domain.ChartKindLine,
			Points: aggregating.MonthlyTrend(rows),
		},
		RegionDistribution: domain.ChartData{
			Title:  "Regional Distribution",
			Kind:   domain.ChartKindDonut,
			Points: aggregating.RegionDistribution(rows),
		},
		SegmentAnalysis: domain.ChartData{
			Title:  "Customer Segments",
			Kind:   domain.ChartKindBar,
			Points: aggregating.SegmentAnalysis(rows),
		},
		PaymentDistribution: domain.ChartData{
			Title:  "Payment Methods",
			Kind:   domain.ChartKindBar,
			Points: aggregating.PaymentDistribution(rows),
		},
		TopProducts: domain.ChartData{
			Title:  "Top 10 Products",
			Kind:   domain.ChartKindBar,
			Points: aggregating.TopProducts(rows, topProductsLimit),
		},
		TotalRows: len(rows),
		Empty:     len(rows) == 0,
		Filters:   filters,
	}

	if len(rows) > tableRowLimit {
		viewModel.TableRows = rows[:tableRowLimit]
	} else {
		viewModel.TableRows = rows
	}

	return viewModel, nil
}

// ExportCSV serializes the full filtered subset using the same column
// schema as the input file.
func (s *Service) ExportCSV(ctx context.Context, filters *domain.FilterSpec) ([]byte, error) {
	table, err := s.dataset.Table(ctx)
	if err != nil {
		return nil, err
	}

	rows := filtering.Apply(table, filters)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(dataset.Header); err != nil {
		return nil, errors.Wrap(err, "writing export header")
	}

	for _, r := range rows {
		record := []string{
			r.OrderDate.Format(time.DateOnly),
			r.Category,
			r.Region,
			r.Segment,
			r.PaymentMethod,
			r.Product,
			strconv.FormatFloat(r.UnitPrice, 'f', 2, 64),
			strconv.Itoa(r.Quantity),
			strconv.FormatFloat(r.Discount, 'f', 2, 64),
			strconv.FormatFloat(r.Revenue, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return nil, errors.Wrap(err, "writing export record")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "flushing export")
	}

	logrus.WithField("rows", len(rows)).Info("dashboard: filtered subset exported")

	return buf.Bytes(), nil
}

// FilterOptions derives the sidebar controls from the full dataset: the
// distinct values of each dimension and the date bounds.
func (s *Service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	table, err := s.dataset.Table(ctx)
	if err != nil {
		return nil, err
	}

	options := &domain.FilterOptions{
		Categories: []string{},
		Regions:    []string{},
		Segments:   []string{},
	}

	if table.Len() == 0 {
		return options, nil
	}

	categories := make(map[string]struct{})
	regions := make(map[string]struct{})
	segments := make(map[string]struct{})

	minDate := table.Records[0].OrderDate
	maxDate := table.Records[0].OrderDate

	for _, r := range table.Records {
		categories[r.Category] = struct{}{}
		regions[r.Region] = struct{}{}
		segments[r.Segment] = struct{}{}

		if r.OrderDate.Before(minDate) {
			minDate = r.OrderDate
		}
		if r.OrderDate.After(maxDate) {
			maxDate = r.OrderDate
		}
	}

	options.Categories = sortedKeys(categories)
	options.Regions = sortedKeys(regions)
	options.Segments = sortedKeys(segments)
	options.MinDate = minDate.Format(time.DateOnly)
	options.MaxDate = maxDate.Format(time.DateOnly)

	return options, nil
}

// DatasetStatus loads the table if needed and reports the cache state.
func (s *Service) DatasetStatus(ctx context.Context) (*domain.DatasetStatus, error) {
	if _, err := s.dataset.Table(ctx); err != nil {
		return nil, err
	}

	return s.dataset.Status(), nil
}

// ReloadDataset drops the cache and re-reads the source file.
func (s *Service) ReloadDataset(ctx context.Context) (*domain.DatasetStatus, error) {
	s.dataset.Invalidate()

	if _, err := s.dataset.Table(ctx); err != nil {
		return nil, err
	}

	return s.dataset.Status(), nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
