package aggregating

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	assert.NoError(t, err)
	return d
}

func TestSummarize(t *testing.T) {
	rows := []domain.SalesRecord{
		{OrderDate: date(t, "2024-01-05"), Category: "Electronics", Segment: "Consumer", Quantity: 2, Discount: 10, Revenue: 100},
		{OrderDate: date(t, "2024-01-20"), Category: "Electronics", Segment: "Corporate", Quantity: 1, Discount: 0, Revenue: 30},
	}

	kpis := Summarize(rows)

	assert.Equal(t, 130.0, kpis.TotalRevenue)
	assert.Equal(t, 65.0, kpis.AvgOrderValue)
	assert.Equal(t, 2, kpis.OrderCount)
	assert.Equal(t, 10.0, kpis.TotalDiscount)
	assert.Equal(t, 3, kpis.TotalQuantity)
	assert.Equal(t, 2, kpis.DistinctSegments)
	assert.Equal(t, 1, kpis.DiscountedOrders)
}

func TestSummarize_EmptySubsetYieldsZeroes(t *testing.T) {
	assert.Equal(t, domain.KPISummary{}, Summarize(nil))
	assert.Equal(t, domain.KPISummary{}, Summarize([]domain.SalesRecord{}))
}

func TestRevenueByCategory(t *testing.T) {
	rows := []domain.SalesRecord{
		{Category: "Electronics", Revenue: 100},
		{Category: "Clothing", Revenue: 250},
		{Category: "Electronics", Revenue: 30},
	}

	points := RevenueByCategory(rows)

	assert.Equal(t, []domain.SeriesPoint{
		{Label: "Clothing", Value: 250},
		{Label: "Electronics", Value: 130},
	}, points)
}

func TestRevenueByCategory_TotalsMatchOverallRevenue(t *testing.T) {
	rows := make([]domain.SalesRecord, 0, 50)
	var expected float64
	for i := 0; i < 50; i++ {
		revenue := float64(i) * 3.17
		rows = append(rows, domain.SalesRecord{
			Category: fmt.Sprintf("category-%d", i%7),
			Revenue:  revenue,
		})
		expected += revenue
	}

	var total float64
	for _, p := range RevenueByCategory(rows) {
		total += p.Value
	}

	assert.InDelta(t, expected, total, 0.1)
}

func TestMonthlyTrend_ChronologicalAcrossYearBoundary(t *testing.T) {
	rows := []domain.SalesRecord{
		{OrderDate: date(t, "2024-01-15"), Revenue: 20},
		{OrderDate: date(t, "2023-12-01"), Revenue: 50},
		{OrderDate: date(t, "2024-01-02"), Revenue: 10},
		{OrderDate: date(t, "2024-03-09"), Revenue: 5},
	}

	points := MonthlyTrend(rows)

	assert.Equal(t, []domain.SeriesPoint{
		{Label: "12-2023", Value: 50},
		{Label: "01-2024", Value: 30},
		{Label: "03-2024", Value: 5},
	}, points)
}

func TestPaymentDistribution_CountsDescending(t *testing.T) {
	rows := []domain.SalesRecord{
		{PaymentMethod: "PayPal", Revenue: 500},
		{PaymentMethod: "Credit Card", Revenue: 10},
		{PaymentMethod: "Credit Card", Revenue: 20},
		{PaymentMethod: "Debit Card", Revenue: 990},
		{PaymentMethod: "Credit Card", Revenue: 30},
	}

	points := PaymentDistribution(rows)

	assert.Equal(t, []domain.SeriesPoint{
		{Label: "Credit Card", Value: 3},
		{Label: "PayPal", Value: 1},
		{Label: "Debit Card", Value: 1},
	}, points)
}

func TestTopProducts(t *testing.T) {
	t.Run("truncates to the limit", func(t *testing.T) {
		rows := make([]domain.SalesRecord, 0, 12)
		for i := 0; i < 12; i++ {
			rows = append(rows, domain.SalesRecord{
				Product: fmt.Sprintf("product-%d", i),
				Revenue: float64(100 - i),
			})
		}

		points := TopProducts(rows, 10)

		assert.Len(t, points, 10)
		assert.Equal(t, "product-0", points[0].Label)
		assert.Equal(t, "product-9", points[9].Label)
	})

	t.Run("fewer products than the limit are not padded", func(t *testing.T) {
		rows := []domain.SalesRecord{
			{Product: "Laptop", Revenue: 100},
			{Product: "Mouse", Revenue: 30},
		}

		points := TopProducts(rows, 10)

		assert.Equal(t, []domain.SeriesPoint{
			{Label: "Laptop", Value: 100},
			{Label: "Mouse", Value: 30},
		}, points)
	})

	t.Run("empty subset yields empty series", func(t *testing.T) {
		assert.Empty(t, TopProducts(nil, 10))
	})
}

func TestSegmentAnalysisAndRegionDistribution(t *testing.T) {
	rows := []domain.SalesRecord{
		{Region: "North", Segment: "Consumer", Revenue: 100},
		{Region: "South", Segment: "Consumer", Revenue: 40},
		{Region: "North", Segment: "Home Office", Revenue: 25},
	}

	assert.Equal(t, []domain.SeriesPoint{
		{Label: "North", Value: 125},
		{Label: "South", Value: 40},
	}, RegionDistribution(rows))

	assert.Equal(t, []domain.SeriesPoint{
		{Label: "Consumer", Value: 140},
		{Label: "Home Office", Value: 25},
	}, SegmentAnalysis(rows))
}
