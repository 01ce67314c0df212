// Package aggregating computes the scalar KPIs and the grouped series of
// the dashboard. All reductions are pure functions over a row subset; an
// empty subset yields zero KPIs and empty series, never an error.
package aggregating

import (
	"sort"
	"time"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
	"github.com/mmisra/sales-dashboard-api/pkg/utils"
)

// monthLabelLayout renders year-month group keys as mm-yyyy.
const monthLabelLayout = "01-2006"

// Summarize computes the scalar KPI cards over the given subset.
func Summarize(rows []domain.SalesRecord) domain.KPISummary {
	if len(rows) == 0 {
		return domain.KPISummary{}
	}

	var totalRevenue, totalDiscount float64
	var totalQuantity, discountedOrders int
	segments := make(map[string]struct{})

	for _, r := range rows {
		totalRevenue += r.Revenue
		totalDiscount += r.Discount
		totalQuantity += r.Quantity
		if r.Discount > 0 {
			discountedOrders++
		}
		segments[r.Segment] = struct{}{}
	}

	return domain.KPISummary{
		TotalRevenue:     utils.RoundWithTwoDecimalPlace(totalRevenue),
		AvgOrderValue:    utils.RoundWithTwoDecimalPlace(totalRevenue / float64(len(rows))),
		OrderCount:       len(rows),
		TotalDiscount:    utils.RoundWithTwoDecimalPlace(totalDiscount),
		TotalQuantity:    totalQuantity,
		DistinctSegments: len(segments),
		DiscountedOrders: discountedOrders,
	}
}

// RevenueByCategory sums revenue per category, descending by revenue.
func RevenueByCategory(rows []domain.SalesRecord) []domain.SeriesPoint {
	points := sumBy(rows, func(r domain.SalesRecord) string { return r.Category })
	sortByValueDesc(points)
	return points
}

// MonthlyTrend sums revenue per year-month, in chronological order.
func MonthlyTrend(rows []domain.SalesRecord) []domain.SeriesPoint {
	totals := make(map[time.Time]float64)
	for _, r := range rows {
		month := time.Date(r.OrderDate.Year(), r.OrderDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		totals[month] += r.Revenue
	}

	months := make([]time.Time, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	points := make([]domain.SeriesPoint, 0, len(months))
	for _, month := range months {
		points = append(points, domain.SeriesPoint{
			Label: month.Format(monthLabelLayout),
			Value: utils.RoundWithTwoDecimalPlace(totals[month]),
		})
	}
	return points
}

// RegionDistribution sums revenue per region, descending by revenue.
func RegionDistribution(rows []domain.SalesRecord) []domain.SeriesPoint {
	points := sumBy(rows, func(r domain.SalesRecord) string { return r.Region })
	sortByValueDesc(points)
	return points
}

// SegmentAnalysis sums revenue per customer segment, descending by revenue.
func SegmentAnalysis(rows []domain.SalesRecord) []domain.SeriesPoint {
	points := sumBy(rows, func(r domain.SalesRecord) string { return r.Segment })
	sortByValueDesc(points)
	return points
}

// PaymentDistribution counts orders per payment method, descending by count.
func PaymentDistribution(rows []domain.SalesRecord) []domain.SeriesPoint {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, r := range rows {
		if _, seen := counts[r.PaymentMethod]; !seen {
			order = append(order, r.PaymentMethod)
		}
		counts[r.PaymentMethod]++
	}

	points := make([]domain.SeriesPoint, 0, len(order))
	for _, method := range order {
		points = append(points, domain.SeriesPoint{Label: method, Value: float64(counts[method])})
	}
	sortByValueDesc(points)
	return points
}

// TopProducts sums revenue per product, descending, truncated to limit.
// Fewer distinct products than the limit returns exactly that many entries.
func TopProducts(rows []domain.SalesRecord, limit int) []domain.SeriesPoint {
	points := sumBy(rows, func(r domain.SalesRecord) string { return r.Product })
	sortByValueDesc(points)

	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	return points
}

// sumBy groups rows by key and sums revenue, preserving first-seen order
// so ties stay deterministic after sorting.
func sumBy(rows []domain.SalesRecord, key func(domain.SalesRecord) string) []domain.SeriesPoint {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, r := range rows {
		k := key(r)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += r.Revenue
	}

	points := make([]domain.SeriesPoint, 0, len(order))
	for _, k := range order {
		points = append(points, domain.SeriesPoint{
			Label: k,
			Value: utils.RoundWithTwoDecimalPlace(totals[k]),
		})
	}
	return points
}

func sortByValueDesc(points []domain.SeriesPoint) {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Value > points[j].Value })
}
