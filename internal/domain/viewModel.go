package domain

import "time"

// Chart kinds understood by the dashboard frontend.
const (
	ChartKindBar   = "bar"
	ChartKindLine  = "line"
	ChartKindDonut = "donut"
)

// KPISummary holds the scalar metrics rendered as cards on the dashboard.
type KPISummary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	AvgOrderValue    float64 `json:"avg_order_value"`
	OrderCount       int     `json:"order_count"`
	TotalDiscount    float64 `json:"total_discount"`
	TotalQuantity    int     `json:"total_quantity"`
	DistinctSegments int     `json:"distinct_segments"`
	DiscountedOrders int     `json:"discounted_orders"`
}

// SeriesPoint is one (label, value) pair of a grouped aggregate, ready for
// direct charting.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartData is an ordered series plus the chart metadata the frontend needs.
type ChartData struct {
	Title  string        `json:"title"`
	Kind   string        `json:"kind"`
	Points []SeriesPoint `json:"points"`
}

// DashboardViewModel is the complete result of one recompute pass: KPIs,
// chart series and the capped table, computed over the filtered subset.
type DashboardViewModel struct {
	KPIs                KPISummary    `json:"kpis"`
	RevenueByCategory   ChartData     `json:"revenue_by_category"`
	MonthlyTrend        ChartData     `json:"monthly_trend"`
	RegionDistribution  ChartData     `json:"region_distribution"`
	SegmentAnalysis     ChartData     `json:"segment_analysis"`
	PaymentDistribution ChartData     `json:"payment_distribution"`
	TopProducts         ChartData     `json:"top_products"`
	TableRows           []SalesRecord `json:"table_rows"`
	TotalRows           int           `json:"total_rows"`
	Empty               bool          `json:"empty"`
	Filters             *FilterSpec   `json:"filters"`
}

// FilterOptions feeds the sidebar controls: the distinct values of each
// dimension and the date bounds of the full dataset.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Regions    []string `json:"regions"`
	Segments   []string `json:"segments"`
	MinDate    string   `json:"min_date"` // yyyy-mm-dd
	MaxDate    string   `json:"max_date"` // yyyy-mm-dd
}

// DatasetStatus describes the cached dataset currently in memory.
type DatasetStatus struct {
	Path      string    `json:"path"`
	Rows      int       `json:"rows"`
	SizeBytes int64     `json:"size_bytes"`
	ModTime   time.Time `json:"mod_time"`
	LoadedAt  time.Time `json:"loaded_at"`
}
