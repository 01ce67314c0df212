package domain

import "time"

// SalesRecord represents one sales transaction loaded from the dataset file.
// Revenue is stored denormalized in the source data (derivable from unit
// price, quantity and discount) and is taken as-is.
type SalesRecord struct {
	OrderDate     time.Time `json:"order_date"`
	Category      string    `json:"category"`
	Region        string    `json:"region"`
	Segment       string    `json:"segment"`
	PaymentMethod string    `json:"payment_method"`
	Product       string    `json:"product"`
	UnitPrice     float64   `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	Discount      float64   `json:"discount"`
	Revenue       float64   `json:"revenue"`
}

// SalesTable is the full in-memory dataset. It is read-only after load;
// consumers must never mutate Records.
type SalesTable struct {
	Records []SalesRecord
}

// Len returns the number of records in the table.
func (t *SalesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}
