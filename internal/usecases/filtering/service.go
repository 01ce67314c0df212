// Package filtering applies the dashboard filter spec to the in-memory
// sales table. Filtering is a pure function of (table, spec) and never
// mutates the source table.
package filtering

import (
	"time"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
)

// Apply returns the rows satisfying the spec, in table order. A row passes
// when its date falls inside [DateFrom, DateTo] inclusive and every
// non-empty selection set contains the row's value. Empty selection sets
// restrict nothing; a from date after the to date yields an empty result.
func Apply(table *domain.SalesTable, spec *domain.FilterSpec) []domain.SalesRecord {
	result := make([]domain.SalesRecord, 0, table.Len())
	if table == nil {
		return result
	}

	if spec == nil {
		spec = &domain.FilterSpec{}
	}

	categories := toSet(spec.Categories)
	regions := toSet(spec.Regions)
	segments := toSet(spec.Segments)

	for _, record := range table.Records {
		if !inRange(record.OrderDate, spec.DateFrom, spec.DateTo) {
			continue
		}
		if len(categories) > 0 && !categories[record.Category] {
			continue
		}
		if len(regions) > 0 && !regions[record.Region] {
			continue
		}
		if len(segments) > 0 && !segments[record.Segment] {
			continue
		}

		result = append(result, record)
	}

	return result
}

// inRange checks date against an inclusive range; a nil bound is open.
func inRange(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && date.After(*to) {
		return false
	}
	return true
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
