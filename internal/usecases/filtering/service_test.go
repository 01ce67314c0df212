package filtering

import (
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

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d := date(t, s)
	return &d
}

func sampleTable(t *testing.T) *domain.SalesTable {
	return &domain.SalesTable{Records: []domain.SalesRecord{
		{OrderDate: date(t, "2024-01-05"), Category: "Electronics", Region: "North", Segment: "Consumer", PaymentMethod: "Credit Card", Product: "Laptop", Revenue: 100},
		{OrderDate: date(t, "2024-02-10"), Category: "Clothing", Region: "South", Segment: "Corporate", PaymentMethod: "PayPal", Product: "Jacket", Revenue: 50},
		{OrderDate: date(t, "2024-03-15"), Category: "Electronics", Region: "North", Segment: "Consumer", PaymentMethod: "Credit Card", Product: "Mouse", Revenue: 30},
	}}
}

func TestApply_EmptySelectionSetsEqualDateRangeOnlyFilter(t *testing.T) {
	table := sampleTable(t)

	specs := []*domain.FilterSpec{
		{},
		{DateFrom: datePtr(t, "2024-01-01"), DateTo: datePtr(t, "2024-12-31")},
		{DateFrom: datePtr(t, "2024-02-01")},
		{DateTo: datePtr(t, "2024-02-29")},
	}

	for _, spec := range specs {
		dateOnly := &domain.FilterSpec{DateFrom: spec.DateFrom, DateTo: spec.DateTo}

		withEmptySets := &domain.FilterSpec{
			DateFrom:   spec.DateFrom,
			DateTo:     spec.DateTo,
			Categories: []string{},
			Regions:    []string{},
			Segments:   []string{},
		}

		assert.Equal(t, Apply(table, dateOnly), Apply(table, withEmptySets))
	}
}

func TestApply_Idempotence(t *testing.T) {
	table := sampleTable(t)
	spec := &domain.FilterSpec{
		DateFrom:   datePtr(t, "2024-01-01"),
		DateTo:     datePtr(t, "2024-12-31"),
		Categories: []string{"Electronics"},
	}

	first := Apply(table, spec)
	second := Apply(table, spec)

	assert.Equal(t, first, second)
}

func TestApply_DateFromAfterDateToYieldsEmptyResult(t *testing.T) {
	table := sampleTable(t)
	spec := &domain.FilterSpec{
		DateFrom: datePtr(t, "2024-06-01"),
		DateTo:   datePtr(t, "2024-01-01"),
	}

	result := Apply(table, spec)

	assert.Empty(t, result)
}

func TestApply_DateRangeIsInclusive(t *testing.T) {
	table := sampleTable(t)
	spec := &domain.FilterSpec{
		DateFrom: datePtr(t, "2024-02-10"),
		DateTo:   datePtr(t, "2024-02-10"),
	}

	result := Apply(table, spec)

	assert.Len(t, result, 1)
	assert.Equal(t, "Clothing", result[0].Category)
}

func TestApply_CategorySelection(t *testing.T) {
	table := sampleTable(t)
	spec := &domain.FilterSpec{Categories: []string{"Electronics"}}

	result := Apply(table, spec)

	assert.Len(t, result, 2)
	for _, record := range result {
		assert.Equal(t, "Electronics", record.Category)
	}
}

func TestApply_FiltersAreConjunctive(t *testing.T) {
	table := sampleTable(t)

	tests := []struct {
		name     string
		spec     *domain.FilterSpec
		expected int
	}{
		{
			name:     "category and region both match",
			spec:     &domain.FilterSpec{Categories: []string{"Electronics"}, Regions: []string{"North"}},
			expected: 2,
		},
		{
			name:     "category matches but region excludes",
			spec:     &domain.FilterSpec{Categories: []string{"Electronics"}, Regions: []string{"South"}},
			expected: 0,
		},
		{
			name:     "segment selection",
			spec:     &domain.FilterSpec{Segments: []string{"Corporate"}},
			expected: 1,
		},
		{
			name:     "date range narrows a category selection",
			spec:     &domain.FilterSpec{DateFrom: datePtr(t, "2024-03-01"), Categories: []string{"Electronics"}},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Apply(table, tt.spec), tt.expected)
		})
	}
}

func TestApply_NilSpecAndNilTable(t *testing.T) {
	assert.Empty(t, Apply(nil, &domain.FilterSpec{}))
	assert.Len(t, Apply(sampleTable(t), nil), 3)
}

func TestApply_DoesNotMutateTable(t *testing.T) {
	table := sampleTable(t)
	original := sampleTable(t)

	Apply(table, &domain.FilterSpec{Categories: []string{"Electronics"}})

	assert.Equal(t, original.Records, table.Records)
}
