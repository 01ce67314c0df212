package domain

import "time"

// FilterSpec holds the currently selected date range and the multi-select
// category/region/segment filters from the dashboard sidebar.
//
// Empty selection slices mean "no restriction", not "exclude all". A nil
// date leaves that side of the range unbounded.
type FilterSpec struct {
	DateFrom   *time.Time `json:"date_from,omitempty"`
	DateTo     *time.Time `json:"date_to,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	Regions    []string   `json:"regions,omitempty"`
	Segments   []string   `json:"segments,omitempty"`
}

// IsUnbounded reports whether the spec restricts nothing at all.
func (f *FilterSpec) IsUnbounded() bool {
	if f == nil {
		return true
	}
	return f.DateFrom == nil && f.DateTo == nil &&
		len(f.Categories) == 0 && len(f.Regions) == 0 && len(f.Segments) == 0
}
