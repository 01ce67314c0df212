// Package dataset loads the sales dataset file into memory and keeps a
// process-scoped read-only cache of it.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
)

// Source reads the full sales table from storage.
type Source interface {
	Load(ctx context.Context) (*domain.SalesTable, error)
}

// LoadError indicates the source file is missing or failed schema parsing.
// It is fatal for the affected request and is never retried.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset load failed for %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is (or wraps) a LoadError.
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}
