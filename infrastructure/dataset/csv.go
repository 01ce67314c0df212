package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
)

// Header is the fixed column schema of the dataset file. Export uses the
// same schema so a downloaded subset can be re-loaded unchanged.
var Header = []string{
	"Order_Date",
	"Category",
	"Region",
	"Customer_Segment",
	"Payment_Method",
	"Product",
	"Unit_Price",
	"Quantity",
	"Discount_Amount",
	"Final_Price",
}

// CSVSource reads the sales table from a delimited text file.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load reads and parses the whole file. Any schema violation aborts the
// load; the dataset guarantees no missing values, so partial tables are
// never returned.
func (s *CSVSource) Load(ctx context.Context) (*domain.SalesTable, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: errors.Wrap(err, "reading header")}
	}

	if err := validateHeader(header); err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}

	records := make([]domain.SalesRecord, 0, 1024)
	line := 1

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: s.path, Err: errors.Wrapf(err, "reading line %d", line+1)}
		}

		line++

		record, err := parseRow(row)
		if err != nil {
			return nil, &LoadError{Path: s.path, Err: errors.Wrapf(err, "parsing line %d", line)}
		}

		records = append(records, record)
	}

	return &domain.SalesTable{Records: records}, nil
}

func validateHeader(header []string) error {
	if len(header) != len(Header) {
		return errors.Errorf("expected %d columns, got %d", len(Header), len(header))
	}

	for i, name := range Header {
		got := header[i]
		if i == 0 {
			// Files exported from spreadsheets may carry a UTF-8 BOM
			got = strings.TrimPrefix(got, "\ufeff")
		}
		if got != name {
			return errors.Errorf("column %d: expected %q, got %q", i, name, got)
		}
	}

	return nil
}

func parseRow(row []string) (domain.SalesRecord, error) {
	var record domain.SalesRecord

	orderDate, err := time.Parse(time.DateOnly, row[0])
	if err != nil {
		return record, errors.Wrap(err, "order date")
	}

	unitPrice, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return record, errors.Wrap(err, "unit price")
	}

	quantity, err := strconv.Atoi(row[7])
	if err != nil {
		return record, errors.Wrap(err, "quantity")
	}

	discount, err := strconv.ParseFloat(row[8], 64)
	if err != nil {
		return record, errors.Wrap(err, "discount")
	}

	revenue, err := strconv.ParseFloat(row[9], 64)
	if err != nil {
		return record, errors.Wrap(err, "revenue")
	}

	record = domain.SalesRecord{
		OrderDate:     orderDate,
		Category:      row[1],
		Region:        row[2],
		Segment:       row[3],
		PaymentMethod: row[4],
		Product:       row[5],
		UnitPrice:     unitPrice,
		Quantity:      quantity,
		Discount:      discount,
		Revenue:       revenue,
	}

	return record, nil
}
