// Package sheet reads vendor rate workbooks into normalized rows. Every
// vendor layout is declared as data (sheet name, start row, column
// mapping); one generic reader serves all of them.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"vendor-rates/feature/rates/compare"
)

// ErrSheetNotFound reports a declared sheet missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Field identifies the canonical row field a column maps onto.
type Field int

const (
	FieldDestination Field = iota
	FieldDialCode
	FieldAreaCode
	FieldOrigin
	FieldOriginCode
	FieldGroup
	FieldGroupDetail
	FieldRegion
	FieldRouting
	FieldRate
	FieldEffectiveDate
)

// Column maps one spreadsheet column onto a canonical field. String
// fields are trimmed; the rate field is parsed as a decimal, with Loose
// additionally stripping everything after the leading number for cells
// that carry currency symbols or footnote markers.
type Column struct {
	Field Field
	Index int
	Loose bool
}

// Schema declares how one sheet of a vendor workbook is read.
type Schema struct {
	// Sheet is the workbook sheet name to look for.
	Sheet string
	// FallbackFirst uses the workbook's first sheet when Sheet is absent.
	FallbackFirst bool
	// StartRow is the first data row, 1-based.
	StartRow int
	// Columns maps 0-based column positions onto canonical fields.
	Columns []Column
}

// Read loads one declared sheet from an uploaded workbook. maxRow caps
// the last 1-based row read, mirroring the per-vendor line limit from the
// reference data; 0 reads the whole sheet. Blank and malformed cells
// normalize to zero values, a missing sheet is an error.
func Read(r io.Reader, s Schema, maxRow int) ([]compare.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	name, err := resolveSheet(f, s)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}

	last := len(rows)
	if maxRow > 0 && maxRow < last {
		last = maxRow
	}

	var out []compare.Row
	for i := s.StartRow - 1; i < last; i++ {
		out = append(out, mapRow(rows[i], s.Columns))
	}
	return out, nil
}

// resolveSheet finds the declared sheet, honoring the first-sheet
// fallback some vendors need because their sheet names drift between
// deliveries.
func resolveSheet(f *excelize.File, s Schema) (string, error) {
	list := f.GetSheetList()
	for _, name := range list {
		if name == s.Sheet {
			return name, nil
		}
	}
	if s.FallbackFirst && len(list) > 0 {
		return list[0], nil
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, s.Sheet)
}

func mapRow(cells []string, cols []Column) compare.Row {
	var row compare.Row
	for _, c := range cols {
		var raw string
		if c.Index >= 0 && c.Index < len(cells) {
			raw = cells[c.Index]
		}
		switch c.Field {
		case FieldDestination:
			row.Destination = strings.TrimSpace(raw)
		case FieldDialCode:
			row.DialCode = strings.TrimSpace(raw)
		case FieldAreaCode:
			row.AreaCode = strings.TrimSpace(raw)
		case FieldOrigin:
			row.Origin = strings.TrimSpace(raw)
		case FieldOriginCode:
			row.OriginCode = strings.TrimSpace(raw)
		case FieldGroup:
			row.Group = strings.TrimSpace(raw)
		case FieldGroupDetail:
			row.GroupDetail = strings.TrimSpace(raw)
		case FieldRegion:
			row.Region = strings.TrimSpace(raw)
		case FieldRouting:
			row.Routing = strings.TrimSpace(raw)
		case FieldRate:
			row.Rate = parseRate(raw, c.Loose)
		case FieldEffectiveDate:
			row.EffectiveDate = strings.TrimSpace(raw)
		}
	}
	return row
}

// parseRate turns a cell into a decimal rate. Blank and malformed cells
// become zero: rate sheets routinely carry footnotes and trailing junk
// rows, and those must not abort a run.
func parseRate(raw string, loose bool) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if loose {
		s = leadingNumber(s)
	}
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// leadingNumber returns the prefix of digits and points, which is how the
// legacy importer read cells like "0.0123 EUR".
func leadingNumber(s string) string {
	i := 0
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	return s[:i]
}
