// Package output renders reconciled rate records into the final CSV
// consumed by billing: five columns, header row, one record per line.
// Price precision is a per-vendor choice and must survive round trips
// through billing imports, so rendering goes through decimal formatting
// instead of floats.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"vendor-rates/feature/rates/compare"
)

// Header is the fixed column set of a rate file, in emitted order.
var Header = []string{"Destination", "Dial Code", "Price", "Effective Date", "Routing"}

// FormatPrice renders a price for the rate file. decimals gives the fixed
// number of decimal places; a negative value selects the shortest exact
// form: full precision, no scientific notation, trailing zeros and a
// trailing point stripped.
func FormatPrice(p decimal.Decimal, decimals int) string {
	if decimals < 0 {
		return p.String()
	}
	return p.StringFixed(int32(decimals))
}

// FormatDate truncates an effective date to its date component. Sheet
// cells arrive as text in whatever layout the vendor publishes; the
// time-of-day part, when present, is separated by a space or a 'T' and
// is dropped without reinterpreting the date itself.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " T"); i >= 0 {
		return s[:i]
	}
	return s
}

// Row renders one record into its five CSV fields.
func Row(r compare.Record, decimals int) []string {
	return []string{
		r.Destination,
		r.DialCode,
		FormatPrice(r.Price, decimals),
		FormatDate(r.EffectiveDate),
		r.OriginLabel,
	}
}

// WriteCSV writes the header and all records to w. Records are expected
// in their final order; the writer adds nothing beyond CSV escaping.
func WriteCSV(w io.Writer, recs []compare.Record, decimals int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range recs {
		if err := cw.Write(Row(r, decimals)); err != nil {
			return fmt.Errorf("failed to write record for %s: %w", r.DialCode, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
