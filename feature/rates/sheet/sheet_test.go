package sheet

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"vendor-rates/feature/rates/compare"
	"vendor-rates/feature/rates/vendor"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// buildWorkbook writes rows into a single-sheet workbook held in memory.
// rows[0] lands in spreadsheet row 1.
func buildWorkbook(t *testing.T, sheetName string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheetName))
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRead_MapsColumnsAndSkipsHeader(t *testing.T) {
	s := Schema{
		Sheet:    "Rates",
		StartRow: 3,
		Columns: []Column{
			{Field: FieldDestination, Index: 0},
			{Field: FieldDialCode, Index: 1},
			{Field: FieldRate, Index: 2},
			{Field: FieldEffectiveDate, Index: 3},
		},
	}
	buf := buildWorkbook(t, "Rates", [][]interface{}{
		{"Destination", "Code", "Rate", "Date"},
		{"", "", "", ""},
		{" UK Mobile ", "44700", "0.05", "2024-01-01"},
		{"France", "33", "n/a", "2024-02-01"},
	})

	rows, err := Read(buf, s, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "UK Mobile", rows[0].Destination)
	assert.Equal(t, "44700", rows[0].DialCode)
	assert.True(t, rows[0].Rate.Equal(mustDecimal(t, "0.05")))
	assert.Equal(t, "2024-01-01", rows[0].EffectiveDate)

	// Unparseable rates read as zero instead of failing the run.
	assert.True(t, rows[1].Rate.IsZero())
}

func TestRead_FallbackFirstSheet(t *testing.T) {
	s := Schema{
		Sheet:         "Rates",
		FallbackFirst: true,
		StartRow:      1,
		Columns:       []Column{{Field: FieldDestination, Index: 0}},
	}
	buf := buildWorkbook(t, "July Delivery", [][]interface{}{{"UK"}})

	rows, err := Read(buf, s, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "UK", rows[0].Destination)
}

func TestRead_MissingSheetFails(t *testing.T) {
	s := Schema{
		Sheet:    "Rates",
		StartRow: 1,
		Columns:  []Column{{Field: FieldDestination, Index: 0}},
	}
	buf := buildWorkbook(t, "Other", [][]interface{}{{"UK"}})

	_, err := Read(buf, s, 0)
	require.ErrorIs(t, err, ErrSheetNotFound)
}

// TestRead_MaxRowCapsLines honors the per-vendor line limit as a last
// spreadsheet row, not a row count.
func TestRead_MaxRowCapsLines(t *testing.T) {
	s := Schema{
		Sheet:    "Rates",
		StartRow: 2,
		Columns:  []Column{{Field: FieldDestination, Index: 0}},
	}
	buf := buildWorkbook(t, "Rates", [][]interface{}{
		{"Destination"},
		{"A"}, {"B"}, {"C"}, {"D"},
	})

	rows, err := Read(buf, s, 3)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Destination)
	assert.Equal(t, "B", rows[1].Destination)
}

func TestRead_LooseRateParsing(t *testing.T) {
	s := Schema{
		Sheet:    "Rates",
		StartRow: 1,
		Columns:  []Column{{Field: FieldRate, Index: 0, Loose: true}},
	}
	buf := buildWorkbook(t, "Rates", [][]interface{}{
		{"0.0123 EUR"},
		{"7.5"},
		{"USD 5"},
	})

	rows, err := Read(buf, s, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Rate.Equal(mustDecimal(t, "0.0123")))
	assert.True(t, rows[1].Rate.Equal(mustDecimal(t, "7.5")))
	assert.True(t, rows[2].Rate.IsZero())
}

// TestRead_ShortRowsFillZeroValues keeps ragged rows usable: absent cells
// become empty strings and a zero rate.
func TestRead_ShortRowsFillZeroValues(t *testing.T) {
	s := Schema{
		Sheet:    "Rates",
		StartRow: 1,
		Columns: []Column{
			{Field: FieldDestination, Index: 0},
			{Field: FieldDialCode, Index: 4},
			{Field: FieldRate, Index: 6},
		},
	}
	buf := buildWorkbook(t, "Rates", [][]interface{}{{"UK"}})

	rows, err := Read(buf, s, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "UK", rows[0].Destination)
	assert.Equal(t, "", rows[0].DialCode)
	assert.True(t, rows[0].Rate.IsZero())
}

// TestSchemas_CoverRegisteredVendors keeps the layout table and the
// vendor registry in lockstep: every declared sheet must have a schema.
func TestSchemas_CoverRegisteredVendors(t *testing.T) {
	for _, d := range vendor.All() {
		schemas, ok := Schemas(d.Key)
		require.True(t, ok, "no layouts for %s", d.Key)
		for _, name := range d.Sheets {
			_, found := schemas[name]
			assert.True(t, found, "vendor %s has no schema for sheet %s", d.Key, name)
		}
	}
}

// TestSchemas_BelgacomLayout spot-checks one vendor against its rate
// sheet layout end to end through the reader.
func TestSchemas_BelgacomLayout(t *testing.T) {
	schemas, ok := Schemas("belgacom-platinum")
	require.True(t, ok)
	s := schemas[compare.SheetPriceList]

	rows := make([][]interface{}, 9)
	rows[8] = []interface{}{
		"", "Italy Mobile Tim", "", "", "39", "347", "0.0105",
		"", "", "", "", "", "", "", "2024-03-01",
	}
	buf := buildWorkbook(t, "Price List", rows)

	out, err := Read(buf, s, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Italy Mobile Tim", out[0].Destination)
	assert.Equal(t, "39", out[0].DialCode)
	assert.Equal(t, "347", out[0].AreaCode)
	assert.True(t, out[0].Rate.Equal(mustDecimal(t, "0.0105")))
	assert.Equal(t, "2024-03-01", out[0].EffectiveDate)
}
