package sheet

import "vendor-rates/feature/rates/compare"

// Schemas returns the sheet layouts declared for a vendor key, keyed by
// semantic sheet name.
func Schemas(key string) (map[string]Schema, bool) {
	s, ok := layouts[key]
	return s, ok
}

// orangeFranceSheets is shared by both Orange France products; their
// deliveries differ in rates, not in layout.
var orangeFranceSheets = map[string]Schema{
	compare.SheetPriceList: {
		Sheet:    "Rates",
		StartRow: 14,
		Columns: []Column{
			{Field: FieldDestination, Index: 0},
			{Field: FieldDialCode, Index: 1},
			{Field: FieldOrigin, Index: 2},
			{Field: FieldEffectiveDate, Index: 3},
			{Field: FieldRate, Index: 5},
		},
	},
	compare.SheetOriginMapping: {
		Sheet:    "Origin Mapping",
		StartRow: 2,
		Columns: []Column{
			{Field: FieldGroup, Index: 0},
			{Field: FieldOrigin, Index: 1},
			{Field: FieldDialCode, Index: 2},
		},
	},
}

var layouts = map[string]map[string]Schema{
	"belgacom-platinum": {
		compare.SheetPriceList: {
			Sheet:         "Price List",
			FallbackFirst: true,
			StartRow:      9,
			Columns: []Column{
				{Field: FieldDestination, Index: 1},
				{Field: FieldDialCode, Index: 4},
				{Field: FieldAreaCode, Index: 5},
				{Field: FieldRate, Index: 6},
				{Field: FieldEffectiveDate, Index: 14},
			},
		},
		compare.SheetANumber: {
			Sheet:    "A-number pricing",
			StartRow: 2,
			Columns: []Column{
				{Field: FieldDestination, Index: 1},
				{Field: FieldRate, Index: 6},
				{Field: FieldEffectiveDate, Index: 8},
				{Field: FieldOriginCode, Index: 11},
			},
		},
	},

	"sunrise": {
		compare.SheetPriceList: {
			Sheet:    "Pricing",
			StartRow: 15,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldGroup, Index: 1},
				{Field: FieldOrigin, Index: 2},
				{Field: FieldDialCode, Index: 3},
				{Field: FieldRate, Index: 5},
				{Field: FieldEffectiveDate, Index: 7},
			},
		},
		compare.SheetOriginMapping: {
			Sheet:    "Origin",
			StartRow: 2,
			Columns: []Column{
				{Field: FieldGroup, Index: 0},
				{Field: FieldOrigin, Index: 1},
				{Field: FieldDialCode, Index: 2},
			},
		},
	},

	"ibasis-premium": {
		compare.SheetPriceList: {
			Sheet:    "Pricelist",
			StartRow: 11,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldOrigin, Index: 1},
				{Field: FieldAreaCode, Index: 2},
				{Field: FieldDialCode, Index: 3},
				{Field: FieldEffectiveDate, Index: 4},
				{Field: FieldRate, Index: 5},
			},
		},
		compare.SheetOriginMapping: {
			Sheet:    "Origin List",
			StartRow: 14,
			Columns: []Column{
				{Field: FieldOrigin, Index: 0},
				{Field: FieldRegion, Index: 2},
				{Field: FieldDialCode, Index: 3},
			},
		},
	},

	"hgc-premium": {
		compare.SheetPriceList: {
			Sheet:    "Rates",
			StartRow: 33,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldRouting, Index: 2},
				{Field: FieldEffectiveDate, Index: 3},
				{Field: FieldRate, Index: 5},
			},
		},
		compare.SheetOriginMapping: {
			Sheet:    "Origin Mapping",
			StartRow: 2,
			Columns: []Column{
				{Field: FieldGroup, Index: 0},
				{Field: FieldOrigin, Index: 1},
				{Field: FieldDialCode, Index: 2},
			},
		},
	},

	"orange-france-platinum": orangeFranceSheets,
	"orange-france-win":      orangeFranceSheets,

	"oteglobe": {
		compare.SheetPriceList: {
			Sheet:    "OTEGLOBE Voice Rates",
			StartRow: 16,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldRate, Index: 2, Loose: true},
				{Field: FieldEffectiveDate, Index: 5},
			},
		},
		compare.SheetNewPrice: {
			Sheet:    "Origin Rates",
			StartRow: 16,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldOrigin, Index: 2},
				{Field: FieldRate, Index: 3, Loose: true},
				{Field: FieldEffectiveDate, Index: 5},
			},
		},
		compare.SheetOrigins: {
			Sheet:    "Origin Dialcodes",
			StartRow: 16,
			Columns: []Column{
				{Field: FieldOrigin, Index: 0},
				{Field: FieldOriginCode, Index: 1},
			},
		},
	},

	"deutsche-telecom": {
		compare.SheetPriceList: {
			Sheet:    "DTGC Hubbing Rates",
			StartRow: 22,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldRate, Index: 2},
				{Field: FieldEffectiveDate, Index: 3},
			},
		},
		compare.SheetNewPrice: {
			Sheet:    "Origin Rates",
			StartRow: 15,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldOrigin, Index: 2},
				{Field: FieldRate, Index: 3},
				{Field: FieldEffectiveDate, Index: 4},
			},
		},
		compare.SheetOrigins: {
			Sheet:    "Origin Dialcodes",
			StartRow: 15,
			Columns: []Column{
				{Field: FieldOrigin, Index: 0},
				{Field: FieldOriginCode, Index: 1},
			},
		},
	},

	"orange-telecom": {
		compare.SheetPriceList: {
			Sheet:    "ORANGE RATES",
			StartRow: 20,
			Columns: []Column{
				{Field: FieldDialCode, Index: 0},
				{Field: FieldDestination, Index: 1},
				{Field: FieldRate, Index: 2},
				{Field: FieldEffectiveDate, Index: 4},
			},
		},
		// The surcharge block carries no dial codes, so overrides join on
		// nothing and base rates stand. The columns are still read to keep
		// the run's inputs complete.
		compare.SheetNewPrice: {
			Sheet:    "SURCHARGED RATES",
			StartRow: 11,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldOrigin, Index: 1},
				{Field: FieldRate, Index: 2},
				{Field: FieldEffectiveDate, Index: 4},
			},
		},
		compare.SheetOrigins: {
			Sheet:    "SURCHARGED RATES",
			StartRow: 11,
			Columns: []Column{
				{Field: FieldOrigin, Index: 8},
				{Field: FieldOriginCode, Index: 9},
			},
		},
	},

	"arelion": {
		compare.SheetPriceList: {
			Sheet:    "Rates",
			StartRow: 28,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldRate, Index: 2},
				{Field: FieldEffectiveDate, Index: 3},
			},
		},
		compare.SheetNewPrice: {
			Sheet:    "Origin Rates",
			StartRow: 7,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldOrigin, Index: 2},
				{Field: FieldRate, Index: 3},
				{Field: FieldEffectiveDate, Index: 4},
			},
		},
		compare.SheetOrigins: {
			Sheet:    "Origin Definitions",
			StartRow: 7,
			Columns: []Column{
				{Field: FieldOrigin, Index: 0},
				{Field: FieldOriginCode, Index: 1},
			},
		},
	},

	"apelby": {
		compare.SheetPriceList: {
			Sheet:    "PriceList",
			StartRow: 16,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldRate, Index: 2, Loose: true},
				{Field: FieldEffectiveDate, Index: 3},
			},
		},
		compare.SheetNewPrice: {
			Sheet:    "NewPrice",
			StartRow: 16,
			Columns: []Column{
				{Field: FieldOrigin, Index: 0},
				{Field: FieldDestination, Index: 1},
				{Field: FieldDialCode, Index: 2},
				{Field: FieldRate, Index: 3},
				{Field: FieldEffectiveDate, Index: 4},
			},
		},
		compare.SheetOrigins: {
			Sheet:    "Origins",
			StartRow: 16,
			Columns: []Column{
				{Field: FieldOrigin, Index: 0},
				{Field: FieldOriginCode, Index: 1},
			},
		},
	},

	"phonetic": {
		compare.SheetPriceList: {
			Sheet:    "Rates",
			StartRow: 44,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldRate, Index: 2},
				{Field: FieldEffectiveDate, Index: 3},
			},
		},
		compare.SheetNewPrice: {
			Sheet:    "Origin Rates",
			StartRow: 8,
			Columns: []Column{
				{Field: FieldOrigin, Index: 0},
				{Field: FieldDestination, Index: 1},
				{Field: FieldDialCode, Index: 2},
				{Field: FieldRate, Index: 3},
				{Field: FieldEffectiveDate, Index: 4},
			},
		},
		compare.SheetOrigins: {
			Sheet:    "Origin zones",
			StartRow: 1,
			Columns: []Column{
				{Field: FieldOrigin, Index: 0},
				{Field: FieldOriginCode, Index: 1},
			},
		},
	},

	// Qxtel ships three separate files whose sheet names drift between
	// deliveries, so every schema falls back to the first sheet.
	"qxtel": {
		compare.SheetPriceList: {
			FallbackFirst: true,
			StartRow:      2,
			Columns: []Column{
				{Field: FieldDestination, Index: 0},
				{Field: FieldDialCode, Index: 1},
				{Field: FieldRate, Index: 3},
				{Field: FieldEffectiveDate, Index: 8},
				{Field: FieldGroup, Index: 9},
			},
		},
		compare.SheetNewPrice: {
			FallbackFirst: true,
			StartRow:      5,
			Columns: []Column{
				{Field: FieldRegion, Index: 0},
				{Field: FieldOrigin, Index: 1},
				{Field: FieldGroup, Index: 2},
				{Field: FieldGroupDetail, Index: 3},
				{Field: FieldRate, Index: 4},
				{Field: FieldEffectiveDate, Index: 10},
			},
		},
		compare.SheetOrigins: {
			FallbackFirst: true,
			StartRow:      5,
			Columns: []Column{
				{Field: FieldGroup, Index: 0},
				{Field: FieldGroupDetail, Index: 1},
				{Field: FieldRegion, Index: 2},
				{Field: FieldOriginCode, Index: 3},
			},
		},
	},
}
