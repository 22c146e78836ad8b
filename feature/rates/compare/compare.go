package compare

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Semantic sheet names used to group the normalized sheets of one upload.
// The vendor registry declares which of these each vendor supplies.
const (
	SheetPriceList     = "price_list"
	SheetOriginMapping = "origin_mapping"
	SheetNewPrice      = "new_price"
	SheetOrigins       = "origins"
	SheetANumber       = "anumber_pricing"
)

// Row is one normalized line from a vendor sheet. Field population varies
// per sheet kind: price rows carry Rate and EffectiveDate, mapping rows
// carry only the name/code pairs relevant to their join.
type Row struct {
	// Destination is the destination or region label.
	Destination string

	// DialCode is the raw dial-code field. For multi-code vendors it may
	// still hold separator-joined codes until the strategy expands it.
	DialCode string

	// AreaCode is the secondary code column used by vendors that split a
	// full dial code into country and area parts.
	AreaCode string

	// Origin is the free-text origin name or qualifier.
	Origin string

	// OriginCode is the origin dial prefix.
	OriginCode string

	// Group and GroupDetail identify an origin group for vendors that
	// publish group-level price overrides.
	Group       string
	GroupDetail string

	// Region is the origin region label used by group-level joins.
	Region string

	// Routing is a per-row routing tag, when the sheet carries one.
	Routing string

	// Rate is the published price.
	Rate decimal.Decimal

	// EffectiveDate is the date the rate takes effect, as published.
	EffectiveDate string
}

// Sheets groups the normalized sheets of one upload by semantic name.
type Sheets map[string][]Row

// MasterRow is one routing rule from the reference table, already filtered
// to the vendor under reconciliation.
type MasterRow struct {
	// Vendor is the case-insensitive vendor key.
	Vendor string

	// OriginCode and DestinyCode are dial-prefix strings.
	OriginCode  string
	DestinyCode string

	// Destiny is the free-text destination name used for substring joins.
	Destiny string

	// Routing is the label propagated to matched output rows.
	Routing string

	// Origin is the free-text origin name.
	Origin string
}

// Record is one reconciled output row. DialCode always holds exactly one
// code; multi-code vendor fields are expanded before emission.
type Record struct {
	Destination   string
	DialCode      string
	Price         decimal.Decimal
	EffectiveDate string

	// OriginLabel carries the master row's routing tag, or the empty
	// string for un-routed fallback rows.
	OriginLabel string
}

// Kind selects one of the vendor comparison algorithms. The set is closed:
// every vendor in the registry maps to exactly one of these.
type Kind string

const (
	// KindANumber joins a price list against a secondary A-number pricing
	// sheet with exact code matching.
	KindANumber Kind = "anumber"

	// KindOriginMapping is the generic two-sheet join of a price list
	// against an origin-mapping sheet.
	KindOriginMapping Kind = "origin_mapping"

	// KindOriginMappingSplit is KindOriginMapping with comma-joined code
	// fields expanded and highest-rate selection per code.
	KindOriginMappingSplit Kind = "origin_mapping_split"

	// KindNewPriceOverride is the three-sheet join where a secondary
	// new-price sheet overrides the base price when present.
	KindNewPriceOverride Kind = "new_price_override"

	// KindNewPriceByName is KindNewPriceOverride with destination-name
	// substring matching instead of dial-prefix matching.
	KindNewPriceByName Kind = "new_price_by_name"

	// KindSplitCodes splits comma-joined code fields and widens the origin
	// join for the reserved origin prefix.
	KindSplitCodes Kind = "split_codes"

	// KindMultiFile is the separately-uploaded three-file variant with the
	// widened reserved-origin join.
	KindMultiFile Kind = "multi_file"
)

// Func is a single comparison algorithm. Implementations are pure: no I/O,
// no retained state, fully determined by their inputs.
type Func func(sheets Sheets, master []MasterRow) []Record

var strategies = map[Kind]Func{
	KindANumber:            reconcileANumber,
	KindOriginMapping:      reconcileOriginMapping,
	KindOriginMappingSplit: reconcileOriginMappingSplit,
	KindNewPriceOverride:   reconcileNewPriceOverride,
	KindNewPriceByName:     reconcileNewPriceByName,
	KindSplitCodes:         reconcileSplitCodes,
	KindMultiFile:          reconcileMultiFile,
}

// Reconcile runs the comparison selected by kind and returns the output
// rows sorted by (dial code, destination, origin label). Master rows must
// already be filtered to the vendor; sheets must already be validated
// against the vendor's declared shape.
func Reconcile(kind Kind, sheets Sheets, master []MasterRow) ([]Record, error) {
	fn, ok := strategies[kind]
	if !ok {
		return nil, fmt.Errorf("unknown comparison strategy %q", kind)
	}

	out := fn(sheets, master)
	sortRecords(out)
	return out, nil
}

// sortRecords orders output deterministically. The sort is stable so rows
// sharing the full key keep their emission order.
func sortRecords(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.DialCode != b.DialCode {
			return a.DialCode < b.DialCode
		}
		if a.Destination != b.Destination {
			return a.Destination < b.Destination
		}
		return a.OriginLabel < b.OriginLabel
	})
}
