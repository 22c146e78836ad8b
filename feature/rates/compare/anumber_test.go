package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestANumber_EUItalyMobileMaxRate covers the hard-coded exception: for
// the EU routing label with origin 376 and destination code 39, an "Italy
// Mobile Tim" price row must be priced with the maximum rate among the
// A-number rows whose origin starts with 3 or 4, never the base rate.
func TestANumber_EUItalyMobileMaxRate(t *testing.T) {
	sheets := Sheets{
		SheetPriceList: {
			{Destination: "Italy Mobile Tim", DialCode: "39", AreaCode: "347", Rate: d("0.01"), EffectiveDate: "2024-01-01"},
		},
		SheetANumber: {
			{Destination: "Italy Mobile Tim", OriginCode: "34", Rate: d("0.20"), EffectiveDate: "2024-02-01"},
			{Destination: "Italy Mobile Tim", OriginCode: "44", Rate: d("0.30"), EffectiveDate: "2024-03-01"},
			{Destination: "Italy Mobile Tim", OriginCode: "55", Rate: d("0.99")},
			{Destination: "italy mobile TIM", OriginCode: "376", Rate: d("0.15"), EffectiveDate: "2024-04-01"},
		},
	}
	master := []MasterRow{
		{Vendor: "ACME", OriginCode: "376", DestinyCode: "39", Destiny: "Italy", Routing: "Traffic From EU"},
	}

	out := reconcileANumber(sheets, master)
	require.Len(t, out, 2)

	var routed *Record
	for i := range out {
		if out[i].OriginLabel == "Traffic From EU" {
			routed = &out[i]
		}
	}
	require.NotNil(t, routed)
	assert.Equal(t, "39347", routed.DialCode)
	assertPrice(t, "0.30", routed.Price)
	assert.Equal(t, "2024-03-01", routed.EffectiveDate)
	// Never the base price-list rate.
	assert.False(t, routed.Price.Equal(d("0.01")))
}

// TestANumber_ExactJoin verifies the normal path: exact destination-code
// equality, A-number rows narrowed by origin code and destination-name
// substring, joined on the exact destination label.
func TestANumber_ExactJoin(t *testing.T) {
	sheets := Sheets{
		SheetPriceList: {
			{Destination: "France Mobile", DialCode: "33", AreaCode: "6", Rate: d("0.02"), EffectiveDate: "2024-01-02"},
			{Destination: "France Fixed", DialCode: "331", Rate: d("0.03"), EffectiveDate: "2024-01-03"},
		},
		SheetANumber: {
			{Destination: "France Mobile", OriginCode: "32", Rate: d("0.08"), EffectiveDate: "2024-05-01"},
		},
	}
	master := []MasterRow{
		{Vendor: "ACME", OriginCode: "32", DestinyCode: "33", Destiny: "France", Routing: "Standard"},
	}

	out := reconcileANumber(sheets, master)
	require.Len(t, out, 3)

	// "331" is not an exact match for destiny code "33", so only the
	// mobile row is routed; both rows still appear un-routed.
	byLabel := map[string][]Record{}
	for _, r := range out {
		byLabel[r.OriginLabel] = append(byLabel[r.OriginLabel], r)
	}
	require.Len(t, byLabel["Standard"], 1)
	routed := byLabel["Standard"][0]
	assert.Equal(t, "336", routed.DialCode)
	assertPrice(t, "0.08", routed.Price)
	assert.Equal(t, "2024-05-01", routed.EffectiveDate)

	assert.Len(t, byLabel[""], 2)
}

// TestANumber_BaseRateWhenJoinMisses falls back to the price row's own
// rate when no A-number row matches the destination label exactly.
func TestANumber_BaseRateWhenJoinMisses(t *testing.T) {
	sheets := Sheets{
		SheetPriceList: {
			{Destination: "France Mobile", DialCode: "33", AreaCode: "7", Rate: d("0.02"), EffectiveDate: "2024-01-02"},
		},
		SheetANumber: {
			// Case differs, exact join misses.
			{Destination: "FRANCE MOBILE", OriginCode: "32", Rate: d("0.08")},
		},
	}
	master := []MasterRow{
		{Vendor: "ACME", OriginCode: "32", DestinyCode: "33", Destiny: "France", Routing: "Standard"},
	}

	out := reconcileANumber(sheets, master)
	require.Len(t, out, 2)
	assertPrice(t, "0.02", out[0].Price)
	assertPrice(t, "0.02", out[1].Price)
}

// TestANumber_SkipsLocalCodeInFallback drops the one hard-coded code from
// the un-routed pass.
func TestANumber_SkipsLocalCodeInFallback(t *testing.T) {
	sheets := Sheets{
		SheetPriceList: {
			{Destination: "Local", DialCode: "88", AreaCode: "237", Rate: d("0.5")},
			{Destination: "Kept", DialCode: "88", AreaCode: "238", Rate: d("0.5")},
		},
	}

	out := reconcileANumber(sheets, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "88238", out[0].DialCode)
	assert.Equal(t, "", out[0].OriginLabel)
}

// TestANumber_NoDedup allows the same code to repeat across master rows.
func TestANumber_NoDedup(t *testing.T) {
	sheets := Sheets{
		SheetPriceList: {
			{Destination: "Germany", DialCode: "49", Rate: d("0.04"), EffectiveDate: "2024-06-01"},
		},
	}
	master := []MasterRow{
		{Vendor: "ACME", OriginCode: "1", DestinyCode: "49", Destiny: "Germany", Routing: "R1"},
		{Vendor: "ACME", OriginCode: "2", DestinyCode: "49", Destiny: "Germany", Routing: "R2"},
	}

	out := reconcileANumber(sheets, master)
	require.Len(t, out, 3)

	labels := []string{}
	for _, r := range out {
		assert.Equal(t, "49", r.DialCode)
		labels = append(labels, r.OriginLabel)
	}
	assert.ElementsMatch(t, []string{"R1", "R2", ""}, labels)
}
