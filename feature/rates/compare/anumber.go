package compare

import "strings"

// Hard-coded routing exception carried over from the legacy rate files:
// EU traffic towards Italian TIM mobiles is priced from the A-number
// sheet by maximum rate instead of the normal join.
const (
	euRoutingLabel   = "traffic from eu"
	euOriginCode     = "376"
	euDestinyCode    = "39"
	italyMobileTim   = "italy mobile tim"
	skippedLocalCode = "88237"
)

// reconcileANumber joins the price list against the A-number pricing
// sheet. Destination codes match by exact equality and the A-number rows
// are narrowed by origin code plus a destination-name substring check.
// No deduplication: later rows may repeat a code.
func reconcileANumber(sheets Sheets, master []MasterRow) []Record {
	prices := sheets[SheetPriceList]
	anumbers := sheets[SheetANumber]

	var out []Record
	for _, m := range master {
		var matched []Row
		for _, p := range prices {
			if p.DialCode == m.DestinyCode {
				matched = append(matched, p)
			}
		}

		// A-number rows priced from this origin towards this destination.
		var withOrigin []Row
		for _, a := range anumbers {
			if a.OriginCode == m.OriginCode && containsFold(a.Destination, m.Destiny) {
				withOrigin = append(withOrigin, a)
			}
		}

		for _, p := range matched {
			if isEUItalyMobile(m, p) {
				var cands []Row
				for _, a := range anumbers {
					if !strings.EqualFold(a.Destination, italyMobileTim) {
						continue
					}
					if strings.HasPrefix(a.OriginCode, "4") || strings.HasPrefix(a.OriginCode, "3") {
						cands = append(cands, a)
					}
				}
				// Without candidates the legacy output had no row here.
				if len(cands) > 0 {
					best := maxRateRow(cands)
					out = append(out, Record{
						Destination:   p.Destination,
						DialCode:      p.DialCode + p.AreaCode,
						Price:         best.Rate,
						EffectiveDate: best.EffectiveDate,
						OriginLabel:   m.Routing,
					})
				}
				continue
			}

			rec := Record{
				Destination:   p.Destination,
				DialCode:      p.DialCode + p.AreaCode,
				Price:         p.Rate,
				EffectiveDate: p.EffectiveDate,
				OriginLabel:   m.Routing,
			}
			for _, a := range withOrigin {
				if a.Destination == p.Destination {
					rec.Price = a.Rate
					rec.EffectiveDate = a.EffectiveDate
					break
				}
			}
			out = append(out, rec)
		}
	}

	// Every price row also appears un-routed, except the one local code
	// billing handles out of band.
	for _, p := range prices {
		code := p.DialCode + p.AreaCode
		if code == skippedLocalCode {
			continue
		}
		out = append(out, Record{
			Destination:   p.Destination,
			DialCode:      code,
			Price:         p.Rate,
			EffectiveDate: p.EffectiveDate,
		})
	}

	return out
}

func isEUItalyMobile(m MasterRow, p Row) bool {
	return strings.EqualFold(m.Routing, euRoutingLabel) &&
		m.DestinyCode == euDestinyCode &&
		m.OriginCode == euOriginCode &&
		strings.EqualFold(p.Destination, italyMobileTim)
}

// containsFold reports whether needle occurs in haystack, ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToUpper(haystack), strings.ToUpper(needle))
}
