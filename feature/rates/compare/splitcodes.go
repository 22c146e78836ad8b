package compare

import "strings"

// wideOriginCode is the reserved origin prefix that widens the origin
// join from exact equality to starts-with. UK-originated traffic is
// priced per origin detail, so a single master row fans out to every
// origin sharing the prefix.
const wideOriginCode = "44"

// reconcileSplitCodes handles vendors that pack several comma-joined
// codes into one price row. A price row qualifies when any of its codes
// carries the master destination prefix, and each code is emitted
// separately. For the reserved origin the origins join widens to a prefix
// match and the highest rate among the reachable new-price candidates
// wins; otherwise a direct first-match lookup applies with the base rate
// as fallback.
//
// Deduplication is scoped to a single master-row iteration: two master
// rows may legitimately emit the same code with different routing. The
// final pass instead groups every base row by code and keeps only the
// highest-rate row per code. The asymmetry is deliberate; downstream
// billing consumes both shapes.
func reconcileSplitCodes(sheets Sheets, master []MasterRow) []Record {
	prices := sheets[SheetPriceList]
	newPrices := sheets[SheetNewPrice]
	origins := sheets[SheetOrigins]

	var out []Record
	for _, m := range master {
		seen := make(map[string]struct{})
		wide := m.OriginCode == wideOriginCode

		var avail []Row
		for _, o := range origins {
			if wide {
				if !strings.HasPrefix(o.OriginCode, m.OriginCode) {
					continue
				}
			} else if o.OriginCode != m.OriginCode {
				continue
			}
			for _, np := range newPrices {
				if np.Origin == o.Origin && strings.HasPrefix(np.DialCode, m.DestinyCode) {
					avail = append(avail, np)
				}
			}
		}

		for _, p := range prices {
			codes := SplitList(p.DialCode)
			if !anyHasPrefix(codes, m.DestinyCode) {
				continue
			}
			for _, code := range codes {
				if _, dup := seen[code]; dup {
					continue
				}
				seen[code] = struct{}{}

				rec := Record{
					Destination:   p.Destination,
					DialCode:      code,
					Price:         p.Rate,
					EffectiveDate: p.EffectiveDate,
					OriginLabel:   m.Routing,
				}
				clean := DigitsOnly(code)
				if wide {
					var cands []Row
					for _, np := range avail {
						if DigitsOnly(np.DialCode) == clean {
							cands = append(cands, np)
						}
					}
					if len(cands) > 0 {
						best := maxRateRow(cands)
						rec.Price = best.Rate
						rec.EffectiveDate = best.EffectiveDate
					}
				} else {
					for _, np := range avail {
						if DigitsOnly(np.DialCode) == clean {
							rec.Price = np.Rate
							rec.EffectiveDate = np.EffectiveDate
							break
						}
					}
				}
				out = append(out, rec)
			}
		}
	}

	// Un-routed pass: one row per code, highest rate wins, first seen
	// wins exact ties.
	best := make(map[string]Row)
	var order []string
	for _, p := range prices {
		for _, code := range SplitList(p.DialCode) {
			b, ok := best[code]
			if !ok {
				best[code] = p
				order = append(order, code)
				continue
			}
			if p.Rate.GreaterThan(b.Rate) {
				best[code] = p
			}
		}
	}
	for _, code := range order {
		p := best[code]
		out = append(out, Record{
			Destination:   p.Destination,
			DialCode:      code,
			Price:         p.Rate,
			EffectiveDate: p.EffectiveDate,
		})
	}
	return out
}

func anyHasPrefix(codes []string, prefix string) bool {
	for _, c := range codes {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}
