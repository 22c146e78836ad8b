package compare

import "strings"

// reconcileOriginMapping is the generic two-sheet comparison shared by
// several vendors: origin-mapping rows are matched to the master origin
// code by exact equality, price rows by dial-code prefix, and the two are
// joined on the origin name. Output codes are unique across the run, and
// price rows that never matched are appended un-routed.
func reconcileOriginMapping(sheets Sheets, master []MasterRow) []Record {
	prices := expandCodes(sheets[SheetPriceList], SplitCodes)
	mappings := sheets[SheetOriginMapping]

	seen := make(map[string]struct{})
	var out []Record
	for _, m := range master {
		for _, o := range mappings {
			if o.DialCode != m.OriginCode {
				continue
			}
			for _, p := range prices {
				if !strings.HasPrefix(p.DialCode, m.DestinyCode) || p.Origin != o.Origin {
					continue
				}
				if _, dup := seen[p.DialCode]; dup {
					continue
				}
				seen[p.DialCode] = struct{}{}
				out = append(out, Record{
					Destination:   p.Destination,
					DialCode:      p.DialCode,
					Price:         p.Rate,
					EffectiveDate: p.EffectiveDate,
					OriginLabel:   m.Routing,
				})
			}
		}
	}

	return appendRemaining(out, prices, seen)
}

// reconcileOriginMappingSplit extends the two-sheet comparison for vendors
// that pack several comma-joined codes into one price row. When no price
// row carries the matched origin name, origin-less rows stand in; when
// several candidates share a code, the highest rate wins.
func reconcileOriginMappingSplit(sheets Sheets, master []MasterRow) []Record {
	prices := expandCodes(sheets[SheetPriceList], SplitList)
	mappings := sheets[SheetOriginMapping]

	seen := make(map[string]struct{})
	var out []Record
	for _, m := range master {
		for _, o := range mappings {
			if o.DialCode != m.OriginCode {
				continue
			}

			var matching []Row
			for _, p := range prices {
				if strings.HasPrefix(p.DialCode, m.DestinyCode) {
					matching = append(matching, p)
				}
			}

			var cands []Row
			for _, p := range matching {
				if p.Origin != "" && p.Origin == o.Origin {
					cands = append(cands, p)
				}
			}
			if len(cands) == 0 {
				for _, p := range matching {
					if p.Origin == "" {
						cands = append(cands, p)
					}
				}
			}

			for _, p := range cands {
				if _, dup := seen[p.DialCode]; dup {
					continue
				}
				seen[p.DialCode] = struct{}{}

				best := p
				for _, q := range cands {
					if q.DialCode == p.DialCode && q.Rate.GreaterThan(best.Rate) {
						best = q
					}
				}
				out = append(out, Record{
					Destination:   best.Destination,
					DialCode:      p.DialCode,
					Price:         best.Rate,
					EffectiveDate: best.EffectiveDate,
					OriginLabel:   m.Routing,
				})
			}
		}
	}

	return appendRemaining(out, prices, seen)
}

// appendRemaining emits an un-routed fallback record for every price row
// whose code was not produced by the matched pass, keeping codes unique.
func appendRemaining(out []Record, prices []Row, seen map[string]struct{}) []Record {
	for _, p := range prices {
		if _, dup := seen[p.DialCode]; dup {
			continue
		}
		seen[p.DialCode] = struct{}{}
		out = append(out, Record{
			Destination:   p.Destination,
			DialCode:      p.DialCode,
			Price:         p.Rate,
			EffectiveDate: p.EffectiveDate,
		})
	}
	return out
}
