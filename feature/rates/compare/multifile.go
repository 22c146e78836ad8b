package compare

import "strings"

// reconcileMultiFile handles the vendor that delivers its price list, new
// prices and origins as three separate uploads. Price codes match the
// master destination by prefix. For the reserved origin the join widens:
// origins are prefix-matched, their group details select the reachable
// new prices, and the highest rate among rows sharing the price row's
// group and region wins; a price row without candidates is not emitted.
// For every other origin a single group-level lookup applies, falling
// back to the base rate. No deduplication anywhere, and the final pass
// appends every base row unconditionally.
func reconcileMultiFile(sheets Sheets, master []MasterRow) []Record {
	prices := expandCodes(sheets[SheetPriceList], SplitCodes)
	newPrices := sheets[SheetNewPrice]
	origins := sheets[SheetOrigins]

	var out []Record
	for _, m := range master {
		if m.OriginCode == wideOriginCode {
			details := make(map[string]struct{})
			for _, o := range origins {
				if strings.HasPrefix(o.OriginCode, m.OriginCode) {
					details[o.GroupDetail] = struct{}{}
				}
			}
			var pool []Row
			for _, np := range newPrices {
				if _, ok := details[np.GroupDetail]; ok {
					pool = append(pool, np)
				}
			}

			for _, p := range prices {
				if !strings.HasPrefix(p.DialCode, m.DestinyCode) {
					continue
				}
				var cands []Row
				for _, np := range pool {
					if np.Group == p.Group && np.Region == p.Destination {
						cands = append(cands, np)
					}
				}
				if len(cands) == 0 {
					continue
				}
				best := maxRateRow(cands)
				date := p.EffectiveDate
				if date == "" {
					date = best.EffectiveDate
				}
				out = append(out, Record{
					Destination:   p.Destination,
					DialCode:      p.DialCode,
					Price:         best.Rate,
					EffectiveDate: date,
					OriginLabel:   m.Routing,
				})
			}
			continue
		}

		// One new-price row per matched origin, selected by exact group
		// and group-detail equality.
		var pool []Row
		for _, o := range origins {
			if o.OriginCode != m.OriginCode {
				continue
			}
			for _, np := range newPrices {
				if np.Group == o.Group && np.GroupDetail == o.GroupDetail {
					pool = append(pool, np)
					break
				}
			}
		}

		for _, p := range prices {
			if !strings.HasPrefix(p.DialCode, m.DestinyCode) {
				continue
			}
			rec := Record{
				Destination:   p.Destination,
				DialCode:      p.DialCode,
				Price:         p.Rate,
				EffectiveDate: p.EffectiveDate,
				OriginLabel:   m.Routing,
			}
			for _, np := range pool {
				if np.Group == p.Group {
					rec.Price = np.Rate
					rec.EffectiveDate = np.EffectiveDate
					break
				}
			}
			out = append(out, rec)
		}
	}

	for _, p := range prices {
		out = append(out, Record{
			Destination:   p.Destination,
			DialCode:      p.DialCode,
			Price:         p.Rate,
			EffectiveDate: p.EffectiveDate,
		})
	}
	return out
}
