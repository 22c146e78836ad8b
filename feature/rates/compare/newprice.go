package compare

import "strings"

// reconcileNewPriceOverride is the three-sheet comparison: price rows
// match the master destination code by prefix, origin rows by exact code
// equality narrowed with a destination-name substring check, and a
// secondary new-price sheet is searched by cleaned dial code. When a new
// price exists its rate and date replace the base row's. No
// deduplication; only price rows that never matched fall back un-routed.
func reconcileNewPriceOverride(sheets Sheets, master []MasterRow) []Record {
	prices := sheets[SheetPriceList]
	newPrices := sheets[SheetNewPrice]
	origins := sheets[SheetOrigins]

	matched := make([]bool, len(prices))
	var out []Record
	for _, m := range master {
		pool := newPricePool(newPrices, origins, m, true)

		for i, p := range prices {
			if !strings.HasPrefix(p.DialCode, m.DestinyCode) {
				continue
			}
			matched[i] = true

			rec := Record{
				Destination:   p.Destination,
				DialCode:      p.DialCode,
				Price:         p.Rate,
				EffectiveDate: p.EffectiveDate,
				OriginLabel:   m.Routing,
			}
			clean := DigitsOnly(p.DialCode)
			for _, np := range pool {
				if DigitsOnly(np.DialCode) == clean {
					rec.Price = np.Rate
					rec.EffectiveDate = np.EffectiveDate
					break
				}
			}
			out = append(out, rec)
		}
	}

	for i, p := range prices {
		if matched[i] {
			continue
		}
		out = append(out, Record{
			Destination:   p.Destination,
			DialCode:      p.DialCode,
			Price:         p.Rate,
			EffectiveDate: p.EffectiveDate,
		})
	}
	return out
}

// reconcileNewPriceByName differs from reconcileNewPriceOverride on three
// points the billing files depend on: price rows match by destination-name
// substring instead of dial prefix, the new-price pool is not narrowed by
// the destination code, and the final pass appends every base row
// unconditionally, duplicates included.
func reconcileNewPriceByName(sheets Sheets, master []MasterRow) []Record {
	prices := sheets[SheetPriceList]
	newPrices := sheets[SheetNewPrice]
	origins := sheets[SheetOrigins]

	var out []Record
	for _, m := range master {
		pool := newPricePool(newPrices, origins, m, false)

		for _, p := range prices {
			if !containsFold(p.Destination, m.Destiny) {
				continue
			}

			rec := Record{
				Destination:   p.Destination,
				DialCode:      p.DialCode,
				Price:         p.Rate,
				EffectiveDate: p.EffectiveDate,
				OriginLabel:   m.Routing,
			}
			clean := DigitsOnly(p.DialCode)
			for _, np := range pool {
				if DigitsOnly(np.DialCode) == clean {
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

// newPricePool collects the new-price rows reachable from the master row
// through the origins sheet. Origin rows qualify on exact code equality;
// new-price rows must carry the matched origin's name and mention the
// master destination in their own destination field. byPrefix additionally
// narrows the pool to the master destination code.
func newPricePool(newPrices, origins []Row, m MasterRow, byPrefix bool) []Row {
	var pool []Row
	for _, o := range origins {
		if o.OriginCode != m.OriginCode {
			continue
		}
		for _, np := range newPrices {
			if np.Origin != o.Origin {
				continue
			}
			if byPrefix && !strings.HasPrefix(np.DialCode, m.DestinyCode) {
				continue
			}
			if !containsFold(np.Destination, m.Destiny) {
				continue
			}
			pool = append(pool, np)
		}
	}
	return pool
}
