package compare

import "strings"

// SplitCodes splits a multi-code dial field on ';' and '-', trims each
// token, and drops empties. Both characters are plain separators here:
// "31;33-35" yields 31, 33 and 35. Historical rate files were produced
// this way and downstream billing depends on exact parity, so '-' must
// not be widened into numeric range expansion.
func SplitCodes(field string) []string {
	return splitAny(field, func(r rune) bool { return r == ';' || r == '-' })
}

// SplitList splits a comma-joined dial field, trimming tokens and
// dropping empties.
func SplitList(field string) []string {
	return splitAny(field, func(r rune) bool { return r == ',' })
}

func splitAny(field string, sep func(rune) bool) []string {
	parts := strings.FieldsFunc(field, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DigitsOnly strips everything but ASCII digits. New-price joins compare
// codes in this cleaned form because vendors decorate them inconsistently
// ("44-7", "44 7", "44(7)").
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// expandCodes returns one row per code token of each row's dial-code
// field, splitting with the given splitter. Rows whose field yields no
// tokens are dropped.
func expandCodes(rows []Row, split func(string) []string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		for _, code := range split(r.DialCode) {
			e := r
			e.DialCode = code
			out = append(out, e)
		}
	}
	return out
}

// maxRateRow picks the candidate with the strictly highest rate; the
// first seen wins exact ties.
func maxRateRow(rows []Row) Row {
	best := rows[0]
	for _, r := range rows[1:] {
		if r.Rate.GreaterThan(best.Rate) {
			best = r
		}
	}
	return best
}
