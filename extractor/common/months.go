package common

import "regexp"

// monthPattern matches one month's known spellings, optionally followed by a
// separator and anything else ("jan", "jan/25", "janeiro 2025", "jan."). The
// cell must already be in Normalize form when tested.
type monthPattern struct {
	key MonthKey
	re  *regexp.Regexp
}

// monthPatterns is the fixed classification table. Order matters: patterns
// are tried top to bottom and the first hit wins.
var monthPatterns = []monthPattern{
	{Jan, monthRe("jan", "janeiro")},
	{Fev, monthRe("fev", "fevereiro")},
	{Mar, monthRe("mar", "marco")},
	{Abr, monthRe("abr", "abril")},
	{Mai, monthRe("mai", "maio")},
	{Jun, monthRe("jun", "junho")},
	{Jul, monthRe("jul", "julho")},
	{Ago, monthRe("ago", "agosto")},
	{Set, monthRe("set", "setembro")},
	{Out, monthRe("out", "outubro")},
	{Nov, monthRe("nov", "novembro")},
	{Dez, monthRe("dez", "dezembro")},
	{Total, regexp.MustCompile(`^total$`)},
}

func monthRe(variants ...string) *regexp.Regexp {
	alt := variants[0]
	for _, v := range variants[1:] {
		alt += "|" + v
	}
	return regexp.MustCompile(`^(` + alt + `)([\s./-].*)?$`)
}

// ClassifyMonth maps a header cell to its canonical MonthKey. Classification
// is case- and accent-insensitive (the cell is normalized first) and rejects
// anything not in the fixed table.
func ClassifyMonth(cell string) (MonthKey, bool) {
	n := Normalize(cell)
	if n == "" {
		return "", false
	}
	for _, p := range monthPatterns {
		if p.re.MatchString(n) {
			return p.key, true
		}
	}
	return "", false
}
