package currency

import "strings"

// Rate returns the number of units of code per one BaseCode unit.
func Rate(code string) (float64, bool) {
	rate, ok := rates[normalize(code)]
	if !ok || rate == 0 {
		return 0, false
	}
	return rate, true
}

// Convert expresses amount, given in currency from, in currency to. An empty
// to converts into BaseCode. The second result is false when either code is
// unknown.
func Convert(amount float64, from, to string) (float64, bool) {
	if strings.TrimSpace(to) == "" {
		to = BaseCode
	}
	fromRate, ok := Rate(from)
	if !ok {
		return 0, false
	}
	toRate, ok := Rate(to)
	if !ok {
		return 0, false
	}
	return amount * toRate / fromRate, true
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
