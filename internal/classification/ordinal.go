package classification

import "strconv"

// OrdinalSuffix returns the English ordinal suffix for n: 1st, 2nd, 3rd,
// 4th, 11th, 12th, 13th, 21st and so on.
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	if rem := n % 100; rem >= 11 && rem <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal formats n with its ordinal suffix.
func Ordinal(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}
