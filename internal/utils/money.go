package utils

import (
	"math"
	"strconv"
)

// FormatMoney renders an amount rounded to whole currency units with comma
// thousands separators, e.g. 120000 -> "120,000". Prompt and recommendation
// text only; stored amounts stay exact decimals.
func FormatMoney(amount float64) string {
	n := int64(math.Round(amount))

	negative := n < 0
	if negative {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var grouped []byte
		lead := len(s) % 3
		if lead > 0 {
			grouped = append(grouped, s[:lead]...)
		}
		for i := lead; i < len(s); i += 3 {
			if len(grouped) > 0 {
				grouped = append(grouped, ',')
			}
			grouped = append(grouped, s[i:i+3]...)
		}
		s = string(grouped)
	}

	if negative {
		return "-" + s
	}
	return s
}
