package formatting

import (
	"strconv"
	"time"
)

// FormatMoney renders a whole-dollar amount with a dollar sign and
// thousands separators, e.g. 1250000 -> "$1,250,000".
func FormatMoney(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if negative {
		return "-$" + string(out)
	}
	return "$" + string(out)
}

// FormatPercent renders a ratio already expressed as a percentage
// to one decimal place, e.g. 15.04 -> "15.0%".
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 1, 64) + "%"
}

// FormatDateLong renders a calendar date in contract prose style,
// e.g. "January 2, 2026".
func FormatDateLong(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatDateISO renders a calendar date as YYYY-MM-DD.
func FormatDateISO(t time.Time) string {
	return t.Format("2006-01-02")
}
