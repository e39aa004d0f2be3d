package utils

import (
	"strconv"
	"strings"
)

// FormatEGP formats an integer amount (in EGP) as a string like "EGP 12,500".
// Uses comma as thousands separator, no fraction digits.
func FormatEGP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		if neg {
			return "-EGP " + s
		}
		return "EGP " + s
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + prefix
	b.Grow(len(s) + len(s)/3 + 5)
	if neg {
		b.WriteString("-EGP ")
	} else {
		b.WriteString("EGP ")
	}

	// Insert separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
