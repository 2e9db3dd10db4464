package invoice

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrefix is the invoice prefix used when none is configured.
const DefaultPrefix = "DZAIR"

// Format builds an invoice number of the form PREFIX-YYYY-NNN. The sequence
// is zero-padded to three digits and grows beyond 999 without truncation.
func Format(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// Pattern returns the SQL LIKE pattern matching all invoice numbers issued
// under the given prefix and calendar year.
func Pattern(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-%%", prefix, year)
}

// ParseSeq extracts the trailing sequence number from an invoice number.
// It returns false when the trailing segment is not numeric.
func ParseSeq(no string) (int, bool) {
	idx := strings.LastIndex(no, "-")
	if idx < 0 || idx == len(no)-1 {
		return 0, false
	}
	seq, err := strconv.Atoi(no[idx+1:])
	if err != nil {
		return 0, false
	}
	return seq, true
}
