package ledger

import (
	"fmt"
	"time"
)

// =============================================================================
// TRANSACTION ID
// =============================================================================

// FormatID builds a transaction id from the creation time and the ledger's
// monotonic sequence: a fixed prefix, 4-digit year, 2-digit month, day, and
// hour, then a 5-digit zero-padded sequence number.
//
//	TXN2025110212 + 00001
//
// Ids are lexicographically non-decreasing for same-day traffic, but
// uniqueness rests on the sequence component alone - two transactions
// sharing a timestamp still get distinct ids.
func FormatID(ts time.Time, sequence uint64) string {
	return fmt.Sprintf("TXN%s%05d", ts.Format("2006010215"), sequence)
}
