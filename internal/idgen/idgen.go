// Package idgen generates the human-readable correlation IDs used on
// reports, bookings, and applications. These are distinct from the database
// surrogate keys and carry no uniqueness guarantee beyond wall clock plus a
// small random suffix.
package idgen

import (
	"fmt"
	"math/rand"
	"time"
)

// Domain prefixes for generated report IDs.
const (
	PrefixVeterinary = "VET"
	PrefixWildlife   = "WLF"
	PrefixScheme     = "SCH"
)

// NewReportID returns "<PREFIX>-<unixMillis><3-digit random>".
func NewReportID(prefix string) string {
	return fmt.Sprintf("%s-%d%03d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}
