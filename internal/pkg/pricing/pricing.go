package pricing

import (
	"math"
	"time"
)

const nightMillis = 24 * 60 * 60 * 1000

// Nights counts billable nights between check-in and check-out.
// Partial days round up: a stay ending mid-day counts as a full extra
// night. Callers gate on checkOut > checkIn.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn).Milliseconds()
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / float64(nightMillis)))
}

// Total computes the booking cost: nightlyRate x partySize x nights.
func Total(nightlyRate float64, partySize, nights int) float64 {
	return nightlyRate * float64(partySize) * float64(nights)
}
