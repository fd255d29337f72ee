package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNights_CeilingBehavior(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)

	// 1ms to 24h after check-in is exactly one night, never zero.
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(time.Millisecond)))
	assert.Equal(t, 1, Nights(checkIn, time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(24*time.Hour)))

	// Just past a full day rounds up to two.
	assert.Equal(t, 2, Nights(checkIn, checkIn.Add(24*time.Hour+time.Second)))
}

func TestNights_EmptyOrInvertedRange(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, Nights(at, at))
	assert.Equal(t, 0, Nights(at, at.Add(-time.Hour)))
}

func TestTotal_BookingScenario(t *testing.T) {
	// nightlyRate=100, partySize=2, 2024-06-01 -> 2024-06-04 = 3 nights.
	checkIn := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)

	nights := Nights(checkIn, checkOut)
	assert.Equal(t, 3, nights)
	assert.Equal(t, 600.0, Total(100, 2, nights))
}

func TestTotal_Monotonicity(t *testing.T) {
	checkIn := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Non-decreasing in party size.
	prev := 0.0
	for party := 1; party <= 7; party++ {
		total := Total(100, party, Nights(checkIn, checkIn.Add(48*time.Hour)))
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}

	// Non-decreasing in stay length.
	prev = 0.0
	for days := 1; days <= 14; days++ {
		total := Total(100, 2, Nights(checkIn, checkIn.AddDate(0, 0, days)))
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}
}
