package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancellationPolicy_Evaluate(t *testing.T) {
	policy := DefaultCancellationPolicy()
	checkIn := NewDate(2026, time.March, 10)
	midnight := checkIn.In(time.UTC)

	testCases := []struct {
		name       string
		now        time.Time
		wantCharge CancellationCharge
		wantAmount int64
	}{
		{name: "days ahead", now: midnight.Add(-72 * time.Hour), wantCharge: CancellationFree},
		{name: "exactly 24 hours", now: midnight.Add(-24 * time.Hour), wantCharge: CancellationFree},
		{name: "23h59m", now: midnight.Add(-(23*time.Hour + 59*time.Minute)), wantCharge: CancellationPenalized, wantAmount: 2300},
		{name: "10 hours", now: midnight.Add(-10 * time.Hour), wantCharge: CancellationPenalized, wantAmount: 2300},
		{name: "after check-in", now: midnight.Add(5 * time.Hour), wantCharge: CancellationPenalized, wantAmount: 2300},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := policy.Evaluate(checkIn, time.UTC, tc.now, 4600)
			assert.Equal(t, tc.wantCharge, q.Charge)
			assert.Equal(t, tc.wantAmount, q.ChargeAmount)
			if tc.wantCharge == CancellationPenalized {
				assert.Equal(t, int64(50), q.ChargePercent)
			} else {
				assert.Zero(t, q.ChargePercent)
			}
		})
	}
}

func TestCancellationPolicy_EvaluateUsesHotelTimezone(t *testing.T) {
	policy := DefaultCancellationPolicy()
	ist := time.FixedZone("IST", 5*3600+1800)
	checkIn := NewDate(2026, time.March, 10)

	// 24h before midnight UTC is still inside the window for a hotel 5h30 ahead.
	now := checkIn.In(time.UTC).Add(-24 * time.Hour)
	q := policy.Evaluate(checkIn, ist, now, 1000)

	assert.Equal(t, CancellationPenalized, q.Charge)
	assert.Equal(t, int64(18), q.HoursUntilCheckIn)
	assert.Equal(t, int64(500), q.ChargeAmount)
}

func TestCancellationPolicy_Rules(t *testing.T) {
	rules := DefaultCancellationPolicy().Rules()
	assert.Equal(t, []string{
		"Cancel up to 24 hours before check-in.",
		"Within 24 hours → 50% charge.",
		"Confirmed bookings are guaranteed.",
	}, rules)
}

func TestCancellationQuote_Repriced(t *testing.T) {
	policy := DefaultCancellationPolicy()
	checkIn := NewDate(2026, time.March, 10)
	now := checkIn.In(time.UTC).Add(-10 * time.Hour)

	late := policy.Evaluate(checkIn, time.UTC, now, 90000).Repriced(4600)
	assert.Equal(t, CancellationPenalized, late.Charge)
	assert.Equal(t, int64(2300), late.ChargeAmount)

	free := policy.Evaluate(checkIn, time.UTC, now.Add(-48*time.Hour), 90000).Repriced(4600)
	assert.Equal(t, CancellationFree, free.Charge)
	assert.Zero(t, free.ChargeAmount)
}
