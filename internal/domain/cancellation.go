package domain

import (
	"fmt"
	"time"
)

type CancellationCharge string

const (
	CancellationFree      CancellationCharge = "free"
	CancellationPenalized CancellationCharge = "penalized"
)

// CancellationPolicy is the hotel's cancellation rule set.
type CancellationPolicy struct {
	// FreeWindow is how long before check-in a cancellation stops being free.
	FreeWindow time.Duration
	// LateChargePercent of the total price is charged inside FreeWindow.
	LateChargePercent int64
	// ConfirmedGuaranteed means the hotel never revokes a confirmed booking before check-in.
	ConfirmedGuaranteed bool
}

func DefaultCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{
		FreeWindow:          24 * time.Hour,
		LateChargePercent:   50,
		ConfirmedGuaranteed: true,
	}
}

type CancellationQuote struct {
	Charge            CancellationCharge `json:"charge"`
	HoursUntilCheckIn int64              `json:"hoursUntilCheckIn"`
	ChargePercent     int64              `json:"chargePercent"`
	ChargeAmount      int64              `json:"chargeAmount"`
}

// Evaluate classifies a cancellation requested at now for a stay starting at checkIn
// (midnight in loc). The free window boundary is inclusive.
func (p CancellationPolicy) Evaluate(checkIn Date, loc *time.Location, now time.Time, totalPrice int64) CancellationQuote {
	until := checkIn.In(loc).Sub(now)
	q := CancellationQuote{
		Charge:            CancellationFree,
		HoursUntilCheckIn: int64(until / time.Hour),
	}
	if until >= p.FreeWindow {
		return q
	}
	q.Charge = CancellationPenalized
	q.ChargePercent = p.LateChargePercent
	q.ChargeAmount = totalPrice * p.LateChargePercent / 100
	return q
}

// Repriced returns q with the charge applied to totalPrice instead.
func (q CancellationQuote) Repriced(totalPrice int64) CancellationQuote {
	q.ChargeAmount = totalPrice * q.ChargePercent / 100
	return q
}

// Rules renders the policy as the lines shown to guests.
func (p CancellationPolicy) Rules() []string {
	hours := int64(p.FreeWindow / time.Hour)
	rules := []string{
		fmt.Sprintf("Cancel up to %d hours before check-in.", hours),
		fmt.Sprintf("Within %d hours → %d%% charge.", hours, p.LateChargePercent),
	}
	if p.ConfirmedGuaranteed {
		rules = append(rules, "Confirmed bookings are guaranteed.")
	}
	return rules
}
