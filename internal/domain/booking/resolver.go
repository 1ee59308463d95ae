package booking

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// centEpsilon absorbs floating-point rounding in deposit and full-payment
// comparisons: a paid total within one cent of the threshold counts as
// satisfied.
const centEpsilon = 0.01

// DeriveStage reconciles the booking's user-facing lifecycle stage from its
// underlying signals: the explicit status (a hint, except cancelled which is
// terminal), accumulated successful payments, gallery publication state, and
// whether the event date has already passed relative to now.
//
// The function is pure and total: missing relations, blank or junk monetary
// fields, and unparseable event dates all degrade to conservative defaults
// instead of failing.
func DeriveStage(b *Booking, now time.Time) LifecycleStage {
	if b == nil {
		return StagePendingDeposit
	}

	hint, hasHint := normalizeStatusHint(b.Status)
	if hasHint && hint == StageCancelled {
		// Terminal: no payment or date combination revives a cancelled booking.
		return StageCancelled
	}

	var paid float64
	for _, p := range b.Payments {
		if p.Status.CountsAsPaid() {
			paid += parseAmount(p.Amount)
		}
	}

	deposit := parseAmount(b.DepositAmount)
	price := parseAmount(b.PackagePrice)

	depositSatisfied := deposit <= 0 || paid+centEpsilon >= deposit
	fullyPaid := price <= 0 || paid+centEpsilon >= price
	eventHasPassed := eventDatePassed(b.EventDate, now)

	delivered := false
	for _, g := range b.Galleries {
		if g.Status == GalleryPublished {
			delivered = true
			break
		}
	}

	// Payment completeness gates everything before delivery state is even
	// considered; a passed event date pushes the booking out of "upcoming"
	// into the more specific pending stage when nobody updated the status.
	switch {
	case !depositSatisfied:
		return StagePendingDeposit
	case !fullyPaid:
		if (hasHint && hint == StagePendingFullPayment) || eventHasPassed {
			return StagePendingFullPayment
		}
		return StageUpcoming
	case delivered:
		return StageCompleted
	case (hasHint && hint == StagePendingDelivery) || eventHasPassed:
		return StagePendingDelivery
	default:
		return StageUpcoming
	}
}

// parseAmount reads a decimal text amount; blank, unparseable, or non-finite
// values are treated as zero.
func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// eventDatePassed reports whether the stored event date resolves to a moment
// strictly before now. Blank or unparseable dates are treated as "has not
// passed", as are dates at or before the Unix epoch (a sentinel some legacy
// rows carry).
func eventDatePassed(rawDate string, now time.Time) bool {
	raw := strings.TrimSpace(rawDate)
	if raw == "" {
		return false
	}
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return t.Unix() > 0 && t.Before(now)
	}
	return false
}
