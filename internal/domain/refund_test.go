package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refundNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestCalculateRefund_Tiers(t *testing.T) {
	tests := []struct {
		name       string
		hoursAhead time.Duration
		wantPct    int
		wantStatus RefundStatus
	}{
		{"well before trip", 72 * time.Hour, 90, RefundPending},
		{"just over 48h", 48*time.Hour + time.Minute, 90, RefundPending},
		{"exactly 48h belongs to 50% tier", 48 * time.Hour, 50, RefundPending},
		{"30 hours ahead", 30 * time.Hour, 50, RefundPending},
		{"exactly 24h belongs to 25% tier", 24 * time.Hour, 25, RefundPending},
		{"12 hours ahead", 12 * time.Hour, 25, RefundPending},
		{"exactly 6h gets nothing", 6 * time.Hour, 0, RefundNotApplicable},
		{"5 hours ahead", 5 * time.Hour, 0, RefundNotApplicable},
		{"departure imminent", time.Minute, 0, RefundNotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := CalculateRefund(refundNow, refundNow.Add(tt.hoursAhead), 1000)

			assert.Equal(t, tt.wantPct, quote.Percentage)
			assert.Equal(t, tt.wantStatus, quote.Status)
			assert.Equal(t, 1000*float64(tt.wantPct)/100, quote.Amount)
		})
	}
}

func TestCalculateRefund_AmountFormula(t *testing.T) {
	quote := CalculateRefund(refundNow, refundNow.Add(30*time.Hour), 2000)

	assert.Equal(t, 50, quote.Percentage)
	assert.Equal(t, 1000.0, quote.Amount)
	assert.Equal(t, RefundPending, quote.Status)
}
