package domain

import "time"

// Пороговые значения тиров возврата (часы до отправления)
// Границы строгие: ровно 48 часов до отправления попадает в тир 50%
const (
	refundTier90Hours = 48
	refundTier50Hours = 24
	refundTier25Hours = 6
)

// Проценты возврата по тирам
const (
	RefundPercent90 = 90
	RefundPercent50 = 50
	RefundPercent25 = 25
	RefundPercent0  = 0
)

// RefundQuote результат расчета возврата при отмене бронирования
type RefundQuote struct {
	Percentage int
	Amount     float64
	Status     RefundStatus
}

// CalculateRefund вычисляет возврат по времени до отправления
//
// Тиры: > 48 часов - 90%, > 24 часов - 50%, > 6 часов - 25%, иначе 0%.
func CalculateRefund(now time.Time, travelDate time.Time, totalAmount float64) RefundQuote {
	hoursUntilTrip := travelDate.Sub(now).Hours()

	var pct int
	switch {
	case hoursUntilTrip > refundTier90Hours:
		pct = RefundPercent90
	case hoursUntilTrip > refundTier50Hours:
		pct = RefundPercent50
	case hoursUntilTrip > refundTier25Hours:
		pct = RefundPercent25
	default:
		pct = RefundPercent0
	}

	status := RefundNotApplicable
	if pct > 0 {
		status = RefundPending
	}

	return RefundQuote{
		Percentage: pct,
		Amount:     totalAmount * float64(pct) / 100,
		Status:     status,
	}
}
