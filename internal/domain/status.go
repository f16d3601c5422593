package domain

import "fmt"

// PaymentStatus represents the payment/cancellation state of a booking
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "Pending"
	StatusPaid      PaymentStatus = "Paid"
	StatusFailed    PaymentStatus = "Failed"
	StatusCancelled PaymentStatus = "Cancelled"
	StatusConfirmed PaymentStatus = "Confirmed"
)

// statusTransitions таблица допустимых переходов статуса оплаты
// Cancelled намеренно отсутствует среди целевых статусов:
// попасть в него можно только через сценарий отмены бронирования
var statusTransitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:   {StatusPaid, StatusFailed, StatusConfirmed},
	StatusPaid:      {StatusConfirmed, StatusFailed},
	StatusFailed:    {StatusPending},
	StatusConfirmed: {},
	StatusCancelled: {},
}

// IsValid returns true if the status is a recognized payment status
func (s PaymentStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo returns true if a transition from this status to the target is allowed
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status
func (s PaymentStatus) IsTerminal() bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

// String returns the string representation of the status
func (s PaymentStatus) String() string {
	return string(s)
}

// ParsePaymentStatus converts a string to a PaymentStatus
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid payment status: %q", s)
	}
	return status, nil
}

// RefundStatus represents the processing state of a refund
type RefundStatus string

const (
	RefundNotApplicable RefundStatus = "Not Applicable"
	RefundPending       RefundStatus = "Pending"
	RefundProcessed     RefundStatus = "Processed"
	RefundFailed        RefundStatus = "Failed"
)

// IsValid returns true if the status is a recognized refund status
func (s RefundStatus) IsValid() bool {
	switch s {
	case RefundNotApplicable, RefundPending, RefundProcessed, RefundFailed:
		return true
	}
	return false
}

// String returns the string representation of the refund status
func (s RefundStatus) String() string {
	return string(s)
}
