package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_IsValid(t *testing.T) {
	for _, s := range []PaymentStatus{StatusPending, StatusPaid, StatusFailed, StatusCancelled, StatusConfirmed} {
		assert.True(t, s.IsValid(), "status %s", s)
	}

	assert.False(t, PaymentStatus("Refunded").IsValid())
	assert.False(t, PaymentStatus("pending").IsValid(), "enum is case sensitive")
	assert.False(t, PaymentStatus("").IsValid())
}

func TestPaymentStatus_CancelledNotReachableViaTransition(t *testing.T) {
	// В Cancelled нельзя перейти через смену статуса ни из одного состояния,
	// единственный путь - сценарий отмены бронирования
	for from := range statusTransitions {
		assert.False(t, from.CanTransitionTo(StatusCancelled), "from %s", from)
	}
}

func TestPaymentStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusPaid))
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPaid.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusFailed.CanTransitionTo(StatusPending))

	// Отмененное бронирование нельзя переоткрыть
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPaid))
	assert.True(t, StatusCancelled.IsTerminal())

	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))
	assert.True(t, StatusConfirmed.IsTerminal())
}

func TestParsePaymentStatus(t *testing.T) {
	status, err := ParsePaymentStatus("Paid")
	assert.NoError(t, err)
	assert.Equal(t, StatusPaid, status)

	_, err = ParsePaymentStatus("Unknown")
	assert.Error(t, err)
}

func TestRefundStatus_IsValid(t *testing.T) {
	for _, s := range []RefundStatus{RefundNotApplicable, RefundPending, RefundProcessed, RefundFailed} {
		assert.True(t, s.IsValid(), "status %s", s)
	}
	assert.False(t, RefundStatus("Done").IsValid())
}
