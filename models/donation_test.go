package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidPaymentMethod(t *testing.T) {
	require.True(t, IsValidPaymentMethod(PaymentMethodPaystack))
	require.True(t, IsValidPaymentMethod(PaymentMethodDirectTransfer))
	require.False(t, IsValidPaymentMethod("cash"))
	require.False(t, IsValidPaymentMethod(""))
}

func TestIsManualTransactionStatus(t *testing.T) {
	for _, manual := range []string{TransactionStatusPendingReview, TransactionStatusApproved, TransactionStatusRejected} {
		require.True(t, IsManualTransactionStatus(manual), manual)
	}
	for _, gateway := range []string{TransactionStatusPending, TransactionStatusSucceeded, TransactionStatusFailed, "unknown"} {
		require.False(t, IsManualTransactionStatus(gateway), gateway)
	}
}

func TestAllowsManualStatus(t *testing.T) {
	direct := DonationTransaction{PaymentMethod: PaymentMethodDirectTransfer}
	gateway := DonationTransaction{PaymentMethod: PaymentMethodPaystack}
	require.True(t, direct.AllowsManualStatus())
	require.False(t, gateway.AllowsManualStatus())
}

func TestInitialTransactionStatus(t *testing.T) {
	require.Equal(t, TransactionStatusPendingReview, InitialTransactionStatus(PaymentMethodDirectTransfer))
	require.Equal(t, TransactionStatusPending, InitialTransactionStatus(PaymentMethodPaystack))
}
