package models

import "time"

const (
	PaymentMethodPaystack       = "paystack"
	PaymentMethodDirectTransfer = "direct-transfer"
)

const (
	TransactionStatusPending       = "pending"
	TransactionStatusPendingReview = "pending-review"
	TransactionStatusApproved      = "approved"
	TransactionStatusRejected      = "rejected"
	TransactionStatusSucceeded     = "succeeded"
	TransactionStatusFailed        = "failed"
)

type DonationTransaction struct {
	ID                    string    `bson:"id" json:"id"`
	DonationGalleryItemID string    `bson:"donationGalleryItemId" json:"donationGalleryItemId"`
	DonationTitle         string    `bson:"donationTitle" json:"donationTitle"`
	FirstName             string    `bson:"firstName" json:"firstName"`
	LastName              string    `bson:"lastName" json:"lastName"`
	Email                 string    `bson:"email" json:"email"`
	Country               string    `bson:"country" json:"country"`
	PhoneCountryCode      string    `bson:"phoneCountryCode" json:"phoneCountryCode"`
	Mobile                string    `bson:"mobile" json:"mobile"`
	PaymentMethod         string    `bson:"paymentMethod" json:"paymentMethod"`
	TransactionStatus     string    `bson:"transactionStatus" json:"transactionStatus"`
	ProofImageURL         string    `bson:"proofImageUrl,omitempty" json:"proofImageUrl,omitempty"`
	PaystackReference     string    `bson:"paystackReference,omitempty" json:"paystackReference,omitempty"`
	AmountNaira           int       `bson:"amountNaira,omitempty" json:"amountNaira,omitempty"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`
}

func IsValidPaymentMethod(value string) bool {
	return value == PaymentMethodPaystack || value == PaymentMethodDirectTransfer
}

// IsManualTransactionStatus reports whether an operator may set the
// given status by hand. Gateway statuses (pending, succeeded, failed)
// are owned by the payment provider callback and are never assignable
// through the admin API.
func IsManualTransactionStatus(value string) bool {
	switch value {
	case TransactionStatusPendingReview, TransactionStatusApproved, TransactionStatusRejected:
		return true
	default:
		return false
	}
}

// AllowsManualStatus reports whether this transaction accepts operator
// status edits. Only direct transfer transactions do; paystack ones are
// settled by the gateway callback.
func (t DonationTransaction) AllowsManualStatus() bool {
	return t.PaymentMethod == PaymentMethodDirectTransfer
}

// InitialTransactionStatus is the status a new transaction starts in for
// the given payment method.
func InitialTransactionStatus(paymentMethod string) string {
	if paymentMethod == PaymentMethodDirectTransfer {
		return TransactionStatusPendingReview
	}
	return TransactionStatusPending
}

type DonationCase struct {
	ID           string `bson:"id" json:"id"`
	Title        string `bson:"title" json:"title"`
	Beneficiary  string `bson:"beneficiary" json:"beneficiary"`
	Description  string `bson:"description" json:"description"`
	TargetAmount string `bson:"targetAmount,omitempty" json:"targetAmount,omitempty"`
	MediaType    string `bson:"mediaType,omitempty" json:"mediaType,omitempty"`
	MediaURL     string `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	Status       string `bson:"status" json:"status"` // open, closed
}

type DonationContent struct {
	IntroText           string   `bson:"introText" json:"introText"`
	MissionText         string   `bson:"missionText" json:"missionText"`
	PaymentHeading      string   `bson:"paymentHeading" json:"paymentHeading"`
	PaymentDescription  string   `bson:"paymentDescription" json:"paymentDescription"`
	OnlinePlatformLabel string   `bson:"onlinePlatformLabel" json:"onlinePlatformLabel"`
	OnlinePlatformURL   string   `bson:"onlinePlatformUrl" json:"onlinePlatformUrl"`
	BankTransferDetails []string `bson:"bankTransferDetails" json:"bankTransferDetails"`
}
