package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// PaymentMethod identifies how the customer paid at checkout.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentCreditCard is a credit card payment.
	PaymentCreditCard

	// PaymentDebitCard is a debit card payment.
	PaymentDebitCard

	// PaymentUPI is a UPI transfer.
	PaymentUPI

	// PaymentNetBanking is a net-banking transfer.
	PaymentNetBanking
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentCreditCard:    "credit_card",
		PaymentDebitCard:     "debit_card",
		PaymentUPI:           "upi",
		PaymentNetBanking:    "net_banking",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCreditCard: "credit_card",
		PaymentDebitCard:  "debit_card",
		PaymentUPI:        "upi",
		PaymentNetBanking: "net_banking",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, str := range getValidPaymentMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the value is one of the defined payment methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks the settlement state of the checkout payment.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means settlement has not completed yet.
	PaymentPending

	// PaymentCompleted means the payment settled.
	PaymentCompleted

	// PaymentFailed means settlement failed.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentPending:       "pending",
		PaymentCompleted:     "completed",
		PaymentFailed:        "failed",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for st, str := range getValidPaymentStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the value is one of the defined payment statuses.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
