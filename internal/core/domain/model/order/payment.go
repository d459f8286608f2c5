package order

import (
	"fmt"

	"deliverya/internal/pkg/errs"
)

// PaymentMethod indicates how the client pays for the order.
// It is chosen at creation time and never changes afterwards.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// Cash is paid to the courier on delivery. Cash orders are settled
	// automatically the moment they complete.
	Cash

	// Card is paid electronically after delivery. Card orders complete with
	// payment still pending and are settled by an explicit confirmation.
	Card
)

// PaymentStatus tracks whether the order has been settled.
//
// Transitions:
//
//	PaymentPending ──> PaymentPaid
//
// PaymentPaid is terminal and only reachable on a completed order.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of every order.
	PaymentPending

	// PaymentPaid indicates the order has been settled. Terminal.
	PaymentPaid
)

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Cash: "cash",
		Card: "card",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending: "pending",
		PaymentPaid:    "paid",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method ("cash", "card"),
// or "unknown" for invalid values.
func (m PaymentMethod) String() string {
	if str, ok := getValidPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire name of the payment status ("pending", "paid"),
// or "unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getValidPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
