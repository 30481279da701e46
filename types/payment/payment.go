package payment

import (
	"fmt"
)

// RecordPaymentRequest is the payload for POST /payments.
type RecordPaymentRequest struct {
	ParcelID      uint   `json:"parcelId"`
	Email         string `json:"email"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

func (r RecordPaymentRequest) Validate() error {
	if r.ParcelID == 0 {
		return fmt.Errorf("parcelId is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be a positive integer")
	}
	if r.TransactionID == "" {
		return fmt.Errorf("transactionId is required")
	}
	return nil
}

// PaymentIntentRequest is the payload for POST /create-payment-intent.
// The amount is in the smallest currency unit.
type PaymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents"`
}

func (r PaymentIntentRequest) Validate() error {
	if r.AmountInCents <= 0 {
		return fmt.Errorf("amountInCents must be a positive integer")
	}
	return nil
}
