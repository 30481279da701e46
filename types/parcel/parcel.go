package parcel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParcelCreateRequest is the payload for POST /add-parcels. creation_date and
// payment_status are never taken from the client.
type ParcelCreateRequest struct {
	Title           string          `json:"title"`
	Type            string          `json:"type"`
	SenderName      string          `json:"sender_name"`
	SenderRegion    string          `json:"sender_region"`
	SenderAddress   string          `json:"sender_address"`
	SenderContact   string          `json:"sender_contact"`
	ReceiverName    string          `json:"receiver_name"`
	ReceiverRegion  string          `json:"receiver_region"`
	ReceiverAddress string          `json:"receiver_address"`
	ReceiverContact string          `json:"receiver_contact"`
	Cost            decimal.Decimal `json:"cost"`
	DeliveryStatus  string          `json:"delivery_status"`
	CreatedBy       string          `json:"created_by"`
}

func (p ParcelCreateRequest) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.CreatedBy == "" {
		return fmt.Errorf("created_by is required")
	}
	if p.Cost.IsNegative() {
		return fmt.Errorf("cost must not be negative")
	}
	return nil
}
