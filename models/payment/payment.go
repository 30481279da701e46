package payment

import (
	"time"
)

// Payment is an immutable record of a successful checkout. One row is inserted
// per successful payment, in the same transaction that marks the parcel paid.
// Amount is in the smallest currency unit. PaidAtString carries an RFC3339
// copy of PaidAt for display clients.
type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ParcelID      uint      `gorm:"not null;index" json:"parcelId"`
	Email         string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Amount        int64     `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(50)" json:"paymentMethod"`
	TransactionID string    `gorm:"type:varchar(255)" json:"transactionId"`
	PaidAt        time.Time `gorm:"not null;index" json:"paid_at"`
	PaidAtString  string    `gorm:"type:varchar(40)" json:"paid_at_string"`
}
