package parcel

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Parcel represents a shipment record. CreationDate is always server-assigned;
// PaymentStatus is only ever flipped unpaid -> paid by the payment workflow.
type Parcel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
	Type  string `gorm:"type:varchar(50)" json:"type,omitempty"`

	SenderName      string `gorm:"type:varchar(255)" json:"sender_name,omitempty"`
	SenderRegion    string `gorm:"type:varchar(100)" json:"sender_region,omitempty"`
	SenderAddress   string `gorm:"type:text" json:"sender_address,omitempty"`
	SenderContact   string `gorm:"type:varchar(20)" json:"sender_contact,omitempty"`
	ReceiverName    string `gorm:"type:varchar(255)" json:"receiver_name,omitempty"`
	ReceiverRegion  string `gorm:"type:varchar(100)" json:"receiver_region,omitempty"`
	ReceiverAddress string `gorm:"type:text" json:"receiver_address,omitempty"`
	ReceiverContact string `gorm:"type:varchar(20)" json:"receiver_contact,omitempty"`

	Cost           decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`
	AssignedRider  *string         `gorm:"type:varchar(255)" json:"assigned_rider,omitempty"`
	DeliveryStatus string          `gorm:"type:varchar(50)" json:"delivery_status,omitempty"`

	CreatedBy     string        `gorm:"type:varchar(255);not null;index" json:"created_by"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:unpaid" json:"payment_status"`
	CreationDate  time.Time     `gorm:"not null" json:"creation_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
