package tracking

import (
	"time"
)

// TrackingEvent is an append-only status event for a parcel. Rows are never
// updated or deleted. ParcelID is a plain reference, not an enforced foreign
// key, so events for since-deleted parcels remain readable.
type TrackingEvent struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"tracking_id"`
	ParcelID   uint      `gorm:"not null;index" json:"parcel_id"`
	Status     string    `gorm:"type:varchar(50);not null" json:"status"`
	Message    string    `gorm:"type:text" json:"message,omitempty"`
	Time       time.Time `gorm:"not null" json:"time"`
	UpdatedBy  string    `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
}
