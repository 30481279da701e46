package rider

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
)

// Rider is a delivery agent application. Status moves only by explicit admin
// action and is stored as free text; the constants above are the recognized
// values but SetStatus does not enforce them.
type Rider struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Email       string `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone       string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Region      string `gorm:"type:varchar(100)" json:"region,omitempty"`
	District    string `gorm:"type:varchar(100)" json:"district,omitempty"`
	VehicleType string `gorm:"type:varchar(50)" json:"vehicle_type,omitempty"`
	NIDNumber   string `gorm:"type:varchar(50)" json:"nid_number,omitempty"`

	Status Status `gorm:"type:varchar(50);not null;index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
