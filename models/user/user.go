package user

import (
	"time"
)

// User is created on first sign-in and only touched afterwards to refresh
// LastLogIn. Email is the business key; parcels and payments reference it.
type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string     `gorm:"type:varchar(255);not null;unique" json:"email"`
	Name      string     `gorm:"type:varchar(255)" json:"name,omitempty"`
	Role      string     `gorm:"type:varchar(50)" json:"role,omitempty"`
	LastLogIn time.Time  `json:"last_log_in"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
