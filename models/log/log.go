package log

import (
	"time"
)

// Log is an HTTP audit row written by the async logger for payment endpoints.
type Log struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method       string    `gorm:"type:varchar(10);not null" json:"method"`
	URL          string    `gorm:"type:text;not null" json:"url"`
	Actor        string    `gorm:"type:varchar(255)" json:"actor"`
	RequestBody  string    `gorm:"type:text" json:"request_body"`
	ResponseBody string    `gorm:"type:text" json:"response_body"`
	StatusCode   int       `gorm:"type:int" json:"status_code"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
