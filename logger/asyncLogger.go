package logger

import (
	"log"

	log_model "parcel-delivery/models/log"
	"parcel-delivery/types"

	"gorm.io/gorm"
)

// AsyncLogger persists audit log entries off the request path. Entries are
// queued on a buffered channel and drained by ProcessLog into the logs table.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous audit logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:       logEntry.Method,
			URL:          logEntry.URL,
			Actor:        logEntry.Actor,
			RequestBody:  logEntry.RequestBody,
			ResponseBody: logEntry.ResponseBody,
			StatusCode:   logEntry.StatusCode,
			CreatedAt:    logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert audit log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	logger.channel <- entry
}
