package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(requestID, action, entity, eventID string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	rec := models.AuditLog{
		RequestID: requestID,
		Action:    action,
		Entity:    entity,
		EventID:   eventID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&rec).Error
}
