package audit

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

// DBSink writes audit rows. Used when the service runs against Postgres.
type DBSink struct {
	db *gorm.DB
}

func NewDBSink(db *gorm.DB) *DBSink {
	return &DBSink{db: db}
}

func (s *DBSink) Write(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return s.db.Create(&row).Error
}

// LogSink is the fallback when no database is configured.
type LogSink struct{}

func (LogSink) Write(ev Event) error {
	log.Printf("audit: %s %s %s", ev.Action, ev.Entity, ev.EntityID)
	return nil
}
