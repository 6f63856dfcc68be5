package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fhelderls/eventflow-kanban/internal/models"
)

func NewPostgresDB(dsn string, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Equipment{},
		&models.Event{},
		&models.EventAllocation{},
		&models.EventTask{},
	); err != nil {
		log.Fatal("failed to auto-migrate", zap.Error(err))
	}

	// Allocations and tasks are owned exclusively by their event.
	db.Exec(`
		ALTER TABLE event_allocations
		DROP CONSTRAINT IF EXISTS fk_event_allocations_event,
		ADD CONSTRAINT fk_event_allocations_event
		FOREIGN KEY (event_id) REFERENCES events (id) ON DELETE CASCADE
	`)
	db.Exec(`
		ALTER TABLE event_tasks
		DROP CONSTRAINT IF EXISTS fk_event_tasks_event,
		ADD CONSTRAINT fk_event_tasks_event
		FOREIGN KEY (event_id) REFERENCES events (id) ON DELETE CASCADE
	`)

	// Speeds up the conflict scan: active allocations per equipment unit.
	// Not unique — one event may hold several allocations of the same unit,
	// and the event date lives on the events table, so double-booking is
	// prevented by the serialized check-and-insert in the allocation service.
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_allocation_active
		ON event_allocations (equipment_id)
		WHERE status <> 'returned'
	`)

	return db
}
