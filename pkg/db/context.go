package db

import (
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq" // <-- Add this for PostgreSQL
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"picker.punishwheel.com/config"
	"picker.punishwheel.com/models"
)

var GormDB *gorm.DB

func InitDB(log *logrus.Logger) {
	provider := config.Settings.Database.Provider
	conn := config.Settings.Database.ConnectionString

	var db *gorm.DB
	var err error

	switch provider {
	case "sqlite":
		if _, err := os.Stat(conn); os.IsNotExist(err) {
			log.Warnf("⚠️  SQLite DB file '%s' does not exist. Will be created on first write.", conn)
		}
		db, err = gorm.Open(sqlite.Open(conn), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ Failed to open SQLite DB: %v", err)
		}
		log.Infof("✅ SQLite connected: %s", conn)

	case "postgresql":
		db, err = gorm.Open(postgres.Open(conn), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
		}
		log.Infof("✅ PostgreSQL connected")

	default:
		log.Fatalf("❌ Unknown DB provider: %s", provider)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Failed to extract sql.DB: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("❌ DB ping failed: %v", err)
	}

	GormDB = db
}

func AutoMigrate() error {
	// Safe — this will NOT drop existing tables or data
	return GormDB.AutoMigrate(
		&models.PunishmentDraw{},
	)
}

func SaveDraws(data []models.PunishmentDraw, instance string, log *logrus.Logger) error {
	if len(data) == 0 {
		log.WithField("instance", instance).Info("📭 No draws to insert")
		return nil
	}

	// Tag every row with the serving instance
	for i := range data {
		data[i].Instance = instance
	}

	// Group data by source for detailed logging
	logSummary := make(map[string]int)
	for _, d := range data {
		logSummary[d.Source]++
	}

	result := GormDB.CreateInBatches(data, 100)
	if result.Error != nil {
		return fmt.Errorf("insert failed: %w", result.Error)
	}

	for source, count := range logSummary {
		log.WithFields(logrus.Fields{
			"instance":  instance,
			"source":    source,
			"attempted": count,
			"inserted":  result.RowsAffected, // optional: total inserted
		}).Infof("✅ Saved draws from %s", source)
	}

	return nil
}
