package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"finance-dashboard-go/internal/config"
	"finance-dashboard-go/internal/models"
	"finance-dashboard-go/internal/store"
	"finance-dashboard-go/internal/store/memory"
	pgstore "finance-dashboard-go/internal/store/postgres"
)

// Connect opens the postgres database described by cfg.
func Connect(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	log.WithFields(logrus.Fields{"host": cfg.DBHost, "db": cfg.DBName}).Info("connected to postgres")

	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		log.Info("schema auto-migrated")
	}
	return db, nil
}

// Open returns the record store selected by cfg.DataBackend and a close func.
// The memory backend is seeded with the demo membership.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (store.Client, func() error, error) {
	switch cfg.DataBackend {
	case config.BackendMemory:
		s := memory.New(models.Schema())
		if err := memory.Seed(ctx, s, time.Now()); err != nil {
			return nil, nil, err
		}
		log.WithField("membership", memory.DemoMembership).Info("memory backend seeded")
		return s, func() error { return nil }, nil
	case config.BackendPostgres:
		db, err := Connect(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("postgres handle: %w", err)
		}
		return pgstore.New(db, models.Schema(), log), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}
