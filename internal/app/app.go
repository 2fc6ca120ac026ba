package app

import (
	"staffdesk/internal/clockrecord"
	"staffdesk/internal/config"
	"staffdesk/internal/employee"
	"staffdesk/internal/holiday"
	"staffdesk/internal/inventory"
	"staffdesk/internal/session"
	"staffdesk/internal/shared/connection"
	"staffdesk/internal/task"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects infrastructure, migrates the schema, and registers
// every module's routes on the router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	if err := migrate(db); err != nil {
		return err
	}

	sessionStore, err := buildSessionStore(cfg)
	if err != nil {
		return err
	}
	sessions := session.NewManager(sessionStore, cfg.Session.TTL)
	logger.Info("session manager ready", zap.Duration("idle_ttl", sessions.TTL()))

	return registerModules(router, db, sessions, cfg)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&inventory.InventoryItem{},
		&task.Task{},
		&clockrecord.ClockRecord{},
		&holiday.HolidayRequest{},
	)
}

// buildSessionStore prefers redis so sessions survive restarts; the
// in-memory store covers development and tests.
func buildSessionStore(cfg *config.Config) (session.Store, error) {
	if !cfg.Redis.Enabled {
		zap.L().Named("app").Info("using in-memory session store")
		return session.NewMemoryStore(), nil
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return nil, err
	}
	zap.L().Named("app").Info("redis connection established", zap.String("addr", cfg.Redis.Addr))
	return session.NewRedisStore(rdb), nil
}
