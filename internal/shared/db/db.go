package db

import (
	"fmt"
	"log"
	"time"

	"github.com/ishan-1010/future-social-ishan/configs"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct{ DB *gorm.DB }

// Open connects to the configured database. Postgres is the production
// driver; sqlite is kept for local runs without a server.
func Open(cfg *configs.Config) *Store {
	if cfg.DBDriver == "sqlite" {
		g, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			log.Fatalf("sqlite open failed: %v", err)
		}
		return &Store{DB: g}
	}

	var last error
	var g *gorm.DB
	for i := 0; i < 8; i++ {
		g, last = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if last == nil {
			sqlDB, _ := g.DB()
			sqlDB.SetMaxOpenConns(40)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
			return &Store{DB: g}
		}
		time.Sleep(time.Duration(1<<i) * time.Second)
	}
	log.Fatalf("db open failed: %v", last)
	return nil
}

// OpenInMemory returns a throwaway sqlite store, one shared connection so
// concurrent statements serialize instead of hitting a lock error.
func OpenInMemory(name string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := g.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return &Store{DB: g}, nil
}
