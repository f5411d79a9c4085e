package gorm

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(host, port, username, pass, dbname string, sslmode bool, timeout time.Duration) (*gorm.DB, error) {
	if host == "" && port == "" && dbname == "" {
		return nil, errors.New("cannot establish the postgres connection")
	}
	mode := "disable"
	if sslmode {
		mode = "require"
	}
	connectTimeout := int(timeout.Seconds())
	if connectTimeout < 1 {
		connectTimeout = 1
	}
	connectionStr := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=%d",
		host, username, pass, dbname, port, mode, connectTimeout)

	pg, err := gorm.Open(postgres.Open(connectionStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	sqlDB, err := pg.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)

	logrus.Infof("Connected to postgres: host=%s port=%s dbname=%s", host, port, dbname)
	return pg, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	if err := sqlDb.Close(); err != nil {
		logrus.Error(err)
		return
	}
	logrus.Println("Connection with postgres has closed")
}
