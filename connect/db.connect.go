package connect

import (
	"fmt"
	"os"
	"time"

	"github.com/VinukaThejana/feedback/config"
	"github.com/VinukaThejana/feedback/models"
	"github.com/VinukaThejana/go-utils/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// InitDatabase is a fucntion to initialize the connection with the postgres database
func (c *Connector) InitDatabase(env *config.Env) {
	if env.DSN == "" {
		return
	}

	db, err := gorm.Open(postgres.Open(env.DSN), &gorm.Config{})
	if err != nil {
		logger.Errorf(err)
	}

	if config.GetDevEnv(env) != config.Prod {
		db.Logger = gormLogger.Default.LogMode(gormLogger.Info)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Errorf(err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	c.DB = db
}

// MigrateSchemaChanges is a fucntion that is used to migrate schema changes to the database
func (c *Connector) MigrateSchemaChanges(env *config.Env) {
	if config.GetDevEnv(env) == config.Prod {
		logger.Error(fmt.Errorf(" 🪨 Cannot migrate schema changes on production !"))
		os.Exit(0)
	}
	if c.DB == nil {
		logger.Errorf(fmt.Errorf(" ❌ DATABASE_URL is not set, nothing to migrate to ! "))
	}

	err := c.DB.AutoMigrate(&models.OTP{})
	if err != nil {
		logger.Errorf(err)
	}

	logger.Log("\n\n ✅ All schema changes have been migrated !")
}
