package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"

	"github.com/murayeeto/HornetHelper/app/utils/logger"
	"github.com/murayeeto/HornetHelper/config/environment_variables"
)

var SchemaRegistry []interface{}

func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

var DB *gorm.DB

func NewDB() (*gorm.DB, error) {
	env := &environment_variables.EnvironmentVariables
	db, err := gorm.Open(postgres.Open(env.DB_POSTGRESQL_WRITE_DSN), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "2f6f0a1e-8d5c-4a59-9f37-4f2f2f6f91b0").
			Fatalf("unable to connect to database: %v", err)
		return nil, err
	}
	readDSN := env.DB_POSTGRESQL_READ1_DSN
	if readDSN == "" {
		readDSN = env.DB_POSTGRESQL_WRITE_DSN
	}
	err = db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(readDSN)},
		Policy:   dbresolver.RandomPolicy{},
	}))
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "b4c8a7dd-0a41-4a2e-bb1c-6a9605f0a77e").
			Fatalf("unable to setup read replica: %v", err)
		return nil, err
	}
	DB = db
	return DB, nil
}

func Migration() error {
	migrator := NewDBMigrator(DB)
	return migrator.Migrate()
}
