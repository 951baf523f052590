package main

import (
	"fmt"

	"go.uber.org/zap"
)

// SetupBookStorage connects to the backend selected by the configuration
// and returns the storage with the function which releases its resources.
func SetupBookStorage(config *Config, logger *zap.Logger) (BookStorage, func(), error) {
	switch config.Storage.Driver {
	case PostgresDriver:
		db, err := GetPostgresClient(config, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres server: %w", err)
		}
		closer := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if config.Postgres.AutoMigrate {
			if err = MigratePostgres(db); err != nil {
				closer()
				return nil, nil, err
			}
			logger.Info("storage: books table migrated")
		}
		return NewPostgresBookStorage(logger, db), closer, nil

	case RedisDriver:
		client, err := GetRedisClient(config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis server: %w", err)
		}
		return NewRedisBookStorage(logger, client), func() { _ = client.Close() }, nil

	case BoltDriver:
		client, err := GetBoltDBClient(config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to boltDB server: %w", err)
		}
		return NewBoltBookStorage(logger, &config.BoltDB, client), func() { _ = client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unsupported storage driver %q", config.Storage.Driver)
}
