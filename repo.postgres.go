package main

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type postgresBookStorage struct {
	logger *zap.Logger
	db     *gorm.DB
}

// NewPostgresBookStorage provides an instance of gorm-based book storage.
func NewPostgresBookStorage(logger *zap.Logger, db *gorm.DB) BookStorage {
	return &postgresBookStorage{
		logger: logger,
		db:     db,
	}
}

// GetPostgresClient opens the connection pool and checks the database is reachable.
func GetPostgresClient(config *Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.Postgres.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: NewGormZapLogger(logger, config.Postgres.SlowThreshold),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get the connection pool")
	}
	if config.Postgres.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.Postgres.MaxOpenConns)
	}
	if config.Postgres.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(config.Postgres.MaxIdleConns)
	}
	if config.Postgres.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(config.Postgres.ConnMaxLifetime)
	}

	if err = sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "test connection failed")
	}
	return db, nil
}

// MigratePostgres creates or updates the books table.
func MigratePostgres(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(&Book{}), "failed to migrate books table")
}

// GetAll retrieves all books from the table.
func (ps *postgresBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	books := []Book{}
	if err := ps.db.WithContext(ctx).Find(&books).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return books, nil
}

// GetOne retrieves a book record based on its ID.
func (ps *postgresBookStorage) GetOne(ctx context.Context, id int64) (Book, error) {
	var book Book
	err := ps.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Book{}, ErrBookNotFound
	}
	if err != nil {
		return Book{}, errors.WithStack(err)
	}
	return book, nil
}

// Save inserts a new book when ID is zero, otherwise it updates all columns.
func (ps *postgresBookStorage) Save(ctx context.Context, book Book) (Book, error) {
	if err := ps.db.WithContext(ctx).Save(&book).Error; err != nil {
		return book, errors.WithStack(err)
	}
	return book, nil
}

// Delete removes a book record based on its ID.
func (ps *postgresBookStorage) Delete(ctx context.Context, id int64) error {
	return errors.WithStack(ps.db.WithContext(ctx).Delete(&Book{}, id).Error)
}

// DeleteAll empties the books table.
func (ps *postgresBookStorage) DeleteAll(ctx context.Context) error {
	return errors.WithStack(ps.db.WithContext(ctx).Where("1 = 1").Delete(&Book{}).Error)
}
