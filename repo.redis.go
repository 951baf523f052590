package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HBooks        string = "books"
	BooksSequence string = "books:sequence"
)

type redisBookStorage struct {
	logger *zap.Logger
	client *redis.Client
}

// NewRedisBookStorage provides an instance of redis-based book storage.
// Books live in a single hash keyed by their id.
func NewRedisBookStorage(logger *zap.Logger, client *redis.Client) BookStorage {
	return &redisBookStorage{
		logger: logger,
		client: client,
	}
}

// GetRedisClient provides a ready to use redis client.
func GetRedisClient(config *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", config.Redis.Host, config.Redis.Port),
		DialTimeout:  config.Redis.DialTimeout,
		ReadTimeout:  config.Redis.ReadTimeout,
		WriteTimeout: config.Redis.WriteTimeout,
		PoolSize:     config.Redis.PoolSize,
		PoolTimeout:  config.Redis.PoolTimeout,
		Password:     config.Redis.Password,
		Username:     config.Redis.Username,
		DB:           config.Redis.DatabaseIndex,
	})

	// test connection.
	if pong, err := client.Ping(context.Background()).Result(); pong != "PONG" || err != nil {
		return client, fmt.Errorf("test connection failed: %v", err)
	}
	return client, nil
}

// GetAll retrieves a list of all books stored in the redis database.
func (rs *redisBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	values, err := rs.client.HVals(ctx, HBooks).Result()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	books := make([]Book, 0, len(values))
	for _, value := range values {
		var book Book
		if err = json.Unmarshal([]byte(value), &book); err != nil {
			return nil, errors.Wrap(err, "failed to decode book")
		}
		books = append(books, book)
	}
	return books, nil
}

// GetOne retrieves a book record based on its ID.
func (rs *redisBookStorage) GetOne(ctx context.Context, id int64) (Book, error) {
	var book Book
	value, err := rs.client.HGet(ctx, HBooks, strconv.FormatInt(id, 10)).Result()
	if err == redis.Nil {
		return book, ErrBookNotFound
	}
	if err != nil {
		return book, errors.WithStack(err)
	}
	err = json.Unmarshal([]byte(value), &book)
	return book, errors.Wrap(err, "failed to decode book")
}

// Save assigns the next sequence value to a new book then writes the record.
func (rs *redisBookStorage) Save(ctx context.Context, book Book) (Book, error) {
	if book.ID == 0 {
		id, err := rs.client.Incr(ctx, BooksSequence).Result()
		if err != nil {
			return book, errors.Wrap(err, "failed to allocate book id")
		}
		book.ID = id
	}
	bookBytes, err := json.Marshal(book)
	if err != nil {
		return book, errors.Wrap(err, "failed to encode book")
	}
	err = rs.client.HSet(ctx, HBooks, strconv.FormatInt(book.ID, 10), bookBytes).Err()
	return book, errors.WithStack(err)
}

// Delete removes a book record based on its ID.
func (rs *redisBookStorage) Delete(ctx context.Context, id int64) error {
	return errors.WithStack(rs.client.HDel(ctx, HBooks, strconv.FormatInt(id, 10)).Err())
}

// DeleteAll drops the books hash. The sequence is kept so ids are never reused.
func (rs *redisBookStorage) DeleteAll(ctx context.Context) error {
	return errors.WithStack(rs.client.Del(ctx, HBooks).Err())
}
