package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type boltBookStorage struct {
	logger *zap.Logger
	client *bolt.DB
	bucket []byte
}

// GetBoltDBClient sets up the database file and the bucket then provides a ready to use client.
func GetBoltDBClient(config *Config) (*bolt.DB, error) {
	db, err := bolt.Open(config.BoltDB.FilePath, 0o600, &bolt.Options{Timeout: config.BoltDB.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open the database, %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, errB := tx.CreateBucketIfNotExists([]byte(config.BoltDB.BucketName)); errB != nil {
			return fmt.Errorf("failed to create %s bucket: %v", config.BoltDB.BucketName, errB)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set up bucket: %v", err)
	}
	return db, nil
}

// NewBoltBookStorage provides an instance of bolt-based book storage.
func NewBoltBookStorage(logger *zap.Logger, boltConfig *BoltDBConfig, client *bolt.DB) BookStorage {
	return &boltBookStorage{
		logger: logger,
		client: client,
		bucket: []byte(boltConfig.BucketName),
	}
}

// itob encodes an id so that keys sort in numerical order.
func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

// GetAll retrieves a list of all books stored in the bolt database.
func (bs *boltBookStorage) GetAll(_ context.Context) ([]Book, error) {
	books := []Book{}
	err := bs.client.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bs.bucket).ForEach(func(_, v []byte) error {
			var book Book
			if err := json.Unmarshal(v, &book); err != nil {
				return errors.Wrap(err, "failed to decode book")
			}
			books = append(books, book)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetOne retrieves a book record based on its ID from boltdb store.
func (bs *boltBookStorage) GetOne(_ context.Context, id int64) (Book, error) {
	var book Book
	err := bs.client.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(bs.bucket).Get(itob(id))
		if value == nil {
			return ErrBookNotFound
		}
		return errors.Wrap(json.Unmarshal(value, &book), "failed to decode book")
	})
	return book, err
}

// Save uses the bucket sequence to assign the id of a new book then writes the record.
func (bs *boltBookStorage) Save(_ context.Context, book Book) (Book, error) {
	err := bs.client.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bs.bucket)
		if book.ID == 0 {
			seq, err := b.NextSequence()
			if err != nil {
				return errors.Wrap(err, "failed to allocate book id")
			}
			book.ID = int64(seq)
		}
		bookBytes, err := json.Marshal(book)
		if err != nil {
			return errors.Wrap(err, "failed to encode book")
		}
		return b.Put(itob(book.ID), bookBytes)
	})
	return book, err
}

// Delete removes a book record based on its ID from boltdb store.
func (bs *boltBookStorage) Delete(_ context.Context, id int64) error {
	return bs.client.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bs.bucket).Delete(itob(id))
	})
}

// DeleteAll removes every record but keeps the bucket sequence.
func (bs *boltBookStorage) DeleteAll(_ context.Context) error {
	return bs.client.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bs.bucket)
		// keys are collected first since deleting while iterating skips entries.
		var keys [][]byte
		if err := b.ForEach(func(k, _ []byte) error {
			keys = append(keys, append([]byte(nil), k...))
			return nil
		}); err != nil {
			return err
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
