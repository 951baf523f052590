package main

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid"
)

// This file contains mocks definitions needed to perform unit tests.

type MockBookStorage struct {
	GetAllFunc    func(ctx context.Context) ([]Book, error)
	GetOneFunc    func(ctx context.Context, id int64) (Book, error)
	SaveFunc      func(ctx context.Context, book Book) (Book, error)
	DeleteFunc    func(ctx context.Context, id int64) error
	DeleteAllFunc func(ctx context.Context) error
}

// GetAll mocks the behavior of retrieving all books by the repository.
func (m *MockBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	return m.GetAllFunc(ctx)
}

// GetOne mocks the behavior of retrieving a book by the repository.
func (m *MockBookStorage) GetOne(ctx context.Context, id int64) (Book, error) {
	return m.GetOneFunc(ctx, id)
}

// Save mocks the behavior of inserting or updating a book by the repository.
func (m *MockBookStorage) Save(ctx context.Context, book Book) (Book, error) {
	return m.SaveFunc(ctx, book)
}

// Delete mocks the behavior of deleting a book by the repository.
func (m *MockBookStorage) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

// DeleteAll mocks the behavior of deleting all books by the repository.
func (m *MockBookStorage) DeleteAll(ctx context.Context) error {
	return m.DeleteAllFunc(ctx)
}

// NewInMemoryMockBookStorage returns a mock which keeps the books into a map
// and assigns ids from 1 like a database sequence would do. The counter
// reports how many times Save was called.
func NewInMemoryMockBookStorage(books ...Book) (*MockBookStorage, *int) {
	var mu sync.Mutex
	var seq int64
	saves := 0
	data := make(map[int64]Book)
	for _, b := range books {
		data[b.ID] = b
		if b.ID > seq {
			seq = b.ID
		}
	}
	return &MockBookStorage{
		GetAllFunc: func(_ context.Context) ([]Book, error) {
			mu.Lock()
			defer mu.Unlock()
			all := []Book{}
			for _, b := range data {
				all = append(all, b)
			}
			return all, nil
		},
		GetOneFunc: func(_ context.Context, id int64) (Book, error) {
			mu.Lock()
			defer mu.Unlock()
			b, ok := data[id]
			if !ok {
				return Book{}, ErrBookNotFound
			}
			return b, nil
		},
		SaveFunc: func(_ context.Context, book Book) (Book, error) {
			mu.Lock()
			defer mu.Unlock()
			saves++
			if book.ID == 0 {
				seq++
				book.ID = seq
			}
			data[book.ID] = book
			return book, nil
		},
		DeleteFunc: func(_ context.Context, id int64) error {
			mu.Lock()
			defer mu.Unlock()
			delete(data, id)
			return nil
		},
		DeleteAllFunc: func(_ context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			data = make(map[int64]Book)
			return nil
		},
	}, &saves
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `2023-07-02T00:00:00Z` in time.RFC3339 format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// MockUIDHandler implements a fake UIDHandler.
type MockUIDHandler struct {
	MockedUID        string
	MockedExternalID uuid.UUID
	Err              error
}

// NewMockUIDHandler returns a mocked instance with predictable ids.
func NewMockUIDHandler(id string, externalID uuid.UUID) *MockUIDHandler {
	return &MockUIDHandler{MockedUID: id, MockedExternalID: externalID}
}

// Generate constructs a predictable id to be used as mock.
func (muid *MockUIDHandler) Generate(prefix string) string {
	return prefix + ":" + muid.MockedUID
}

// NewExternalID returns the configured uuid or error.
func (muid *MockUIDHandler) NewExternalID() (uuid.UUID, error) {
	return muid.MockedExternalID, muid.Err
}
