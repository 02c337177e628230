// Package storage defines the persistence interfaces of the locality
// gazetteer. It abstracts lookups, bulk imports and transaction management
// so that different backends (e.g. PostgreSQL) can provide implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"time"
	"tracker/pkg/timezone"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	LocalityStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations should become unusable after Commit or
// Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and then commits on
	// success or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// Source records where a gazetteer entry came from.
type Source string

const (
	// SourceImport marks entries loaded from a gazetteer file.
	SourceImport Source = "import"
	// SourceGeocoder marks entries cached from the geocoding API.
	SourceGeocoder Source = "geocoder"
)

// LocalityRecord is a gazetteer entry keyed by its canonical search key
// (see timezone.Key).
type LocalityRecord struct {
	SearchKey string
	Locality  timezone.Locality
	Source    Source
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LocalityStorage stores and queries gazetteer entries.
type LocalityStorage interface {
	// LocalitiesByKeys returns the entries stored under any of keys, keyed by
	// search key. Missing keys are absent from the result.
	LocalitiesByKeys(ctx context.Context, keys ...string) (map[string]LocalityRecord, error)
	// StoreLocalities inserts entries, replacing existing ones with the same
	// search key. It returns the number of rows written.
	StoreLocalities(ctx context.Context, records ...LocalityRecord) (int64, error)
	// DeleteLocalitiesBySource removes all entries of source and returns how
	// many were removed.
	DeleteLocalitiesBySource(ctx context.Context, source Source) (int64, error)
}
