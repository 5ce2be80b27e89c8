package transaction

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// Manager runs a function inside a database transaction. Repositories pick the transaction up
// from the context through DB, so a service can group writes across repositories without
// passing *gorm.DB around.
type Manager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type manager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) Manager {
	return &manager{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise. A nested call joins
// the outer transaction.
func (m *manager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// DB returns the transaction stored in ctx, or fallback when there is none. The result is
// always bound to ctx.
func DB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

func txFromContext(ctx context.Context) (*gorm.DB, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}
