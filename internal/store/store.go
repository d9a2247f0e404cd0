// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"tradebook/internal/models"
)

// TradeStore is the persistence contract for trades. Upsert is a full
// row replacement keyed on the trade ID, not a patch.
type TradeStore interface {
	// ListTrades returns the user's trades ordered by entry date descending.
	ListTrades(ctx context.Context) ([]models.Trade, error)
	// UpsertTrade inserts or fully replaces a trade. Fails when no
	// authenticated user is bound to the store.
	UpsertTrade(ctx context.Context, trade *models.Trade) error
	// DeleteTrade removes a trade by ID.
	DeleteTrade(ctx context.Context, id string) error
}

// NoteStore is the persistence contract for daily notes. Uniqueness of
// (user, date) is enforced by upsert-on-conflict in the store.
type NoteStore interface {
	ListNotes(ctx context.Context) ([]models.DailyNote, error)
	UpsertNote(ctx context.Context, note *models.DailyNote) error
}

// Notifier delivers payload-free change notifications: the callback
// fires on any insert, update or delete to either store and carries no
// data, the subscriber is expected to reload everything.
type Notifier interface {
	// Subscribe registers a callback and returns a function that
	// unregisters it.
	Subscribe(fn func()) (unsubscribe func())
}

// DataStore combines the persistence contracts with change
// notification and lifecycle management.
type DataStore interface {
	TradeStore
	NoteStore
	Notifier
	Close() error
}
