// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
)

// SQLiteStore implements DataStore using SQLite, scoped to a single
// user's rows.
type SQLiteStore struct {
	db     *sql.DB
	userID string
	listeners
}

// NewSQLiteStore opens (or creates) the journal database and binds it
// to the given user. An empty userID still allows reads but every
// mutating call fails with ErrNotAuthenticated.
func NewSQLiteStore(dbPath, userID string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", apperrors.ErrDatabaseError, dbPath, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db, userID: userID}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to initialize schema: %v", apperrors.ErrDatabaseError, err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Trades table, one row per journaled position
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		symbol TEXT NOT NULL,
		direction TEXT NOT NULL,
		status TEXT NOT NULL,
		entry_time DATETIME NOT NULL,
		expiry DATE,
		entry_price REAL NOT NULL,
		exit_price REAL,
		quantity INTEGER NOT NULL,
		stop_loss REAL,
		target REAL,
		pnl REAL,
		strategy TEXT,
		notes TEXT,
		tags TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Daily notes table, at most one row per user per calendar day.
	-- The date key is TEXT, not DATE: the driver type-converts DATE
	-- columns to time.Time on scan, and every consumer keys on the
	-- literal "2006-01-02" string that was stored.
	CREATE TABLE IF NOT EXISTS daily_notes (
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		content TEXT NOT NULL,
		mood TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_trades_user ON trades(user_id);
	CREATE INDEX IF NOT EXISTS idx_trades_entry_time ON trades(entry_time);
	CREATE INDEX IF NOT EXISTS idx_trades_status ON trades(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// requireUser guards mutating calls.
func (s *SQLiteStore) requireUser() error {
	if s.userID == "" {
		return apperrors.ErrNotAuthenticated
	}
	return nil
}

// ListTrades returns the user's trades ordered by entry date descending.
func (s *SQLiteStore) ListTrades(ctx context.Context) ([]models.Trade, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, symbol, direction, status, entry_time, expiry, entry_price, exit_price, quantity, stop_loss, target, pnl, strategy, notes, tags
		FROM trades WHERE user_id = ? ORDER BY entry_time DESC
	`, s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		var expiry sql.NullTime
		var exitPrice, stopLoss, target, pnl sql.NullFloat64
		var tagsJSON string

		if err := rows.Scan(&t.ID, &t.Symbol, &t.Direction, &t.Status, &t.EntryTime, &expiry, &t.EntryPrice, &exitPrice, &t.Quantity, &stopLoss, &target, &pnl, &t.Strategy, &t.Notes, &tagsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}

		if expiry.Valid {
			e := expiry.Time
			t.Expiry = &e
		}
		t.ExitPrice = nullFloat(exitPrice)
		t.StopLoss = nullFloat(stopLoss)
		t.Target = nullFloat(target)
		t.PnL = nullFloat(pnl)
		json.Unmarshal([]byte(tagsJSON), &t.Tags)
		trades = append(trades, t)
	}

	return trades, rows.Err()
}

// UpsertTrade inserts or fully replaces a trade row.
func (s *SQLiteStore) UpsertTrade(ctx context.Context, trade *models.Trade) error {
	if err := s.requireUser(); err != nil {
		return err
	}

	tags, _ := json.Marshal(trade.Tags)
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades (id, user_id, symbol, direction, status, entry_time, expiry, entry_price, exit_price, quantity, stop_loss, target, pnl, strategy, notes, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, trade.ID, s.userID, trade.Symbol, trade.Direction, trade.Status, trade.EntryTime, nullTime(trade.Expiry), trade.EntryPrice, floatPtr(trade.ExitPrice), trade.Quantity, floatPtr(trade.StopLoss), floatPtr(trade.Target), floatPtr(trade.PnL), trade.Strategy, trade.Notes, string(tags))
	if err != nil {
		return fmt.Errorf("failed to upsert trade: %w", err)
	}

	s.notify()
	return nil
}

// DeleteTrade removes a trade by ID.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	if err := s.requireUser(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM trades WHERE id = ? AND user_id = ?
	`, id, s.userID)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrTradeNotFound, id)
	}

	s.notify()
	return nil
}

// ListNotes returns all of the user's daily notes.
func (s *SQLiteStore) ListNotes(ctx context.Context) ([]models.DailyNote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, content, mood, updated_at FROM daily_notes
		WHERE user_id = ? ORDER BY date DESC
	`, s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.DailyNote
	for rows.Next() {
		var n models.DailyNote
		var mood sql.NullString
		if err := rows.Scan(&n.Date, &n.Content, &mood, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		n.Mood = models.Mood(mood.String)
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// UpsertNote inserts or updates the note for a calendar day. The
// conflict target (user_id, date) is what enforces one-note-per-day.
func (s *SQLiteStore) UpsertNote(ctx context.Context, note *models.DailyNote) error {
	if err := s.requireUser(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_notes (user_id, date, content, mood, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			content = excluded.content,
			mood = excluded.mood,
			updated_at = excluded.updated_at
	`, s.userID, note.Date, note.Content, string(note.Mood), time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert note: %w", err)
	}

	s.notify()
	return nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func floatPtr(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullTime(v *time.Time) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
