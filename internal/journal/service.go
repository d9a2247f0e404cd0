// Package journal holds the in-memory working copy of the user's
// trades and notes and keeps it reconciled with the backing store.
//
// Every mutation follows the optimistic-local-update-then-remote-call
// pattern: the cache changes first, then the store. Any remote failure
// discards the whole cache and reloads authoritative state, a coarse
// full resynchronization rather than fine-grained rollback.
package journal

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/logging"
	"tradebook/internal/models"
	"tradebook/internal/store"
)

// Service owns the transient cached copies of the trade and note
// collections. The store remains the owner of the data; the cache
// exists for rendering and optimistic mutation only.
type Service struct {
	store  store.DataStore
	logger zerolog.Logger

	mu     sync.RWMutex
	trades []models.Trade
	notes  []models.DailyNote

	unsubscribe func()
}

// NewService creates a journal service bound to a store and subscribes
// to its change notifications. Each notification triggers a full
// reload; notifications are not deduplicated, overlapping reloads are
// redundant but idempotent.
func NewService(st store.DataStore, logger zerolog.Logger) *Service {
	s := &Service{
		store:  st,
		logger: logger,
	}
	s.unsubscribe = st.Subscribe(func() {
		if err := s.Reload(context.Background()); err != nil {
			s.logger.Warn().Err(err).Msg("Reload after change notification failed")
		}
	})
	return s
}

// Reload replaces both cached collections with authoritative state
// from the store. On a read failure the previous cache is kept and the
// error returned.
func (s *Service) Reload(ctx context.Context) error {
	trades, err := s.store.ListTrades(ctx)
	if err != nil {
		return apperrors.NewStoreError("list", "trade", err)
	}
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		return apperrors.NewStoreError("list", "note", err)
	}

	s.mu.Lock()
	s.trades = trades
	s.notes = notes
	s.mu.Unlock()

	logging.LogReload(s.logger, len(trades), len(notes))
	return nil
}

// Trades returns a snapshot copy of the cached trade collection.
func (s *Service) Trades() []models.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// Notes returns a snapshot copy of the cached note collection.
func (s *Service) Notes() []models.DailyNote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DailyNote, len(s.notes))
	copy(out, s.notes)
	return out
}

// TradeByID returns the cached trade with the given ID.
func (s *Service) TradeByID(id string) (models.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trades {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trade{}, apperrors.ErrTradeNotFound
}

// NoteByDate returns the cached note for a calendar date.
func (s *Service) NoteByDate(date string) (models.DailyNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.Date == date {
			return n, nil
		}
	}
	return models.DailyNote{}, apperrors.ErrNoteNotFound
}

// SaveTrade normalizes and upserts a trade, cache first. Re-saving an
// existing ID replaces the whole record.
func (s *Service) SaveTrade(ctx context.Context, trade models.Trade) error {
	trade.Normalize()

	s.mu.Lock()
	replaced := false
	for i := range s.trades {
		if s.trades[i].ID == trade.ID {
			s.trades[i] = trade
			replaced = true
			break
		}
	}
	if !replaced {
		// List order is entry-date descending; new entries go first.
		s.trades = append([]models.Trade{trade}, s.trades...)
	}
	s.mu.Unlock()

	if err := s.store.UpsertTrade(ctx, &trade); err != nil {
		s.revert(ctx, err, "trade upsert failed")
		return err
	}

	logging.LogTradeSaved(s.logger, trade.ID, trade.Symbol, string(trade.Status))
	return nil
}

// DeleteTrade removes a trade, cache first.
func (s *Service) DeleteTrade(ctx context.Context, id string) error {
	s.mu.Lock()
	for i := range s.trades {
		if s.trades[i].ID == id {
			s.trades = append(s.trades[:i], s.trades[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if err := s.store.DeleteTrade(ctx, id); err != nil {
		s.revert(ctx, err, "trade delete failed")
		return err
	}
	return nil
}

// CloseTrade marks a trade closed at the given exit price, realizing
// its P&L from entry, exit and direction.
func (s *Service) CloseTrade(ctx context.Context, id string, exitPrice float64) (models.Trade, error) {
	trade, err := s.TradeByID(id)
	if err != nil {
		return models.Trade{}, err
	}

	trade.ExitPrice = &exitPrice
	trade.Status = models.StatusClosed
	if pnl, ok := trade.ComputePnL(); ok {
		trade.PnL = &pnl
	}

	if err := s.SaveTrade(ctx, trade); err != nil {
		return models.Trade{}, err
	}
	return trade, nil
}

// SaveNote upserts the note for a calendar day, cache first.
func (s *Service) SaveNote(ctx context.Context, note models.DailyNote) error {
	s.mu.Lock()
	replaced := false
	for i := range s.notes {
		if s.notes[i].Date == note.Date {
			s.notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		s.notes = append(s.notes, note)
	}
	s.mu.Unlock()

	if err := s.store.UpsertNote(ctx, &note); err != nil {
		s.revert(ctx, err, "note upsert failed")
		return err
	}
	return nil
}

// revert logs a failed mutation and drops the optimistic change by
// reloading everything from the store.
func (s *Service) revert(ctx context.Context, cause error, msg string) {
	s.logger.Error().Err(cause).Msg(msg)
	if err := s.Reload(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Resynchronization after failure also failed")
	}
}

// Close unregisters the change-notification listener. In-flight store
// calls are not cancelled.
func (s *Service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
