package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotOpen is returned by operations on a closed ledger
var ErrNotOpen = errors.New("ledger not open")

// Session is one finished flight
type Session struct {
	ID        string    `gorm:"primaryKey;size:36"`
	StartedAt time.Time `gorm:"index"`
	EndedAt   time.Time
	Credits   int64 `gorm:"index"`
	Destroyed int64
	Seed      int64 // World seed bits; sqlite has no unsigned 64-bit type
}

// Ledger stores finished sessions in sqlite
type Ledger struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the sqlite file at path and migrates the schema
// An empty path opens a private in-memory database
func Open(path string, log zerolog.Logger) (*Ledger, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("ledger open %q: %w", dsn, err)
	}
	if path == "" {
		// Each pooled connection would otherwise see its own empty memory database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql interface: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, fmt.Errorf("ledger migrate: %w", err)
	}

	l := &Ledger{db: db, log: log.With().Str("component", "ledger").Logger()}
	l.log.Debug().Str("path", dsn).Msg("ledger opened")
	return l, nil
}

// NewSessionID returns a fresh random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// Record stores s, assigning an ID when empty
func (l *Ledger) Record(s *Session) error {
	if l == nil || l.db == nil {
		return ErrNotOpen
	}
	if s.ID == "" {
		s.ID = NewSessionID()
	}
	if err := l.db.Create(s).Error; err != nil {
		return fmt.Errorf("ledger record: %w", err)
	}
	l.log.Info().Str("session", s.ID).Int64("credits", s.Credits).Msg("session recorded")
	return nil
}

// Best returns up to n sessions ordered by credits, then most recent
func (l *Ledger) Best(n int) ([]Session, error) {
	if l == nil || l.db == nil {
		return nil, ErrNotOpen
	}
	var out []Session
	err := l.db.Order("credits DESC").Order("ended_at DESC").Limit(n).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("ledger query: %w", err)
	}
	return out, nil
}

// Count returns the number of recorded sessions
func (l *Ledger) Count() (int64, error) {
	if l == nil || l.db == nil {
		return 0, ErrNotOpen
	}
	var n int64
	if err := l.db.Model(&Session{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("ledger count: %w", err)
	}
	return n, nil
}

// Close releases the underlying connection
func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	sqlDB, err := l.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	l.db = nil
	return sqlDB.Close()
}
