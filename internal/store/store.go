// Package store is the optional Postgres round journal.
package store

import (
	"context"
	"database/sql"
	errs "errors"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DaanHessen/bayes-tree/internal/engine"
	"github.com/DaanHessen/bayes-tree/internal/game"
)

var (
	ErrNoChange = errs.New("no change")
	ErrNoDSN    = errs.New("missing DSN")
)

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error { return d.sql.Close() }

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*DB, error) {
	if dsn == "" {
		return nil, ErrNoDSN
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, wrap(err, "open postgres")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, wrap(err, "get sql db")
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(4)
	sdb.SetMaxIdleConns(2)
	if err := sdb.PingContext(ctx); err != nil {
		_ = sdb.Close()
		return nil, wrap(err, "ping postgres")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// RoundRecord is one row of round_results.
type RoundRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID uuid.UUID `gorm:"type:uuid"`
	RoundID   uuid.UUID `gorm:"type:uuid"`
	Round     int
	Seed      string
	Scenario  string
	Question  string
	Input     string
	Parsed    float64
	Correct   float64
	IsCorrect bool
	Streak    int
	JudgedAt  time.Time
}

func (RoundRecord) TableName() string { return "round_results" }

// QuestionType returns the stored question type.
func (r RoundRecord) QuestionType() engine.QuestionType { return engine.QuestionType(r.Question) }

func newRecord(r game.RoundResult) RoundRecord {
	return RoundRecord{
		ID:        uuid.New(),
		SessionID: r.SessionID,
		RoundID:   r.RoundID,
		Round:     r.Round,
		Seed:      r.Seed,
		Scenario:  r.Scenario,
		Question:  string(r.Question),
		Input:     r.Input,
		Parsed:    r.Parsed,
		Correct:   r.Correct,
		IsCorrect: r.IsCorrect,
		Streak:    r.Streak,
		JudgedAt:  r.JudgedAt.UTC(),
	}
}

// RoundRepo reads and writes the journal. It satisfies game.Journal.
type RoundRepo struct{ db *DB }

func NewRoundRepo(db *DB) *RoundRepo { return &RoundRepo{db: db} }

var _ game.Journal = (*RoundRepo)(nil)

// Record appends one judged round in its own transaction.
func (r *RoundRepo) Record(ctx context.Context, res game.RoundResult) error {
	rec := newRecord(res)
	err := r.db.WithTx(ctx, func(tx *gorm.DB) error {
		return r.Insert(ctx, tx, rec)
	})
	return wrap(err, "record round")
}

// Insert writes rec using tx, which may be a transaction from WithTx.
func (r *RoundRepo) Insert(ctx context.Context, tx *gorm.DB, rec RoundRecord) error {
	return tx.WithContext(ctx).Create(&rec).Error
}

// ListRecent returns up to limit rows, newest first.
func (r *RoundRepo) ListRecent(ctx context.Context, limit int) ([]RoundRecord, error) {
	var out []RoundRecord
	err := recentQuery(r.db.gorm.WithContext(ctx), limit).Find(&out).Error
	if err != nil {
		return nil, wrap(err, "list rounds")
	}
	return out, nil
}

// ListSession returns a session's rows in play order.
func (r *RoundRepo) ListSession(ctx context.Context, session uuid.UUID) ([]RoundRecord, error) {
	var out []RoundRecord
	err := sessionQuery(r.db.gorm.WithContext(ctx), session).Find(&out).Error
	if err != nil {
		return nil, wrap(err, "list session rounds")
	}
	return out, nil
}

func recentQuery(tx *gorm.DB, limit int) *gorm.DB {
	return tx.Model(&RoundRecord{}).Order("judged_at DESC").Limit(limit)
}

func sessionQuery(tx *gorm.DB, session uuid.UUID) *gorm.DB {
	return tx.Model(&RoundRecord{}).Where("session_id = ?", session).Order("round ASC")
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
