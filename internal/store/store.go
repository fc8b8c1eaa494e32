// Package store caches solver outcomes in a SQLite database so batch
// verification can skip puzzles that were already solved.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lgbarn/chess-puzzles-go/internal/chess"
	"github.com/lgbarn/chess-puzzles-go/internal/engine"
	"github.com/lgbarn/chess-puzzles-go/internal/rules"
	"github.com/lgbarn/chess-puzzles-go/internal/solver"
)

const schema = `CREATE TABLE IF NOT EXISTS solutions (
    solution_id TEXT PRIMARY KEY,
    fen TEXT NOT NULL,
    module TEXT NOT NULL,
    status TEXT NOT NULL,
    path TEXT NOT NULL,
    explored INTEGER NOT NULL,
    solved_at TEXT NOT NULL,
    UNIQUE (fen, module)
);`

// Record is one cached search result.
type Record struct {
	ID       string
	FEN      string // canonical encoding of the start position
	Module   rules.Module
	Status   string
	Path     []string // move tokens
	Explored int
	SolvedAt time.Time
}

// NewRecord captures outcome for the start position and module.
func NewRecord(start chess.Position, mover chess.Colour, module rules.Module, outcome solver.Outcome) Record {
	return Record{
		FEN:      engine.EncodeFEN(start, mover),
		Module:   module,
		Status:   outcome.Status.String(),
		Path:     engine.EncodeMoves(outcome.Path),
		Explored: outcome.Explored,
	}
}

// Moves decodes the cached path.
func (r Record) Moves() ([]chess.Move, error) {
	moves := make([]chess.Move, 0, len(r.Path))
	for _, token := range r.Path {
		move, err := engine.DecodeMove(token)
		if err != nil {
			return nil, fmt.Errorf("cached path of %s: %w", r.ID, err)
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// Store is a SQLite-backed solution cache. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; one connection avoids busy errors from
	// concurrent workers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// canonical re-encodes fen so equivalent spellings share a cache entry.
func canonical(fen string) (string, error) {
	pos, colour, err := engine.DecodeFEN(fen)
	if err != nil {
		return "", err
	}
	return engine.EncodeFEN(pos, colour), nil
}

// Get looks up the record for a start position and module. The bool is
// false when nothing is cached.
func (s *Store) Get(ctx context.Context, fen string, module rules.Module) (Record, bool, error) {
	key, err := canonical(fen)
	if err != nil {
		return Record{}, false, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT solution_id, status, path, explored, solved_at FROM solutions WHERE fen = ? AND module = ?`,
		key, module.String())

	var (
		rec      = Record{FEN: key, Module: module}
		path     string
		solvedAt string
	)
	if err := row.Scan(&rec.ID, &rec.Status, &path, &rec.Explored, &solvedAt); err != nil {
		if err == sql.ErrNoRows {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	if path != "" {
		rec.Path = strings.Fields(path)
	}
	rec.SolvedAt, err = time.Parse(time.RFC3339, solvedAt)
	if err != nil {
		return Record{}, false, fmt.Errorf("solved_at of %s: %w", rec.ID, err)
	}
	return rec, true, nil
}

// Put inserts or replaces the record for its start position and module.
// An empty ID is assigned a new UUID and a zero SolvedAt becomes now.
// The stored record is returned.
func (s *Store) Put(ctx context.Context, rec Record) (Record, error) {
	key, err := canonical(rec.FEN)
	if err != nil {
		return Record{}, err
	}
	rec.FEN = key
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.SolvedAt.IsZero() {
		rec.SolvedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO solutions (solution_id, fen, module, status, path, explored, solved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (fen, module) DO UPDATE SET
		     solution_id = excluded.solution_id,
		     status = excluded.status,
		     path = excluded.path,
		     explored = excluded.explored,
		     solved_at = excluded.solved_at`,
		rec.ID, rec.FEN, rec.Module.String(), rec.Status, strings.Join(rec.Path, " "),
		rec.Explored, rec.SolvedAt.Format(time.RFC3339))
	if err != nil {
		return Record{}, fmt.Errorf("store solution: %w", err)
	}
	return rec, nil
}

// Count returns the number of cached records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&n)
	return n, err
}
