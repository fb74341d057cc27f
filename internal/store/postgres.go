package store

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rloureiro/cashbook/internal/domain"
)

type Store struct {
	Db *pgxpool.Pool
}

func New(connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Store{Db: pool}, nil
}

func (s *Store) Close() {
	s.Db.Close()
}

// List retrieves every transaction belonging to a session. No rows is an
// empty slice, never an error.
func (s *Store) List(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	rows, err := s.Db.Query(ctx,
		"SELECT id, title, amount, session_id, created_at FROM transactions WHERE session_id = $1",
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Get retrieves a single transaction by id, scoped to a session. Absence is
// reported as (nil, nil) so callers can distinguish it from a query failure.
func (s *Store) Get(ctx context.Context, id, sessionID string) (*domain.Transaction, error) {
	var t domain.Transaction
	err := s.Db.QueryRow(ctx,
		"SELECT id, title, amount, session_id, created_at FROM transactions WHERE id = $1 AND session_id = $2",
		id, sessionID).Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get query failed: %w", err)
	}
	return &t, nil
}

// Summary returns the sum of all amounts visible to a session. SUM over zero
// rows is SQL NULL, surfaced here as a nil pointer rather than a zero.
func (s *Store) Summary(ctx context.Context, sessionID string) (*int64, error) {
	var sum *int64
	err := s.Db.QueryRow(ctx,
		`SELECT SUM(amount) AS summary FROM transactions WHERE session_id = $1`,
		sessionID).Scan(&sum)
	if err != nil {
		return nil, fmt.Errorf("summary query failed: %w", err)
	}
	return sum, nil
}

// Create inserts one transaction with a server-generated id and the sign
// derived from the request type.
func (s *Store) Create(ctx context.Context, req domain.CreateTransactionRequest, sessionID string) error {
	_, err := s.Db.Exec(ctx,
		"INSERT INTO transactions (id, title, amount, session_id) VALUES ($1, $2, $3, $4)",
		uuid.NewString(), req.Title, signedAmount(req.Type, req.Amount), sessionID)
	if err != nil {
		return fmt.Errorf("transaction insert failed: %w", err)
	}
	return nil
}

// signedAmount converts a request amount to stored minor units. Credits keep
// the supplied value as given; debits store the negated absolute value.
// Fractional input rounds half away from zero.
func signedAmount(typ domain.TransactionType, amount float64) int64 {
	if typ == domain.TypeDebit {
		return -int64(math.Round(math.Abs(amount)))
	}
	return int64(math.Round(amount))
}
