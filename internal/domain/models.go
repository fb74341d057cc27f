package domain

import "time"

// TransactionType tags the direction of a transaction.
type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Transaction is a persisted ledger row. Amount is in minor currency units;
// the stored sign encodes direction (positive credit, negative debit).
type Transaction struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    int64     `json:"amount"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTransactionRequest is the DTO for incoming create requests. Amount
// may be fractional; the stored sign is derived from Type, not from the
// sign of the input.
type CreateTransactionRequest struct {
	Title  string          `json:"title"`
	Amount float64         `json:"amount"`
	Type   TransactionType `json:"type"`
}

// SummaryResponse carries the running balance for a session. Summary is a
// pointer so that SUM over zero rows serializes as JSON null rather than 0.
type SummaryResponse struct {
	Summary *int64 `json:"summary"`
}
