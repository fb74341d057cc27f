package api

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/rloureiro/cashbook/internal/domain"
)

var (
	errInvalidJSON    = errors.New("invalid JSON body")
	errTitleRequired  = errors.New("title is required and must be a non-empty string")
	errAmountRequired = errors.New("amount is required and must be a number")
	errTypeRequired   = errors.New(`type must be "credit" or "debit"`)
	errInvalidID      = errors.New("id must be a valid UUID")
)

// createTransactionBody uses pointer fields so a missing key is
// distinguishable from a zero value.
type createTransactionBody struct {
	Title  *string  `json:"title"`
	Amount *float64 `json:"amount"`
	Type   *string  `json:"type"`
}

// parseCreateTransaction checks the create payload in full before any store
// access. The first violation rejects the whole request; nothing is
// partially applied.
func parseCreateTransaction(body io.Reader) (domain.CreateTransactionRequest, error) {
	var raw createTransactionBody
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return domain.CreateTransactionRequest{}, errInvalidJSON
	}
	if raw.Title == nil || *raw.Title == "" {
		return domain.CreateTransactionRequest{}, errTitleRequired
	}
	if raw.Amount == nil {
		return domain.CreateTransactionRequest{}, errAmountRequired
	}
	if raw.Type == nil {
		return domain.CreateTransactionRequest{}, errTypeRequired
	}
	typ := domain.TransactionType(*raw.Type)
	if typ != domain.TypeCredit && typ != domain.TypeDebit {
		return domain.CreateTransactionRequest{}, errTypeRequired
	}
	return domain.CreateTransactionRequest{
		Title:  *raw.Title,
		Amount: *raw.Amount,
		Type:   typ,
	}, nil
}

// parseTransactionID accepts only the canonical 8-4-4-4-12 form.
func parseTransactionID(raw string) (string, error) {
	if len(raw) != 36 {
		return "", errInvalidID
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", errInvalidID
	}
	return raw, nil
}
