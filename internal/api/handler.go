package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rloureiro/cashbook/internal/domain"
	"github.com/rloureiro/cashbook/internal/session"
	"github.com/sirupsen/logrus"
)

// Metrics
var (
	httpReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cashbook_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cashbook_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "endpoint"})
)

// TransactionStore is the narrow slice of the store the handlers consume.
// Every operation is scoped to one session id.
type TransactionStore interface {
	List(ctx context.Context, sessionID string) ([]domain.Transaction, error)
	Get(ctx context.Context, id, sessionID string) (*domain.Transaction, error)
	Summary(ctx context.Context, sessionID string) (*int64, error)
	Create(ctx context.Context, req domain.CreateTransactionRequest, sessionID string) error
}

type Handler struct {
	store TransactionStore
	log   *logrus.Logger
}

func NewHandler(s TransactionStore, log *logrus.Logger) *Handler {
	return &Handler{store: s, log: log}
}

// ListTransactions returns every transaction visible to the request's
// session. No cookie means no visible rows; the store is not queried.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("GET", "/transactions"))
	defer timer.ObserveDuration()

	sessionID, ok := session.FromRequest(r)
	if !ok {
		h.respondJSON(w, http.StatusOK, []domain.Transaction{}, "GET", "/transactions")
		return
	}

	transactions, err := h.store.List(r.Context(), sessionID)
	if err != nil {
		h.log.WithError(err).Error("listing transactions")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", "/transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, transactions, "GET", "/transactions")
}

// GetTransaction returns one transaction by id, scoped to the session.
// Absence is a 200 with an empty body, not an error.
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("GET", "/transactions/{id}"))
	defer timer.ObserveDuration()

	id, err := parseTransactionID(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "GET", "/transactions/{id}")
		return
	}

	sessionID, ok := session.FromRequest(r)
	if !ok {
		h.respondJSON(w, http.StatusOK, nil, "GET", "/transactions/{id}")
		return
	}

	transaction, err := h.store.Get(r.Context(), id, sessionID)
	if err != nil {
		h.log.WithError(err).Error("fetching transaction")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", "/transactions/{id}")
		return
	}
	if transaction == nil {
		h.respondJSON(w, http.StatusOK, nil, "GET", "/transactions/{id}")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction, "GET", "/transactions/{id}")
}

// GetSummary returns the running balance for the session. With no cookie or
// no rows the summary is JSON null, the store's literal SUM-over-nothing.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("GET", "/transactions/summary"))
	defer timer.ObserveDuration()

	var resp domain.SummaryResponse
	if sessionID, ok := session.FromRequest(r); ok {
		sum, err := h.store.Summary(r.Context(), sessionID)
		if err != nil {
			h.log.WithError(err).Error("summarizing transactions")
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", "/transactions/summary")
			return
		}
		resp.Summary = sum
	}
	h.respondJSON(w, http.StatusOK, resp, "GET", "/transactions/summary")
}

// CreateTransaction validates the payload, resolves or mints the session,
// and inserts one row. Success is a bare 201.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpLatency.WithLabelValues("POST", "/transactions"))
	defer timer.ObserveDuration()

	req, err := parseCreateTransaction(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "POST", "/transactions")
		return
	}

	sessionID, ok := session.FromRequest(r)
	if !ok {
		sessionID = session.Issue(w)
	}

	if err := h.store.Create(r.Context(), req, sessionID); err != nil {
		h.log.WithError(err).Error("creating transaction")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/transactions")
		return
	}
	h.respondJSON(w, http.StatusCreated, nil, "POST", "/transactions")
}

// Helpers
func (h *Handler) respondJSON(w http.ResponseWriter, code int, payload interface{}, method, endpoint string) {
	httpReqTotal.WithLabelValues(method, endpoint, strconv.Itoa(code)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, code int, msg, method, endpoint string) {
	h.respondJSON(w, code, map[string]string{"error": msg}, method, endpoint)
}
