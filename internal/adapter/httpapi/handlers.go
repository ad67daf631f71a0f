package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/voicebank/voicebank-backend/internal/actions"
	"github.com/voicebank/voicebank-backend/internal/domain"
	"github.com/voicebank/voicebank-backend/internal/usecase/command"
)

// defaultTransactionLimit matches the recent-transactions view: the five most
// recent entries unless the caller asks for more
const defaultTransactionLimit = 5

// Handler holds the services the HTTP routes delegate to
type Handler struct {
	pipeline *command.Service
	ledger   domain.LedgerRepository
	executor actions.Executor
}

// NewHandler creates a new Handler with the given collaborators
func NewHandler(pipeline *command.Service, ledger domain.LedgerRepository, executor actions.Executor) *Handler {
	return &Handler{
		pipeline: pipeline,
		ledger:   ledger,
		executor: executor,
	}
}

type commandRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// handleCommand forwards (text, user_id) to the pipeline and returns its
// result verbatim
func (h *Handler) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.pipeline.Process(r.Context(), req.Text, req.UserID)
	respondWithJSON(w, http.StatusOK, result)
}

type accountSummary struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Balance     string `json:"balance"`
}

type transactionView struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// handleListAccounts returns summaries of every seeded account
func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.ledger.ListAccounts(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summaries := make([]accountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, newAccountSummary(account))
	}
	respondWithJSON(w, http.StatusOK, summaries)
}

// handleGetAccount returns a single account summary
func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.ledger.GetAccount(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			respondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, newAccountSummary(account))
}

// handleListTransactions returns an account's transactions, most recent date
// first
func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	account, err := h.ledger.GetAccount(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			respondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	limit := defaultTransactionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	transactions := make([]domain.Transaction, len(account.Transactions))
	copy(transactions, account.Transactions)
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}

	views := make([]transactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, transactionView{
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
		})
	}
	respondWithJSON(w, http.StatusOK, views)
}

type actionRequest struct {
	Action string            `json:"action"`
	Params map[string]string `json:"params"`
}

// handleExecuteAction runs a named remote action through the gated executor
func (h *Handler) handleExecuteAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.executor.Execute(r.Context(), req.Action, req.Params)
	respondWithJSON(w, http.StatusOK, result)
}

func newAccountSummary(account *domain.Account) accountSummary {
	return accountSummary{
		UserID:      account.UserID,
		DisplayName: account.DisplayName,
		Balance:     account.Balance.StringFixed(2),
	}
}
