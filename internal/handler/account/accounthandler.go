package accounthandler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/koyif/accountsvc/internal/domain"
	"github.com/koyif/accountsvc/internal/handler/response"
	"github.com/koyif/accountsvc/pkg/dto"
	"github.com/koyif/accountsvc/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	remarkAccountNotFound   = "Nomor Rekening Tidak Ditemukan"
	remarkInsufficientFunds = "Saldo tidak cukup"
)

type accountService interface {
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error)
	Balance(ctx context.Context, number string) (decimal.Decimal, error)
	Transactions(ctx context.Context, number string) ([]domain.Transaction, error)
}

type AccountHandler struct {
	srv accountService
}

func New(srv accountService) *AccountHandler {
	return &AccountHandler{
		srv: srv,
	}
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}

	balance, err := h.srv.Deposit(r.Context(), req.NoRekening, req.Nominal)
	if err != nil {
		h.writeTransactionError(w, err, req.NoRekening)
		return
	}

	response.JSON(w, http.StatusOK, dto.BalanceResponse{Saldo: balance})
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}

	balance, err := h.srv.Withdraw(r.Context(), req.NoRekening, req.Nominal)
	if err != nil {
		h.writeTransactionError(w, err, req.NoRekening)
		return
	}

	response.JSON(w, http.StatusOK, dto.BalanceResponse{Saldo: balance})
}

func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "no_rekening")

	balance, err := h.srv.Balance(r.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			logger.Log.Warn("account not found", logger.String("number", number))
			response.Remark(w, http.StatusBadRequest, remarkAccountNotFound)
			return
		}

		logger.Log.Error("error while fetching balance", logger.String("number", number), logger.Error(err))
		response.Remark(w, http.StatusInternalServerError, response.UnexpectedRemark)
		return
	}

	response.JSON(w, http.StatusOK, dto.BalanceResponse{Saldo: balance})
}

func (h *AccountHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "no_rekening")

	transactions, err := h.srv.Transactions(r.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			logger.Log.Warn("account not found", logger.String("number", number))
			response.Remark(w, http.StatusBadRequest, remarkAccountNotFound)
			return
		}

		logger.Log.Error("error while fetching transactions", logger.String("number", number), logger.Error(err))
		response.Remark(w, http.StatusInternalServerError, response.UnexpectedRemark)
		return
	}

	dtos := make([]dto.Mutation, len(transactions))
	for i, t := range transactions {
		dtos[i] = dto.Mutation{
			Waktu:         t.CreatedAt.Format(time.RFC3339),
			TipeTransaksi: string(t.Kind),
			Nominal:       t.Amount,
		}
	}

	response.JSON(w, http.StatusOK, dtos)
}

func (h *AccountHandler) decodeTransaction(w http.ResponseWriter, r *http.Request) (dto.TransactionRequest, bool) {
	var req dto.TransactionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a transaction request")
		response.Remark(w, http.StatusBadRequest, "Validation failed: body: invalid JSON")
		return req, false
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Error("error while closing request body", logger.Error(err))
			return
		}
	}(r.Body)

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid transaction fields", logger.Error(err))
		response.Remark(w, http.StatusBadRequest, response.ValidationRemark(err))
		return req, false
	}

	return req, true
}

func (h *AccountHandler) writeTransactionError(w http.ResponseWriter, err error, number string) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		logger.Log.Warn("account not found", logger.String("number", number))
		response.Remark(w, http.StatusBadRequest, remarkAccountNotFound)
	case errors.Is(err, domain.ErrInsufficientFunds):
		logger.Log.Warn("insufficient funds", logger.String("number", number))
		response.Remark(w, http.StatusBadRequest, remarkInsufficientFunds)
	case errors.Is(err, domain.ErrInvalidAmount):
		logger.Log.Warn("invalid amount", logger.String("number", number))
		response.Remark(w, http.StatusBadRequest, "Validation failed: nominal: must be greater than zero")
	default:
		logger.Log.Error("error while applying transaction", logger.String("number", number), logger.Error(err))
		response.Remark(w, http.StatusInternalServerError, response.UnexpectedRemark)
	}
}
