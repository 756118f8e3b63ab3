package accounthandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/koyif/accountsvc/internal/domain"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// stubService mirrors the coordinator's behavior over an in-memory map.
type stubService struct {
	balances     map[string]decimal.Decimal
	transactions map[string][]domain.Transaction
}

func newStubService(numbers ...string) *stubService {
	s := &stubService{
		balances:     map[string]decimal.Decimal{},
		transactions: map[string][]domain.Transaction{},
	}
	for _, n := range numbers {
		s.balances[n] = decimal.Zero
	}
	return s
}

func (s *stubService) Deposit(_ context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	balance, ok := s.balances[number]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	balance = balance.Add(amount)
	s.balances[number] = balance
	s.transactions[number] = append(s.transactions[number], domain.Transaction{
		AccountNumber: number, Amount: amount, Kind: domain.KindDeposit, CreatedAt: time.Now(),
	})
	return balance, nil
}

func (s *stubService) Withdraw(_ context.Context, number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	balance, ok := s.balances[number]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	if balance.LessThan(amount) {
		return decimal.Zero, domain.ErrInsufficientFunds
	}
	balance = balance.Sub(amount)
	s.balances[number] = balance
	s.transactions[number] = append(s.transactions[number], domain.Transaction{
		AccountNumber: number, Amount: amount, Kind: domain.KindWithdrawal, CreatedAt: time.Now(),
	})
	return balance, nil
}

func (s *stubService) Balance(_ context.Context, number string) (decimal.Decimal, error) {
	balance, ok := s.balances[number]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return balance, nil
}

func (s *stubService) Transactions(_ context.Context, number string) ([]domain.Transaction, error) {
	if _, ok := s.balances[number]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	return s.transactions[number], nil
}

func newTestRouter(svc *stubService) *chi.Mux {
	h := New(svc)
	r := chi.NewRouter()
	r.Post("/api/v1/tabung", h.Deposit)
	r.Post("/api/v1/tarik", h.Withdraw)
	r.Get("/api/v1/saldo/{no_rekening}", h.Balance)
	r.Get("/api/v1/mutasi/{no_rekening}", h.Transactions)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func saldo(t *testing.T, w *httptest.ResponseRecorder) decimal.Decimal {
	t.Helper()
	var resp struct {
		Saldo decimal.Decimal `json:"saldo"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.Saldo
}

func remark(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Remark string `json:"remark"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.Remark
}

func TestDepositWithdrawScenario(t *testing.T) {
	const number = "120000000018"
	r := newTestRouter(newStubService(number))

	w := doJSON(t, r, http.MethodPost, "/api/v1/tabung", `{"no_rekening":"`+number+`","nominal":100000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("tabung status=%d body=%s", w.Code, w.Body.String())
	}
	if got := saldo(t, w); !got.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("saldo=%s want=100000", got)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/tabung", `{"no_rekening":"`+number+`","nominal":50000}`)
	if got := saldo(t, w); !got.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("saldo=%s want=150000", got)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/tarik", `{"no_rekening":"`+number+`","nominal":200000}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("overdraft status=%d", w.Code)
	}
	if got := remark(t, w); got != "Saldo tidak cukup" {
		t.Fatalf("remark=%q", got)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/saldo/"+number, "")
	if got := saldo(t, w); !got.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("saldo after failed withdrawal=%s want=150000", got)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/tarik", `{"no_rekening":"`+number+`","nominal":150000}`)
	if got := saldo(t, w); !got.Equal(decimal.Zero) {
		t.Fatalf("saldo=%s want=0", got)
	}
}

func TestDepositUnknownAccount(t *testing.T) {
	svc := newStubService("120000000018")
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tabung", `{"no_rekening":"999999999994","nominal":1000}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if got := remark(t, w); got != "Nomor Rekening Tidak Ditemukan" {
		t.Fatalf("remark=%q", got)
	}
	if len(svc.transactions["999999999994"]) != 0 {
		t.Fatal("transaction recorded for unknown account")
	}
}

func TestDepositNonPositiveNominal(t *testing.T) {
	r := newTestRouter(newStubService("120000000018"))

	w := doJSON(t, r, http.MethodPost, "/api/v1/tabung", `{"no_rekening":"120000000018","nominal":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if got := remark(t, w); got != "Validation failed: nominal: must be greater than zero" {
		t.Fatalf("remark=%q", got)
	}
}

func TestDepositInvalidJSON(t *testing.T) {
	r := newTestRouter(newStubService("120000000018"))

	w := doJSON(t, r, http.MethodPost, "/api/v1/tabung", `{"no_rekening":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestBalanceIdempotent(t *testing.T) {
	const number = "120000000018"
	svc := newStubService(number)
	svc.balances[number] = decimal.NewFromInt(77000)
	r := newTestRouter(svc)

	first := saldo(t, doJSON(t, r, http.MethodGet, "/api/v1/saldo/"+number, ""))
	second := saldo(t, doJSON(t, r, http.MethodGet, "/api/v1/saldo/"+number, ""))
	if !first.Equal(second) {
		t.Fatalf("repeated saldo reads differ: %s vs %s", first, second)
	}
}

func TestBalanceUnknownAccount(t *testing.T) {
	r := newTestRouter(newStubService())

	w := doJSON(t, r, http.MethodGet, "/api/v1/saldo/999999999994", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if got := remark(t, w); got != "Nomor Rekening Tidak Ditemukan" {
		t.Fatalf("remark=%q", got)
	}
}

func TestTransactionsListing(t *testing.T) {
	const number = "120000000018"
	r := newTestRouter(newStubService(number))

	doJSON(t, r, http.MethodPost, "/api/v1/tabung", `{"no_rekening":"`+number+`","nominal":5000}`)
	doJSON(t, r, http.MethodPost, "/api/v1/tarik", `{"no_rekening":"`+number+`","nominal":2000}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/mutasi/"+number, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var mutations []struct {
		Waktu         string          `json:"waktu"`
		TipeTransaksi string          `json:"tipe_transaksi"`
		Nominal       decimal.Decimal `json:"nominal"`
	}
	if err := json.NewDecoder(w.Body).Decode(&mutations); err != nil {
		t.Fatal(err)
	}
	if len(mutations) != 2 {
		t.Fatalf("mutations=%d want=2", len(mutations))
	}
	if mutations[0].TipeTransaksi != "DEPOSIT" || mutations[1].TipeTransaksi != "WITHDRAWAL" {
		t.Fatalf("unexpected kinds: %+v", mutations)
	}
}
