package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/koyif/accountsvc/internal/accnum"
	"github.com/koyif/accountsvc/internal/handler/account"
	"github.com/koyif/accountsvc/internal/handler/middleware"
	"github.com/koyif/accountsvc/internal/handler/registration"
	"github.com/koyif/accountsvc/internal/handler/response"
	"github.com/koyif/accountsvc/internal/postgres"
	"github.com/koyif/accountsvc/internal/service"
	"github.com/koyif/accountsvc/pkg/dto"
)

func (app App) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.WithRecovery)

	p := postgres.New(app.DB, func() (string, error) {
		return accnum.Generate(app.Config.AccountNumberLength)
	})

	registrationService := service.NewRegistrationService(p)
	registrationHandler := registrationhandler.New(registrationService)

	accountService := service.NewAccountService(p, p)
	accountHandler := accounthandler.New(accountService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/daftar", registrationHandler.Register)
		r.Post("/tabung", accountHandler.Deposit)
		r.Post("/tarik", accountHandler.Withdraw)
		r.Get("/saldo/{no_rekening}", accountHandler.Balance)
		r.Get("/mutasi/{no_rekening}", accountHandler.Transactions)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.JSON(w, http.StatusNotFound, notFoundResponse(req))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.JSON(w, http.StatusNotFound, notFoundResponse(req))
	})

	return r
}

func notFoundResponse(req *http.Request) dto.ErrorResponse {
	return dto.ErrorResponse{
		Remark: "The requested URL " + req.URL.Path + " was not found on the server.",
		Method: req.Method,
	}
}
