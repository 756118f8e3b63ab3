package dto

import (
	"errors"
	"strings"

	"github.com/koyif/accountsvc/internal/validation"
	"github.com/shopspring/decimal"
)

/**
  {
      "no_rekening": "9279227384709573",
      "nominal": 100000
  }
*/

type TransactionRequest struct {
	NoRekening string          `json:"no_rekening"`
	Nominal    decimal.Decimal `json:"nominal"`
}

func (t TransactionRequest) IsValid() error {
	var numberErr, nominalErr error

	if strings.TrimSpace(t.NoRekening) == "" {
		numberErr = validation.FieldError{Field: "no_rekening", Message: "must not be empty"}
	}

	if !t.Nominal.IsPositive() {
		nominalErr = validation.FieldError{Field: "nominal", Message: "must be greater than zero"}
	}

	return errors.Join(numberErr, nominalErr)
}

type BalanceResponse struct {
	Saldo decimal.Decimal `json:"saldo"`
}
