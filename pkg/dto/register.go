package dto

import (
	"errors"

	"github.com/koyif/accountsvc/internal/validation"
)

/**
  {
      "nama": "Budi",
      "nik": "3201010101990001",
      "no_hp": "+6281234567890"
  }
*/

type RegisterRequest struct {
	Nama string `json:"nama"`
	NIK  string `json:"nik"`
	NoHP string `json:"no_hp"`
}

func (r RegisterRequest) IsValid() error {
	return errors.Join(
		validation.Name("nama", r.Nama),
		validation.NIK("nik", r.NIK),
		validation.Phone("no_hp", r.NoHP),
	)
}

type RegisterResponse struct {
	NoRekening string `json:"no_rekening"`
}
