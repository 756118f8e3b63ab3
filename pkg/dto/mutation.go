package dto

import "github.com/shopspring/decimal"

/**
  {
      "waktu": "2024-08-31T15:15:45+07:00",
      "tipe_transaksi": "DEPOSIT",
      "nominal": 50000
  }
*/

type Mutation struct {
	Waktu         string          `json:"waktu"`
	TipeTransaksi string          `json:"tipe_transaksi"`
	Nominal       decimal.Decimal `json:"nominal"`
}
