package dto

/**
  {
      "remark": "Nomor Rekening Tidak Ditemukan"
  }
*/

type ErrorResponse struct {
	Remark string `json:"remark"`
	Method string `json:"method,omitempty"`
}
