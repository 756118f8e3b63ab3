package registrationhandler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/koyif/accountsvc/internal/domain"
	"github.com/koyif/accountsvc/internal/handler/response"
	"github.com/koyif/accountsvc/pkg/dto"
	"github.com/koyif/accountsvc/pkg/logger"
)

type registrationService interface {
	Register(ctx context.Context, name, nik, phone string) (string, error)
}

type RegistrationHandler struct {
	srv registrationService
}

func New(srv registrationService) *RegistrationHandler {
	return &RegistrationHandler{
		srv: srv,
	}
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a register request")
		response.Remark(w, http.StatusBadRequest, "Validation failed: body: invalid JSON")
		return
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Error("error while closing request body", logger.Error(err))
			return
		}
	}(r.Body)

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid registration fields", logger.Error(err))
		response.Remark(w, http.StatusBadRequest, response.ValidationRemark(err))
		return
	}

	number, err := h.srv.Register(r.Context(), req.Nama, req.NIK, req.NoHP)
	if err != nil {
		var dup *domain.DuplicateDataError
		if errors.As(err, &dup) {
			logger.Log.Warn("duplicate customer data", logger.String("fields", strings.Join(dup.Fields, ", ")))
			response.Remark(w, http.StatusBadRequest,
				"Ditemukan data duplikat: "+strings.Join(dup.Fields, ", ")+" sudah pernah terdaftar")
			return
		}

		logger.Log.Error("error while registering customer", logger.Error(err))
		response.Remark(w, http.StatusInternalServerError, response.UnexpectedRemark)
		return
	}

	response.JSON(w, http.StatusCreated, dto.RegisterResponse{NoRekening: number})
}
