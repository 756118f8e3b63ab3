// Package response centralizes the JSON shapes every handler writes, so
// the remark envelope stays consistent across the API.
package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/koyif/accountsvc/pkg/dto"
	"github.com/koyif/accountsvc/pkg/logger"
)

// UnexpectedRemark is the generic message for failures outside the error
// taxonomy; details are logged, never sent to the client.
const UnexpectedRemark = "An unexpected error occurred. Please try again later."

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("error while encoding response to JSON", logger.Error(err))
	}
}

func Remark(w http.ResponseWriter, code int, remark string) {
	JSON(w, code, dto.ErrorResponse{Remark: remark})
}

// ValidationRemark flattens a (possibly joined) validation error into the
// "Validation failed: <field>: <message>; ..." remark format.
func ValidationRemark(err error) string {
	var parts []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			parts = append(parts, e.Error())
		}
	} else {
		parts = append(parts, err.Error())
	}

	return "Validation failed: " + strings.Join(parts, "; ")
}
