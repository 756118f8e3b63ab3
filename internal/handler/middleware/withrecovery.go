package middleware

import (
	"fmt"
	"net/http"

	"github.com/koyif/accountsvc/internal/handler/response"
	"github.com/koyif/accountsvc/pkg/logger"
)

// WithRecovery converts an in-flight panic into the generic 500 remark
// instead of tearing down the connection.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Error("panic while handling request",
					logger.String("url", r.RequestURI),
					logger.Error(fmt.Errorf("%v", rec)),
				)
				response.Remark(w, http.StatusInternalServerError, response.UnexpectedRemark)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
