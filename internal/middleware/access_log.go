package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// AccessLog writes one structured log line per request
func AccessLog() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				utils.LogHTTPRequest(
					chimiddleware.GetReqID(r.Context()),
					r.Method,
					r.URL.Path,
					r.RemoteAddr,
					r.UserAgent(),
					status,
					ww.BytesWritten(),
					time.Since(start),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
