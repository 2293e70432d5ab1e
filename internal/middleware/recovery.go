package middleware

import (
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// Recovery is a middleware that recovers from panics and returns a 500 Internal Server Error
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// Aborted handlers must keep unwinding so net/http drops the connection
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				utils.LogPanic(rec, debug.Stack())
				logger := utils.RequestLogger(chimiddleware.GetReqID(r.Context()), "", r.Method, r.URL.Path)
				logger.Error().
					Str("remote_addr", r.RemoteAddr).
					Msg("Panic recovered in request handler")

				utils.Error(
					w,
					http.StatusInternalServerError,
					constants.CodeInternalError,
					constants.MsgInternalServerError,
					nil,
				)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
