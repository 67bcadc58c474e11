package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"demoready/internal/platform/logger"
)

const panicBody = `{"error":"internal server error","code":"internal_error"}`

// Recovery turns a panicking handler into the API's JSON 500 body.
func Recovery(log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromContextOr(r.Context(), log).Error("Recovered from handler panic",
					logger.String("method", r.Method),
					logger.String("path", r.URL.Path),
					logger.String("panic", fmt.Sprint(rec)),
					logger.String("stack", string(debug.Stack())),
				)

				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicBody + "\n"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
