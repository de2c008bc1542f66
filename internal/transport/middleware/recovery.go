package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with the 500 error envelope. The panic
// value is only sent to the client when exposeDetail is set.
func Recovery(logger *slog.Logger, exposeDetail bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					stack := debug.Stack()
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(stack)),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)

					message := "Internal server error"
					if exposeDetail {
						message = fmt.Sprint(err)
					}
					writeError(w, http.StatusInternalServerError, "Something went wrong!", message)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
