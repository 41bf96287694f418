package httpx

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

func RecoveryMiddleware(log *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic recovered",
						zap.String("request_id", RequestIDFrom(r)),
						zap.String("error", fmt.Sprint(err)),
						zap.Stack("stack"),
					)
					if !rw.wroteHeader() {
						JSONInternalError(rw)
					}
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
