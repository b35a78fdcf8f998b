package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				m.Log.Error("ErrorHandler recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Error(err),
					zap.Stack("stacktrace"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerPanicRecovered(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrRouteNotFound(r.Method, r.URL.Path))
}

func (m *Middlewares) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrMethodNotAllowed(r.Method, r.URL.Path))
}
