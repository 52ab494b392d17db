package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// SetLogger задаёт логгер для мидлварей пакета
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

// statusRecorder запоминает код ответа и число записанных байт
type statusRecorder struct {
	http.ResponseWriter
	status      int
	size        int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// WithLogging пишет строку на каждый запрос. 5xx уходят в Error, 4xx в Warn.
func WithLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h.ServeHTTP(rec, r)

		fields := []interface{}{
			"method", r.Method,
			"uri", r.RequestURI,
			"status", rec.status,
			"size", rec.size,
			"duration", time.Since(start),
		}
		if id := chimw.GetReqID(r.Context()); id != "" {
			fields = append(fields, "request_id", id)
		}
		// параметры маршрута chi заполняются по ходу обработки
		if tenant := chi.URLParam(r, "tenantId"); tenant != "" {
			fields = append(fields, "tenant", tenant)
		}

		switch {
		case rec.status >= http.StatusInternalServerError:
			logger.Errorw("request", fields...)
		case rec.status >= http.StatusBadRequest:
			logger.Warnw("request", fields...)
		default:
			logger.Infow("request", fields...)
		}
	})
}
