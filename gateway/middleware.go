package gateway

import (
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/gqlbridge/gqlbridge/headers"
)

// recoveryMiddleware converts a panic anywhere below it into a fixed
// generic 500. Internals never leak to the caller.
func (gw *Gateway) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if cause := recover(); cause != nil {
				mainLog.WithFields(logrus.Fields{
					"panic": cause,
					"path":  r.URL.Path,
				}).Error("Recovered from handler panic")
				doJSONWrite(w, http.StatusInternalServerError, apiError("Internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware tags every request with a UUID, echoed in the
// response headers and attached to the access log line.
func (gw *Gateway) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ""
		if id, err := uuid.NewV4(); err == nil {
			requestID = id.String()
			w.Header().Set(headers.XRequestID, requestID)
		}

		mainLog.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": requestID,
		}).Debug("Handling request")

		next.ServeHTTP(w, r)
	})
}

func (gw *Gateway) corsMiddleware(next http.Handler) http.Handler {
	if !gw.conf.CORS.Enable {
		return next
	}

	c := cors.New(cors.Options{
		AllowedOrigins:     gw.conf.CORS.AllowedOrigins,
		AllowedMethods:     gw.conf.CORS.AllowedMethods,
		AllowedHeaders:     gw.conf.CORS.AllowedHeaders,
		ExposedHeaders:     gw.conf.CORS.ExposedHeaders,
		AllowCredentials:   gw.conf.CORS.AllowCredentials,
		MaxAge:             gw.conf.CORS.MaxAge,
		OptionsPassthrough: gw.conf.CORS.OptionsPassthrough,
		Debug:              gw.conf.CORS.Debug,
	})

	return c.Handler(next)
}
