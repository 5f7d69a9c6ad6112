package httpserver

import (
	stdlog "log"
	"net/http"
	"time"

	"habit-tracker-go/internal/config"
	"habit-tracker-go/pkg/logger"
)

// RequestTimeout bounds every handler through the chi timeout middleware.
const RequestTimeout = 30 * time.Second

// New builds the API server. The write timeout leaves room for a handler that
// runs up to RequestTimeout to still flush its error response.
func New(cfg config.Config, handler http.Handler, log logger.Logger) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          stdlog.New(logger.Printf{Log: log}, "", 0),
	}
}
