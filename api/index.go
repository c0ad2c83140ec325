package handler

import (
	"net/http"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	server  http.Handler
	initErr error
)

// Handler is the serverless entrypoint. The dependency graph is built once
// per instance and kept for the lifetime of the process.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		server, _, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		response.WithUnhealthy(w)

		return
	}

	server.ServeHTTP(w, r)
}
