package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Serve exposes the metrics on the given port in the background.
func Serve(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
		if err != nil {
			log.Error().Err(err).Int("port", port).Msg("metrics server stopped")
		}
	}()
	log.Info().Int("port", port).Msg("serving metrics")
}
