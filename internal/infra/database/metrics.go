package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/logger"
)

var mongoQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "app_mongo_stats",
		Help:    "Response time of MONGO queries in milliseconds.",
		Buckets: []float64{.05, .075, .1, .125, .15, .2, .3, .5, .75, 1, 2, 3, 4, 5, 7.5, 10},
	},
	[]string{"collection", "type"},
)

var storeErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_errors_total",
		Help: "Total number of document store errors",
	},
	[]string{"collection"},
)

// postProcess loga a consulta em debug e registra a duração.
func postProcess(collection, query string, start time.Time) {
	duration := time.Since(start)

	logger.Log.Debug("mongo query",
		zap.String("collection", collection),
		zap.String("type", query),
		zap.Duration("duration", duration),
	)

	mongoQueryDuration.WithLabelValues(collection, query).Observe(float64(duration.Milliseconds()))
}

// recordError conta falhas do driver; documento inexistente não entra.
func recordError(collection string) {
	storeErrors.WithLabelValues(collection).Inc()
}
