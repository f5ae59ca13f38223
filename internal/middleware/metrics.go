package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "foodieframe_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// MediaFilesDeleted counts media files removed from the uploads tree,
// labelled by what triggered the removal (post_delete, orphan_sweep, ...).
var MediaFilesDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "foodieframe_media_files_deleted_total",
	Help: "Total number of uploaded media files deleted",
}, []string{"trigger"})

// InitMetrics builds the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware adapts the Prometheus middleware to a Fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
