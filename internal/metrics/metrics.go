package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics recorded by the Fiber middleware.
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_ms",
			Help:    "Latency of HTTP requests in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		},
		[]string{"method", "path"},
	)
)

// Domain counters incremented by the service layer.
var (
	ProjectsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "projects_created_total",
		Help: "Total number of projects created",
	})
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "users_registered_total",
		Help: "Total number of users registered",
	})
	InvestmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "investments_created_total",
		Help: "Total number of investments created",
	})
	ReviewsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reviews_created_total",
		Help: "Total number of reviews created",
	})
	AmountPledged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "amount_pledged_total",
		Help: "Total money pledged across all investments",
	})
)

// Middleware records request counts and latency per route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		path := c.Route().Path
		httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path).
			Observe(float64(time.Since(start).Milliseconds()))
		return err
	}
}
