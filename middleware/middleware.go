package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/charisma-labs/srs/domain"
)

// Middleware bundles the cross-cutting echo middleware of the routing
// service: CORS headers, prometheus request instrumentation and request
// tracing.
type Middleware struct {
	cors domain.CORSConfig
}

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "srs_requests_total",
			Help: "Total number of requests.",
		},
		[]string{"method", "endpoint"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "srs_request_duration_seconds",
			Help:    "Histogram of request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestLatency)
}

func New(cors *domain.CORSConfig) *Middleware {
	return &Middleware{cors: *cors}
}

// CORS sets the allow headers from config on every response.
func (m *Middleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		header.Set("Access-Control-Allow-Origin", m.cors.AllowedOrigin)
		header.Set("Access-Control-Allow-Headers", m.cors.AllowedHeaders)
		header.Set("Access-Control-Allow-Methods", m.cors.AllowedMethods)
		return next(c)
	}
}

// Instrument counts the request and observes its latency, labeled by
// method and the parameterized endpoint path. The resolved path is also
// placed on the request context for handlers that report it.
func (m *Middleware) Instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		method := c.Request().Method
		endpoint, err := domain.ParseURLPath(c)
		if err != nil {
			return err
		}

		requestsTotal.WithLabelValues(method, endpoint).Inc()

		ctx := context.WithValue(c.Request().Context(), domain.RequestPathCtxKey, endpoint)
		c.SetRequest(c.Request().WithContext(ctx))

		start := time.Now()
		defer func() {
			requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
		}()

		return next(c)
	}
}

// TraceWithParams opens a server span per request, continuing any trace
// propagated in the request headers, and records the query parameters as
// span attributes. Nothing served here is sensitive; amounts and contract
// ids are public data.
func (m *Middleware) TraceWithParams(tracerName string) echo.MiddlewareFunc {
	tracer := otel.Tracer(tracerName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parentCtx := otel.GetTextMapPropagator().Extract(c.Request().Context(), propagation.HeaderCarrier(c.Request().Header))

			ctx, span := tracer.Start(parentCtx, c.Path(), trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			span.SetAttributes(attribute.String("http.method", c.Request().Method))

			for key, values := range c.QueryParams() {
				span.SetAttributes(attribute.String(key, values[0]))
			}

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
