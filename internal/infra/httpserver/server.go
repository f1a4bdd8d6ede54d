package httpserver

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"

	"esg-server/internal/infra/node"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	_ "net/http/pprof"
)

const tracerName = "esg-server"

// Controller registers its routes on the shared router.
type Controller interface {
	AddRoutes(*http.ServeMux)
}

type Server interface {
	Run()
	Shutdown()
}

// Options carries the listen address and CORS origins of the data-entry
// frontend. Both come from configuration rather than being baked in.
type Options struct {
	Addr           string
	AllowedOrigins []string
}

var _ Server = &StandardServer{}

type StandardServer struct {
	server *http.Server
}

func (s *StandardServer) Run() {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}

func (s *StandardServer) Shutdown() {
	if err := s.server.Shutdown(context.Background()); err != nil {
		panic(err)
	}
}

func NewServer(opts Options, controllers ...Controller) *StandardServer {
	router := http.NewServeMux()

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-User-ID",
			"X-User-Name",
			"X-User-Email",
		},
		AllowCredentials: false,
		MaxAge:           300,
	})

	server := &StandardServer{
		&http.Server{
			Addr:    opts.Addr,
			Handler: c.Handler(Handler(router, controllers...)),
		},
	}

	return server
}

// Handler composes the middleware chain and controller routes onto router.
// Split out of NewServer so tests can mount the same surface on an
// httptest server.
func Handler(router *http.ServeMux, controllers ...Controller) http.Handler {
	router.Handle("GET /healthz", getHealthz())
	router.Handle("GET /metrics", promhttp.Handler())

	for _, controller := range controllers {
		controller.AddRoutes(router)
	}

	tracingMiddleware := createTracingMiddleware()
	userHeaderMiddleware := createUserHeaderMiddleware()
	metricsMiddleware := MetricsMiddleware()

	return metricsMiddleware(tracingMiddleware(userHeaderMiddleware(router)))
}

// GetSpanFromContext returns the active request span.
func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}

func createUserHeaderMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			span := GetSpanFromContext(r)

			if userID := r.Header.Get("X-User-ID"); userID != "" {
				span.SetAttributes(attribute.String("user.id", userID))
			}
			if userName := r.Header.Get("X-User-Name"); userName != "" {
				span.SetAttributes(attribute.String("user.name", userName))
			}
			if userEmail := r.Header.Get("X-User-Email"); userEmail != "" {
				span.SetAttributes(attribute.String("user.email", userEmail))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func createTracingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			propagator := b3.New()
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			tracer := otel.Tracer(tracerName)
			ctx, span := tracer.Start(ctx, "http.request",
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
					attribute.String("http.user_agent", r.UserAgent()),
					attribute.String("http.remote_addr", r.RemoteAddr),
					attribute.String("span.kind", "server"),
					attribute.String("component", "http-server"),
				),
			)
			defer span.End()

			r = r.WithContext(ctx)
			propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

			wrapped := &statusCodeResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wrapped, r)

			span.SetAttributes(attribute.Int("http.status_code", wrapped.statusCode))
		})
	}
}

type statusCodeResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusCodeResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack keeps websocket upgrades working through the middleware chain.
func (w *statusCodeResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not support hijacking")
}

func getHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		span := GetSpanFromContext(r)
		span.SetAttributes(attribute.String("endpoint", "healthz"))

		output := map[string]string{
			"status":      "success",
			"VERSION":     node.Version,
			"COMMIT_HASH": node.CommitHash,
		}
		ReplyJSONResponse(w, http.StatusOK, output)
	}
}
