package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/samigvnc/csgo-frontend/internal/account"
	"github.com/samigvnc/csgo-frontend/internal/admin"
	"github.com/samigvnc/csgo-frontend/internal/battle"
	"github.com/samigvnc/csgo-frontend/internal/catalog"
	"github.com/samigvnc/csgo-frontend/internal/config"
	"github.com/samigvnc/csgo-frontend/internal/contract"
	"github.com/samigvnc/csgo-frontend/internal/economy"
	"github.com/samigvnc/csgo-frontend/internal/handler"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/metrics"
	"github.com/samigvnc/csgo-frontend/internal/opening"
	"github.com/samigvnc/csgo-frontend/internal/sse"
)

// Services bundles everything the router dispatches to
type Services struct {
	Account  account.Service
	Catalog  catalog.Service
	Opening  opening.Service
	Battle   battle.Service
	Contract contract.Service
	Economy  economy.Service
	Admin    admin.Service
	Backend  handler.Pinger
	Events   *sse.Hub
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, svc Services) *Server {
	r := NewRouter(cfg, svc)
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter builds the full middleware stack and route table.
// Chi middleware executes in order defined (outermost to innermost).
func NewRouter(cfg *config.Config, svc Services) chi.Router {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()
	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(limiter, cfg.TrustedProxies))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Backend))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handler.HandleLogin(svc.Account))
			r.Post("/register", handler.HandleRegister(svc.Account))
			r.Post("/logout", handler.HandleLogout(svc.Account))
		})

		r.Get("/me", handler.HandleProfile(svc.Account))
		r.Get("/me/inventory", handler.HandleInventory(svc.Account))

		r.Route("/cases", func(r chi.Router) {
			r.Get("/", handler.HandleListCases(svc.Catalog))
			r.Get("/home", handler.HandleHome(svc.Catalog))
			r.Get("/{id}", handler.HandleGetCase(svc.Catalog))
			r.Get("/{id}/odds", handler.HandleCaseOdds(svc.Opening))
		})

		r.Route("/openings", func(r chi.Router) {
			r.Post("/", handler.HandleOpenCase(svc.Opening))
			r.Get("/active", handler.HandleActiveOpening(svc.Opening))
			r.Get("/{id}", handler.HandleGetOpening(svc.Opening))
			r.Post("/{id}/spin", handler.HandleSpin(svc.Opening))
			r.Post("/{id}/complete", handler.HandleComplete(svc.Opening))
		})

		r.Route("/battles", func(r chi.Router) {
			r.Get("/", handler.HandleListBattles(svc.Battle))
			r.Post("/", handler.HandleCreateBattle(svc.Battle))
			r.Get("/{id}", handler.HandleGetBattle(svc.Battle))
			r.Post("/{id}/join", handler.HandleJoinBattle(svc.Battle))
			r.Post("/{id}/start", handler.HandleStartBattle(svc.Battle))
			r.Post("/{id}/play", handler.HandlePlayBattle(svc.Battle))
			r.Get("/{id}/playback", handler.HandleBattlePlayback(svc.Battle))
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Post("/", handler.HandleCompleteContract(svc.Contract))
			r.Get("/rules", handler.HandleContractRules(svc.Contract))
			r.Get("/eligible", handler.HandleContractEligible(svc.Contract))
		})

		r.Route("/economy", func(r chi.Router) {
			r.Post("/sell", handler.HandleSellItem(svc.Economy))
			r.Get("/bonus", handler.HandleBonusStatus(svc.Economy))
			r.Post("/bonus/claim", handler.HandleClaimBonus(svc.Economy))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handler.HandleAdminLogin(svc.Admin))
			r.Post("/logout", handler.HandleAdminLogout(svc.Admin))
			r.Get("/status", handler.HandleAdminStatus(svc.Admin))

			r.Get("/users", handler.HandleAdminListUsers(svc.Admin))
			r.Put("/users/{id}/balance", handler.HandleAdminSetBalance(svc.Admin))
			r.Delete("/users/{id}", handler.HandleAdminDeleteUser(svc.Admin))

			r.Get("/cases", handler.HandleAdminListCases(svc.Admin))
			r.Post("/cases", handler.HandleAdminCreateCase(svc.Admin))
			r.Delete("/cases/{id}", handler.HandleAdminDeleteCase(svc.Admin))

			r.Post("/cache/purge", handler.HandleAdminPurgeCatalog(svc.Admin))
		})

		if svc.Events != nil {
			r.Get("/events", sse.Handler(svc.Events))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the event stream push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and scrapes are too chatty to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders,
			"headers", redactHeaders(r.Header),
			"query", redactQuery(r.URL.Query()))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// redactQuery hides the EventSource key, which arrives in the query string.
func redactQuery(q url.Values) string {
	if _, ok := q[QueryParamAPIKey]; ok {
		q.Set(QueryParamAPIKey, RedactedValue)
	}
	return q.Encode()
}
