package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sayfetik/DevOps-Core-Course/internal/config"
	"github.com/sayfetik/DevOps-Core-Course/internal/sysinfo"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Config config.Config
	Clock  *sysinfo.Clock
	Sys    *sysinfo.Collector
	Logger *slog.Logger
}

type Server struct {
	cfg   config.Config
	log   *slog.Logger
	clock *sysinfo.Clock
	sys   *sysinfo.Collector
}

// route is one entry of the route table. The same table feeds the
// "endpoints" listing on the index page.
type route struct {
	method      string
	path        string
	description string
	handler     http.HandlerFunc
}

func (s *Server) routes() []route {
	return []route{
		{http.MethodGet, "/", "Service information", s.handleIndex},
		{http.MethodGet, "/health", "Health check", s.handleHealth},
	}
}

func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := deps.Clock
	if clock == nil {
		clock = sysinfo.NewClock(nil)
	}
	sys := deps.Sys
	if sys == nil {
		sys = sysinfo.NewCollector(logger)
	}

	s := &Server{
		cfg:   deps.Config,
		log:   logger.With("component", "http"),
		clock: clock,
		sys:   sys,
	}

	return s.handler(s.routes())
}

// handler mounts rs behind the middleware stack and the JSON fallbacks.
func (s *Server) handler(rs []route) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// X-Real-IP and X-Forwarded-For are client-controlled unless a proxy
	// in front of us rewrites them.
	if s.cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	if s.cfg.Debug {
		r.Use(s.requestLogger)
	}
	r.Use(s.recoverer)
	r.Use(middleware.Timeout(3 * time.Second))
	r.Use(middleware.GetHead)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	for _, rt := range rs {
		r.Method(rt.method, rt.path, rt.handler)
	}

	return r
}
