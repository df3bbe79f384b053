package httpserver

import (
	"net"
	"net/http"
	"time"

	"github.com/sayfetik/DevOps-Core-Course/internal/sysinfo"
)

const (
	serviceName        = "devops-info-service"
	serviceVersion     = "1.0.0"
	serviceDescription = "DevOps course info service"
	serviceFramework   = "chi"
)

type serviceInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Framework   string `json:"framework"`
}

type runtimeInfo struct {
	UptimeSeconds int64  `json:"uptime_seconds"`
	UptimeHuman   string `json:"uptime_human"`
	CurrentTime   string `json:"current_time"`
	Timezone      string `json:"timezone"`
}

type requestInfo struct {
	ClientIP  string  `json:"client_ip"`
	UserAgent *string `json:"user_agent"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
}

type endpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type indexResponse struct {
	Service   serviceInfo      `json:"service"`
	System    sysinfo.Snapshot `json:"system"`
	Runtime   runtimeInfo      `json:"runtime"`
	Request   requestInfo      `json:"request"`
	Endpoints []endpointInfo   `json:"endpoints"`
}

type healthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.log.Info(r.Method + " " + r.URL.Path)

	up := s.clock.Uptime()

	resp := indexResponse{
		Service: serviceInfo{
			Name:        serviceName,
			Version:     serviceVersion,
			Description: serviceDescription,
			Framework:   serviceFramework,
		},
		System: s.sys.Snapshot(),
		Runtime: runtimeInfo{
			UptimeSeconds: up.Seconds,
			UptimeHuman:   up.Human,
			CurrentTime:   s.clock.Now().Format(time.RFC3339Nano),
			Timezone:      "UTC",
		},
		Request: requestInfo{
			ClientIP:  clientIP(r),
			UserAgent: userAgent(r),
			Method:    r.Method,
			Path:      r.URL.Path,
		},
		Endpoints: s.endpoints(),
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:        "healthy",
		Timestamp:     s.clock.Now().Format(time.RFC3339Nano),
		UptimeSeconds: s.clock.Uptime().Seconds,
	})
}

func (s *Server) endpoints() []endpointInfo {
	rs := s.routes()
	out := make([]endpointInfo, 0, len(rs))
	for _, rt := range rs {
		out = append(out, endpointInfo{Path: rt.path, Method: rt.method, Description: rt.description})
	}
	return out
}

// clientIP strips the port from RemoteAddr. With TrustProxy set,
// middleware.RealIP may already have replaced it with a bare IP, which is
// returned as is.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// userAgent is nil when the header was not sent at all.
func userAgent(r *http.Request) *string {
	if _, ok := r.Header["User-Agent"]; !ok {
		return nil
	}
	ua := r.Header.Get("User-Agent")
	return &ua
}
